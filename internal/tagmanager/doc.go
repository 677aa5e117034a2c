// Package tagmanager derives git tag names from versions and drives the git
// collaborator that lists, checks and creates those tags.
package tagmanager
