// Package core holds the small set of interfaces and constants shared across
// versionator: filesystem access, the git collaborators used for tagging, file
// permissions and subprocess timeouts. OS-backed and in-memory implementations
// live alongside the interfaces so every package can be tested without touching
// the real filesystem or a git repository.
package core
