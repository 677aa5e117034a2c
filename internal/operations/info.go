package operations

import (
	"context"

	"github.com/indaco/versionator/internal/semver"
	"github.com/indaco/versionator/internal/versionfile"
)

// InfoOptions controls what Info collects.
type InfoOptions struct {
	// WithTags lists repository tags alongside the version.
	WithTags bool
}

// InfoResult describes a version file and, optionally, the repository tags.
type InfoResult struct {
	File    versionfile.File
	Version semver.Version

	// TagName is the tag that corresponds to Version.
	TagName string

	// Tags lists every repository tag in git's order. Empty, never nil,
	// when WithTags is set.
	Tags []string

	// Tagged reports whether TagName is among Tags.
	Tagged bool

	// LatestTag is the highest release tag in Tags, if any.
	LatestTag string

	// TagsErr records why tags could not be listed. Info does not fail on it.
	TagsErr error
}

// Info reads the version for path. With opts.WithTags it also lists tags;
// listing failures (no repository, git missing) yield an empty list and are
// recorded in TagsErr instead of failing the call.
func (e *Engine) Info(ctx context.Context, path string, opts InfoOptions) (*InfoResult, error) {
	file, current, err := e.load(ctx, path)
	if err != nil {
		return nil, err
	}

	tm := e.tagManagerFor(file)
	result := &InfoResult{
		File:    file,
		Version: current,
		TagName: tm.FormatTagName(current),
	}

	if !opts.WithTags {
		return result, nil
	}

	tags, err := tm.ListTags(ctx)
	if err != nil {
		result.Tags = []string{}
		result.TagsErr = err
		return result, nil
	}
	if tags == nil {
		tags = []string{}
	}

	result.Tags = tags
	for _, tag := range tags {
		if tag == result.TagName {
			result.Tagged = true
			break
		}
	}
	result.LatestTag = tm.LatestRelease(tags)
	return result, nil
}
