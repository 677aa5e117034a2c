package operations

import (
	"context"

	"github.com/indaco/versionator/internal/parser"
	"github.com/indaco/versionator/internal/semver"
	"github.com/indaco/versionator/internal/versionfile"
)

// Init creates a version file of the given format in dir holding version.
// See versionfile.Store.Init for the overwrite rules.
func (e *Engine) Init(ctx context.Context, dir string, format parser.Format, version semver.Version, force bool) (versionfile.File, error) {
	if err := ctx.Err(); err != nil {
		return versionfile.File{}, err
	}
	return e.store.Init(ctx, dir, format, version, force)
}
