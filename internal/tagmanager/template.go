package tagmanager

import (
	"strconv"
	"strings"
	"time"

	"github.com/indaco/versionator/internal/semver"
)

// nowFn is replaced in tests to pin {date}.
var nowFn = time.Now

// TemplateData holds the values substituted into tag and commit messages.
type TemplateData struct {
	Version string
	Tag     string
	Prefix  string
	Date    string
	Major   int
	Minor   int
	Patch   int
}

// NewTemplateData builds TemplateData for version using the given tag prefix.
func NewTemplateData(version semver.Version, prefix string) TemplateData {
	return TemplateData{
		Version: version.String(),
		Tag:     prefix + version.String(),
		Prefix:  prefix,
		Date:    nowFn().Format("2006-01-02"),
		Major:   version.Major,
		Minor:   version.Minor,
		Patch:   version.Patch,
	}
}

// FormatMessage replaces {version}, {tag}, {prefix}, {date}, {major},
// {minor} and {patch} in template. Unknown placeholders are left as-is.
func FormatMessage(template string, data TemplateData) string {
	r := strings.NewReplacer(
		"{version}", data.Version,
		"{tag}", data.Tag,
		"{prefix}", data.Prefix,
		"{date}", data.Date,
		"{major}", strconv.Itoa(data.Major),
		"{minor}", strconv.Itoa(data.Minor),
		"{patch}", strconv.Itoa(data.Patch),
	)
	return r.Replace(template)
}
