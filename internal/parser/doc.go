// Package parser reads and rewrites the version field of the two supported
// version-file formats: a JSON document with a "version" string and a Python
// module assigning __version__. Rewrites touch only the version value so the
// rest of the file is preserved byte for byte.
package parser
