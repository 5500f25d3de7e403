// Values in this file are injected at build time through -ldflags "-X ...".
// Keep the variable names stable; the release pipeline refers to them.

package bininfo

var (
	// Version is the SemVer version of the binary, with the git commit appended after a plus sign when known.
	Version = "v0.0.0"

	// BuildTime is when the binary was built, in RFC 3339.
	BuildTime = "1970-01-01T00:00:00Z"
)
