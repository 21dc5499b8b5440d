// Package buildinfo holds release metadata set at link time with
// -ldflags "-X github.com/aidanlsb/tanaout/internal/buildinfo.Version=...".
// Local builds leave every value empty.
package buildinfo

var (
	Version = ""
	Commit  = ""
	Date    = ""
)
