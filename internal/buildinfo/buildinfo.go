// buildinfo.go captures build metadata (version, commit) for use in --version output.
package buildinfo

// Version is injected at build time via -ldflags and defaults to dev.
var Version = "dev"

// Commit is the VCS revision the binary was built from, when injected.
var Commit = ""

// String renders the version with the commit suffix when one is known.
func String() string {
	if Commit == "" {
		return Version
	}
	return Version + " (" + Commit + ")"
}
