// Package buildinfo carries version stamps set at link time.
package buildinfo

import "fmt"

// Version is set at build time via -ldflags.
var Version = "dev"

// Commit is set at build time via -ldflags.
var Commit = "unknown"

// Date is set at build time via -ldflags.
var Date = "unknown"

// Name is the program name shown in window titles and the HUD.
const Name = "Orrery"

// Short returns a compact build identifier for UI/logging.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		if len(Commit) > 7 {
			return Commit[:7]
		}
		return Commit
	}
	return "dev"
}

// Title is the window and HUD title, e.g. "Orrery (v1.2.0)".
func Title() string {
	return fmt.Sprintf("%s (%s)", Name, Short())
}

// String is the full stamp for startup logs.
func String() string {
	return fmt.Sprintf("%s version=%s commit=%s date=%s", Name, Version, Commit, Date)
}
