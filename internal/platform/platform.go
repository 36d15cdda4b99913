// Package platform reports host conditions that affect whether actions can
// succeed. Nothing here blocks startup; callers show the warnings and carry on.
package platform

import (
	"os"
	"runtime"
)

const (
	WarnNotLinux = "This tool is for Linux systems."
	WarnNotRoot  = "Not running as root. Some actions may fail."
)

// Host describes the facts the checks look at.
type Host struct {
	OS   string
	EUID int
}

// Current returns the running host.
func Current() Host {
	return Host{OS: runtime.GOOS, EUID: os.Geteuid()}
}

// Warnings returns the startup warnings for h, in display order.
func (h Host) Warnings() []string {
	var warnings []string
	if h.OS != "linux" {
		warnings = append(warnings, WarnNotLinux)
	}
	// Geteuid reports -1 where there is no such concept.
	if h.EUID > 0 {
		warnings = append(warnings, WarnNotRoot)
	}
	return warnings
}

// Check returns the warnings for the running host.
func Check() []string {
	return Current().Warnings()
}
