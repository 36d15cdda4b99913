// Package version reports the build's version and commit.
package version

import (
	"fmt"
	"runtime/debug"
	"time"
)

// Set at build time:
//
//	go build -ldflags="-X github.com/packetshadow/packetshadow/internal/version.Version=v0.3.0 \
//	                   -X github.com/packetshadow/packetshadow/internal/version.Commit=abc1234"
//
// Unset values come from VCS build info, then fall back to "dev".
var (
	Version = ""
	Commit  = ""
)

func init() {
	info, _ := debug.ReadBuildInfo()
	Version, Commit = resolve(Version, Commit, info, time.Now())
}

// resolve fills in missing version and commit values from build info.
func resolve(version, commit string, info *debug.BuildInfo, now time.Time) (string, string) {
	settings := map[string]string{}
	if info != nil {
		for _, s := range info.Settings {
			settings[s.Key] = s.Value
		}
	}

	if commit == "" {
		if rev := settings["vcs.revision"]; rev != "" {
			if len(rev) > 7 {
				rev = rev[:7]
			}
			if settings["vcs.modified"] == "true" {
				rev += "-dirty"
			}
			commit = rev
		} else {
			commit = "unknown"
		}
	}

	if version == "" {
		if t, err := time.Parse(time.RFC3339, settings["vcs.time"]); err == nil {
			version = "dev-" + t.Format("20060102")
		} else {
			version = "dev-" + now.Format("20060102-150405")
		}
	}

	return version, commit
}

// Full returns the version with its commit, e.g. "v0.3.0 (commit: abc1234)".
func Full() string {
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}
