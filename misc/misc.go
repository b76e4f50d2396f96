// Package misc keeps program identity shared by all packages.
package misc

import (
	"runtime/debug"
	"sync"
)

const appName = "dtc"

var (
	version = "dev"
	gitHash = "unknown"

	buildOnce sync.Once
)

// readBuildInfo fills version details from module information embedded by
// the go tool, values set with -ldflags take precedence.
func readBuildInfo() {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	if version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		version = bi.Main.Version
	}
	if gitHash != "unknown" {
		return
	}
	for _, s := range bi.Settings {
		if s.Key == "vcs.revision" && len(s.Value) > 0 {
			gitHash = s.Value[:min(len(s.Value), 12)]
			break
		}
	}
}

func GetAppName() string {
	return appName
}

func GetVersion() string {
	buildOnce.Do(readBuildInfo)
	return version
}

func GetGitHash() string {
	buildOnce.Do(readBuildInfo)
	return gitHash
}
