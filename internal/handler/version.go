package handler

import (
	"net/http"
	"os"
	"runtime"
	"runtime/debug"
)

// VersionInfo identifies the running build and how it is wired
type VersionInfo struct {
	Version    string `json:"version"`
	GoVersion  string `json:"go_version"`
	BuildTime  string `json:"build_time,omitempty"`
	GitCommit  string `json:"git_commit,omitempty"`
	Store      string `json:"store"`
	Classifier bool   `json:"classifier"`
}

// Set with -ldflags "-X github.com/osse101/GreenMap_Go/internal/handler.Version=..."
var (
	Version   = "dev"
	BuildTime = ""
	GitCommit = ""
)

// HandleVersion reports the build and the active store driver
// @Summary Build info
// @Tags health
// @Produce json
// @Success 200 {object} VersionInfo
// @Router /version [get]
func HandleVersion(storeDriver string, classifierEnabled bool) http.HandlerFunc {
	info := buildInfo()
	info.Store = storeDriver
	info.Classifier = classifierEnabled
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, info)
	}
}

// buildInfo fills gaps in the ldflags values from $VERSION and the VCS
// stamp the toolchain embeds.
func buildInfo() VersionInfo {
	info := VersionInfo{
		Version:   Version,
		GoVersion: runtime.Version(),
		BuildTime: BuildTime,
		GitCommit: GitCommit,
	}
	if info.Version == "dev" || info.Version == "" {
		if v := os.Getenv("VERSION"); v != "" {
			info.Version = v
		}
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.GitCommit == "" {
				info.GitCommit = s.Value
			}
		case "vcs.time":
			if info.BuildTime == "" {
				info.BuildTime = s.Value
			}
		}
	}
	return info
}
