// version/version.go
package version

import (
	"net/http"
	"runtime"
	"runtime/debug"

	"github.com/dalemusser/viewkit/httputil"
)

// Set at build time:
//
//	go build -ldflags "-X github.com/dalemusser/viewkit/pantry/version.Version=1.0.0"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// Info is the JSON body served by Handler.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildTime string `json:"build_time"`
	GoVersion string `json:"go_version"`
}

// Get returns the build info. When Commit or BuildTime were not set with
// ldflags they are taken from the VCS stamp the go command embeds.
func Get() Info {
	info := Info{
		Version:   Version,
		Commit:    Commit,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			switch {
			case s.Key == "vcs.revision" && info.Commit == "unknown":
				info.Commit = s.Value
			case s.Key == "vcs.time" && info.BuildTime == "unknown":
				info.BuildTime = s.Value
			}
		}
	}
	return info
}

// Handler serves Get() as JSON.
func Handler() http.Handler {
	info := Get()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteJSON(w, http.StatusOK, info)
	})
}

// String returns e.g. "1.2.3 (abc123, built 2024-01-15T10:30:00Z)", or "dev".
func String() string {
	if Version == "dev" {
		return "dev"
	}
	info := Get()
	return info.Version + " (" + info.Commit + ", built " + info.BuildTime + ")"
}
