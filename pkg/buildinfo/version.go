// Package buildinfo reports the version of the wireframe binary.
//
// Release builds stamp the variables via ldflags:
//
//	go build -ldflags "-X github.com/matzehuels/wireframe/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/matzehuels/wireframe/pkg/buildinfo.Commit=$(git rev-parse HEAD) \
//	    -X github.com/matzehuels/wireframe/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
//
// Binaries from "go install" carry no ldflags; [Read] then falls back to the
// module version and VCS stamp the Go toolchain embeds.
package buildinfo

import (
	"fmt"
	"runtime/debug"
)

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Info is the resolved version of the running binary.
type Info struct {
	Version  string
	Commit   string
	Date     string
	Modified bool // built from a dirty work tree
}

// Read merges the ldflags values with the embedded build info. Stamped
// values win.
func Read() Info {
	info := Info{Version: Version, Commit: Commit, Date: Date}
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	return merge(info, bi)
}

func merge(info Info, bi *debug.BuildInfo) Info {
	if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.Commit == "none" {
				info.Commit = s.Value
			}
		case "vcs.time":
			if info.Date == "unknown" {
				info.Date = s.Value
			}
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}
	return info
}

// Short returns the version with an abbreviated commit, e.g.
// "v0.3.0 (1a2b3c4)", or "v0.3.0 (1a2b3c4, modified)" for a dirty tree.
func (i Info) Short() string {
	if i.Commit == "" || i.Commit == "none" {
		return i.Version
	}
	c := i.Commit
	if len(c) > 7 {
		c = c[:7]
	}
	if i.Modified {
		return fmt.Sprintf("%s (%s, modified)", i.Version, c)
	}
	return fmt.Sprintf("%s (%s)", i.Version, c)
}

// Template returns the cobra version template.
func Template() string {
	i := Read()
	return fmt.Sprintf("{{.Name}} %s\nbuilt: %s\n", i.Short(), i.Date)
}
