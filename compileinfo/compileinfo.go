// Package compileinfo reports which build of a binary is running, so a
// simulation's output can be tied back to the code that produced it.
package compileinfo

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
)

type CompileInfo struct {
	Package    string
	Version    string
	GoVersion  string
	Commit     string
	CommitTime string
	Modified   bool
}

func (c CompileInfo) String() string {
	if c.Package == "" {
		return "Build information is unavailable for this binary."
	}

	version := ""
	if c.Version != "" && c.Version != "(devel)" {
		version = " " + c.Version
	}

	commit := "an unknown commit"
	if c.Commit != "" {
		commit = "commit " + c.Commit
		if c.CommitTime != "" {
			commit += " (" + c.CommitTime + ")"
		}
	}

	mod := ""
	if c.Modified {
		mod = " The working tree had uncommitted changes."
	}

	return fmt.Sprintf("%s%s built with %s from %s.%s", c.Package, version, c.GoVersion, commit, mod)
}

// Get reads the build information embedded by the go tool.
func Get() CompileInfo {
	z, ok := debug.ReadBuildInfo()
	if !ok {
		return CompileInfo{}
	}

	return fromBuildInfo(z)
}

func fromBuildInfo(z *debug.BuildInfo) CompileInfo {
	out := CompileInfo{
		GoVersion: z.GoVersion,
		Package:   z.Path,
		Version:   z.Main.Version,
	}

	for _, s := range z.Settings {
		switch s.Key {
		case "vcs.revision":
			out.Commit = s.Value
		case "vcs.time":
			out.CommitTime = s.Value
		case "vcs.modified":
			out.Modified = s.Value == "true"
		}
	}

	return out
}

func Fprint(w io.Writer) {
	fmt.Fprintln(w, Get())
}

func PrintToStdErr() {
	Fprint(os.Stderr)
}
