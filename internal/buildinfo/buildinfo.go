package buildinfo

import "runtime/debug"

var BuildInfo *debug.BuildInfo

func init() {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		BuildInfo = new(debug.BuildInfo)
		return
	}
	BuildInfo = bi
}

// Version returns the main module version or "(devel)" for local builds.
func Version() string {
	if v := BuildInfo.Main.Version; v != "" {
		return v
	}
	return "(devel)"
}
