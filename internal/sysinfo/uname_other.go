//go:build !linux

package sysinfo

import (
	"os"
	"runtime"
)

// Uname returns system identification assembled from the Go runtime on
// platforms without a utsname concept. Release and version have no portable
// source, so they carry a placeholder.
func Uname() (UnameInfo, error) {
	node, err := os.Hostname()
	if err != nil {
		node = "unknown"
	}

	return UnameInfo{
		KernelName:      runtime.GOOS,
		NodeName:        node,
		KernelRelease:   "unknown",
		KernelVersion:   "unknown",
		Machine:         runtime.GOARCH,
		OperatingSystem: operatingSystem(),
	}, nil
}
