//go:build linux

package sysinfo

import (
	"bytes"
	"fmt"

	"golang.org/x/sys/unix"
)

// Uname reads system identification from the uname(2) syscall.
func Uname() (UnameInfo, error) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return UnameInfo{}, fmt.Errorf("uname syscall failed: %w", err)
	}

	return UnameInfo{
		KernelName:      utsField(uts.Sysname[:]),
		NodeName:        utsField(uts.Nodename[:]),
		KernelRelease:   utsField(uts.Release[:]),
		KernelVersion:   utsField(uts.Version[:]),
		Machine:         utsField(uts.Machine[:]),
		OperatingSystem: operatingSystem(),
	}, nil
}

// utsField trims a NUL-terminated utsname field.
func utsField(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b)
}
