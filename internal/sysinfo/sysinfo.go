// Package sysinfo provides the system and identity facts printed by the
// uname and whoami subcommands: kernel fields from utsname where the OS has
// them, with a portable runtime-based fallback elsewhere.
package sysinfo

import (
	"fmt"
	"os"
	"os/user"
	"runtime"
)

// UnameInfo holds the fields reported by uname.
type UnameInfo struct {
	KernelName      string
	NodeName        string
	KernelRelease   string
	KernelVersion   string
	Machine         string
	OperatingSystem string
}

// Identity describes the effective user running the process.
type Identity struct {
	Username string
	UID      int
	EUID     int
	GID      int
	EGID     int
}

// CurrentIdentity looks up the effective user of the current process.
func CurrentIdentity() (Identity, error) {
	u, err := user.Current()
	if err != nil {
		return Identity{}, fmt.Errorf("failed to determine current user: %w", err)
	}
	return Identity{
		Username: u.Username,
		UID:      os.Getuid(),
		EUID:     os.Geteuid(),
		GID:      os.Getgid(),
		EGID:     os.Getegid(),
	}, nil
}

// operatingSystem maps the runtime OS to the name uname -o reports.
func operatingSystem() string {
	switch runtime.GOOS {
	case "linux":
		return "GNU/Linux"
	case "darwin":
		return "Darwin"
	default:
		return runtime.GOOS
	}
}
