// Package osfamily classifies the host Linux distribution into one of the
// two package-manager ecosystems this tool knows how to advise on.
package osfamily

import (
	"os"
	"strings"
)

// Family is the coarse distribution classification.
type Family string

const (
	Arch    Family = "arch"
	Ubuntu  Family = "ubuntu"
	Unknown Family = "unknown"
)

// Auto requests detection from the release file instead of a fixed family.
const Auto = "auto"

// ReleaseFile is the system identification file consulted by auto detection.
const ReleaseFile = "/etc/os-release"

// System abstracts the filesystem access needed by detection.
// This interface is package-local so tests can inject release file content
// without touching the real /etc/os-release.
type System interface {
	ReadFile(name string) ([]byte, error)
}

// RealSystem implements System using the OS filesystem.
type RealSystem struct{}

// ReadFile reads the named file and returns the contents.
func (RealSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// Detect resolves the OS family for the given selection. An explicit "arch"
// or "ubuntu" selection is returned unchanged without filesystem access.
// Anything else triggers auto detection: the release file is searched
// case-insensitively for the Arch marker first, then the Ubuntu marker.
// A missing or unreadable release file maps to Unknown, never an error.
func Detect(sys System, selection string) Family {
	switch Family(selection) {
	case Arch, Ubuntu:
		return Family(selection)
	}
	data, err := sys.ReadFile(ReleaseFile)
	if err != nil {
		return Unknown
	}
	content := strings.ToLower(string(data))
	switch {
	case strings.Contains(content, "arch linux"):
		return Arch
	case strings.Contains(content, "ubuntu"):
		return Ubuntu
	default:
		return Unknown
	}
}
