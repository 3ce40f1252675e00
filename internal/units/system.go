// Package units manages the generated service/timer unit file pair under the
// user's systemd configuration directory.
package units

import (
	"os"
	"os/exec"

	homedir "github.com/mitchellh/go-homedir"

	"github.com/gwpl/dailyrun/internal/fsutil"
)

// System abstracts the filesystem, environment, and process operations the
// unit file manager needs. This interface is package-local so every operation
// is testable with an injected fake instead of the real home directory.
type System interface {
	UserHomeDir() (string, error)
	Executable() (string, error)
	Getenv(key string) string
	LookPath(file string) (string, error)
	Stat(name string) (os.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	MkdirAll(path string, perm os.FileMode) error
	WriteFileAtomic(filename string, data []byte, perm os.FileMode) error
	Remove(name string) error
	RunCommand(name string, args ...string) error
}

// RealSystem implements System using the OS.
type RealSystem struct{}

// UserHomeDir returns the current user's home directory.
func (RealSystem) UserHomeDir() (string, error) {
	return homedir.Dir()
}

// Executable returns the absolute path of the running binary.
func (RealSystem) Executable() (string, error) {
	return os.Executable()
}

// Getenv returns the value of the environment variable named by key.
func (RealSystem) Getenv(key string) string {
	return os.Getenv(key)
}

// LookPath searches for an executable in the directories named by PATH.
func (RealSystem) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// Stat returns a FileInfo describing the named file.
func (RealSystem) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

// ReadFile reads the named file and returns the contents.
func (RealSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// MkdirAll creates a directory named path, along with any necessary parents.
func (RealSystem) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// WriteFileAtomic writes data to a file atomically via temp file and rename.
func (RealSystem) WriteFileAtomic(filename string, data []byte, perm os.FileMode) error {
	return fsutil.WriteFileAtomic(filename, data, perm)
}

// Remove removes the named file.
func (RealSystem) Remove(name string) error {
	return os.Remove(name)
}

// RunCommand runs the named program attached to the invoking terminal and
// waits for it to finish.
func (RealSystem) RunCommand(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
