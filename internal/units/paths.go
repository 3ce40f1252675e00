package units

import (
	"fmt"
	"io"
	"path/filepath"
)

// Unit names are fixed: the pair is not derived from the run target, so a
// single service/timer pair exists per user regardless of what it runs.
const (
	unitBase    = "daily_by_hostname"
	ServiceUnit = unitBase + ".service"
	TimerUnit   = unitBase + ".timer"
)

// userUnitDir is the systemd user-instance unit directory relative to $HOME.
var userUnitDir = filepath.Join(".config", "systemd", "user")

// Paths returns the service and timer file paths without touching the
// filesystem.
func Paths(sys System) (servicePath string, timerPath string, err error) {
	home, err := sys.UserHomeDir()
	if err != nil {
		return "", "", fmt.Errorf("resolve home directory: %w", err)
	}
	dir := filepath.Join(home, userUnitDir)
	return filepath.Join(dir, ServiceUnit), filepath.Join(dir, TimerUnit), nil
}

// PrintPaths writes the two unit file paths to out, one per line.
func PrintPaths(sys System, out io.Writer) error {
	servicePath, timerPath, err := Paths(sys)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(out, servicePath)
	_, _ = fmt.Fprintln(out, timerPath)
	return nil
}
