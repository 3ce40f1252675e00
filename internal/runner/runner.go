// Package runner classifies a run target and executes it: a directory of
// scripts, a single script, or an opaque shell command line.
package runner

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/gwpl/dailyrun/internal/messages"
)

// System abstracts the filesystem and process operations the runner needs.
// Tests substitute a recording implementation so no real process is spawned.
type System interface {
	Stat(name string) (os.FileInfo, error)
	ReadDir(name string) ([]os.DirEntry, error)
	RunCommand(name string, args ...string) error
}

// RealSystem implements System using the OS and os/exec.
type RealSystem struct{}

// Stat returns a FileInfo describing the named file.
func (RealSystem) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

// ReadDir reads the named directory, returning its entries sorted by name.
func (RealSystem) ReadDir(name string) ([]os.DirEntry, error) {
	return os.ReadDir(name)
}

// RunCommand runs the named program with the invoking terminal's stdio and
// waits for it to finish.
func (RealSystem) RunCommand(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// IsExecutable reports whether path is a regular file with the owner-execute
// permission bit set. Directories and missing paths are never executable.
func IsExecutable(sys System, path string) bool {
	info, err := sys.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}
	return info.Mode().Perm()&0o100 != 0
}

// Run classifies target and either executes it or, in dry-run, prints the
// intended action to out. Exit statuses of spawned processes are not
// inspected; a failed spawn never fails the invocation.
func Run(sys System, out io.Writer, log zerolog.Logger, target string, dryRun bool) {
	info, err := sys.Stat(target)
	switch {
	case err == nil && info.IsDir():
		runDirectory(sys, out, log, target, dryRun)
	case err == nil && info.Mode().IsRegular():
		runFile(sys, out, log, target, dryRun)
	default:
		runShellCommand(sys, out, target, dryRun)
	}
}

// runDirectory runs every executable regular file directly under dir, in
// lexicographic order. Each entry is fire-and-forget: a spawn failure is
// tolerated and the loop continues with the next entry.
func runDirectory(sys System, out io.Writer, log zerolog.Logger, dir string, dryRun bool) {
	entries, err := sys.ReadDir(dir)
	if err != nil {
		log.Debug().Str("dir", dir).Err(err).Msg("cannot list directory")
		return
	}
	for _, entry := range entries {
		full := filepath.Join(dir, entry.Name())
		if !IsExecutable(sys, full) {
			continue
		}
		log.Debug().Str("path", full).Msg("found executable script")
		if dryRun {
			_, _ = fmt.Fprintf(out, messages.RunDryRunDirEntryFmt, full)
			continue
		}
		_, _ = fmt.Fprintf(out, messages.RunDirEntryFmt, full)
		if err := sys.RunCommand(full); err != nil {
			log.Debug().Str("path", full).Err(err).Msg("script failed")
		}
	}
}

// runFile runs a single regular file: directly when executable, otherwise
// through bash as an explicit interpreter fallback.
func runFile(sys System, out io.Writer, log zerolog.Logger, path string, dryRun bool) {
	if IsExecutable(sys, path) {
		if dryRun {
			_, _ = fmt.Fprintf(out, messages.RunDryRunFileFmt, path)
			return
		}
		_, _ = fmt.Fprintf(out, messages.RunFileFmt, path)
		_ = sys.RunCommand(path)
		return
	}
	log.Debug().Str("path", path).Msg("file is probably not executable; attempting to run in shell")
	if dryRun {
		_, _ = fmt.Fprintf(out, messages.RunDryRunShellFileFmt, path)
		return
	}
	_ = sys.RunCommand("bash", path)
}

// runShellCommand treats target as an opaque command line and hands it to the
// shell verbatim. This is an untrusted passthrough: the string is interpolated
// into `sh -c` with no escaping, exactly as the user supplied it.
func runShellCommand(sys System, out io.Writer, target string, dryRun bool) {
	if dryRun {
		_, _ = fmt.Fprintf(out, messages.RunDryRunCommandFmt, target)
		return
	}
	_ = sys.RunCommand("sh", "-c", target)
}
