package units

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	udiff "github.com/aymanbagabas/go-udiff"
	sdunit "github.com/coreos/go-systemd/v22/unit"

	"github.com/gwpl/dailyrun/internal/messages"
)

// Built-in defaults for the timer schedule and persistence.
const (
	DefaultOnCalendar = "*-*-* 14:00:00"
	defaultPersistent = "true"

	// diffMaxLines caps the overwrite preview so a heavily hand-edited unit
	// file does not flood the terminal.
	diffMaxLines = 40
)

// ErrRunArgRequired is returned by Create when no run argument was supplied.
// It is the only input validation that aborts the tool with a non-zero exit.
var ErrRunArgRequired = errors.New(messages.UnitsRunArgRequired)

// CreateOptions parameterizes unit file generation. Empty fields fall back
// to the built-in defaults above.
type CreateOptions struct {
	RunArg      string
	OnCalendar  string
	Persistent  string
	Description string
}

// Create renders and writes the service/timer pair, overwriting both files
// unconditionally. The service invokes this same binary with --run and the
// quoted run argument. Both writes happen in one invocation (service first),
// so whenever both files exist they reference the same target and schedule.
func Create(sys System, out io.Writer, opts CreateOptions) error {
	if strings.TrimSpace(opts.RunArg) == "" {
		return ErrRunArgRequired
	}

	servicePath, timerPath, err := Paths(sys)
	if err != nil {
		return err
	}
	exePath, err := sys.Executable()
	if err != nil {
		return fmt.Errorf("resolve tool path: %w", err)
	}

	description := opts.Description
	if description == "" {
		description = fmt.Sprintf("Daily User Run of %s", exePath)
	}
	onCalendar := opts.OnCalendar
	if onCalendar == "" {
		onCalendar = DefaultOnCalendar
	}

	serviceContent := renderService(description, exePath, opts.RunArg)
	timerContent := renderTimer(description, onCalendar, normalizePersistent(opts.Persistent))

	if err := sys.MkdirAll(filepath.Dir(servicePath), 0o755); err != nil {
		return fmt.Errorf("create unit directory: %w", err)
	}
	if err := writeUnitFile(sys, out, servicePath, serviceContent); err != nil {
		return err
	}
	if err := writeUnitFile(sys, out, timerPath, timerContent); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(out, messages.UnitsCreatedServiceFmt, servicePath)
	_, _ = fmt.Fprintf(out, messages.UnitsCreatedTimerFmt, timerPath)
	_, _ = fmt.Fprintln(out, messages.UnitsEnableHint)
	_, _ = fmt.Fprintf(out, messages.UnitsEnableHintFmt, TimerUnit)
	_, _ = fmt.Fprintf(out, messages.UnitsStartHintFmt, TimerUnit)
	return nil
}

// renderService builds the oneshot service unit. The run argument is wrapped
// in double quotes verbatim, with no escaping: the same untrusted-passthrough
// contract as --run itself.
func renderService(description string, exePath string, runArg string) []byte {
	opts := []*sdunit.UnitOption{
		sdunit.NewUnitOption("Unit", "Description", description),
		sdunit.NewUnitOption("Unit", "After", "network.target"),
		sdunit.NewUnitOption("Service", "Type", "oneshot"),
		sdunit.NewUnitOption("Service", "ExecStart", fmt.Sprintf("%s --run \"%s\"", exePath, runArg)),
	}
	return serializeUnit(opts)
}

// renderTimer builds the timer unit wanting the default systemd user target.
func renderTimer(description string, onCalendar string, persistent string) []byte {
	opts := []*sdunit.UnitOption{
		sdunit.NewUnitOption("Unit", "Description", "Timer for: "+description),
		sdunit.NewUnitOption("Timer", "OnCalendar", onCalendar),
		sdunit.NewUnitOption("Timer", "Persistent", persistent),
		sdunit.NewUnitOption("Install", "WantedBy", "default.target"),
	}
	return serializeUnit(opts)
}

func serializeUnit(opts []*sdunit.UnitOption) []byte {
	data, err := io.ReadAll(sdunit.Serialize(opts))
	if err != nil {
		// Serialize reads from an in-memory buffer; this cannot fail.
		panic(err)
	}
	if !bytes.HasSuffix(data, []byte("\n")) {
		data = append(data, '\n')
	}
	return data
}

// normalizePersistent coerces anything that is not a literal "true"/"false"
// to "true", matching the documented Persistent default.
func normalizePersistent(value string) string {
	switch value {
	case "true", "false":
		return value
	default:
		return defaultPersistent
	}
}

// writeUnitFile overwrites path with content. When an existing file differs,
// a truncated unified diff of the replacement is shown first; the overwrite
// itself is always unconditional.
func writeUnitFile(sys System, out io.Writer, path string, content []byte) error {
	if existing, err := sys.ReadFile(path); err == nil && !bytes.Equal(existing, content) {
		_, _ = fmt.Fprintf(out, messages.UnitsReplacingFmt, path)
		printTruncatedDiff(out, path, string(existing), string(content))
	}
	if err := sys.WriteFileAtomic(path, content, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func printTruncatedDiff(out io.Writer, path string, from string, to string) {
	diff := strings.TrimSpace(udiff.Unified(path, path+" (new)", from, to))
	if diff == "" {
		return
	}
	lines := strings.Split(diff, "\n")
	if len(lines) > diffMaxLines {
		hidden := len(lines) - diffMaxLines
		lines = lines[:diffMaxLines]
		_, _ = fmt.Fprintln(out, strings.Join(lines, "\n"))
		_, _ = fmt.Fprintf(out, messages.UnitsDiffTruncatedFmt, hidden)
		return
	}
	_, _ = fmt.Fprintln(out, strings.Join(lines, "\n"))
}
