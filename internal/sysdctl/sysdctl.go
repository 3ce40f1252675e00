// Package sysdctl maps high-level timer lifecycle intents to systemctl and
// journalctl invocations against the generated unit pair.
package sysdctl

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/gwpl/dailyrun/internal/messages"
	"github.com/gwpl/dailyrun/internal/units"
)

// Intent is a single timer lifecycle action. At most one is selected per
// invocation; the dispatcher rejects combinations at parse time.
type Intent int

const (
	IntentNone Intent = iota
	IntentStatus
	IntentEnableAndStart
	IntentDisableAndStop
	IntentLogs
)

// System abstracts process delegation for the control bridge.
type System interface {
	RunCommand(name string, args ...string) error
}

// RealSystem implements System using os/exec with inherited stdio.
type RealSystem struct{}

// RunCommand runs the named program attached to the invoking terminal and
// waits for it to finish.
func (RealSystem) RunCommand(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// Command returns the fixed control invocation for intent, or nil for
// IntentNone.
func Command(intent Intent) []string {
	switch intent {
	case IntentStatus:
		return []string{"systemctl", "--user", "status", units.TimerUnit}
	case IntentEnableAndStart:
		return []string{"systemctl", "--user", "enable", "--now", units.TimerUnit}
	case IntentDisableAndStop:
		return []string{"systemctl", "--user", "disable", "--now", units.TimerUnit}
	case IntentLogs:
		return []string{"journalctl", "--user-unit", units.ServiceUnit, "--since", "today"}
	default:
		return nil
	}
}

// Run echoes and executes the control command for intent. IntentNone is a
// no-op. The child's exit status does not affect the tool's own.
func Run(sys System, out io.Writer, intent Intent) {
	argv := Command(intent)
	if argv == nil {
		return
	}
	_, _ = fmt.Fprintf(out, messages.SysdctlRunningFmt, strings.Join(argv, " "))
	_ = sys.RunCommand(argv[0], argv[1:]...)
}
