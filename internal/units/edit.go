package units

import (
	"fmt"
	"io"

	"github.com/gwpl/dailyrun/internal/messages"
)

// Target selects which of the pair an edit operates on.
type Target string

const (
	TargetService Target = "service"
	TargetTimer   Target = "timer"
)

// editorFallbacks is tried in order when $EDITOR and the configured editor
// are both unset.
var editorFallbacks = []string{"nano", "vi"}

// Edit opens the selected unit file in the user's editor. A missing file or
// an unresolvable editor prints a message and returns nil: neither condition
// is an error. The editor's own exit status is ignored.
func Edit(sys System, out io.Writer, target Target, preferredEditor string) error {
	servicePath, timerPath, err := Paths(sys)
	if err != nil {
		return err
	}

	path := servicePath
	notFoundFmt := messages.UnitsServiceNotFoundFmt
	if target == TargetTimer {
		path = timerPath
		notFoundFmt = messages.UnitsTimerNotFoundFmt
	}

	if _, err := sys.Stat(path); err != nil {
		_, _ = fmt.Fprintf(out, notFoundFmt, path)
		return nil
	}

	editor := resolveEditor(sys, preferredEditor)
	if editor == "" {
		_, _ = fmt.Fprintln(out, messages.UnitsNoEditor)
		return nil
	}
	_ = sys.RunCommand(editor, path)
	return nil
}

// resolveEditor picks $EDITOR, then the configured preference, then the
// first fallback present on PATH. Empty means no editor could be resolved.
func resolveEditor(sys System, preferred string) string {
	if editor := sys.Getenv("EDITOR"); editor != "" {
		return editor
	}
	if preferred != "" {
		return preferred
	}
	for _, candidate := range editorFallbacks {
		if _, err := sys.LookPath(candidate); err == nil {
			return candidate
		}
	}
	return ""
}
