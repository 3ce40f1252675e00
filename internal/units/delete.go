package units

import (
	"fmt"
	"io"

	"github.com/gwpl/dailyrun/internal/messages"
)

// Delete removes whichever of the pair exists, confirming each removal.
// Files that do not exist are silently skipped; deleting nothing is fine.
func Delete(sys System, out io.Writer) error {
	servicePath, timerPath, err := Paths(sys)
	if err != nil {
		return err
	}
	if _, err := sys.Stat(servicePath); err == nil {
		if err := sys.Remove(servicePath); err == nil {
			_, _ = fmt.Fprintf(out, messages.UnitsDeletedServiceFmt, servicePath)
		}
	}
	if _, err := sys.Stat(timerPath); err == nil {
		if err := sys.Remove(timerPath); err == nil {
			_, _ = fmt.Fprintf(out, messages.UnitsDeletedTimerFmt, timerPath)
		}
	}
	return nil
}
