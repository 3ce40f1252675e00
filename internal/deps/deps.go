// Package deps checks for the external programs dailyrun delegates to and
// suggests per-distribution install commands for any that are missing.
package deps

import (
	"fmt"
	"io"
	"os/exec"

	"github.com/fatih/color"
	"github.com/rs/zerolog"

	"github.com/gwpl/dailyrun/internal/messages"
	"github.com/gwpl/dailyrun/internal/osfamily"
)

// Required lists the programs the tool shells out to. systemctl drives the
// timer lifecycle, bash is the script interpreter fallback, nano the editor
// fallback.
var Required = []string{"systemctl", "bash", "nano"}

// Package-manager command prefixes per OS family.
const (
	archInstallPrefix    = "sudo pacman -S"
	ubuntuInstallPrefix  = "sudo apt-get install"
	unknownInstallPrefix = "<your_package_manager_install_command>"
)

// System abstracts PATH lookup and the release-file read used by Suggest's
// auto detection.
type System interface {
	osfamily.System
	LookPath(file string) (string, error)
}

// RealSystem implements System using exec.LookPath and the OS filesystem.
type RealSystem struct {
	osfamily.RealSystem
}

// LookPath searches for an executable in the directories named by PATH.
func (RealSystem) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// Check prints a found/missing line for each required program.
func Check(sys System, out io.Writer, log zerolog.Logger) {
	for _, name := range Required {
		path, err := sys.LookPath(name)
		if err != nil {
			_, _ = fmt.Fprintf(out, messages.DepsMissingFmt, color.RedString("[MISS]"), name)
			continue
		}
		_, _ = fmt.Fprintf(out, messages.DepsFoundFmt, color.GreenString("[OK]"), name, path)
	}
	log.Debug().Msg("dependency check finished")
}

// Suggest prints one install command per missing required program, prefixed
// by the detected OS family's package manager. Detection is always automatic
// here: an --os override does not apply to install suggestions.
func Suggest(sys System, out io.Writer, log zerolog.Logger) {
	var missing []string
	for _, name := range Required {
		if _, err := sys.LookPath(name); err != nil {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		_, _ = fmt.Fprintln(out, messages.DepsAllInstalled)
		return
	}

	prefix := unknownInstallPrefix
	switch osfamily.Detect(sys, osfamily.Auto) {
	case osfamily.Arch:
		prefix = archInstallPrefix
	case osfamily.Ubuntu:
		prefix = ubuntuInstallPrefix
	}

	_, _ = fmt.Fprintln(out, messages.DepsSuggestHeader)
	for _, name := range missing {
		_, _ = fmt.Fprintf(out, messages.DepsSuggestFmt, prefix, name)
	}
	log.Debug().Msg("install suggestion generation completed")
}
