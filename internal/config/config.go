// Package config loads the optional user defaults file. The file is only
// ever read; dailyrun never writes it. Flags always win over file values.
package config

import (
	"os"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"
)

// Defaults holds user-provided fallbacks for flag values. Zero values mean
// "not set" and leave the built-in defaults in effect.
type Defaults struct {
	OnCalendar  string `toml:"on_calendar"`
	Persistent  string `toml:"persistent"`
	Description string `toml:"description"`
	Editor      string `toml:"editor"`
}

// System abstracts the lookups needed to load the defaults file.
type System interface {
	UserHomeDir() (string, error)
	ReadFile(name string) ([]byte, error)
}

// RealSystem implements System using go-homedir and the OS filesystem.
type RealSystem struct{}

// UserHomeDir returns the current user's home directory.
func (RealSystem) UserHomeDir() (string, error) {
	return homedir.Dir()
}

// ReadFile reads the named file and returns the contents.
func (RealSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// Path returns the defaults file location under the user config root.
func Path(sys System) (string, error) {
	home, err := sys.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "dailyrun", "config.toml"), nil
}

// Load reads the defaults file leniently: a missing file yields zero
// Defaults, and a malformed file is logged and also yields zero Defaults.
// Configuration can soften the tool's behavior but never break it.
func Load(sys System, log zerolog.Logger) Defaults {
	var d Defaults
	path, err := Path(sys)
	if err != nil {
		log.Debug().Err(err).Msg("cannot resolve defaults file path")
		return Defaults{}
	}
	data, err := sys.ReadFile(path)
	if err != nil {
		return Defaults{}
	}
	if err := toml.Unmarshal(data, &d); err != nil {
		log.Warn().Str("path", path).Err(err).Msg("ignoring malformed defaults file")
		return Defaults{}
	}
	return d
}
