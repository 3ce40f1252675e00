package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gwpl/dailyrun/internal/config"
	"github.com/gwpl/dailyrun/internal/deps"
	"github.com/gwpl/dailyrun/internal/osfamily"
	"github.com/gwpl/dailyrun/internal/runner"
	"github.com/gwpl/dailyrun/internal/sysdctl"
	"github.com/gwpl/dailyrun/internal/units"
)

type fakeUnitsSystem struct {
	units.RealSystem
	home string
	exe  string
	env  map[string]string
}

func (s *fakeUnitsSystem) UserHomeDir() (string, error) { return s.home, nil }
func (s *fakeUnitsSystem) Executable() (string, error)  { return s.exe, nil }
func (s *fakeUnitsSystem) Getenv(key string) string     { return s.env[key] }
func (s *fakeUnitsSystem) LookPath(file string) (string, error) {
	return "", errors.New("not found")
}

type fakeConfigSystem struct {
	home string
}

func (s *fakeConfigSystem) UserHomeDir() (string, error) { return s.home, nil }
func (s *fakeConfigSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

type fakeDepsSystem struct {
	paths map[string]string
}

func (s *fakeDepsSystem) LookPath(file string) (string, error) {
	if path, ok := s.paths[file]; ok {
		return path, nil
	}
	return "", errors.New("not found")
}
func (s *fakeDepsSystem) ReadFile(name string) ([]byte, error) {
	return nil, os.ErrNotExist
}

type fakeOSFamilySystem struct{}

func (fakeOSFamilySystem) ReadFile(name string) ([]byte, error) {
	return nil, os.ErrNotExist
}

type recordingRunnerSystem struct {
	runner.RealSystem
	calls [][]string
}

func (s *recordingRunnerSystem) RunCommand(name string, args ...string) error {
	s.calls = append(s.calls, append([]string{name}, args...))
	return nil
}

type recordingSysdctlSystem struct {
	calls [][]string
}

func (s *recordingSysdctlSystem) RunCommand(name string, args ...string) error {
	s.calls = append(s.calls, append([]string{name}, args...))
	return nil
}

type cmdFakes struct {
	home    string
	units   *fakeUnitsSystem
	runner  *recordingRunnerSystem
	sysdctl *recordingSysdctlSystem
	deps    *fakeDepsSystem
}

func setupFakes(t *testing.T) *cmdFakes {
	t.Helper()
	home := t.TempDir()
	fakes := &cmdFakes{
		home:    home,
		units:   &fakeUnitsSystem{home: home, exe: "/usr/local/bin/dailyrun", env: map[string]string{}},
		runner:  &recordingRunnerSystem{},
		sysdctl: &recordingSysdctlSystem{},
		deps: &fakeDepsSystem{paths: map[string]string{
			"systemctl": "/usr/bin/systemctl",
			"bash":      "/bin/bash",
		}},
	}

	prevUnits, prevRunner, prevSysdctl, prevDeps := unitsSystem, runnerSystem, sysdctlSystem, depsSystem
	prevConfig, prevOSFamily := configSystem, osfamilySystem
	unitsSystem = fakes.units
	runnerSystem = fakes.runner
	sysdctlSystem = fakes.sysdctl
	depsSystem = fakes.deps
	configSystem = &fakeConfigSystem{home: home}
	osfamilySystem = fakeOSFamilySystem{}
	t.Cleanup(func() {
		unitsSystem, runnerSystem, sysdctlSystem, depsSystem = prevUnits, prevRunner, prevSysdctl, prevDeps
		configSystem, osfamilySystem = prevConfig, prevOSFamily
	})
	return fakes
}

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errBuf bytes.Buffer
	err := execute(append([]string{"dailyrun"}, args...), &out, &errBuf)
	return out.String(), errBuf.String(), err
}

func unitPaths(t *testing.T, fakes *cmdFakes) (string, string) {
	t.Helper()
	servicePath, timerPath, err := units.Paths(fakes.units)
	require.NoError(t, err)
	return servicePath, timerPath
}

func TestRoot_ConfigsPaths(t *testing.T) {
	fakes := setupFakes(t)

	stdout, _, err := runCLI(t, "--configs", "paths")
	require.NoError(t, err)

	servicePath, timerPath := unitPaths(t, fakes)
	assert.Equal(t, servicePath+"\n"+timerPath+"\n", stdout)
}

func TestRoot_ConfigsCreate(t *testing.T) {
	fakes := setupFakes(t)

	stdout, _, err := runCLI(t,
		"--configs", "create",
		"--run-arg", "/tmp/x",
		"--OnCalendar", "09:00:00",
		"--Persistent", "false",
	)
	require.NoError(t, err)

	servicePath, timerPath := unitPaths(t, fakes)
	assert.Contains(t, stdout, "Created service file: "+servicePath)

	timer, err := os.ReadFile(timerPath)
	require.NoError(t, err)
	assert.Contains(t, string(timer), "OnCalendar=09:00:00\n")
	assert.Contains(t, string(timer), "Persistent=false\n")

	service, err := os.ReadFile(servicePath)
	require.NoError(t, err)
	assert.Contains(t, string(service), `--run "/tmp/x"`)
}

func TestRoot_ConfigsCreateWithoutRunArg(t *testing.T) {
	fakes := setupFakes(t)

	stdout, _, err := runCLI(t, "--configs", "create")
	require.Error(t, err)
	var silent *SilentExitError
	require.ErrorAs(t, err, &silent)
	assert.Equal(t, 1, silent.Code)
	assert.Contains(t, stdout, "Error: --configs create requires --run-arg")

	servicePath, _ := unitPaths(t, fakes)
	assert.NoFileExists(t, servicePath)
}

func TestRoot_ConfigsDefaultsFromFile(t *testing.T) {
	fakes := setupFakes(t)
	cfgDir := filepath.Join(fakes.home, ".config", "dailyrun")
	require.NoError(t, os.MkdirAll(cfgDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(cfgDir, "config.toml"),
		[]byte("on_calendar = \"07:15:00\"\npersistent = \"false\"\n"), 0o644))

	_, _, err := runCLI(t, "--configs", "create", "--run-arg", "x")
	require.NoError(t, err)

	_, timerPath := unitPaths(t, fakes)
	timer, err := os.ReadFile(timerPath)
	require.NoError(t, err)
	assert.Contains(t, string(timer), "OnCalendar=07:15:00\n")
	assert.Contains(t, string(timer), "Persistent=false\n")
}

func TestRoot_FlagBeatsDefaultsFile(t *testing.T) {
	fakes := setupFakes(t)
	cfgDir := filepath.Join(fakes.home, ".config", "dailyrun")
	require.NoError(t, os.MkdirAll(cfgDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(cfgDir, "config.toml"),
		[]byte("on_calendar = \"07:15:00\"\n"), 0o644))

	_, _, err := runCLI(t, "--configs", "create", "--run-arg", "x", "--OnCalendar", "22:00:00")
	require.NoError(t, err)

	_, timerPath := unitPaths(t, fakes)
	timer, err := os.ReadFile(timerPath)
	require.NoError(t, err)
	assert.Contains(t, string(timer), "OnCalendar=22:00:00\n")
}

func TestRoot_RunAndDryRunAreMutuallyExclusive(t *testing.T) {
	setupFakes(t)
	_, _, err := runCLI(t, "--run", "a", "--dry-run", "b")
	require.Error(t, err)
}

func TestRoot_LifecycleIntentsAreMutuallyExclusive(t *testing.T) {
	setupFakes(t)
	_, _, err := runCLI(t, "--status", "--logs")
	require.Error(t, err)
}

func TestRoot_DependenciesCheck(t *testing.T) {
	setupFakes(t)

	stdout, _, err := runCLI(t, "--dependencies", "check")
	require.NoError(t, err)
	assert.Contains(t, stdout, "systemctl found at /usr/bin/systemctl")
	assert.Contains(t, stdout, "nano NOT found")
}

func TestRoot_DependenciesTakePriorityOverConfigs(t *testing.T) {
	setupFakes(t)

	stdout, _, err := runCLI(t, "--dependencies", "check", "--configs", "paths")
	require.NoError(t, err)
	assert.Contains(t, stdout, "systemctl found at")
	assert.NotContains(t, stdout, "daily_by_hostname.service")
}

func TestRoot_ConfigsTakePriorityOverIntents(t *testing.T) {
	fakes := setupFakes(t)

	stdout, _, err := runCLI(t, "--configs", "paths", "--status")
	require.NoError(t, err)
	assert.Contains(t, stdout, "daily_by_hostname.service")
	assert.Empty(t, fakes.sysdctl.calls)
}

func TestRoot_InstallTimerAdvisory(t *testing.T) {
	setupFakes(t)

	stdout, _, err := runCLI(t, "--install-systemd-timer", "daily")
	require.NoError(t, err)
	assert.Contains(t, stdout, "You requested to install a systemd timer: daily")
	assert.Contains(t, stdout, "--configs create, then enable and start")
}

func TestRoot_StatusIntent(t *testing.T) {
	fakes := setupFakes(t)

	stdout, _, err := runCLI(t, "--status")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Running: systemctl --user status daily_by_hostname.timer")
	require.Len(t, fakes.sysdctl.calls, 1)
}

func TestRoot_DryRunOpaqueCommand(t *testing.T) {
	fakes := setupFakes(t)

	stdout, _, err := runCLI(t, "-n", "echo hello")
	require.NoError(t, err)
	assert.Equal(t, "[DRYRUN] Would run command: echo hello\n", stdout)
	assert.Empty(t, fakes.runner.calls)
}

func TestRoot_RunOpaqueCommand(t *testing.T) {
	fakes := setupFakes(t)

	stdout, _, err := runCLI(t, "-f", "echo hello")
	require.NoError(t, err)
	assert.Empty(t, stdout)
	require.Len(t, fakes.runner.calls, 1)
	assert.Equal(t, []string{"sh", "-c", "echo hello"}, fakes.runner.calls[0])
}

func TestRoot_NoArgumentsIsNoOp(t *testing.T) {
	fakes := setupFakes(t)

	stdout, _, err := runCLI(t)
	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.Empty(t, fakes.runner.calls)
	assert.Empty(t, fakes.sysdctl.calls)
}

func TestRoot_VerboseNoOpNotice(t *testing.T) {
	setupFakes(t)

	_, stderr, err := runCLI(t, "--verbose")
	require.NoError(t, err)
	assert.Contains(t, stderr, "no run or dry-run argument provided")
}

func TestRoot_InvalidChoices(t *testing.T) {
	setupFakes(t)

	tests := []struct {
		name string
		args []string
	}{
		{"os", []string{"--os", "gentoo"}},
		{"dependencies", []string{"--dependencies", "audit"}},
		{"configs", []string{"--configs", "rename"}},
		{"install timer", []string{"--install-systemd-timer", "weekly"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := runCLI(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid value")
		})
	}
}

func TestRoot_PersistentIsNotValidated(t *testing.T) {
	fakes := setupFakes(t)

	_, _, err := runCLI(t, "--configs", "create", "--run-arg", "x", "--Persistent", "sometimes")
	require.NoError(t, err)

	_, timerPath := unitPaths(t, fakes)
	timer, err := os.ReadFile(timerPath)
	require.NoError(t, err)
	assert.Contains(t, string(timer), "Persistent=true\n")
}

func TestRoot_EditTimerMissingFile(t *testing.T) {
	fakes := setupFakes(t)

	stdout, _, err := runCLI(t, "--configs", "edit-timer")
	require.NoError(t, err)
	_, timerPath := unitPaths(t, fakes)
	assert.Equal(t, fmt.Sprintf("Timer file not found: %s\n", timerPath), stdout)
}

func TestRoot_ConfigsDelete(t *testing.T) {
	fakes := setupFakes(t)
	_, _, err := runCLI(t, "--configs", "create", "--run-arg", "x")
	require.NoError(t, err)

	stdout, _, err := runCLI(t, "--configs", "delete")
	require.NoError(t, err)
	servicePath, timerPath := unitPaths(t, fakes)
	assert.Contains(t, stdout, "Deleted service file: "+servicePath)
	assert.Contains(t, stdout, "Deleted timer file: "+timerPath)
}

// Compile-time checks that the real seams satisfy their interfaces.
var (
	_ units.System    = units.RealSystem{}
	_ runner.System   = runner.RealSystem{}
	_ deps.System     = deps.RealSystem{}
	_ sysdctl.System  = sysdctl.RealSystem{}
	_ config.System   = config.RealSystem{}
	_ osfamily.System = osfamily.RealSystem{}
)
