package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/gwpl/dailyrun/internal/config"
	"github.com/gwpl/dailyrun/internal/deps"
	"github.com/gwpl/dailyrun/internal/logging"
	"github.com/gwpl/dailyrun/internal/messages"
	"github.com/gwpl/dailyrun/internal/osfamily"
	"github.com/gwpl/dailyrun/internal/runner"
	"github.com/gwpl/dailyrun/internal/sysdctl"
	"github.com/gwpl/dailyrun/internal/units"
)

// Package-level system seams so tests can substitute fakes per handler.
var (
	osfamilySystem osfamily.System = osfamily.RealSystem{}
	runnerSystem   runner.System   = runner.RealSystem{}
	depsSystem     deps.System     = deps.RealSystem{}
	unitsSystem    units.System    = units.RealSystem{}
	sysdctlSystem  sysdctl.System  = sysdctl.RealSystem{}
	configSystem   config.System   = config.RealSystem{}
)

// options is the parsed flag set for one invocation.
type options struct {
	osSelection  string
	runTarget    string
	dryRunTarget string
	verbose      bool
	dependencies string
	configs      string
	runArg       string
	installTimer string
	persistent   string
	onCalendar   string
	description  string

	status         bool
	enableAndStart bool
	disableAndStop bool
	logs           bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		Long:          messages.RootLong,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.osSelection, "os", osfamily.Auto, messages.FlagOS)
	flags.StringVarP(&opts.runTarget, "run", "f", "", messages.FlagRun)
	flags.StringVarP(&opts.dryRunTarget, "dry-run", "n", "", messages.FlagDryRun)
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, messages.FlagVerbose)
	flags.StringVar(&opts.dependencies, "dependencies", "", messages.FlagDependencies)
	flags.StringVar(&opts.configs, "configs", "", messages.FlagConfigs)
	flags.StringVar(&opts.runArg, "run-arg", "", messages.FlagRunArg)
	flags.StringVar(&opts.installTimer, "install-systemd-timer", "", messages.FlagInstallTimer)
	flags.StringVar(&opts.persistent, "Persistent", "", messages.FlagPersistent)
	flags.StringVar(&opts.onCalendar, "OnCalendar", "", messages.FlagOnCalendar)
	flags.StringVar(&opts.description, "Description", "", messages.FlagDescription)
	flags.BoolVar(&opts.status, "status", false, messages.FlagStatus)
	flags.BoolVar(&opts.enableAndStart, "enable_and_start", false, messages.FlagEnableStart)
	flags.BoolVar(&opts.disableAndStop, "disable_and_stop", false, messages.FlagDisableStop)
	flags.BoolVar(&opts.logs, "logs", false, messages.FlagLogs)

	// Stricter than the original dispatch-order behavior: conflicting targets
	// and conflicting lifecycle intents are rejected at parse time instead of
	// silently prioritized.
	cmd.MarkFlagsMutuallyExclusive("run", "dry-run")
	cmd.MarkFlagsMutuallyExclusive("status", "enable_and_start", "disable_and_stop", "logs")

	return cmd
}

// runRoot dispatches exactly one handler per invocation. Branch priority:
// dependencies, configs, install-systemd-timer, lifecycle intents, run or
// dry-run, then a no-op.
func runRoot(cmd *cobra.Command, opts *options) error {
	out := cmd.OutOrStdout()
	log := logging.New(cmd.ErrOrStderr(), opts.verbose)

	if err := validateChoices(opts); err != nil {
		return err
	}
	defaults := config.Load(configSystem, log)

	family := osfamily.Detect(osfamilySystem, opts.osSelection)
	log.Debug().Str("family", string(family)).Msg("detected/selected OS")

	switch opts.dependencies {
	case "check":
		deps.Check(depsSystem, out, log)
		return nil
	case "script":
		deps.Suggest(depsSystem, out, log)
		return nil
	}

	if opts.configs != "" {
		return runConfigs(out, opts, defaults)
	}

	if opts.installTimer != "" {
		_, _ = fmt.Fprintf(out, messages.InstallTimerRequestedFmt, opts.installTimer)
		_, _ = fmt.Fprintln(out, messages.InstallTimerRecommend)
		return nil
	}

	if intent := selectedIntent(opts); intent != sysdctl.IntentNone {
		sysdctl.Run(sysdctlSystem, out, intent)
		return nil
	}

	if opts.runTarget != "" {
		runner.Run(runnerSystem, out, log, opts.runTarget, false)
		return nil
	}
	if opts.dryRunTarget != "" {
		runner.Run(runnerSystem, out, log, opts.dryRunTarget, true)
		return nil
	}

	log.Debug().Msg("no run or dry-run argument provided; doing nothing")
	return nil
}

// runConfigs handles the --configs modes against the unit file pair.
func runConfigs(out io.Writer, opts *options, defaults config.Defaults) error {
	switch opts.configs {
	case "create":
		createOpts := units.CreateOptions{
			RunArg:      opts.runArg,
			OnCalendar:  firstNonEmpty(opts.onCalendar, defaults.OnCalendar),
			Persistent:  firstNonEmpty(opts.persistent, defaults.Persistent),
			Description: firstNonEmpty(opts.description, defaults.Description),
		}
		if err := units.Create(unitsSystem, out, createOpts); err != nil {
			if errors.Is(err, units.ErrRunArgRequired) {
				_, _ = fmt.Fprintln(out, messages.UnitsRunArgRequired)
				return &SilentExitError{Code: 1}
			}
			return err
		}
		return nil
	case "paths":
		return units.PrintPaths(unitsSystem, out)
	case "edit-timer":
		return units.Edit(unitsSystem, out, units.TargetTimer, defaults.Editor)
	case "edit-service":
		return units.Edit(unitsSystem, out, units.TargetService, defaults.Editor)
	case "delete":
		return units.Delete(unitsSystem, out)
	default:
		return fmt.Errorf(messages.FlagInvalidValueFmt, opts.configs, "configs", "create|paths|edit-timer|edit-service|delete")
	}
}

// validateChoices rejects values outside the documented enumerations. The
// --Persistent flag is deliberately not validated here: anything that is not
// a boolean literal is coerced to true at render time.
func validateChoices(opts *options) error {
	if opts.osSelection != osfamily.Auto &&
		opts.osSelection != string(osfamily.Arch) &&
		opts.osSelection != string(osfamily.Ubuntu) {
		return fmt.Errorf(messages.FlagInvalidValueFmt, opts.osSelection, "os", "auto|arch|ubuntu")
	}
	if opts.dependencies != "" && opts.dependencies != "check" && opts.dependencies != "script" {
		return fmt.Errorf(messages.FlagInvalidValueFmt, opts.dependencies, "dependencies", "check|script")
	}
	if opts.installTimer != "" && opts.installTimer != "daily" && opts.installTimer != "hourly" {
		return fmt.Errorf(messages.FlagInvalidValueFmt, opts.installTimer, "install-systemd-timer", "daily|hourly")
	}
	return nil
}

func selectedIntent(opts *options) sysdctl.Intent {
	switch {
	case opts.status:
		return sysdctl.IntentStatus
	case opts.enableAndStart:
		return sysdctl.IntentEnableAndStart
	case opts.disableAndStop:
		return sysdctl.IntentDisableAndStop
	case opts.logs:
		return sysdctl.IntentLogs
	default:
		return sysdctl.IntentNone
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
