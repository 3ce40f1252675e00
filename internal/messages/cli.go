package messages

// Root command and flag help text.
const (
	RootUse   = "dailyrun"
	RootShort = "Run daily task scripts and manage the systemd user timer that schedules them"
	RootLong  = `dailyrun runs a script, a directory of scripts, or a shell command, and
manages the systemd user-level service/timer pair that invokes that run on a
schedule. Unit files are written under ~/.config/systemd/user/.`

	FlagOS           = "Select OS or auto-detect from /etc/os-release (auto|arch|ubuntu)"
	FlagRun          = "Run tasks in the given file/directory or command"
	FlagDryRun       = "Dry-run tasks in the given file/directory or command"
	FlagVerbose      = "Enable verbose output"
	FlagDependencies = "Manage or show required dependencies (check|script)"
	FlagConfigs      = "Create, edit or delete systemd service/timer files (create|paths|edit-timer|edit-service|delete)"
	FlagRunArg       = "Argument passed to --run when the timer invokes this tool; required with --configs create"
	FlagInstallTimer = "Install timer in a daily or hourly manner (advisory only)"
	FlagPersistent   = "Set Persistent=true/false in the timer file (default true)"
	FlagOnCalendar   = "Set [Timer] OnCalendar= (default '*-*-* 14:00:00')"
	FlagDescription  = "Set [Unit] Description= for the service (default uses the tool path)"
	FlagStatus       = "Show systemd user timer status"
	FlagEnableStart  = "Enable and start the systemd user timer"
	FlagDisableStop  = "Disable and stop the systemd user timer"
	FlagLogs         = "Show logs for the systemd user timer service"

	FlagInvalidValueFmt = "invalid value %q for --%s (choose one of: %s)"

	InstallTimerRequestedFmt = "You requested to install a systemd timer: %s\n"
	InstallTimerRecommend    = "But the recommended way is to run: --configs create, then enable and start."

	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
)
