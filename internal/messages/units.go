package messages

// Unit file manager output.
const (
	UnitsRunArgRequired = "Error: --configs create requires --run-arg"

	UnitsCreatedServiceFmt = "Created service file: %s\n"
	UnitsCreatedTimerFmt   = "Created timer file:   %s\n"
	UnitsEnableHint        = "You can now enable and start the timer with:"
	UnitsEnableHintFmt     = "  $ systemctl --user enable %s\n"
	UnitsStartHintFmt      = "  $ systemctl --user start %s\n"

	UnitsReplacingFmt     = "Replacing %s:\n"
	UnitsDiffTruncatedFmt = "... diff truncated (%d more lines)\n"

	UnitsServiceNotFoundFmt = "Service file not found: %s\n"
	UnitsTimerNotFoundFmt   = "Timer file not found: %s\n"
	UnitsNoEditor           = "No suitable editor found! Please set $EDITOR."

	UnitsDeletedServiceFmt = "Deleted service file: %s\n"
	UnitsDeletedTimerFmt   = "Deleted timer file: %s\n"
)

// Scheduler control bridge output.
const (
	SysdctlRunningFmt = "Running: %s\n"
)
