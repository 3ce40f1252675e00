package messages

// Runner intent and progress lines. The [DRYRUN] lines are the tool's
// dry-run contract: scripts around dailyrun grep for them.
const (
	RunDryRunDirEntryFmt  = "[DRYRUN] Would run: '%s'\n"
	RunDirEntryFmt        = "Running: '%s'\n"
	RunDryRunFileFmt      = "[DRYRUN] Would run file: '%s'\n"
	RunFileFmt            = "Running file: '%s'\n"
	RunDryRunShellFileFmt = "[DRYRUN] Would run via shell: '%s'\n"
	RunDryRunCommandFmt   = "[DRYRUN] Would run command: %s\n"
)
