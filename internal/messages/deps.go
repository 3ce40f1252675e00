package messages

// Dependency advisor output.
const (
	DepsFoundFmt   = "%s   %s found at %s\n"
	DepsMissingFmt = "%s %s NOT found\n"

	DepsAllInstalled  = "All essential commands appear to be installed."
	DepsSuggestHeader = "Suggested installation commands (based on detected OS):"
	DepsSuggestFmt    = "  %s %s\n"
)
