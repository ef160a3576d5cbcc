package cli

// Exit codes for the chlog CLI, stable for scripting and CI use.
const (
	// ExitSuccess indicates successful command execution
	ExitSuccess = 0

	// ExitFailure indicates a runtime failure during generation or merging
	ExitFailure = 1

	// ExitInvalidArguments indicates invalid command arguments
	ExitInvalidArguments = 2

	// ExitConfigError indicates invalid or missing configuration
	ExitConfigError = 3
)
