package main

// Exit codes shared by all commands
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (invalid arguments, runtime failure)
	ExitConfigError = 2 // Configuration error (missing repository, bad config, missing credentials)
	ExitDataError   = 3 // Data error (malformed input, storage failure)
)
