package cmd

// Config carries the settings of the demo application. The domain model
// itself has no environment surface; only the entry point reads these.
type Config struct {
	LogLevel string
}
