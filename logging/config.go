package logging

// Config defines the logging configuration for hookcfg tooling. All fields
// can be driven by environment variables; hook registry documents themselves
// never carry tool settings.
type Config struct {
	// Level is the minimum log level to output (e.g., "debug", "info", "warn", "error").
	// Can be overridden by the HOOKCFG_LOG_LEVEL environment variable.
	Level string

	// ReportCaller, if true, includes the file, line, and function name in the log output.
	// Can be enabled with the HOOKCFG_LOG_CALLER=true environment variable.
	ReportCaller bool

	// File is the path of an optional file sink.
	// Can be set with the HOOKCFG_LOG_FILE environment variable.
	File string

	// Format configures the appearance of the log output.
	Format FormatConfig
}

// FormatConfig controls the log output format.
type FormatConfig struct {
	// Preset can be "default" (rich text), "simple" (minimal text), or "json".
	// Can be set with the HOOKCFG_LOG_FORMAT environment variable.
	Preset string
	// DisableTimestamp disables the timestamp from the "default" and "simple" formats.
	DisableTimestamp bool
	// DisableComponent disables the component name from the "default" and "simple" formats.
	DisableComponent bool
	// StructuredToStderr controls when structured logs are sent to stderr.
	// Can be "auto" (default), "always", or "never".
	StructuredToStderr string
}
