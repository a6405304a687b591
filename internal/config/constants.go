package config

const (
	// Log Defaults
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "console"
	DefaultLogFile       = ""
	DefaultMaxLogSizeMB  = 100
	DefaultMaxLogBackups = 3

	// Embed Defaults
	DefaultEmbedVariant = "strict"

	// Notification Defaults - Discord allows roughly 30 webhook requests per minute
	DefaultNotificationUsername          = "embedkit"
	DefaultNotificationRequestsPerMinute = 10
	DefaultNotificationBurstLimit        = 10
	DefaultNotificationTimeoutSecs       = 15

	// ConfigPathEnv overrides the configuration file location
	ConfigPathEnv = "EMBEDKIT_CONFIG_PATH"
)
