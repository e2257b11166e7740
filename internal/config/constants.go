package config

// Default configuration values
const (
	DefaultPort = 8080

	DefaultStatusCacheSize       = 4096
	DefaultStatusCacheTTLSeconds = 300 // 5 minutes, well under one day key

	// Watering records older than the retention window are purged by the
	// background sweep. The floor keeps the sweep strictly behind the live
	// day-key window.
	DefaultRetentionDays = 30
	MinRetentionDays     = 2

	DefaultRetentionSweepHours = 6
)
