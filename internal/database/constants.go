package database

import "time"

// Database Connection Pool Constants
const (
	// DefaultMinConnections is the minimum number of connections to maintain in the pool
	DefaultMinConnections = 2

	// DefaultMaxConns is the pool ceiling used when no override is configured
	DefaultMaxConns = 20
)

// Default connection lifetime settings
const (
	DefaultMaxConnIdleTime = 5 * time.Minute
	DefaultMaxConnLifetime = 30 * time.Minute
)

// Error Messages - Database Operations
const (
	ErrMsgFailedToParseConnString = "failed to parse connection string"
	ErrMsgFailedToCreatePool      = "failed to create connection pool"
	ErrMsgFailedToPingDatabase    = "failed to ping database"
	ErrMsgFailedToOpenMigrationDB = "failed to open migration connection"
	ErrMsgFailedToSetDialect      = "failed to set migration dialect"
	ErrMsgFailedToRunMigrations   = "failed to run migrations"
)

// Log Messages
const (
	LogMsgSuccessfullyConnectedToDatabase = "Successfully connected to the database"
	LogMsgMigrationsApplied               = "Database migrations applied"
)
