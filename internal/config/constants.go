package config

import "time"

// Persistence backends
const (
	PersistenceMemory   = "memory"
	PersistencePostgres = "postgres"
)

// Defaults
const (
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultServiceName = "mudshop"
	DefaultVersion     = "dev"
	DefaultEnvironment = "dev"
	DefaultDataPath    = "configs"

	DefaultDisplayMarkup       = 1.2
	DefaultTickInterval        = time.Second
	DefaultWorkerCount         = 4
	DefaultControllerCacheSize = 256
	DefaultControllerCacheTTL  = 30 * time.Minute
	DefaultLedgerRetentionDays = 30

	DefaultDBMaxConns        = 20
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute
)
