package config

const (
	// DefaultDatabasePath is the default path for the sqlite database file
	DefaultDatabasePath = "./vocab.db"

	// DefaultPort matches the port the web client is deployed against
	DefaultPort = 3069

	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)
