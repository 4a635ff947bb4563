package config

// DefaultDatabasePath is where the SQLite database is created when
// DATABASE_PATH is not set.
const DefaultDatabasePath = "./postboard.db"
