package config

const (
	// DefaultDatabasePath is the default path for the catalog database
	DefaultDatabasePath = "./library.db"

	// DefaultLogFile is where logs go while the terminal UI owns the screen
	DefaultLogFile = "./shelf.log"
)
