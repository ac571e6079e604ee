package config

const (
	// DefaultDatabasePath is where persisted store state lives
	DefaultDatabasePath = "./bookshelf.db"

	// DefaultAPIBaseURL is the remote users/comments API
	DefaultAPIBaseURL = "https://simple-server-09r4.onrender.com"
)
