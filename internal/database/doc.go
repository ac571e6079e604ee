// Package database provides the persistence layer for store state.
//
// # Architecture
//
//	database/
//	├── database.go      # Connection setup, migrations
//	├── state.go         # Snapshot persistence for the session store
//	└── settings/        # Key/value settings rows
//
// Stores never touch gorm directly. The session store saves one JSON snapshot
// through StateStore; the preferences store keeps one settings row per field.
//
// # Usage
//
//	db, err := database.NewDatabase("./bookshelf.db")
//	state := database.NewStateStore(db, encryptor) // encryptor may be nil
//	userStore := store.New(apiClient, state)
package database
