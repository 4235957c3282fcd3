// Package database provides the data access layer for the application.
//
// The layer is organized into domain-specific sub-packages:
//
//	database/
//	├── database.go      # Connection setup, migrations, seeding
//	└── books/           # Book CRUD operations
//
// Each sub-package provides a Repository type with domain-specific
// operations:
//
//	// Initialize database connection
//	db, err := database.NewDatabase("./booktracker.db")
//
//	// Create domain-specific repositories
//	booksRepo := books.NewRepository(db.DB)
//
//	// Use repositories
//	book, err := booksRepo.GetByID(ctx, 123)
package database
