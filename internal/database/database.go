package database

import (
	"fmt"
	"log/slog"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/booktracker/internal/entities"
)

// sampleBooks mirrors the seed data the tracker ships with.
var sampleBooks = []entities.Book{
	{Title: "Dziady cz. III", Author: "Adam Mickiewicz", Read: true},
	{Title: "Harry Potter i Kamień Filozoficzny", Author: "J.K. Rowling", Read: false},
}

type Database struct {
	DB *gorm.DB
}

func NewDatabase(dbPath string) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&entities.Book{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	slog.Info("database initialized", slog.String("path", dbPath))

	return &Database{DB: db}, nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Ping verifies the underlying connection is still alive.
func (d *Database) Ping() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// Seed wipes the books table and inserts the sample records.
func (d *Database) Seed() ([]entities.Book, error) {
	if err := d.DB.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&entities.Book{}).Error; err != nil {
		return nil, fmt.Errorf("failed to clear books table: %w", err)
	}

	seeded := make([]entities.Book, 0, len(sampleBooks))
	for _, book := range sampleBooks {
		if err := d.DB.Create(&book).Error; err != nil {
			return nil, fmt.Errorf("failed to seed book %q: %w", book.Title, err)
		}
		seeded = append(seeded, book)
	}
	return seeded, nil
}
