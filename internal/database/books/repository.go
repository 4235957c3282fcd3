// Package books provides database operations for the books table.
//
// This package implements the BookStore interface defined in
// internal/http/books.go.
//
// # Interface Implementation
//
//	var _ http.BookStore = (*Repository)(nil)
//
// # Usage
//
//	repo := books.NewRepository(db)
//	book, err := repo.GetByID(ctx, 123)
package books

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"gorm.io/gorm"

	"github.com/mrlokans/booktracker/internal/entities"
)

// Repository handles all book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListAll retrieves every book ordered newest-id-first.
func (r *Repository) ListAll(ctx context.Context) ([]entities.Book, error) {
	var books []entities.Book
	err := r.db.WithContext(ctx).Order("id DESC").Find(&books).Error
	if err != nil {
		if isMissingTable(err) {
			slog.Error("books table is missing, database was never migrated",
				slog.String("op", "Repository.ListAll"),
				slog.String("err", err.Error()),
			)
			return nil, &SchemaError{cause: err}
		}
		return nil, r.wrap("Repository.ListAll", "could not fetch books", err)
	}
	return books, nil
}

// GetByID retrieves a single book. Absence is not an error: it returns
// (nil, nil) so callers can decide how to report a missing id.
func (r *Repository) GetByID(ctx context.Context, id uint) (*entities.Book, error) {
	var book entities.Book
	err := r.db.WithContext(ctx).First(&book, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, r.wrap("Repository.GetByID", "could not fetch the book", err)
	}
	return &book, nil
}

// Create stores a new book with trimmed title and author and read=false.
func (r *Repository) Create(ctx context.Context, title, author string) (*entities.Book, error) {
	book := entities.Book{
		Title:  strings.TrimSpace(title),
		Author: strings.TrimSpace(author),
		Read:   false,
	}
	if err := r.db.WithContext(ctx).Create(&book).Error; err != nil {
		return nil, r.wrap("Repository.Create", "could not create the book", err)
	}
	return &book, nil
}

// UpdateStatus sets the read flag for an existing id. It updates only that
// column and does not re-check existence; callers confirm the id first.
func (r *Repository) UpdateStatus(ctx context.Context, id uint, read bool) (*entities.Book, error) {
	err := r.db.WithContext(ctx).Model(&entities.Book{}).
		Where("id = ?", id).
		Update("read", read).Error
	if err != nil {
		return nil, r.wrap("Repository.UpdateStatus", "could not update the book status", err)
	}

	var book entities.Book
	if err := r.db.WithContext(ctx).First(&book, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, r.wrap("Repository.UpdateStatus", "could not update the book status", err)
	}
	return &book, nil
}

// Update replaces title and author of an existing book, leaving the read
// flag untouched. Returns ErrBookNotFound if the id does not exist.
func (r *Repository) Update(ctx context.Context, id uint, title, author string) (*entities.Book, error) {
	var book entities.Book
	err := r.db.WithContext(ctx).First(&book, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, r.wrap("Repository.Update", "could not update the book", err)
	}

	updates := map[string]any{
		"title":  strings.TrimSpace(title),
		"author": strings.TrimSpace(author),
	}
	if err := r.db.WithContext(ctx).Model(&book).Updates(updates).Error; err != nil {
		return nil, r.wrap("Repository.Update", "could not update the book", err)
	}
	return &book, nil
}

// Delete removes a book by id. Returns ErrBookNotFound if the id does not
// exist, or if the row vanished between the existence check and the delete.
func (r *Repository) Delete(ctx context.Context, id uint) error {
	var book entities.Book
	err := r.db.WithContext(ctx).First(&book, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBookNotFound
		}
		return r.wrap("Repository.Delete", "could not delete the book", err)
	}

	result := r.db.WithContext(ctx).Delete(&entities.Book{}, id)
	if result.Error != nil {
		return r.wrap("Repository.Delete", "could not delete the book", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrBookNotFound
	}
	return nil
}

// wrap logs the underlying failure and converts it to a PersistenceError
// carrying the user-facing message.
func (r *Repository) wrap(op, message string, err error) error {
	slog.Error(message,
		slog.String("op", op),
		slog.String("err", err.Error()),
	)
	return &PersistenceError{Message: message, cause: err}
}

func isMissingTable(err error) bool {
	return err != nil && strings.Contains(err.Error(), "no such table")
}
