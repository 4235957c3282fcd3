package http

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/booktracker/internal/database/books"
	"github.com/mrlokans/booktracker/internal/entities"
	"github.com/mrlokans/booktracker/internal/validation"
)

// BookStore is the persistence surface the controller needs.
type BookStore interface {
	ListAll(ctx context.Context) ([]entities.Book, error)
	GetByID(ctx context.Context, id uint) (*entities.Book, error)
	Create(ctx context.Context, title, author string) (*entities.Book, error)
	UpdateStatus(ctx context.Context, id uint, read bool) (*entities.Book, error)
	Update(ctx context.Context, id uint, title, author string) (*entities.Book, error)
	Delete(ctx context.Context, id uint) error
}

type BooksController struct {
	store   BookStore
	devMode bool
}

func NewBooksController(store BookStore, devMode bool) *BooksController {
	return &BooksController{
		store:   store,
		devMode: devMode,
	}
}

// GetAllBooks handles GET /api/books.
func (controller *BooksController) GetAllBooks(c *gin.Context) {
	booksList, err := controller.store.ListAll(c.Request.Context())
	if err != nil {
		controller.respondStoreError(c, err)
		return
	}
	respondOK(c, booksList, "books fetched successfully")
}

// CreateBook handles POST /api/books.
func (controller *BooksController) CreateBook(c *gin.Context) {
	var input validation.CreateBookInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadRequest(c, "invalid input")
		return
	}
	if err := validation.ValidateCreateBook(&input); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	book, err := controller.store.Create(c.Request.Context(), input.Title, input.Author)
	if err != nil {
		controller.respondStoreError(c, err)
		return
	}
	respondCreated(c, book, "book created successfully")
}

// UpdateBookStatus handles PATCH /api/books/:id.
func (controller *BooksController) UpdateBookStatus(c *gin.Context) {
	id, ok := controller.bookID(c)
	if !ok {
		return
	}

	var input validation.UpdateStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadRequest(c, "invalid input")
		return
	}
	if err := validation.ValidateUpdateStatus(&input); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	if !controller.bookExists(c, id) {
		return
	}

	book, err := controller.store.UpdateStatus(c.Request.Context(), id, *input.Read)
	if err != nil {
		controller.respondStoreError(c, err)
		return
	}
	respondOK(c, book, "book status updated successfully")
}

// UpdateBook handles PUT /api/books/:id.
func (controller *BooksController) UpdateBook(c *gin.Context) {
	id, ok := controller.bookID(c)
	if !ok {
		return
	}

	var input validation.CreateBookInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadRequest(c, "invalid input")
		return
	}
	if err := validation.ValidateCreateBook(&input); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	if !controller.bookExists(c, id) {
		return
	}

	book, err := controller.store.Update(c.Request.Context(), id, input.Title, input.Author)
	if err != nil {
		controller.respondStoreError(c, err)
		return
	}
	respondOK(c, book, "book updated successfully")
}

// DeleteBook handles DELETE /api/books/:id.
func (controller *BooksController) DeleteBook(c *gin.Context) {
	id, ok := controller.bookID(c)
	if !ok {
		return
	}

	if !controller.bookExists(c, id) {
		return
	}

	if err := controller.store.Delete(c.Request.Context(), id); err != nil {
		controller.respondStoreError(c, err)
		return
	}
	respondMessage(c, "book deleted successfully")
}

// bookID parses the :id path parameter, responding 400 on failure.
func (controller *BooksController) bookID(c *gin.Context) (uint, bool) {
	id, err := validation.ParseBookID(c.Param("id"))
	if err != nil {
		respondBadRequest(c, err.Error())
		return 0, false
	}
	return id, true
}

// bookExists confirms the id before a mutation, responding 404 when the
// book is absent and 500 when the lookup itself fails.
func (controller *BooksController) bookExists(c *gin.Context, id uint) bool {
	book, err := controller.store.GetByID(c.Request.Context(), id)
	if err != nil {
		controller.respondStoreError(c, err)
		return false
	}
	if book == nil {
		respondNotFound(c, "book not found")
		return false
	}
	return true
}

// respondStoreError maps persistence-layer failures onto HTTP statuses.
func (controller *BooksController) respondStoreError(c *gin.Context, err error) {
	if errors.Is(err, books.ErrBookNotFound) {
		respondNotFound(c, "book not found")
		return
	}

	// The schema message already carries the migration hint, so there is
	// no extra detail to append in development mode.
	var schemaErr *books.SchemaError
	if errors.As(err, &schemaErr) {
		respondServerError(c, err, schemaErr.Error(), false)
		return
	}

	var persistenceErr *books.PersistenceError
	if errors.As(err, &persistenceErr) {
		respondServerError(c, err, persistenceErr.Message, controller.devMode)
		return
	}

	respondServerError(c, err, "an unexpected server error occurred", controller.devMode)
}
