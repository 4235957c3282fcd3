package client

import (
	"fmt"
	"strings"

	"github.com/mrlokans/booktracker/internal/entities"
)

// StatusFilter narrows a book list by read status.
type StatusFilter string

const (
	StatusAll    StatusFilter = "all"
	StatusRead   StatusFilter = "read"
	StatusUnread StatusFilter = "unread"
)

// ParseStatusFilter validates a raw status flag value.
func ParseStatusFilter(raw string) (StatusFilter, error) {
	switch StatusFilter(raw) {
	case StatusAll, StatusRead, StatusUnread:
		return StatusFilter(raw), nil
	}
	return "", fmt.Errorf("invalid status %q: must be all, read or unread", raw)
}

// FilterBooks returns the books matching the status filter and the
// case-insensitive search term (substring match over title and author).
// It never mutates the input slice.
func FilterBooks(books []entities.Book, search string, status StatusFilter) []entities.Book {
	filtered := make([]entities.Book, 0, len(books))
	term := strings.ToLower(strings.TrimSpace(search))

	for _, book := range books {
		switch status {
		case StatusRead:
			if !book.Read {
				continue
			}
		case StatusUnread:
			if book.Read {
				continue
			}
		}

		if term != "" &&
			!strings.Contains(strings.ToLower(book.Title), term) &&
			!strings.Contains(strings.ToLower(book.Author), term) {
			continue
		}

		filtered = append(filtered, book)
	}
	return filtered
}
