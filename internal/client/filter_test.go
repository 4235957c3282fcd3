package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/booktracker/internal/entities"
)

func sampleShelf() []entities.Book {
	return []entities.Book{
		{ID: 2, Title: "Book B", Author: "Author 2", Read: false},
		{ID: 1, Title: "Book A", Author: "Author 1", Read: true},
	}
}

func TestParseStatusFilter(t *testing.T) {
	for _, raw := range []string{"all", "read", "unread"} {
		filter, err := ParseStatusFilter(raw)
		require.NoError(t, err)
		assert.Equal(t, StatusFilter(raw), filter)
	}

	_, err := ParseStatusFilter("finished")
	assert.Error(t, err)
}

func TestFilterBooks(t *testing.T) {
	t.Run("keeps everything by default", func(t *testing.T) {
		result := FilterBooks(sampleShelf(), "", StatusAll)
		assert.Len(t, result, 2)
	})

	t.Run("filters by read status", func(t *testing.T) {
		result := FilterBooks(sampleShelf(), "", StatusRead)
		require.Len(t, result, 1)
		assert.Equal(t, "Book A", result[0].Title)

		result = FilterBooks(sampleShelf(), "", StatusUnread)
		require.Len(t, result, 1)
		assert.Equal(t, "Book B", result[0].Title)
	})

	t.Run("matches title substrings case-insensitively", func(t *testing.T) {
		result := FilterBooks(sampleShelf(), "b", StatusAll)
		assert.Len(t, result, 2)

		result = FilterBooks(sampleShelf(), "BOOK A", StatusAll)
		require.Len(t, result, 1)
		assert.Equal(t, uint(1), result[0].ID)
	})

	t.Run("matches author substrings", func(t *testing.T) {
		result := FilterBooks(sampleShelf(), "author 2", StatusAll)
		require.Len(t, result, 1)
		assert.Equal(t, uint(2), result[0].ID)
	})

	t.Run("trims the search term", func(t *testing.T) {
		result := FilterBooks(sampleShelf(), "  book a  ", StatusAll)
		require.Len(t, result, 1)
		assert.Equal(t, "Book A", result[0].Title)
	})

	t.Run("combines search and status", func(t *testing.T) {
		result := FilterBooks(sampleShelf(), "book", StatusRead)
		require.Len(t, result, 1)
		assert.Equal(t, "Book A", result[0].Title)

		result = FilterBooks(sampleShelf(), "author 1", StatusUnread)
		assert.Empty(t, result)
	})

	t.Run("does not mutate the input", func(t *testing.T) {
		shelf := sampleShelf()
		FilterBooks(shelf, "a", StatusRead)
		assert.Equal(t, sampleShelf(), shelf)
	})
}
