package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListBooks(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/books", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"success": true,
			"data": [
				{"id": 2, "title": "Lalka", "author": "Bolesław Prus", "read": false},
				{"id": 1, "title": "Dziady", "author": "Adam Mickiewicz", "read": true}
			],
			"message": "books fetched successfully"
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	books, err := client.ListBooks(context.Background())
	require.NoError(t, err)
	require.Len(t, books, 2)
	assert.Equal(t, uint(2), books[0].ID)
	assert.Equal(t, "Lalka", books[0].Title)
	assert.True(t, books[1].Read)
}

func TestCreateBook(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body struct {
			Title  string `json:"title"`
			Author string `json:"author"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Dziady", body.Title)
		assert.Equal(t, "Adam Mickiewicz", body.Author)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{
			"success": true,
			"data": {"id": 1, "title": "Dziady", "author": "Adam Mickiewicz", "read": false},
			"message": "book created successfully"
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	book, err := client.CreateBook(context.Background(), "Dziady", "Adam Mickiewicz")
	require.NoError(t, err)
	assert.Equal(t, uint(1), book.ID)
	assert.False(t, book.Read)
}

func TestUpdateBookStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/books/7", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"success": true,
			"data": {"id": 7, "title": "Dziady", "author": "Adam Mickiewicz", "read": true}
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	book, err := client.UpdateBookStatus(context.Background(), 7, true)
	require.NoError(t, err)
	assert.True(t, book.Read)
}

func TestDeleteBook(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/books/3", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success": true, "message": "book deleted successfully"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	assert.NoError(t, client.DeleteBook(context.Background(), 3))
}

func TestServerErrorBecomesAPIError(t *testing.T) {
	t.Run("uses the envelope error message", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"success": false, "error": "book not found"}`))
		}))
		defer server.Close()

		client := NewClient(server.URL)
		_, err := client.UpdateBookStatus(context.Background(), 42, true)
		require.Error(t, err)

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusNotFound, apiErr.Status)
		assert.Equal(t, "book not found", apiErr.Message)
	})

	t.Run("falls back to the status text", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"success": false}`))
		}))
		defer server.Close()

		client := NewClient(server.URL)
		_, err := client.ListBooks(context.Background())

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
		assert.Equal(t, http.StatusText(http.StatusInternalServerError), apiErr.Message)
	})
}

func TestTrailingSlashBaseURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/books", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success": true, "data": []}`))
	}))
	defer server.Close()

	client := NewClient(server.URL + "/")
	books, err := client.ListBooks(context.Background())
	require.NoError(t, err)
	assert.Empty(t, books)
}
