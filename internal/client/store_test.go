package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/booktracker/internal/entities"
)

// fakeAPI is a minimal in-memory stand-in for the books endpoints. List
// responses are driven by whatever books the test puts in; mutations only
// record that they happened.
type fakeAPI struct {
	mu        sync.Mutex
	books     []entities.Book
	listCalls int
}

func (f *fakeAPI) setBooks(books []entities.Book) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.books = books
}

func (f *fakeAPI) listCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listCalls
}

func (f *fakeAPI) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		f.mu.Lock()
		defer f.mu.Unlock()

		switch {
		case r.Method == http.MethodGet:
			f.listCalls++
			payload, _ := json.Marshal(f.books)
			w.Write([]byte(`{"success": true, "data": ` + string(payload) + `}`))
		case r.Method == http.MethodPost:
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"success": true, "data": {"id": 99, "title": "New", "author": "Author", "read": false}}`))
		case r.Method == http.MethodDelete:
			w.Write([]byte(`{"success": true, "message": "book deleted successfully"}`))
		default:
			w.Write([]byte(`{"success": true, "data": {"id": 1, "title": "New", "author": "Author", "read": true}}`))
		}
	})
}

func setupTestStore(t *testing.T, api *fakeAPI) *Store {
	t.Helper()
	server := httptest.NewServer(api.handler())
	t.Cleanup(server.Close)
	return NewStore(NewClient(server.URL))
}

func TestStoreBooksReadsThroughCache(t *testing.T) {
	api := &fakeAPI{books: []entities.Book{
		{ID: 2, Title: "Lalka", Author: "Bolesław Prus", Read: false},
		{ID: 1, Title: "Dziady", Author: "Adam Mickiewicz", Read: true},
	}}
	store := setupTestStore(t, api)
	ctx := context.Background()

	books, err := store.Books(ctx)
	require.NoError(t, err)
	require.Len(t, books, 2)
	assert.Equal(t, 1, api.listCount())

	// Cached; no second fetch.
	_, err = store.Books(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, api.listCount())
}

func TestStoreMutationInvalidatesCache(t *testing.T) {
	api := &fakeAPI{}
	store := setupTestStore(t, api)
	ctx := context.Background()

	books, err := store.Books(ctx)
	require.NoError(t, err)
	assert.Empty(t, books)

	api.setBooks([]entities.Book{{ID: 99, Title: "New", Author: "Author", Read: false}})

	book, err := store.Add(ctx, "Dziady", "Adam Mickiewicz")
	require.NoError(t, err)
	assert.Equal(t, uint(99), book.ID)

	// The next read must not serve the pre-mutation snapshot.
	books, err = store.Books(ctx)
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, uint(99), books[0].ID)
}

func TestStoreCounts(t *testing.T) {
	api := &fakeAPI{books: []entities.Book{
		{ID: 3, Title: "A", Author: "X", Read: true},
		{ID: 2, Title: "B", Author: "Y", Read: true},
		{ID: 1, Title: "C", Author: "Z", Read: false},
	}}
	store := setupTestStore(t, api)

	// Before the first load the cache is empty.
	assert.Equal(t, Counts{}, store.Counts())

	_, err := store.Books(context.Background())
	require.NoError(t, err)

	counts := store.Counts()
	assert.Equal(t, 3, counts.Total)
	assert.Equal(t, 2, counts.Read)
	assert.Equal(t, 1, counts.Unread)
}

func TestStoreCoalescesRapidInvalidations(t *testing.T) {
	api := &fakeAPI{}
	store := setupTestStore(t, api)
	ctx := context.Background()

	_, err := store.Books(ctx)
	require.NoError(t, err)

	api.setBooks([]entities.Book{{ID: 1, Title: "Dziady", Author: "Adam Mickiewicz"}})
	for i := 0; i < 5; i++ {
		store.Invalidate()
	}

	books, err := store.Books(ctx)
	require.NoError(t, err)
	require.Len(t, books, 1)

	// However the background reloads interleave, later reads stay settled
	// on the latest state.
	assert.Eventually(t, func() bool {
		books, err := store.Books(ctx)
		return err == nil && len(books) == 1
	}, time.Second, 10*time.Millisecond)
}

func TestStoreReturnsCopies(t *testing.T) {
	api := &fakeAPI{books: []entities.Book{{ID: 1, Title: "Dziady", Author: "Adam Mickiewicz"}}}
	store := setupTestStore(t, api)
	ctx := context.Background()

	books, err := store.Books(ctx)
	require.NoError(t, err)
	books[0].Title = "mutated"

	again, err := store.Books(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Dziady", again[0].Title)
}

func TestStoreInFlightFlags(t *testing.T) {
	release := make(chan struct{})
	entered := make(chan struct{})

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.Method == http.MethodDelete {
			close(entered)
			<-release
			w.Write([]byte(`{"success": true, "message": "book deleted successfully"}`))
			return
		}
		w.Write([]byte(`{"success": true, "data": []}`))
	}))
	defer server.Close()

	store := NewStore(NewClient(server.URL))
	assert.False(t, store.IsDeleting())

	done := make(chan error, 1)
	go func() {
		done <- store.Remove(context.Background(), 1)
	}()

	<-entered
	assert.True(t, store.IsDeleting())

	close(release)
	require.NoError(t, <-done)
	assert.False(t, store.IsDeleting())
}
