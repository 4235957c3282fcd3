package client

import (
	"context"
	"sync"

	"github.com/mrlokans/booktracker/internal/entities"
)

// Store holds the client-side cached book collection. Reads go through the
// cache; every successful mutation invalidates it, bumping a version
// counter and triggering a background refetch. Concurrent reloads coalesce:
// a reload started for an older version discards its result. The cache is
// never mutated optimistically, so it only ever reflects confirmed server
// state.
type Store struct {
	client *Client

	mu            sync.Mutex
	books         []entities.Book
	version       uint64 // bumped on every invalidation
	loadedVersion uint64 // version the cached slice was fetched for

	creating bool
	updating bool
	editing  bool
	deleting bool
}

// Counts are derived from the cached collection.
type Counts struct {
	Total  int
	Read   int
	Unread int
}

// NewStore creates a store over the given API client. The cache starts
// stale and is loaded on first read.
func NewStore(c *Client) *Store {
	return &Store{
		client:  c,
		version: 1,
	}
}

// Books returns the cached collection, fetching it first if the cache is
// stale. The returned slice is a copy.
func (s *Store) Books(ctx context.Context) ([]entities.Book, error) {
	for {
		s.mu.Lock()
		if s.loadedVersion == s.version {
			out := make([]entities.Book, len(s.books))
			copy(out, s.books)
			s.mu.Unlock()
			return out, nil
		}
		v := s.version
		s.mu.Unlock()

		books, err := s.client.ListBooks(ctx)
		if err != nil {
			return nil, err
		}

		s.mu.Lock()
		if v == s.version {
			s.books = books
			s.loadedVersion = v
		}
		// If the version moved on while we were fetching, loop and fetch
		// again so the caller never observes a stale snapshot.
		s.mu.Unlock()
	}
}

// Invalidate marks the cache stale and kicks off a background refetch.
func (s *Store) Invalidate() {
	s.mu.Lock()
	s.version++
	v := s.version
	s.mu.Unlock()

	go s.reload(v)
}

// reload fetches the collection for version v, discarding the result if a
// newer invalidation has happened since.
func (s *Store) reload(v uint64) {
	books, err := s.client.ListBooks(context.Background())
	if err != nil {
		// Leave the cache stale; the next Books call retries synchronously.
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if v != s.version || v <= s.loadedVersion {
		return
	}
	s.books = books
	s.loadedVersion = v
}

// Counts returns totals derived from the cached collection. It does not
// touch the network; call Books first for fresh numbers.
func (s *Store) Counts() Counts {
	s.mu.Lock()
	defer s.mu.Unlock()

	counts := Counts{Total: len(s.books)}
	for _, book := range s.books {
		if book.Read {
			counts.Read++
		}
	}
	counts.Unread = counts.Total - counts.Read
	return counts
}

// Add creates a book, then invalidates the cache.
func (s *Store) Add(ctx context.Context, title, author string) (*entities.Book, error) {
	s.setFlag(&s.creating, true)
	defer s.setFlag(&s.creating, false)

	book, err := s.client.CreateBook(ctx, title, author)
	if err != nil {
		return nil, err
	}
	s.Invalidate()
	return book, nil
}

// ToggleStatus sets the read flag of a book, then invalidates the cache.
func (s *Store) ToggleStatus(ctx context.Context, id uint, read bool) (*entities.Book, error) {
	s.setFlag(&s.updating, true)
	defer s.setFlag(&s.updating, false)

	book, err := s.client.UpdateBookStatus(ctx, id, read)
	if err != nil {
		return nil, err
	}
	s.Invalidate()
	return book, nil
}

// Edit replaces title and author of a book, then invalidates the cache.
func (s *Store) Edit(ctx context.Context, id uint, title, author string) (*entities.Book, error) {
	s.setFlag(&s.editing, true)
	defer s.setFlag(&s.editing, false)

	book, err := s.client.UpdateBook(ctx, id, title, author)
	if err != nil {
		return nil, err
	}
	s.Invalidate()
	return book, nil
}

// Remove deletes a book, then invalidates the cache.
func (s *Store) Remove(ctx context.Context, id uint) error {
	s.setFlag(&s.deleting, true)
	defer s.setFlag(&s.deleting, false)

	if err := s.client.DeleteBook(ctx, id); err != nil {
		return err
	}
	s.Invalidate()
	return nil
}

// IsCreating reports whether an Add call is in flight.
func (s *Store) IsCreating() bool { return s.flag(&s.creating) }

// IsUpdating reports whether a ToggleStatus call is in flight.
func (s *Store) IsUpdating() bool { return s.flag(&s.updating) }

// IsEditing reports whether an Edit call is in flight.
func (s *Store) IsEditing() bool { return s.flag(&s.editing) }

// IsDeleting reports whether a Remove call is in flight.
func (s *Store) IsDeleting() bool { return s.flag(&s.deleting) }

func (s *Store) setFlag(flag *bool, value bool) {
	s.mu.Lock()
	*flag = value
	s.mu.Unlock()
}

func (s *Store) flag(flag *bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *flag
}
