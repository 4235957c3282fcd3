// Package cli contains the terminal client commands. Every command talks to
// a running booktracker server through the client package; none of them
// touch the database directly except the seed command.
package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/mrlokans/booktracker/internal/client"
	"github.com/mrlokans/booktracker/internal/config"
)

// ListCommand renders the book list, optionally filtered by search term
// and read status. Filtering happens entirely client-side.
type ListCommand struct {
	APIURL string
	Search string
	Status client.StatusFilter
}

func NewListCommand() *ListCommand {
	return &ListCommand{}
}

func (cmd *ListCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)

	var status string
	fs.StringVar(&cmd.APIURL, "api", config.DefaultAPIURL, "Base URL of the booktracker server")
	fs.StringVar(&cmd.Search, "search", "", "Case-insensitive search over title and author")
	fs.StringVar(&status, "status", "all", "Filter by read status: all, read or unread")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s list [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "List tracked books, newest first.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s list\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s list -status unread -search mickiewicz\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	parsed, err := client.ParseStatusFilter(status)
	if err != nil {
		return err
	}
	cmd.Status = parsed

	return nil
}

func (cmd *ListCommand) Run() error {
	store := client.NewStore(client.NewClient(cmd.APIURL))

	books, err := store.Books(context.Background())
	if err != nil {
		return fmt.Errorf("could not load books: %w", err)
	}

	if len(books) == 0 {
		fmt.Println("No books yet. Add one with the 'add' command.")
		return nil
	}

	filtered := client.FilterBooks(books, cmd.Search, cmd.Status)
	if len(filtered) == 0 {
		fmt.Println("No books match the current filters.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tAUTHOR\tREAD")
	for _, book := range filtered {
		read := "no"
		if book.Read {
			read = "yes"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", book.ID, book.Title, book.Author, read)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	counts := store.Counts()
	fmt.Printf("\n%d books: %d read, %d unread\n", counts.Total, counts.Read, counts.Unread)

	return nil
}
