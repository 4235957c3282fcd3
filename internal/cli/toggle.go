package cli

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/mrlokans/booktracker/internal/client"
	"github.com/mrlokans/booktracker/internal/config"
	"github.com/mrlokans/booktracker/internal/validation"
)

// ToggleCommand flips the read status of a book. It reads the current
// status from the cached list first, so the command is a true toggle.
type ToggleCommand struct {
	APIURL string
	ID     uint
}

func NewToggleCommand() *ToggleCommand {
	return &ToggleCommand{}
}

func (cmd *ToggleCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("toggle", flag.ExitOnError)

	var rawID string
	fs.StringVar(&cmd.APIURL, "api", config.DefaultAPIURL, "Base URL of the booktracker server")
	fs.StringVar(&rawID, "id", "", "ID of the book to toggle (required)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s toggle -id <id>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Mark an unread book as read, or a read book as unread.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if rawID == "" {
		return fmt.Errorf("required flag -id not provided")
	}
	id, err := validation.ParseBookID(rawID)
	if err != nil {
		return err
	}
	cmd.ID = id

	return nil
}

func (cmd *ToggleCommand) Run() error {
	ctx := context.Background()
	store := client.NewStore(client.NewClient(cmd.APIURL))

	books, err := store.Books(ctx)
	if err != nil {
		return fmt.Errorf("could not load books: %w", err)
	}

	var current *bool
	for _, book := range books {
		if book.ID == cmd.ID {
			read := book.Read
			current = &read
			break
		}
	}
	if current == nil {
		return fmt.Errorf("book #%d not found", cmd.ID)
	}

	book, err := store.ToggleStatus(ctx, cmd.ID, !*current)
	if err != nil {
		return fmt.Errorf("could not update book status: %w", err)
	}

	status := "unread"
	if book.Read {
		status = "read"
	}
	fmt.Printf("Book #%d (%s) is now %s\n", book.ID, book.Title, status)
	return nil
}
