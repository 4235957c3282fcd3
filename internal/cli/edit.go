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

// EditCommand replaces the title and author of a book. The read status is
// left untouched.
type EditCommand struct {
	APIURL string
	ID     uint
	Title  string
	Author string
}

func NewEditCommand() *EditCommand {
	return &EditCommand{}
}

func (cmd *EditCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("edit", flag.ExitOnError)

	var rawID string
	fs.StringVar(&cmd.APIURL, "api", config.DefaultAPIURL, "Base URL of the booktracker server")
	fs.StringVar(&rawID, "id", "", "ID of the book to edit (required)")
	fs.StringVar(&cmd.Title, "title", "", "New title (required)")
	fs.StringVar(&cmd.Author, "author", "", "New author (required)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s edit -id <id> -title <title> -author <author>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Change the title and author of a book.\n\n")
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

	input := validation.CreateBookInput{Title: cmd.Title, Author: cmd.Author}
	if err := validation.ValidateCreateBook(&input); err != nil {
		return err
	}
	cmd.Title = input.Title
	cmd.Author = input.Author

	return nil
}

func (cmd *EditCommand) Run() error {
	store := client.NewStore(client.NewClient(cmd.APIURL))

	book, err := store.Edit(context.Background(), cmd.ID, cmd.Title, cmd.Author)
	if err != nil {
		return fmt.Errorf("could not edit book: %w", err)
	}

	fmt.Printf("Updated book #%d: %s by %s\n", book.ID, book.Title, book.Author)
	return nil
}
