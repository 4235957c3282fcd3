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

// AddCommand creates a new book. Input is validated locally with the same
// rules the server applies, so obviously bad input never hits the network.
type AddCommand struct {
	APIURL string
	Title  string
	Author string
}

func NewAddCommand() *AddCommand {
	return &AddCommand{}
}

func (cmd *AddCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("add", flag.ExitOnError)

	fs.StringVar(&cmd.APIURL, "api", config.DefaultAPIURL, "Base URL of the booktracker server")
	fs.StringVar(&cmd.Title, "title", "", "Book title (required)")
	fs.StringVar(&cmd.Author, "author", "", "Book author (required)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s add -title <title> -author <author>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Add a new book. New books start unread.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	input := validation.CreateBookInput{Title: cmd.Title, Author: cmd.Author}
	if err := validation.ValidateCreateBook(&input); err != nil {
		return err
	}
	cmd.Title = input.Title
	cmd.Author = input.Author

	return nil
}

func (cmd *AddCommand) Run() error {
	store := client.NewStore(client.NewClient(cmd.APIURL))

	book, err := store.Add(context.Background(), cmd.Title, cmd.Author)
	if err != nil {
		return fmt.Errorf("could not add book: %w", err)
	}

	fmt.Printf("Added book #%d: %s by %s\n", book.ID, book.Title, book.Author)
	return nil
}
