package cli

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/mrlokans/booktracker/internal/client"
	"github.com/mrlokans/booktracker/internal/config"
	"github.com/mrlokans/booktracker/internal/validation"
)

// RemoveCommand deletes a book after an interactive confirmation, unless
// -yes was passed.
type RemoveCommand struct {
	APIURL string
	ID     uint
	Yes    bool
}

func NewRemoveCommand() *RemoveCommand {
	return &RemoveCommand{}
}

func (cmd *RemoveCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("remove", flag.ExitOnError)

	var rawID string
	fs.StringVar(&cmd.APIURL, "api", config.DefaultAPIURL, "Base URL of the booktracker server")
	fs.StringVar(&rawID, "id", "", "ID of the book to remove (required)")
	fs.BoolVar(&cmd.Yes, "yes", false, "Skip the confirmation prompt")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s remove -id <id> [-yes]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Delete a book. Asks for confirmation unless -yes is given.\n\n")
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

func (cmd *RemoveCommand) Run() error {
	ctx := context.Background()
	store := client.NewStore(client.NewClient(cmd.APIURL))

	books, err := store.Books(ctx)
	if err != nil {
		return fmt.Errorf("could not load books: %w", err)
	}

	var title string
	found := false
	for _, book := range books {
		if book.ID == cmd.ID {
			title = book.Title
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("book #%d not found", cmd.ID)
	}

	if !cmd.Yes {
		fmt.Printf("Delete book #%d %q? [y/N] ", cmd.ID, title)
		reader := bufio.NewReader(os.Stdin)
		answer, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("could not read confirmation: %w", err)
		}
		answer = strings.ToLower(strings.TrimSpace(answer))
		if answer != "y" && answer != "yes" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := store.Remove(ctx, cmd.ID); err != nil {
		return fmt.Errorf("could not delete book: %w", err)
	}

	fmt.Printf("Deleted book #%d %q\n", cmd.ID, title)
	return nil
}
