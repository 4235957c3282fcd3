package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/mrlokans/booktracker/internal/config"
	"github.com/mrlokans/booktracker/internal/database"
)

// SeedCommand wipes the books table and inserts sample data. It works
// directly on the database file; the server does not need to be running.
type SeedCommand struct {
	DatabasePath string
}

func NewSeedCommand() *SeedCommand {
	return &SeedCommand{}
}

func (cmd *SeedCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("seed", flag.ExitOnError)

	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the database file")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s seed [-db <path>]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Replace all books with the bundled sample data.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *SeedCommand) Run() error {
	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("could not open database: %w", err)
	}
	defer db.Close()

	books, err := db.Seed()
	if err != nil {
		return err
	}

	for _, book := range books {
		fmt.Printf("Seeded book #%d: %s by %s\n", book.ID, book.Title, book.Author)
	}
	fmt.Printf("Seeding finished, %d books inserted.\n", len(books))
	return nil
}
