package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/postboard/postboard/internal/auth"
	"github.com/postboard/postboard/internal/config"
	"github.com/postboard/postboard/internal/database"
	"github.com/postboard/postboard/internal/database/accounts"
)

// CreateAccountCommand creates an account directly in the database,
// bypassing the HTTP surface. Intended for bootstrapping an instance.
type CreateAccountCommand struct {
	DisplayName  string
	Username     string
	Email        string
	Password     string
	DatabasePath string
	BcryptCost   int
}

// NewCreateAccountCommand creates a new CreateAccountCommand
func NewCreateAccountCommand() *CreateAccountCommand {
	return &CreateAccountCommand{}
}

// ParseFlags parses command line flags
func (cmd *CreateAccountCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("create-account", flag.ExitOnError)

	fs.StringVar(&cmd.DisplayName, "name", "", "Display name for the new account (required)")
	fs.StringVar(&cmd.Username, "username", "", "Unique login handle (required)")
	fs.StringVar(&cmd.Email, "email", "", "Unique email address (required)")
	fs.StringVar(&cmd.Password, "password", "", "Plaintext password, 8-32 characters (required)")
	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the database file")
	fs.IntVar(&cmd.BcryptCost, "bcrypt-cost", 12, "bcrypt cost factor for the password hash")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s create-account [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Create an account directly in the database.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExample:\n")
		fmt.Fprintf(os.Stderr, "  %s create-account -name Ada -username ada -email ada@x.com -password longenough1\n", os.Args[0])
	}

	return fs.Parse(args)
}

// Run creates the account.
func (cmd *CreateAccountCommand) Run() error {
	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	// The signing key is irrelevant for account creation but NewService
	// requires one; generate a throwaway.
	key, err := auth.GenerateSigningKey()
	if err != nil {
		return err
	}

	store := accounts.NewRepository(db.DB)
	svc, err := auth.NewService(store, config.Auth{
		SigningKey: key,
		BcryptCost: cmd.BcryptCost,
	})
	if err != nil {
		return err
	}

	account, err := svc.Signup(cmd.DisplayName, cmd.Username, cmd.Email, cmd.Password)
	if err != nil {
		return err
	}

	fmt.Printf("Created account %d (%s <%s>)\n", account.ID, account.Username, account.Email)
	return nil
}
