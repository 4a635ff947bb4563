package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/postboard/postboard/internal/auth"
)

// GenKeyCommand prints a fresh token signing key for AUTH_SIGNING_KEY.
type GenKeyCommand struct{}

// NewGenKeyCommand creates a new GenKeyCommand
func NewGenKeyCommand() *GenKeyCommand {
	return &GenKeyCommand{}
}

// ParseFlags parses command line flags
func (cmd *GenKeyCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("gen-key", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s gen-key\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Generate a random 32-byte token signing key (hex).\n")
	}
	return fs.Parse(args)
}

// Run prints the key.
func (cmd *GenKeyCommand) Run() error {
	key, err := auth.GenerateSigningKey()
	if err != nil {
		return err
	}
	fmt.Println(key)
	return nil
}
