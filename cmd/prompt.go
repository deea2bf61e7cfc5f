package cmd

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// promptPassword asks for a password on the terminal when none is configured.
// Without a terminal the password stays empty.
func promptPassword(password *string, prompt string) error {
	if *password != "" {
		return nil
	}
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return nil
	}

	fmt.Fprint(os.Stderr, prompt)
	raw, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	*password = strings.TrimSpace(string(raw))
	return nil
}
