package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
)

// loadDotEnv loads a .env file from the working directory into the process
// environment, so that the subsequent env parsing step picks its values up.
// A missing file is not an error; anything else (unreadable file, malformed
// line) is surfaced.
func loadDotEnv() error {
	if err := godotenv.Load(); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("error loading .env file: %w", err)
	}

	return nil
}
