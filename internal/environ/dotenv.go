package environ

import (
	"fmt"
	"os"

	"github.com/subosito/gotenv"
)

// DefaultDotenv is the file loaded when no .env target is given.
const DefaultDotenv = ".env"

// LoadDotenv parses every file in paths, in order, and assigns each variable
// into e. Later files overwrite earlier ones, and every file overwrites
// variables already present in e.
//
// A missing or malformed file stops loading and returns a *FileError.
func LoadDotenv(e Environment, paths []string) error {
	for _, path := range paths {
		vars, err := readDotenv(path)
		if err != nil {
			return &FileError{Path: path, Err: err}
		}

		for key, value := range vars {
			if err := e.Set(key, value); err != nil {
				return &FileError{Path: path, Err: fmt.Errorf("setting %s: %w", key, err)}
			}
		}
	}

	return nil
}

func readDotenv(path string) (gotenv.Env, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return gotenv.StrictParse(f)
}
