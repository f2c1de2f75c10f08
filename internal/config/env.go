package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// EnvFiles are loaded in order by LoadEnvFiles; a later file overrides an
// earlier one.
var EnvFiles = []string{".env", ".env.local"}

// ErrNoEnvFile is returned by LoadEnvFiles when none of EnvFiles exists.
var ErrNoEnvFile = errors.New("no .env file found")

// LoadEnvFiles loads every one of EnvFiles found in dir into the process
// environment. Variables that are already set are not overwritten. It
// returns the paths that were loaded.
func LoadEnvFiles(dir string) ([]string, error) {
	var loaded []string
	merged := make(map[string]string)
	for _, name := range EnvFiles {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		vars, err := godotenv.Read(path)
		if err != nil {
			return loaded, err
		}
		for k, v := range vars {
			merged[k] = v
		}
		loaded = append(loaded, path)
	}
	if len(loaded) == 0 {
		return nil, ErrNoEnvFile
	}

	for k, v := range merged {
		if _, set := os.LookupEnv(k); set {
			continue
		}
		if err := os.Setenv(k, v); err != nil {
			return loaded, err
		}
	}
	return loaded, nil
}
