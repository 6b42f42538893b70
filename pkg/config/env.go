package config

import (
	"errors"
	"fmt"

	"github.com/joho/godotenv"
)

// LoadEnv reads the given .env files into the process environment, later
// files overriding earlier ones and the existing environment. Without
// arguments it reads ./.env.
func LoadEnv(files ...string) error {
	if err := godotenv.Overload(files...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// MustLoadEnv works like LoadEnv but panics on failure.
func MustLoadEnv(files ...string) {
	if err := LoadEnv(files...); err != nil {
		panic(fmt.Sprintf("Failed to load env files: %v", err))
	}
}
