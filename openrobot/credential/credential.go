// Package credential resolves the OpenRobot API token from local sources.
//
// NewClient consults a Resolver only when no token was passed explicitly.
// Resolvers return an empty string, not an error, when their source simply
// has nothing to offer, so they compose into a Chain.
package credential

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/openrobot/openrobot-go/internal/config"
)

// EnvVar is the environment variable holding the API token.
const EnvVar = "OPENROBOT_API_TOKEN"

// Resolver produces an API token.
type Resolver interface {
	Resolve() (string, error)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func() (string, error)

// Resolve calls f().
func (f ResolverFunc) Resolve() (string, error) {
	return f()
}

// Static always resolves to itself.
type Static string

// Resolve returns the token.
func (s Static) Resolve() (string, error) {
	return strings.TrimSpace(string(s)), nil
}

// Env reads the named environment variable.
type Env string

// Resolve returns the variable's value.
func (e Env) Resolve() (string, error) {
	return strings.TrimSpace(os.Getenv(string(e))), nil
}

// DotEnv reads EnvVar from a dotenv file without touching the process environment.
type DotEnv string

// Resolve returns the token stored in the file, if any.
func (d DotEnv) Resolve() (string, error) {
	values, err := godotenv.Read(string(d))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("read %s: %w", string(d), err)
	}
	return strings.TrimSpace(values[EnvVar]), nil
}

// File reads the token key of a TOML configuration file.
// An empty path means the default configuration location.
type File string

// Resolve returns the configured token, if any.
func (f File) Resolve() (string, error) {
	cfg, _, exists, err := config.Load(string(f))
	if err != nil {
		return "", err
	}
	if !exists {
		return "", nil
	}
	return cfg.Token, nil
}

// Chain tries each resolver in order and returns the first non-empty token.
type Chain []Resolver

// Resolve walks the chain. The first error stops the walk.
func (c Chain) Resolve() (string, error) {
	for _, r := range c {
		if r == nil {
			continue
		}
		token, err := r.Resolve()
		if err != nil {
			return "", err
		}
		if token != "" {
			return token, nil
		}
	}
	return "", nil
}

// Default checks the environment, then ./.env, then the default config file.
func Default() Resolver {
	return Chain{
		Env(EnvVar),
		DotEnv(".env"),
		File(""),
	}
}
