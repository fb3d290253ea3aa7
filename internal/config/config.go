package config

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sethvargo/go-envconfig"
)

const (
	DefaultUsername = "Abdur-Rafay-AR"
	DefaultEndpoint = "https://api.github.com/graphql"
	DefaultOutDir   = "stats"
)

var (
	ErrMissingToken    = errors.New("GH_TOKEN or GITHUB_TOKEN is required")
	ErrMissingUsername = errors.New("GH_USERNAME or GITHUB_REPOSITORY_OWNER is required")
)

type env struct {
	Token       string `env:"GH_TOKEN"`
	GitHubToken string `env:"GITHUB_TOKEN"`

	Username        string `env:"GH_USERNAME"`
	RepositoryOwner string `env:"GITHUB_REPOSITORY_OWNER"`
	Repository      string `env:"GITHUB_REPOSITORY"`

	OutDir   string `env:"DEVCARDS_OUT_DIR, default=stats"`
	Endpoint string `env:"DEVCARDS_ENDPOINT, default=https://api.github.com/graphql"`
}

// Config is resolved once at startup and passed down explicitly.
type Config struct {
	Token    string
	Username string
	OutDir   string
	Endpoint string
}

// Load resolves a Config from l. A nil lookuper reads the process environment.
func Load(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	if l == nil {
		l = envconfig.OsLookuper()
	}

	var e env
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &e,
		Lookuper: l,
	}); err != nil {
		return nil, fmt.Errorf("config: process env: %w", err)
	}

	return &Config{
		Token:    firstNonEmpty(e.Token, e.GitHubToken),
		Username: firstNonEmpty(e.Username, e.RepositoryOwner, repositoryOwner(e.Repository), DefaultUsername),
		OutDir:   e.OutDir,
		Endpoint: e.Endpoint,
	}, nil
}

// Validate reports the first missing credential. It must pass before any
// network client is built.
func (c *Config) Validate() error {
	if c.Token == "" {
		return ErrMissingToken
	}
	if c.Username == "" {
		return ErrMissingUsername
	}
	return nil
}

func repositoryOwner(repo string) string {
	owner, _, ok := strings.Cut(repo, "/")
	if !ok {
		return ""
	}
	return owner
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
