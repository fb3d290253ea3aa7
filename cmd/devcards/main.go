package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vukan322/devcards/internal/config"
	"github.com/vukan322/devcards/internal/generate"
	"github.com/vukan322/devcards/internal/output"
	"github.com/vukan322/devcards/internal/providers"
	"github.com/vukan322/devcards/internal/providers/demo"
	githubprovider "github.com/vukan322/devcards/internal/providers/github"
)

var Version = "dev"

type flags struct {
	user    string
	out     string
	demo    bool
	verbose bool
}

// newGitHubProvider is swapped in tests to observe whether a client is built.
var newGitHubProvider = func(token, endpoint string) providers.Provider {
	return githubprovider.New(token, endpoint)
}

func main() {
	_ = godotenv.Load()

	os.Exit(execute(os.Args[1:], envconfig.OsLookuper(), os.Stderr))
}

// execute runs the root command and maps any failure to exit code 1.
func execute(args []string, lookuper envconfig.Lookuper, stderr io.Writer) int {
	cmd := newRootCmd(lookuper)
	cmd.SetArgs(args)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd(lookuper envconfig.Lookuper) *cobra.Command {
	var (
		f      flags
		logger *logrus.Logger
	)

	cmd := &cobra.Command{
		Use:   "devcards",
		Short: "Render GitHub top-languages and activity cards as SVG",
		Long: `devcards fetches a user's contribution calendar and repository languages
from the GitHub GraphQL API and writes two SVG cards: top-languages.svg and activity.svg.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger = logrus.New()
			logger.SetOutput(cmd.ErrOrStderr())
			if f.verbose {
				logger.SetLevel(logrus.DebugLevel)
			} else {
				logger.SetLevel(logrus.InfoLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), f, lookuper, logger)
		},
	}

	cmd.PersistentFlags().BoolVarP(&f.verbose, "verbose", "v", false, "verbose output")
	cmd.Flags().StringVar(&f.user, "user", "", "GitHub username (overrides GH_USERNAME / GITHUB_REPOSITORY_OWNER)")
	cmd.Flags().StringVar(&f.out, "out", "", "output directory (overrides DEVCARDS_OUT_DIR)")
	cmd.Flags().BoolVar(&f.demo, "demo", false, "render from a built-in dataset instead of the GitHub API")

	return cmd
}

func run(ctx context.Context, f flags, lookuper envconfig.Lookuper, logger *logrus.Logger) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load(ctx, lookuper)
	if err != nil {
		return err
	}
	if f.user != "" {
		cfg.Username = f.user
	}
	if f.out != "" {
		cfg.OutDir = f.out
	}

	var p providers.Provider
	if f.demo {
		p = demo.New()
	} else {
		if err := cfg.Validate(); err != nil {
			return err
		}
		p = newGitHubProvider(cfg.Token, cfg.Endpoint)
	}
	logger.WithField("endpoint", cfg.Endpoint).Debug("configuration resolved")

	_, err = generate.Run(ctx, generate.Options{
		Provider: p,
		Writer:   output.New(cfg.OutDir),
		Username: cfg.Username,
		Logger:   logger,
	})
	return err
}
