package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/term"

	"github.com/locktivity/gh-org-report/internal/logging"
	"github.com/locktivity/gh-org-report/internal/report"
)

// Environment variables consulted when the matching flag is not set.
const (
	EnvOrg           = "GH_ORG"
	EnvToken         = "GH_OAUTH_TOKEN"
	EnvGitHubToken   = "GITHUB_TOKEN"
	EnvAppPrivateKey = "GITHUB_APP_PRIVATE_KEY"
)

// environment is the process state the configuration is resolved from.
type environment struct {
	getenv     func(string) string
	isTerminal func() bool
	readToken  func(prompt io.Writer) (string, error)
	stderr     io.Writer
}

func systemEnvironment(stderr io.Writer) environment {
	return environment{
		getenv: os.Getenv,
		isTerminal: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd()))
		},
		readToken: func(prompt io.Writer) (string, error) {
			fmt.Fprint(prompt, "GitHub token: ")
			b, err := term.ReadPassword(int(os.Stdin.Fd()))
			fmt.Fprintln(prompt)
			if err != nil {
				return "", fmt.Errorf("reading token: %w", err)
			}
			return string(b), nil
		},
		stderr: stderr,
	}
}

// config resolves flags and environment into a scanner configuration. Flags
// win over environment variables. Without any credentials on an interactive
// terminal the token is prompted for.
func (f *flags) config(env environment) (report.Config, zerolog.Logger, error) {
	logger := logging.NewLogger(env.stderr, f.logLevel)

	config := report.Config{
		Organization:    firstNonEmpty(f.org, env.getenv(EnvOrg)),
		GitHubToken:     firstNonEmpty(f.token, env.getenv(EnvToken), env.getenv(EnvGitHubToken)),
		AppID:           f.appID,
		InstallationID:  f.installationID,
		GraphQLURL:      f.graphqlURL,
		IncludePatterns: f.include,
		ExcludePatterns: f.exclude,
		Logger:          &logger,
	}

	if config.Organization == "" {
		return report.Config{}, logger, errors.New("organization is required: use --org or " + EnvOrg)
	}

	if f.privateKeyFile != "" {
		key, err := os.ReadFile(f.privateKeyFile)
		if err != nil {
			return report.Config{}, logger, fmt.Errorf("reading private key: %w", err)
		}
		config.PrivateKey = string(key)
	} else {
		config.PrivateKey = env.getenv(EnvAppPrivateKey)
	}

	usingApp := config.AppID != 0 && config.PrivateKey != ""
	if !usingApp && config.GitHubToken == "" && env.isTerminal() {
		token, err := env.readToken(env.stderr)
		if err != nil {
			return report.Config{}, logger, err
		}
		config.GitHubToken = strings.TrimSpace(token)
	}

	return config, logger, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
