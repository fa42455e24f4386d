// Package report scans a GitHub organization and turns the results into
// generic table content.
package report

import "github.com/rs/zerolog"

// StatusFunc is called to report indeterminate status updates.
type StatusFunc func(message string)

// Config holds the scanner configuration.
type Config struct {
	Organization    string   `json:"organization"`
	GitHubToken     string   `json:"github_token"`    // PAT or OAuth token
	AppID           int64    `json:"app_id"`          // GitHub App ID
	InstallationID  int64    `json:"installation_id"` // GitHub App installation ID
	PrivateKey      string   `json:"private_key"`     // GitHub App private key (PEM)
	GraphQLURL      string   `json:"graphql_url"`     // empty means api.github.com
	IncludePatterns []string `json:"include_patterns"`
	ExcludePatterns []string `json:"exclude_patterns"`

	// Logger receives warnings and traces; nil discards them.
	Logger *zerolog.Logger `json:"-"`
	// OnStatus is optional, set by main to report progress.
	OnStatus StatusFunc `json:"-"`
}

func (c Config) logger() zerolog.Logger {
	if c.Logger == nil {
		return zerolog.Nop()
	}
	return *c.Logger
}
