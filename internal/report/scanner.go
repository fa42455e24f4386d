package report

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/locktivity/gh-org-report/internal/github"
)

// Scanner walks an organization's repositories and produces flattened,
// classified records.
type Scanner struct {
	client github.GitHubClient
	config Config
	scanID string
	logger zerolog.Logger
}

// status reports an indeterminate status update.
func (s *Scanner) status(message string) {
	s.logger.Debug().Msg(message)
	if s.config.OnStatus != nil {
		s.config.OnStatus(message)
	}
}

// New creates a new Scanner with the given configuration.
// It supports two authentication methods:
//   - GitHub App: Set AppID, InstallationID, and PrivateKey
//   - Token: Set GitHubToken
func New(config Config) (*Scanner, error) {
	var client github.GitHubClient
	var err error

	opts := []github.Option{github.WithLogger(config.logger())}
	if config.GraphQLURL != "" {
		opts = append(opts, github.WithGraphQLURL(config.GraphQLURL))
	}

	if config.AppID != 0 && config.PrivateKey != "" {
		if config.InstallationID == 0 {
			return nil, fmt.Errorf("installation_id is required when using GitHub App authentication")
		}
		client, err = github.NewClientFromApp(
			config.AppID,
			config.InstallationID,
			[]byte(config.PrivateKey),
			opts...,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create GitHub App client: %w", err)
		}
	} else if config.GitHubToken != "" {
		client = github.NewClient(config.GitHubToken, opts...)
	} else {
		return nil, fmt.Errorf("authentication required: provide a token or app_id + private_key")
	}

	return NewWithClient(config, client), nil
}

// NewWithClient creates a Scanner with a custom client (for testing).
func NewWithClient(config Config, client github.GitHubClient) *Scanner {
	scanID := uuid.New().String()
	return &Scanner{
		client: client,
		config: config,
		scanID: scanID,
		logger: config.logger().With().
			Str("scan_id", scanID).
			Str("org", config.Organization).
			Logger(),
	}
}

// ScanID identifies this scanner's run in logs and snapshots.
func (s *Scanner) ScanID() string {
	return s.scanID
}

// ConfigError reports a scanner configuration that cannot work, detected
// before any request is made.
type ConfigError struct {
	Err error
}

func (e *ConfigError) Error() string {
	return e.Err.Error()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// begin validates the configuration, resolves the organization and compiles
// the repository filter.
func (s *Scanner) begin(ctx context.Context) (*Filter, error) {
	if s.config.Organization == "" {
		return nil, &ConfigError{Err: fmt.Errorf("organization is required")}
	}

	filter, err := NewFilter(s.config.IncludePatterns, s.config.ExcludePatterns)
	if err != nil {
		return nil, &ConfigError{Err: err}
	}

	s.status(fmt.Sprintf("Connecting to GitHub org %s...", s.config.Organization))

	org, err := s.client.FetchOrganization(ctx, s.config.Organization)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve organization: %w", err)
	}
	s.logger.Info().
		Str("login", org.Login).
		Str("name", org.Name).
		Int("repositories", org.RepositoryCount).
		Msg("scanning organization")

	return filter, nil
}

// ScanVulnerabilities fetches every repository of the organization with its
// open vulnerability alerts. Records keep server order. Any page failure
// discards everything collected so far.
func (s *Scanner) ScanVulnerabilities(ctx context.Context) ([]VulnRepo, error) {
	filter, err := s.begin(ctx)
	if err != nil {
		return nil, err
	}
	return s.scanVulnerabilities(ctx, filter)
}

func (s *Scanner) scanVulnerabilities(ctx context.Context, filter *Filter) ([]VulnRepo, error) {
	s.status("Fetching vulnerability alerts...")

	var repos []VulnRepo
	err := s.client.FetchVulnerabilityAlerts(ctx, s.config.Organization, func(nodes []*github.VulnRepoNode) error {
		page, err := FlattenVulnPage(nodes)
		if err != nil {
			return err
		}
		for _, repo := range page {
			if !filter.Includes(repo.Name) {
				continue
			}
			s.logUnknownVulnLabels(repo)
			repos = append(repos, repo)
		}
		s.status(fmt.Sprintf("Found %d repositories...", len(repos)))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch vulnerability alerts: %w", err)
	}

	return repos, nil
}

// ScanCollaborators fetches every repository of the organization with its
// collaborators and their permission sources.
func (s *Scanner) ScanCollaborators(ctx context.Context) ([]CollabRepo, error) {
	filter, err := s.begin(ctx)
	if err != nil {
		return nil, err
	}
	return s.scanCollaborators(ctx, filter)
}

func (s *Scanner) scanCollaborators(ctx context.Context, filter *Filter) ([]CollabRepo, error) {
	s.status("Fetching collaborators...")

	var repos []CollabRepo
	err := s.client.FetchCollaborators(ctx, s.config.Organization, func(nodes []*github.CollabRepoNode) error {
		page, err := FlattenCollabPage(nodes)
		if err != nil {
			return err
		}
		for _, repo := range page {
			if filter.Includes(repo.Name) {
				repos = append(repos, repo)
			}
		}
		s.status(fmt.Sprintf("Found %d repositories...", len(repos)))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch collaborators: %w", err)
	}

	return repos, nil
}

// Collect runs both scans after a single organization lookup and assembles a
// snapshot of the two reports.
func (s *Scanner) Collect(ctx context.Context) (*Snapshot, error) {
	filter, err := s.begin(ctx)
	if err != nil {
		return nil, err
	}

	vulns, err := s.scanVulnerabilities(ctx, filter)
	if err != nil {
		return nil, err
	}
	collabs, err := s.scanCollaborators(ctx, filter)
	if err != nil {
		return nil, err
	}

	snapshot := NewSnapshot(s.config.Organization, s.scanID)
	snapshot.Vulnerabilities = VulnerabilityContent(vulns)
	snapshot.Vulnerabilities.SortBy(ColumnRepo)
	snapshot.Admins = AdminContent(collabs)
	snapshot.Admins.SortBy(ColumnRepo)

	s.status("Collection complete")

	return snapshot, nil
}

func (s *Scanner) logUnknownVulnLabels(repo VulnRepo) {
	for _, v := range repo.Vulns {
		_, knownEcosystem := EcosystemLabel(v.Ecosystem)
		_, knownSeverity := SeverityLabel(v.Severity)
		if !knownEcosystem || !knownSeverity {
			s.logger.Debug().
				Str("repo", repo.Name).
				Str("ecosystem", string(v.Ecosystem)).
				Str("severity", string(v.Severity)).
				Msg("unrecognized advisory value, passing through")
		}
	}
}
