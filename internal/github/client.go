package github

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/rs/zerolog"
	"github.com/shurcooL/githubv4"
	"golang.org/x/oauth2"
)

// GitHubClient defines the interface for GitHub API operations.
// This interface allows for easy mocking in tests.
type GitHubClient interface {
	FetchOrganization(ctx context.Context, org string) (*Organization, error)
	FetchVulnerabilityAlerts(ctx context.Context, org string, callback func([]*VulnRepoNode) error) error
	FetchCollaborators(ctx context.Context, org string, callback func([]*CollabRepoNode) error) error
}

// Client wraps the GitHub GraphQL endpoint.
type Client struct {
	querier Querier
	logger  zerolog.Logger
}

// Ensure Client implements GitHubClient.
var _ GitHubClient = (*Client)(nil)

// Option configures a Client.
type Option func(*clientOptions)

type clientOptions struct {
	graphqlURL string
	logger     zerolog.Logger
}

// WithGraphQLURL points the client at a different GraphQL endpoint
// (GitHub Enterprise Server, httptest).
func WithGraphQLURL(url string) Option {
	return func(o *clientOptions) {
		o.graphqlURL = url
	}
}

// WithLogger sets the logger used for server-reported warnings and page traces.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *clientOptions) {
		o.logger = logger
	}
}

// NewClient creates a new GitHub client with the given token.
func NewClient(token string, opts ...Option) *Client {
	src := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	httpClient := oauth2.NewClient(context.Background(), src)

	return NewClientWithHTTP(httpClient, opts...)
}

// NewClientFromApp creates a client using GitHub App authentication.
// The installation token is still sent as a bearer token.
func NewClientFromApp(appID, installationID int64, privateKey []byte, opts ...Option) (*Client, error) {
	itr, err := ghinstallation.New(http.DefaultTransport, appID, installationID, privateKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create GitHub App transport: %w", err)
	}

	return NewClientWithHTTP(&http.Client{Transport: itr}, opts...), nil
}

// NewClientWithHTTP creates a client on top of an already authenticated
// HTTP client.
func NewClientWithHTTP(httpClient *http.Client, opts ...Option) *Client {
	o := clientOptions{
		graphqlURL: DefaultGraphQLURL,
		logger:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &Client{
		querier: newQuerier(httpClient, o.graphqlURL, o.logger),
		logger:  o.logger,
	}
}

// Querier returns the base querier of the client. Callers derive
// per-report queriers from it with WithHeader and WithErrorFilter.
func (c *Client) Querier() Querier {
	return c.querier
}

// Organization is the result of the preflight organization lookup.
type Organization struct {
	Login           string
	Name            string
	RepositoryCount int
}

// FetchOrganization resolves the organization before a scan so that a wrong
// login or a token without org access fails fast. An unknown login comes back
// as a MissingDataError for the organization field.
func (c *Client) FetchOrganization(ctx context.Context, org string) (*Organization, error) {
	var data OrganizationData
	variables := map[string]interface{}{
		"org": githubv4.String(org),
	}

	if err := c.querier.Query(ctx, OrganizationQuery, variables, &data); err != nil {
		return nil, err
	}
	if data.Organization == nil {
		return nil, &MissingDataError{Field: "organization"}
	}

	result := &Organization{
		Login:           data.Organization.Login,
		RepositoryCount: data.Organization.Repositories.TotalCount,
	}
	if data.Organization.Name != nil {
		result.Name = *data.Organization.Name
	}
	return result, nil
}

// FetchVulnerabilityAlerts fetches all repositories of an organization with
// their open vulnerability alerts. Each page's nodes are handed to callback
// in server order.
func (c *Client) FetchVulnerabilityAlerts(ctx context.Context, org string, callback func([]*VulnRepoNode) error) error {
	q := c.querier.WithHeader("Accept", VixenPreviewAccept)

	return c.paginate(func(cursor *githubv4.String) (PageInfo, error) {
		var data VulnerabilityAlertsData
		if err := q.Query(ctx, VulnerabilityAlertsQuery, pageVariables(org, cursor), &data); err != nil {
			return PageInfo{}, err
		}
		if data.Organization == nil {
			return PageInfo{}, &MissingDataError{Field: "organization"}
		}

		repos := data.Organization.Repositories
		if err := callback(repos.Nodes); err != nil {
			return PageInfo{}, err
		}
		return repos.PageInfo, nil
	})
}

// FetchCollaborators fetches all repositories of an organization with their
// collaborators and permission sources. Repositories the token cannot list
// collaborators for come back without collaborators; the matching server
// error is filtered out.
func (c *Client) FetchCollaborators(ctx context.Context, org string, callback func([]*CollabRepoNode) error) error {
	q := c.querier.
		WithHeader("Accept", VixenPreviewAccept).
		WithErrorFilter(IgnoreMessages(CollaboratorsAccessError))

	return c.paginate(func(cursor *githubv4.String) (PageInfo, error) {
		var data CollaboratorsData
		if err := q.Query(ctx, CollaboratorsQuery, pageVariables(org, cursor), &data); err != nil {
			return PageInfo{}, err
		}
		if data.Organization == nil {
			return PageInfo{}, &MissingDataError{Field: "organization"}
		}

		repos := data.Organization.Repositories
		if err := callback(repos.Nodes); err != nil {
			return PageInfo{}, err
		}
		return repos.PageInfo, nil
	})
}

// paginate calls fetch with an evolving cursor until the server reports no
// further pages. A page claiming a next page without an end cursor also ends
// the walk.
func (c *Client) paginate(fetch func(cursor *githubv4.String) (PageInfo, error)) error {
	var cursor *githubv4.String

	for page := 1; ; page++ {
		info, err := fetch(cursor)
		if err != nil {
			return err
		}

		c.logger.Debug().
			Int("page", page).
			Bool("has_next_page", info.HasNextPage).
			Interface("end_cursor", info.EndCursor).
			Msg("fetched page")

		if !info.HasNextPage || info.EndCursor == nil {
			return nil
		}
		cursor = info.EndCursor
	}
}

func pageVariables(org string, cursor *githubv4.String) map[string]interface{} {
	return map[string]interface{}{
		"org":    githubv4.String(org),
		"cursor": cursor,
	}
}

// Querier posts GraphQL documents and decodes the typed data payload.
// Queriers are values: WithHeader and WithErrorFilter return modified copies.
type Querier struct {
	httpClient *http.Client
	url        string
	headers    http.Header
	filter     ErrorFilter
	logger     zerolog.Logger
}

func newQuerier(httpClient *http.Client, url string, logger zerolog.Logger) Querier {
	headers := http.Header{}
	headers.Set("Accept", AcceptHeader)
	headers.Set("X-GitHub-Api-Version", APIVersion)

	return Querier{
		httpClient: httpClient,
		url:        url,
		headers:    headers,
		logger:     logger,
	}
}

// WithHeader returns a copy of q that sets the header on every request.
func (q Querier) WithHeader(name, value string) Querier {
	q.headers = q.headers.Clone()
	q.headers.Set(name, value)
	return q
}

// WithErrorFilter returns a copy of q that only reports server errors for
// which filter returns true.
func (q Querier) WithErrorFilter(filter ErrorFilter) Querier {
	q.filter = filter
	return q
}

type graphQLRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []GraphQLError  `json:"errors"`
}

// Query executes document with variables and decodes the data payload into
// out. Server-reported errors that survive the filter are logged as warnings
// and do not fail the call as long as data is present.
func (q Querier) Query(ctx context.Context, document string, variables map[string]interface{}, out interface{}) error {
	body, err := json.Marshal(graphQLRequest{Query: document, Variables: variables})
	if err != nil {
		return &TransportError{Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, q.url, bytes.NewReader(body))
	if err != nil {
		return &TransportError{Cause: err}
	}
	for name, values := range q.headers {
		for _, v := range values {
			req.Header.Add(name, v)
		}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := q.httpClient.Do(req)
	if err != nil {
		return &TransportError{Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &TransportError{
			StatusCode: resp.StatusCode,
			Cause:      fmt.Errorf("graphql endpoint returned status %d: %s", resp.StatusCode, bytes.TrimSpace(snippet)),
		}
	}

	var envelope graphQLResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return &TransportError{Cause: fmt.Errorf("decoding response: %w", err)}
	}

	q.reportErrors(envelope.Errors)

	data := bytes.TrimSpace(envelope.Data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return &MissingDataError{}
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &TransportError{Cause: fmt.Errorf("decoding response data: %w", err)}
	}
	return nil
}

func (q Querier) reportErrors(errs []GraphQLError) {
	for _, e := range errs {
		if q.filter != nil && !q.filter(e) {
			continue
		}
		q.logger.Warn().
			Str("error", e.Message).
			Str("type", e.Type).
			Interface("path", e.Path).
			Msg("graphql error")
	}
}
