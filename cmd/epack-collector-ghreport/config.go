package main

import (
	"errors"
	"strconv"

	"github.com/locktivity/gh-org-report/internal/report"
)

// configFrom builds the scanner configuration from the collector config map
// and secrets.
func configFrom(cfg map[string]any, secret func(name string) string) (report.Config, error) {
	config := report.Config{
		Organization:    getString(cfg, "organization"),
		GitHubToken:     secret("GITHUB_TOKEN"),
		AppID:           getInt64(cfg, "app_id"),
		InstallationID:  getInt64(cfg, "installation_id"),
		PrivateKey:      secret("GITHUB_APP_PRIVATE_KEY"),
		GraphQLURL:      getString(cfg, "graphql_url"),
		IncludePatterns: getStringSlice(cfg, "include_patterns"),
		ExcludePatterns: getStringSlice(cfg, "exclude_patterns"),
	}

	if config.Organization == "" {
		return report.Config{}, errors.New("organization is required")
	}

	hasAppAuth := config.AppID != 0 && config.PrivateKey != ""
	if !hasAppAuth && config.GitHubToken == "" {
		return report.Config{}, errors.New("authentication required: provide GITHUB_TOKEN or app_id + GITHUB_APP_PRIVATE_KEY")
	}
	return config, nil
}

func getString(cfg map[string]any, key string) string {
	if v, ok := cfg[key].(string); ok {
		return v
	}
	return ""
}

// getInt64 accepts JSON numbers and numeric strings, since app IDs are often
// quoted in YAML configs.
func getInt64(cfg map[string]any, key string) int64 {
	switch v := cfg[key].(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		return int64(v)
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0
		}
		return n
	}
	return 0
}

func getStringSlice(cfg map[string]any, key string) []string {
	switch v := cfg[key].(type) {
	case []string:
		return v
	case []any:
		result := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				result = append(result, s)
			}
		}
		return result
	case string:
		if v != "" {
			return []string{v}
		}
	}
	return nil
}
