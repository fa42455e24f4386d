package main

import (
	"reflect"
	"testing"
)

func secrets(values map[string]string) func(string) string {
	return func(name string) string { return values[name] }
}

func TestConfigFrom(t *testing.T) {
	cfg := map[string]any{
		"organization":     "orgX",
		"app_id":           float64(12345),
		"installation_id":  "678",
		"graphql_url":      "https://ghe.example.com/api/graphql",
		"include_patterns": []any{"frontend-*", 42, "backend-*"},
		"exclude_patterns": "*-archive",
	}

	config, err := configFrom(cfg, secrets(map[string]string{"GITHUB_APP_PRIVATE_KEY": "pem"}))
	if err != nil {
		t.Fatalf("configFrom() error: %v", err)
	}

	if config.Organization != "orgX" || config.AppID != 12345 || config.InstallationID != 678 {
		t.Errorf("config = %+v", config)
	}
	if config.GraphQLURL != "https://ghe.example.com/api/graphql" {
		t.Errorf("GraphQLURL = %q", config.GraphQLURL)
	}
	if !reflect.DeepEqual(config.IncludePatterns, []string{"frontend-*", "backend-*"}) {
		t.Errorf("IncludePatterns = %v", config.IncludePatterns)
	}
	if !reflect.DeepEqual(config.ExcludePatterns, []string{"*-archive"}) {
		t.Errorf("ExcludePatterns = %v", config.ExcludePatterns)
	}
}

func TestConfigFrom_Errors(t *testing.T) {
	tests := []struct {
		name    string
		cfg     map[string]any
		secrets map[string]string
		wantErr string
	}{
		{
			name:    "nil config",
			wantErr: "organization is required",
		},
		{
			name:    "no credentials",
			cfg:     map[string]any{"organization": "orgX"},
			wantErr: "authentication required: provide GITHUB_TOKEN or app_id + GITHUB_APP_PRIVATE_KEY",
		},
		{
			name:    "app id without key",
			cfg:     map[string]any{"organization": "orgX", "app_id": 1},
			wantErr: "authentication required: provide GITHUB_TOKEN or app_id + GITHUB_APP_PRIVATE_KEY",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := configFrom(tt.cfg, secrets(tt.secrets))
			if err == nil || err.Error() != tt.wantErr {
				t.Errorf("error = %v, want %q", err, tt.wantErr)
			}
		})
	}
}

func TestGetInt64(t *testing.T) {
	cfg := map[string]any{
		"int":     7,
		"int64":   int64(8),
		"float":   float64(9),
		"string":  "10",
		"garbage": "ten",
		"bool":    true,
	}
	want := map[string]int64{"int": 7, "int64": 8, "float": 9, "string": 10, "garbage": 0, "bool": 0, "missing": 0}
	for key, w := range want {
		if got := getInt64(cfg, key); got != w {
			t.Errorf("getInt64(%q) = %d, want %d", key, got, w)
		}
	}
}
