package main

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/locktivity/epack/componentsdk"

	"github.com/locktivity/gh-org-report/internal/github"
	"github.com/locktivity/gh-org-report/internal/report"
)

func TestCollectError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "missing organization is a config error",
			err:  &report.ConfigError{Err: errors.New("organization is required")},
			want: "config",
		},
		{
			name: "unauthorized response is an auth error",
			err:  &github.TransportError{StatusCode: http.StatusUnauthorized, Cause: errors.New("bad credentials")},
			want: "auth",
		},
		{
			name: "forbidden response behind a wrap is an auth error",
			err:  fmt.Errorf("scanning vulnerabilities: %w", &github.TransportError{StatusCode: http.StatusForbidden, Cause: errors.New("forbidden")}),
			want: "auth",
		},
		{
			name: "server error is a network error",
			err:  &github.TransportError{StatusCode: http.StatusBadGateway, Cause: errors.New("bad gateway")},
			want: "network",
		},
		{
			name: "connection failure is a network error",
			err:  &github.TransportError{Cause: errors.New("connection refused")},
			want: "network",
		},
		{
			name: "unknown organization is a network error",
			err:  &github.MissingDataError{Field: "organization"},
			want: "network",
		},
		{
			name: "malformed response keeps its own type",
			err:  &report.MalformedResponseError{Path: "organization.repositories", Index: 1, Reason: "null node"},
			want: "other",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collectError(tt.err)
			if kind := errorKind(got); kind != tt.want {
				t.Errorf("collectError(%v) kind = %s, want %s", tt.err, kind, tt.want)
			}
			if !errors.Is(got, tt.err) && tt.want == "other" {
				t.Errorf("collectError(%v) does not wrap the cause", tt.err)
			}
		})
	}
}

func errorKind(err error) string {
	var configErr componentsdk.ConfigError
	var authErr componentsdk.AuthError
	var networkErr componentsdk.NetworkError
	switch {
	case errors.As(err, &configErr):
		return "config"
	case errors.As(err, &authErr):
		return "auth"
	case errors.As(err, &networkErr):
		return "network"
	default:
		return "other"
	}
}
