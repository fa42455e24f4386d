// epack-collector-ghreport collects the vulnerability and admin reports of a
// GitHub organization as one JSON snapshot.
//
// The binary is executed by the epack collector runner through the epack
// Component SDK.
package main

import (
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/locktivity/epack/componentsdk"

	"github.com/locktivity/gh-org-report/internal/github"
	"github.com/locktivity/gh-org-report/internal/logging"
	"github.com/locktivity/gh-org-report/internal/report"
)

// Version is set at build time via -ldflags
var Version = "dev"

func main() {
	componentsdk.RunCollector(componentsdk.CollectorSpec{
		Name:        "ghreport",
		Version:     Version,
		Description: "Collects open vulnerability alerts and explicit repository admins of a GitHub organization",
	}, run)
}

func run(ctx componentsdk.CollectorContext) error {
	cfg := ctx.Config()
	config, err := configFrom(cfg, ctx.Secret)
	if err != nil {
		return componentsdk.NewConfigError("%v", err)
	}

	logger := logging.NewJSONLogger(os.Stderr, getString(cfg, "log_level"))
	config.Logger = &logger

	scanner, err := report.New(config)
	if err != nil {
		return componentsdk.NewConfigError("creating scanner: %v", err)
	}
	snapshot, err := scanner.Collect(ctx.Context())
	if err != nil {
		return collectError(err)
	}

	return ctx.Emit(snapshot)
}

// collectError maps a Collect failure onto the SDK error kind that carries
// the matching exit code.
func collectError(err error) error {
	var configErr *report.ConfigError
	if errors.As(err, &configErr) {
		return componentsdk.NewConfigError("%v", err)
	}

	var transportErr *github.TransportError
	if errors.As(err, &transportErr) {
		switch transportErr.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return componentsdk.NewAuthError("collecting reports: %v", err)
		}
		return componentsdk.NewNetworkError("collecting reports: %v", err)
	}

	var missingErr *github.MissingDataError
	if errors.As(err, &missingErr) {
		return componentsdk.NewNetworkError("collecting reports: %v", err)
	}

	return fmt.Errorf("collecting reports: %w", err)
}
