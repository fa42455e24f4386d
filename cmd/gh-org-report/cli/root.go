// Package cli implements the gh-org-report commands.
package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/locktivity/gh-org-report/internal/report"
)

// Output formats accepted by --format.
const (
	FormatTable = "table"
	FormatPlain = "plain"
	FormatCSV   = "csv"
)

// flags holds the values of the persistent flags shared by every report.
type flags struct {
	org            string
	token          string
	appID          int64
	installationID int64
	privateKeyFile string
	graphqlURL     string
	format         string
	multiline      bool
	sortBy         string
	include        []string
	exclude        []string
	logLevel       string

	env func(stderr io.Writer) environment
}

// NewRootCommand builds the command tree. Running the root command without a
// subcommand prints the vulnerability report.
func NewRootCommand(version string) *cobra.Command {
	return newRootCommand(version, systemEnvironment)
}

func newRootCommand(version string, env func(stderr io.Writer) environment) *cobra.Command {
	f := &flags{env: env}

	rootCmd := &cobra.Command{
		Use:   "gh-org-report",
		Short: "Report on the repositories of a GitHub organization",
		Long: `gh-org-report walks every repository of a GitHub organization through the
GraphQL API and prints either the open Dependabot vulnerability alerts grouped
by ecosystem, or the collaborators holding explicit admin permission.

The token is read from --token, GH_OAUTH_TOKEN or GITHUB_TOKEN. Values from
.env.local and .env in the working directory are loaded first.`,
		Version:      version,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVulns(cmd, f)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&f.org, "org", "", "organization login (env: GH_ORG)")
	pf.StringVar(&f.token, "token", "", "access token (env: GH_OAUTH_TOKEN, GITHUB_TOKEN)")
	pf.Int64Var(&f.appID, "app-id", 0, "GitHub App ID, used with --installation-id and --private-key-file")
	pf.Int64Var(&f.installationID, "installation-id", 0, "GitHub App installation ID")
	pf.StringVar(&f.privateKeyFile, "private-key-file", "", "GitHub App private key in PEM format (env: GITHUB_APP_PRIVATE_KEY holds the key itself)")
	pf.StringVar(&f.graphqlURL, "graphql-url", "", "GraphQL endpoint, for GitHub Enterprise Server")
	pf.StringVar(&f.format, "format", FormatTable, "output format: table, plain or csv")
	pf.BoolVar(&f.multiline, "multiline", true, "put each entry of a multi-value cell on its own line")
	pf.StringVar(&f.sortBy, "sort-by", report.ColumnRepo, "column to sort rows by")
	pf.StringArrayVar(&f.include, "include", nil, "only report repositories matching this glob (repeatable)")
	pf.StringArrayVar(&f.exclude, "exclude", nil, "skip repositories matching this glob (repeatable)")
	pf.StringVar(&f.logLevel, "log-level", "warn", "log level: debug, info, warn or error")

	rootCmd.AddCommand(newVulnsCmd(f))
	rootCmd.AddCommand(newAdminsCmd(f))

	return rootCmd
}
