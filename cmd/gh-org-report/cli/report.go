package cli

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/locktivity/gh-org-report/internal/render"
	"github.com/locktivity/gh-org-report/internal/report"
)

func newVulnsCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:     "vulns",
		Aliases: []string{"vulnerabilities"},
		Short:   "List open vulnerability alerts per repository, one column per ecosystem",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVulns(cmd, f)
		},
	}
}

func newAdminsCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "admins",
		Short: "List collaborators with explicit admin permission per repository",
		Long: `List collaborators with explicit admin permission per repository.

Organization owners are admins of every repository. They are only listed
where admin was also granted to them directly or through a team.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := setup(cmd, f)
			if err != nil {
				return err
			}

			repos, err := s.scanner.ScanCollaborators(cmd.Context())
			if err != nil {
				return err
			}
			return s.write(cmd, f, report.AdminContent(repos))
		},
	}
}

func runVulns(cmd *cobra.Command, f *flags) error {
	s, err := setup(cmd, f)
	if err != nil {
		return err
	}

	repos, err := s.scanner.ScanVulnerabilities(cmd.Context())
	if err != nil {
		return err
	}
	return s.write(cmd, f, report.VulnerabilityContent(repos))
}

// setup validates the output flags before any request is made, then builds
// the scanner.
func setup(cmd *cobra.Command, f *flags) (*session, error) {
	opts, err := renderOptions(f.format, f.multiline)
	if err != nil {
		return nil, err
	}

	config, logger, err := f.config(f.env(cmd.ErrOrStderr()))
	if err != nil {
		return nil, err
	}

	scanner, err := report.New(config)
	if err != nil {
		return nil, err
	}
	return &session{scanner: scanner, opts: opts, logger: logger}, nil
}

// session is one report invocation.
type session struct {
	scanner *report.Scanner
	opts    render.Options
	logger  zerolog.Logger
}

// write sorts content and renders it to the command's output. Sorting by a
// column the report does not have keeps the scan order.
func (s *session) write(cmd *cobra.Command, f *flags, content report.Content) error {
	if !hasColumn(content, f.sortBy) {
		s.logger.Warn().
			Str("sort_by", f.sortBy).
			Strs("columns", content.Columns).
			Msg("sort column not in report, keeping scan order")
	}
	content.SortBy(f.sortBy)
	return render.Render(cmd.OutOrStdout(), content, s.opts)
}

func hasColumn(content report.Content, column string) bool {
	for _, c := range content.Columns {
		if c == column {
			return true
		}
	}
	return false
}

func renderOptions(format string, multiline bool) (render.Options, error) {
	switch format {
	case FormatTable:
		return render.Options{Multiline: multiline, Borders: true}, nil
	case FormatPlain:
		return render.Options{Multiline: multiline}, nil
	case FormatCSV:
		return render.Options{Multiline: multiline, CSV: true}, nil
	default:
		return render.Options{}, fmt.Errorf("unknown format %q: use %s, %s or %s", format, FormatTable, FormatPlain, FormatCSV)
	}
}
