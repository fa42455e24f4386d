package report

import (
	"strings"

	"github.com/shurcooL/githubv4"
)

// Vulnerability is one open alert of a repository.
type Vulnerability struct {
	Ecosystem           githubv4.SecurityAdvisoryEcosystem
	Package             string
	CurrentRequirements string
	VulnerableRange     string
	Severity            githubv4.SecurityAdvisorySeverity
}

// Line renders v as a single cell line, e.g.
// "left-pad LOW = 1.0.0 (vulnerable: < 1.3.0)".
func (v Vulnerability) Line() string {
	severity, _ := SeverityLabel(v.Severity)
	parts := []string{v.Package, severity}
	if v.CurrentRequirements != "" {
		parts = append(parts, v.CurrentRequirements)
	}
	if v.VulnerableRange != "" {
		parts = append(parts, "(vulnerable: "+v.VulnerableRange+")")
	}
	return strings.Join(parts, " ")
}

// VulnRepo is a repository with its open vulnerability alerts.
type VulnRepo struct {
	Name       string
	IsArchived bool
	Vulns      []Vulnerability
}

// PermissionSource is one reason a collaborator holds a permission.
type PermissionSource struct {
	Permission githubv4.RepositoryPermission
	Kind       SourceKind
	Name       string
}

// Collaborator is a user with access to a repository.
type Collaborator struct {
	Login      string
	Permission githubv4.RepositoryPermission
	Sources    []PermissionSource
}

// CollabRepo is a repository with its collaborators.
type CollabRepo struct {
	Name       string
	IsArchived bool
	Collabs    []Collaborator
}
