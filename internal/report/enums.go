package report

import "github.com/shurcooL/githubv4"

// EcosystemLabel returns the column label of an advisory ecosystem. known is
// false for values added to the API after this switch was written; those
// pass through unchanged.
func EcosystemLabel(e githubv4.SecurityAdvisoryEcosystem) (label string, known bool) {
	switch e {
	case githubv4.SecurityAdvisoryEcosystemActions:
		return "ACTIONS", true
	case githubv4.SecurityAdvisoryEcosystemComposer:
		return "COMPOSER", true
	case githubv4.SecurityAdvisoryEcosystemErlang:
		return "ERLANG", true
	case githubv4.SecurityAdvisoryEcosystemGo:
		return "GO", true
	case githubv4.SecurityAdvisoryEcosystemMaven:
		return "MAVEN", true
	case githubv4.SecurityAdvisoryEcosystemNpm:
		return "NPM", true
	case githubv4.SecurityAdvisoryEcosystemNuget:
		return "NUGET", true
	case githubv4.SecurityAdvisoryEcosystemPip:
		return "PIP", true
	case githubv4.SecurityAdvisoryEcosystemPub:
		return "PUB", true
	case githubv4.SecurityAdvisoryEcosystemRubygems:
		return "RUBYGEMS", true
	case githubv4.SecurityAdvisoryEcosystemRust:
		return "RUST", true
	case githubv4.SecurityAdvisoryEcosystemSwift:
		return "SWIFT", true
	}
	return string(e), false
}

// SeverityLabel returns the display text of an advisory severity.
func SeverityLabel(s githubv4.SecurityAdvisorySeverity) (label string, known bool) {
	switch s {
	case githubv4.SecurityAdvisorySeverityLow:
		return "LOW", true
	case githubv4.SecurityAdvisorySeverityModerate:
		return "MODERATE", true
	case githubv4.SecurityAdvisorySeverityHigh:
		return "HIGH", true
	case githubv4.SecurityAdvisorySeverityCritical:
		return "CRITICAL", true
	}
	return string(s), false
}

// PermissionLabel returns the display text of a repository permission.
func PermissionLabel(p githubv4.RepositoryPermission) (label string, known bool) {
	switch p {
	case githubv4.RepositoryPermissionRead:
		return "READ", true
	case githubv4.RepositoryPermissionTriage:
		return "TRIAGE", true
	case githubv4.RepositoryPermissionWrite:
		return "WRITE", true
	case githubv4.RepositoryPermissionMaintain:
		return "MAINTAIN", true
	case githubv4.RepositoryPermissionAdmin:
		return adminLabel, true
	}
	return string(p), false
}

// SourceKind is the variant of a permission source: the organization, the
// repository itself, or a team.
type SourceKind int

// Permission source variants.
const (
	SourceOrganization SourceKind = iota + 1
	SourceRepository
	SourceTeam
)

// String returns the short display name of k.
func (k SourceKind) String() string {
	switch k {
	case SourceOrganization:
		return "org"
	case SourceRepository:
		return "repo"
	case SourceTeam:
		return "team"
	}
	return "unknown"
}
