package report

import (
	"fmt"

	"github.com/locktivity/gh-org-report/internal/github"
)

// MalformedResponseError reports a response that breaks an assumption the
// API is expected to hold, such as a null entry inside a populated list.
type MalformedResponseError struct {
	Path   string
	Index  int
	Reason string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed response at %s[%d]: %s", e.Path, e.Index, e.Reason)
}

const nullEntry = "null entry in list"

// FlattenVulnPage converts one page of repository nodes into VulnRepo
// records, preserving node order. Missing alert connections become empty
// alert lists.
func FlattenVulnPage(nodes []*github.VulnRepoNode) ([]VulnRepo, error) {
	repos := make([]VulnRepo, 0, len(nodes))
	for i, node := range nodes {
		if node == nil {
			return nil, &MalformedResponseError{Path: "repositories.nodes", Index: i, Reason: nullEntry}
		}

		vulns, err := flattenAlerts(node)
		if err != nil {
			return nil, err
		}
		repos = append(repos, VulnRepo{
			Name:       node.Name,
			IsArchived: node.IsArchived,
			Vulns:      vulns,
		})
	}
	return repos, nil
}

func flattenAlerts(repo *github.VulnRepoNode) ([]Vulnerability, error) {
	if repo.VulnerabilityAlerts == nil {
		return []Vulnerability{}, nil
	}

	path := fmt.Sprintf("repositories[%s].vulnerabilityAlerts.nodes", repo.Name)
	vulns := make([]Vulnerability, 0, len(repo.VulnerabilityAlerts.Nodes))
	for i, alert := range repo.VulnerabilityAlerts.Nodes {
		if alert == nil {
			return nil, &MalformedResponseError{Path: path, Index: i, Reason: nullEntry}
		}
		sv := alert.SecurityVulnerability
		if sv == nil {
			return nil, &MalformedResponseError{Path: path, Index: i, Reason: "alert without securityVulnerability"}
		}

		var requirements string
		if alert.VulnerableRequirements != nil {
			requirements = *alert.VulnerableRequirements
		}
		vulns = append(vulns, Vulnerability{
			Ecosystem:           sv.Package.Ecosystem,
			Package:             sv.Package.Name,
			CurrentRequirements: requirements,
			VulnerableRange:     sv.VulnerableVersionRange,
			Severity:            sv.Severity,
		})
	}
	return vulns, nil
}

// FlattenCollabPage converts one page of repository nodes into CollabRepo
// records, preserving node order. Repositories whose collaborators could not
// be listed come back with no collaborators.
func FlattenCollabPage(nodes []*github.CollabRepoNode) ([]CollabRepo, error) {
	repos := make([]CollabRepo, 0, len(nodes))
	for i, node := range nodes {
		if node == nil {
			return nil, &MalformedResponseError{Path: "repositories.nodes", Index: i, Reason: nullEntry}
		}

		collabs, err := flattenCollaborators(node)
		if err != nil {
			return nil, err
		}
		repos = append(repos, CollabRepo{
			Name:       node.Name,
			IsArchived: node.IsArchived,
			Collabs:    collabs,
		})
	}
	return repos, nil
}

func flattenCollaborators(repo *github.CollabRepoNode) ([]Collaborator, error) {
	if repo.Collaborators == nil {
		return []Collaborator{}, nil
	}

	path := fmt.Sprintf("repositories[%s].collaborators.edges", repo.Name)
	collabs := make([]Collaborator, 0, len(repo.Collaborators.Edges))
	for i, edge := range repo.Collaborators.Edges {
		if edge == nil {
			return nil, &MalformedResponseError{Path: path, Index: i, Reason: nullEntry}
		}
		if edge.Node == nil {
			return nil, &MalformedResponseError{Path: path, Index: i, Reason: "edge without a collaborator node"}
		}

		sources := make([]PermissionSource, 0, len(edge.PermissionSources))
		for j, ps := range edge.PermissionSources {
			source, err := flattenPermissionSource(ps)
			if err != nil {
				return nil, &MalformedResponseError{
					Path:   fmt.Sprintf("%s[%d].permissionSources", path, i),
					Index:  j,
					Reason: err.Error(),
				}
			}
			sources = append(sources, source)
		}

		collabs = append(collabs, Collaborator{
			Login:      edge.Node.Login,
			Permission: edge.Permission,
			Sources:    sources,
		})
	}
	return collabs, nil
}

// flattenPermissionSource maps the Organization | Repository | Team union
// onto a (kind, name) pair.
func flattenPermissionSource(ps github.PermissionSourceNode) (PermissionSource, error) {
	source := PermissionSource{Permission: ps.Permission}

	var name *string
	switch ps.Source.Typename {
	case "Organization":
		source.Kind = SourceOrganization
		name = ps.Source.Login
	case "Repository":
		source.Kind = SourceRepository
		name = ps.Source.Name
	case "Team":
		source.Kind = SourceTeam
		name = ps.Source.Name
	default:
		return PermissionSource{}, fmt.Errorf("unknown permission source type %q", ps.Source.Typename)
	}

	if name == nil {
		return PermissionSource{}, fmt.Errorf("%s permission source without a name", ps.Source.Typename)
	}
	source.Name = *name
	return source, nil
}
