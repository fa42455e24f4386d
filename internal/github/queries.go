// Package github provides GraphQL client functionality for GitHub API.
package github

import (
	"fmt"

	"github.com/shurcooL/githubv4"
)

// VulnerabilityAlertsQuery pages through an organization's repositories with
// their open Dependabot vulnerability alerts.
var VulnerabilityAlertsQuery = fmt.Sprintf(`query RepoVulns($org: String!, $cursor: String) {
  organization(login: $org) {
    repositories(first: %d, after: $cursor) {
      pageInfo { hasNextPage endCursor }
      nodes {
        name
        isArchived
        vulnerabilityAlerts(first: %d, states: [OPEN]) {
          nodes {
            vulnerableRequirements
            securityVulnerability {
              severity
              vulnerableVersionRange
              package { ecosystem name }
            }
          }
        }
      }
    }
  }
}`, RepositoriesPageSize, NestedPageSize)

// CollaboratorsQuery pages through an organization's repositories with each
// collaborator's effective permission and the sources granting it.
var CollaboratorsQuery = fmt.Sprintf(`query RepoCollabs($org: String!, $cursor: String) {
  organization(login: $org) {
    repositories(first: %d, after: $cursor) {
      pageInfo { hasNextPage endCursor }
      nodes {
        name
        isArchived
        collaborators(first: %d) {
          edges {
            permission
            node { login }
            permissionSources {
              permission
              source {
                __typename
                ... on Organization { login }
                ... on Repository { name }
                ... on Team { name }
              }
            }
          }
        }
      }
    }
  }
}`, RepositoriesPageSize, NestedPageSize)

// PageInfo is the cursor block of a repository connection.
type PageInfo struct {
	HasNextPage bool             `json:"hasNextPage"`
	EndCursor   *githubv4.String `json:"endCursor"`
}

// VulnerabilityAlertsData is the data payload of VulnerabilityAlertsQuery.
// Every nullable field in the schema is a pointer or a nil-able slice.
type VulnerabilityAlertsData struct {
	Organization *struct {
		Repositories struct {
			PageInfo PageInfo        `json:"pageInfo"`
			Nodes    []*VulnRepoNode `json:"nodes"`
		} `json:"repositories"`
	} `json:"organization"`
}

// VulnRepoNode is one repository of a VulnerabilityAlertsQuery page.
type VulnRepoNode struct {
	Name                string               `json:"name"`
	IsArchived          bool                 `json:"isArchived"`
	VulnerabilityAlerts *VulnAlertConnection `json:"vulnerabilityAlerts"`
}

// VulnAlertConnection is the vulnerabilityAlerts connection of a repository.
type VulnAlertConnection struct {
	Nodes []*VulnAlertNode `json:"nodes"`
}

// VulnAlertNode is a single vulnerability alert of a repository.
type VulnAlertNode struct {
	VulnerableRequirements *string                `json:"vulnerableRequirements"`
	SecurityVulnerability  *SecurityVulnerability `json:"securityVulnerability"`
}

// SecurityVulnerability is the advisory entry an alert was raised for.
type SecurityVulnerability struct {
	Severity               githubv4.SecurityAdvisorySeverity `json:"severity"`
	VulnerableVersionRange string                            `json:"vulnerableVersionRange"`
	Package                SecurityAdvisoryPackage           `json:"package"`
}

// SecurityAdvisoryPackage identifies the vulnerable package.
type SecurityAdvisoryPackage struct {
	Ecosystem githubv4.SecurityAdvisoryEcosystem `json:"ecosystem"`
	Name      string                             `json:"name"`
}

// CollaboratorsData is the data payload of CollaboratorsQuery.
type CollaboratorsData struct {
	Organization *struct {
		Repositories struct {
			PageInfo PageInfo          `json:"pageInfo"`
			Nodes    []*CollabRepoNode `json:"nodes"`
		} `json:"repositories"`
	} `json:"organization"`
}

// CollabRepoNode is one repository of a CollaboratorsQuery page.
type CollabRepoNode struct {
	Name          string                  `json:"name"`
	IsArchived    bool                    `json:"isArchived"`
	Collaborators *CollaboratorConnection `json:"collaborators"`
}

// CollaboratorConnection is the collaborators connection of a repository.
type CollaboratorConnection struct {
	Edges []*CollaboratorEdge `json:"edges"`
}

// CollaboratorEdge links a user to a repository with an effective permission.
type CollaboratorEdge struct {
	Permission        githubv4.RepositoryPermission `json:"permission"`
	Node              *CollaboratorUser             `json:"node"`
	PermissionSources []PermissionSourceNode        `json:"permissionSources"`
}

// CollaboratorUser is the user end of a CollaboratorEdge.
type CollaboratorUser struct {
	Login string `json:"login"`
}

// PermissionSourceNode explains one grant of a collaborator's permission.
type PermissionSourceNode struct {
	Permission githubv4.RepositoryPermission `json:"permission"`
	Source     PermissionGranter             `json:"source"`
}

// PermissionGranter is the Organization | Repository | Team union. Only the
// fields selected by the matching fragment are populated.
type PermissionGranter struct {
	Typename string  `json:"__typename"`
	Login    *string `json:"login"`
	Name     *string `json:"name"`
}

// OrganizationQuery is the preflight lookup run before a scan.
const OrganizationQuery = `query Org($org: String!) {
  organization(login: $org) {
    login
    name
    repositories { totalCount }
  }
}`

// OrganizationData is the data payload of OrganizationQuery.
type OrganizationData struct {
	Organization *struct {
		Login        string  `json:"login"`
		Name         *string `json:"name"`
		Repositories struct {
			TotalCount int `json:"totalCount"`
		} `json:"repositories"`
	} `json:"organization"`
}
