package github

// API configuration.
const (
	DefaultGraphQLURL = "https://api.github.com/graphql"
	AcceptHeader      = "application/vnd.github+json"
	APIVersion        = "2022-11-28"
)

// VixenPreviewAccept enables the vulnerability alert and permission source
// fields that were originally gated behind the vixen preview.
const VixenPreviewAccept = "application/vnd.github.vixen-preview+json"

// CollaboratorsAccessError is reported once per repository the token cannot
// list collaborators for. It is expected noise in an org-wide scan.
const CollaboratorsAccessError = "Must have push access to view repository collaborators."

// Page sizes for the repository connections and their nested collections.
const (
	RepositoriesPageSize = 50
	NestedPageSize       = 100
)
