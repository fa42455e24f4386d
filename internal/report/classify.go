package report

import "github.com/shurcooL/githubv4"

// IsAdmin reports whether the collaborator's effective permission is ADMIN.
func (c Collaborator) IsAdmin() bool {
	return c.Permission == githubv4.RepositoryPermissionAdmin
}

// IsExplicitAdmin reports whether the collaborator was granted admin on the
// repository itself rather than only inheriting it as an org owner.
//
// GitHub reports an org owner's implicit admin as one org source plus one
// repo source. An explicit grant adds another repo source, and a user who is
// not an org owner has no org source at all. This mirrors observed API
// behaviour, not a documented guarantee.
func (c Collaborator) IsExplicitAdmin() bool {
	orgAdmin := false
	adminSources := 0
	for _, source := range c.Sources {
		if source.Permission != githubv4.RepositoryPermissionAdmin {
			continue
		}
		adminSources++
		if source.Kind == SourceOrganization {
			orgAdmin = true
		}
	}
	return adminSources > implicitOwnerAdminSources || (adminSources > 0 && !orgAdmin)
}

// Admins returns the collaborators with effective ADMIN permission.
func (r CollabRepo) Admins() []Collaborator {
	var admins []Collaborator
	for _, c := range r.Collabs {
		if c.IsAdmin() {
			admins = append(admins, c)
		}
	}
	return admins
}

// ExplicitAdmins returns the collaborators explicitly granted ADMIN.
func (r CollabRepo) ExplicitAdmins() []Collaborator {
	var admins []Collaborator
	for _, c := range r.Collabs {
		if c.IsExplicitAdmin() {
			admins = append(admins, c)
		}
	}
	return admins
}
