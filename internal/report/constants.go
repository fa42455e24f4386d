package report

// Pattern constants.
const DefaultIncludePattern = "*"

// Fixed column names of the generic content.
const (
	ColumnRepo     = "repo"
	ColumnArchived = "archived"
	ColumnAdmins   = "admins"
)

// Permission label that marks an administrator.
const adminLabel = "ADMIN"

// More ADMIN permission sources than this always mean an explicit grant.
// An org owner without one shows exactly an org source and a repo source.
const implicitOwnerAdminSources = 2
