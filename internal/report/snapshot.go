package report

import "time"

// SchemaVersion is the version of the snapshot schema.
const SchemaVersion = "1.0.0"

// Snapshot is the machine-readable form of both reports for one organization.
type Snapshot struct {
	SchemaVersion   string  `json:"schema_version"`
	CollectedAt     string  `json:"collected_at"`
	Organization    string  `json:"organization"`
	ScanID          string  `json:"scan_id"`
	Vulnerabilities Content `json:"vulnerabilities"`
	Admins          Content `json:"admins"`
}

// NewSnapshot creates a new Snapshot with the current timestamp.
func NewSnapshot(org, scanID string) *Snapshot {
	return &Snapshot{
		SchemaVersion: SchemaVersion,
		CollectedAt:   time.Now().UTC().Format(time.RFC3339),
		Organization:  org,
		ScanID:        scanID,
	}
}
