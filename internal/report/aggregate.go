package report

import (
	"sort"
	"strconv"
)

// VulnerabilityContent builds one row per repository with a column per
// ecosystem seen anywhere in repos. Ecosystem columns follow the fixed
// columns in lexicographic order.
func VulnerabilityContent(repos []VulnRepo) Content {
	seen := make(map[string]struct{})
	for _, repo := range repos {
		for _, v := range repo.Vulns {
			eco, _ := EcosystemLabel(v.Ecosystem)
			seen[eco] = struct{}{}
		}
	}
	ecosystems := make([]string, 0, len(seen))
	for eco := range seen {
		ecosystems = append(ecosystems, eco)
	}
	sort.Strings(ecosystems)

	rows := make([]Row, 0, len(repos))
	for _, repo := range repos {
		row := repoRow(repo.Name, repo.IsArchived)

		lines := make(map[string][]string)
		for _, v := range repo.Vulns {
			eco, _ := EcosystemLabel(v.Ecosystem)
			lines[eco] = append(lines[eco], v.Line())
		}
		for eco, l := range lines {
			row[eco] = Multi(l...)
		}
		rows = append(rows, row)
	}

	return Content{
		Columns: append([]string{ColumnRepo, ColumnArchived}, ecosystems...),
		Rows:    rows,
	}
}

// AdminContent builds one row per repository listing the logins of its
// explicit admins.
func AdminContent(repos []CollabRepo) Content {
	rows := make([]Row, 0, len(repos))
	for _, repo := range repos {
		row := repoRow(repo.Name, repo.IsArchived)

		var logins []string
		for _, c := range repo.ExplicitAdmins() {
			logins = append(logins, c.Login)
		}
		if len(logins) > 0 {
			row[ColumnAdmins] = Multi(logins...)
		}
		rows = append(rows, row)
	}

	return Content{
		Columns: []string{ColumnRepo, ColumnArchived, ColumnAdmins},
		Rows:    rows,
	}
}

func repoRow(name string, archived bool) Row {
	return Row{
		ColumnRepo:     Single(name),
		ColumnArchived: Single(strconv.FormatBool(archived)),
	}
}
