package locations

import (
	"strings"

	"cmdb-sync/core/reconcile"
)

// CompareExisting classifies each site as new or existing by name against the
// remote groups. Group names are trimmed before comparison.
func CompareExisting(sites []SiteCandidate, groups []Group) *reconcile.Classification {
	existing := make(map[string]bool, len(groups))
	for _, g := range groups {
		existing[strings.TrimSpace(g.Name)] = true
	}

	result := reconcile.NewClassification(OutcomeNewSite, OutcomeExistingSite)
	for _, site := range sites {
		if existing[site.Name] {
			result.Add(OutcomeExistingSite, site.Name)
		} else {
			result.Add(OutcomeNewSite, site.Name)
		}
	}
	return result
}
