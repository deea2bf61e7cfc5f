package locations

import (
	"testing"

	"cmdb-sync/feature/registry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSites(t *testing.T) {
	rows := []registry.LocationRecord{
		{Name: "Boston", City: "Boston", Region: "Massachusetts", Country: "USA", Latitude: "42.36", Longitude: "-71.06"},
		{Name: "Denver", City: "Denver", Region: "Colorado", Country: "United States"},
		{Name: "Boston", City: "Cambridge", Region: "Massachusetts", Country: "USA"},
		{Name: "Unused", City: "Nowhere"},
	}
	aliases := map[string]string{"USA": "United States"}

	set := BuildSites([]string{"Denver", "Boston", "Atlantis"}, rows, aliases)

	assert.Equal(t, []SiteCandidate{
		{Name: "Denver", City: "Denver", Region: "Colorado", Country: "United States"},
		{Name: "Boston", City: "Boston", Region: "Massachusetts", Country: "United States", Latitude: "42.36", Longitude: "-71.06"},
	}, set.Sites)
	assert.Equal(t, []string{"Boston"}, set.DuplicateLocations)
	assert.Equal(t, []string{"Atlantis"}, set.UnknownLocations)
	assert.Equal(t, []string{"Denver", "Boston"}, set.Names())
}

func TestBuildSites_CaseSensitiveJoin(t *testing.T) {
	rows := []registry.LocationRecord{{Name: "Boston"}}

	set := BuildSites([]string{"boston"}, rows, nil)

	assert.Empty(t, set.Sites)
	assert.Equal(t, []string{"boston"}, set.UnknownLocations)
}

func TestParseAliases(t *testing.T) {
	aliases, err := ParseAliases([]string{"USA=United States", " UK = United Kingdom "})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"USA": "United States", "UK": "United Kingdom"}, aliases)

	for _, bad := range []string{"USA", "=United States", "USA="} {
		_, err := ParseAliases([]string{bad})
		assert.Error(t, err, bad)
	}
}

func TestCompareExisting(t *testing.T) {
	sites := []SiteCandidate{{Name: "Boston"}, {Name: "Denver"}, {Name: "Austin"}}
	groups := []Group{{Name: " Denver "}, {Name: "boston"}}

	result := CompareExisting(sites, groups)

	assert.Equal(t, []string{"Boston", "Austin"}, result.Names(OutcomeNewSite))
	assert.Equal(t, []string{"Denver"}, result.Names(OutcomeExistingSite))
}
