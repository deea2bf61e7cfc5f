package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func item(name, category, operational string) map[string]any {
	return map[string]any{
		"name":        map[string]any{"display_value": name, "value": name},
		"category":    map[string]any{"display_value": category, "value": category},
		"operational": map[string]any{"display_value": operational, "value": operational},
	}
}

func TestParseFilters(t *testing.T) {
	raw := []map[string]any{
		{"name": "category", "value": "Hardware"},
		{"name": "operational", "value": true},
		{"name": "install_status", "value": "True"},
		{"name": "", "value": "x"},
		{"name": "category"},
		{"value": "Hardware"},
		{"name": "category", "value": "  "},
	}

	filters := ParseFilters(raw, zap.NewNop())

	assert.Equal(t, []Filter{
		{Name: "category", Value: "Hardware"},
		{Name: "operational", Value: "true"},
		{Name: "install_status", Value: "true"},
	}, filters)
}

func TestFilter_Matches(t *testing.T) {
	it := map[string]any{
		"category":    map[string]any{"display_value": "Hardware", "value": "hw"},
		"operational": map[string]any{"display_value": "True", "value": "true"},
		"plain":       "Hardware",
	}

	assert.True(t, Filter{Name: "category", Value: "hw"}.Matches(it))
	assert.True(t, Filter{Name: "category", Value: "Hardware"}.Matches(it))
	assert.True(t, Filter{Name: "operational", Value: "true"}.Matches(it))
	assert.False(t, Filter{Name: "category", Value: "Software"}.Matches(it))
	assert.False(t, Filter{Name: "missing", Value: "Hardware"}.Matches(it))
	assert.False(t, Filter{Name: "plain", Value: "Hardware"}.Matches(it))
}

func TestApplyFilters(t *testing.T) {
	items := []map[string]any{
		item("sw1", "Hardware", "true"),
		item("sw2", "Hardware", "false"),
		item("app1", "Software", "true"),
		item("sw3", "Hardware", "true"),
	}
	names := func(list []map[string]any) []string {
		var out []string
		for _, it := range list {
			out = append(out, it["name"].(map[string]any)["value"].(string))
		}
		return out
	}

	t.Run("NoFilters", func(t *testing.T) {
		assert.Equal(t, []string{"sw1", "sw2", "app1", "sw3"}, names(ApplyFilters(items, nil, nil)))
	})

	t.Run("IncludeOnly", func(t *testing.T) {
		include := []Filter{{Name: "category", Value: "Hardware"}}
		assert.Equal(t, []string{"sw1", "sw2", "sw3"}, names(ApplyFilters(items, include, nil)))
	})

	t.Run("ExcludeWins", func(t *testing.T) {
		include := []Filter{{Name: "category", Value: "Hardware"}}
		exclude := []Filter{{Name: "operational", Value: "false"}}
		assert.Equal(t, []string{"sw1", "sw3"}, names(ApplyFilters(items, include, exclude)))
	})

	t.Run("IncludeAnyKeepsOrderWithoutDuplicates", func(t *testing.T) {
		include := []Filter{{Name: "operational", Value: "true"}, {Name: "category", Value: "Hardware"}}
		assert.Equal(t, []string{"sw1", "sw2", "app1", "sw3"}, names(ApplyFilters(items, include, nil)))
	})
}
