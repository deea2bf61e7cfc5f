package registry

import (
	"strings"

	"cmdb-sync/core/utils"

	"go.uber.org/zap"
)

// Filter selects configuration items whose field equals Value.
type Filter struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// ParseFilters keeps the well-formed entries of a raw filter list.
// An entry needs a non-blank name and a non-blank value; others are logged and dropped.
func ParseFilters(raw []map[string]any, logger *zap.Logger) []Filter {
	filters := make([]Filter, 0, len(raw))
	for i, entry := range raw {
		name := strings.TrimSpace(utils.ToString(entry["name"]))
		value := strings.TrimSpace(utils.ToString(entry["value"]))
		if name == "" || value == "" {
			logger.Warn("Dropping invalid filter", zap.Int("index", i), zap.Any("filter", entry))
			continue
		}
		filters = append(filters, Filter{Name: name, Value: utils.NormalizeBool(value)})
	}
	return filters
}

// Matches reports whether the item's field equals the filter value.
// Both the raw value and the display value of the field are compared.
func (f Filter) Matches(item map[string]any) bool {
	field, ok := item[f.Name].(map[string]any)
	if !ok {
		return false
	}
	for _, key := range []string{"value", "display_value"} {
		v, ok := field[key]
		if !ok || v == nil {
			continue
		}
		if utils.NormalizeBool(utils.ToString(v)) == f.Value {
			return true
		}
	}
	return false
}

// ApplyFilters returns the items matching any include filter and no exclude filter,
// in their original order. With no include filters every item is included.
func ApplyFilters(items []map[string]any, include, exclude []Filter) []map[string]any {
	var out []map[string]any
	for _, item := range items {
		if len(include) > 0 && !matchesAny(item, include) {
			continue
		}
		if matchesAny(item, exclude) {
			continue
		}
		out = append(out, item)
	}
	return out
}

func matchesAny(item map[string]any, filters []Filter) bool {
	for _, f := range filters {
		if f.Matches(item) {
			return true
		}
	}
	return false
}
