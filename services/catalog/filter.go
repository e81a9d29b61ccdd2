package catalog

import (
	"sort"
	"strings"
)

// Display-side filters and sorts over the aggregate category view. All of
// them copy their input, so any composition order yields the same result set.

// FilterByName keeps categories whose name contains substr (case-insensitive).
func FilterByName(views []CategoryView, substr string) []CategoryView {
	substr = strings.ToLower(strings.TrimSpace(substr))
	if substr == "" {
		return append([]CategoryView(nil), views...)
	}
	out := make([]CategoryView, 0, len(views))
	for _, v := range views {
		if strings.Contains(strings.ToLower(v.Name), substr) {
			out = append(out, v)
		}
	}
	return out
}

// FilterBySubcategoryCount keeps categories whose subcategory count falls in
// [min, max]. A negative max means unbounded.
func FilterBySubcategoryCount(views []CategoryView, min, max int) []CategoryView {
	out := make([]CategoryView, 0, len(views))
	for _, v := range views {
		n := len(v.Subcategories)
		if n < min {
			continue
		}
		if max >= 0 && n > max {
			continue
		}
		out = append(out, v)
	}
	return out
}

// FilterHasSubcategories keeps categories with (or without) subcategories.
func FilterHasSubcategories(views []CategoryView, has bool) []CategoryView {
	out := make([]CategoryView, 0, len(views))
	for _, v := range views {
		if (len(v.Subcategories) > 0) == has {
			out = append(out, v)
		}
	}
	return out
}

// SortByName orders categories by name.
func SortByName(views []CategoryView, ascending bool) []CategoryView {
	out := append([]CategoryView(nil), views...)
	sort.SliceStable(out, func(i, j int) bool {
		if ascending {
			return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
		}
		return strings.ToLower(out[i].Name) > strings.ToLower(out[j].Name)
	})
	return out
}

// SortBySubcategoryCount orders categories by how many subcategories they have.
func SortBySubcategoryCount(views []CategoryView, ascending bool) []CategoryView {
	out := append([]CategoryView(nil), views...)
	sort.SliceStable(out, func(i, j int) bool {
		if ascending {
			return len(out[i].Subcategories) < len(out[j].Subcategories)
		}
		return len(out[i].Subcategories) > len(out[j].Subcategories)
	})
	return out
}
