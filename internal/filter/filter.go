// Package filter implements the recipe search/filter predicate. Apply is a
// pure function: it never mutates its input and preserves the original
// relative order of the recipes it keeps.
package filter

import (
	"strings"

	"github.com/recipevault/recipevault/internal/models"
)

// Default cooking time range, in minutes. A filter at exactly this range
// is unconstrained on the time dimension.
const (
	DefaultMinCookingTime = 0
	DefaultMaxCookingTime = 120
)

// Filter is the ephemeral filter state coming from the UI.
type Filter struct {
	// SearchTerm matches case-insensitively against the title or any
	// ingredient name. Empty means no search constraint.
	SearchTerm string

	// Dietary uses AND semantics: every requested tag must be present.
	Dietary []string

	// CookingTime is an inclusive [min, max] range in minutes.
	CookingTime [2]int

	// Difficulty must match exactly (case-sensitive) when set.
	Difficulty string

	// Category must match exactly, except the Trending sentinel which
	// means no category constraint.
	Category string
}

// New returns a filter with every dimension at its unconstrained default.
func New() Filter {
	return Filter{
		CookingTime: [2]int{DefaultMinCookingTime, DefaultMaxCookingTime},
		Category:    models.CategoryTrending,
	}
}

// Apply returns the recipes matching every constrained dimension of f,
// in their original order.
func Apply(recipes []models.Recipe, f Filter) []models.Recipe {
	matched := make([]models.Recipe, 0, len(recipes))
	for _, r := range recipes {
		if Matches(&r, f) {
			matched = append(matched, r)
		}
	}
	return matched
}

// Matches reports whether a single recipe passes the filter predicate.
func Matches(r *models.Recipe, f Filter) bool {
	return matchesSearch(r, f.SearchTerm) &&
		matchesDietary(r, f.Dietary) &&
		matchesCookingTime(r, f.CookingTime) &&
		matchesDifficulty(r, f.Difficulty) &&
		matchesCategory(r, f.Category)
}

func matchesSearch(r *models.Recipe, term string) bool {
	if term == "" {
		return true
	}
	needle := strings.ToLower(term)
	if strings.Contains(strings.ToLower(r.Title), needle) {
		return true
	}
	for _, ing := range r.Ingredients {
		if strings.Contains(strings.ToLower(ing.Name), needle) {
			return true
		}
	}
	return false
}

func matchesDietary(r *models.Recipe, tags []string) bool {
	if len(tags) == 0 {
		return true
	}
	for _, tag := range tags {
		if !r.HasDietary(tag) {
			return false
		}
	}
	return true
}

func matchesCookingTime(r *models.Recipe, bounds [2]int) bool {
	return r.CookingTime >= bounds[0] && r.CookingTime <= bounds[1]
}

func matchesDifficulty(r *models.Recipe, difficulty string) bool {
	if difficulty == "" {
		return true
	}
	return r.Difficulty == difficulty
}

func matchesCategory(r *models.Recipe, category string) bool {
	if category == "" || category == models.CategoryTrending {
		return true
	}
	return r.Category == category
}
