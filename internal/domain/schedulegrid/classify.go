package schedulegrid

import "strings"

// Category tags an activity cell for the type-filter UI.
type Category string

// Category constants, in rule precedence order.
const (
	CategoryMeals         Category = "meals"
	CategoryActivities    Category = "activities"
	CategoryCleaning      Category = "cleaning"
	CategorySpiritual     Category = "spiritual"
	CategoryPersonal      Category = "personal"
	CategoryUncategorized Category = "uncategorized"
)

// CategoryAll is the filter tag that matches every cell.
const CategoryAll = "all"

// categoryRules is an ordered rule list; the first category with any keyword
// substring match wins.
var categoryRules = []struct {
	category Category
	keywords []string
}{
	{CategoryMeals, []string{"breakfast", "lunch", "dinner", "meal", "snack", "serving", "kitchen"}},
	{CategoryActivities, []string{"activity", "activities", "exercise", "sports", "recreation", "game", "outing", "session", "group"}},
	{CategoryCleaning, []string{"clean", "chore", "laundry", "sweep", "mop", "dishes"}},
	{CategorySpiritual, []string{"prayer", "devotion", "worship", "bible", "church", "meditation"}},
	{CategoryPersonal, []string{"hygiene", "shower", "rest", "sleep", "wake", "free time", "personal"}},
}

// Classify maps a cell's free text to a category tag.
func Classify(text string) Category {
	lowered := strings.ToLower(text)
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lowered, kw) {
				return rule.category
			}
		}
	}
	return CategoryUncategorized
}

// MatchesTypeFilter reports whether a cell's text passes the category filter.
// The "all" tag matches everything.
func MatchesTypeFilter(text, categoryTag string) bool {
	if categoryTag == CategoryAll {
		return true
	}
	return Classify(text) == Category(categoryTag)
}

// MatchesSearch reports case-insensitive substring containment of query in
// text. An empty query matches everything. Search and type filter are
// independent predicates; the caller combines them.
func MatchesSearch(text, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(text), strings.ToLower(query))
}
