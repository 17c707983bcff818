package meshmcp

// TokenSet maps token categories to token name/value pairs.
type TokenSet map[string]map[string]string

// Known design token categories. The set is fixed; requesting an unknown
// category is a not-found outcome, not an empty object.
const (
	TokenColors     = "colors"
	TokenTypography = "typography"
	TokenSpacing    = "spacing"
)

// TokenCategories returns the known categories in display order.
func TokenCategories() []string {
	return []string{TokenColors, TokenTypography, TokenSpacing}
}

// KnownTokenCategory reports whether category is a recognized token
// category. IdentifierAll addresses the full set and is always known.
func KnownTokenCategory(category string) bool {
	if category == IdentifierAll {
		return true
	}
	for _, c := range TokenCategories() {
		if c == category {
			return true
		}
	}
	return false
}
