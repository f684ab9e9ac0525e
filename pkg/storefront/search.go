package storefront

import "strings"

// SearchProducts filters products by a free-text query. A product matches
// when the query appears in its name, description or category, or when any
// query word prefixes or appears inside a name/description word. Pure
// function over the given snapshot; an empty query matches nothing.
func SearchProducts(query string, products []Product) []Product {
	term := strings.ToLower(strings.TrimSpace(query))
	if term == "" || len(products) == 0 {
		return nil
	}

	words := strings.Fields(term)

	var out []Product
	for _, p := range products {
		name := strings.ToLower(p.Name)
		description := strings.ToLower(p.Description)
		category := strings.ToLower(string(p.Category))

		if strings.Contains(name, term) ||
			strings.Contains(description, term) ||
			strings.Contains(category, term) ||
			wordsMatch(words, name, description) {
			out = append(out, p)
		}
	}
	return out
}

func wordsMatch(words []string, name, description string) bool {
	nameWords := strings.Fields(name)
	descriptionWords := strings.Fields(description)

	for _, w := range words {
		for _, nw := range nameWords {
			if strings.HasPrefix(nw, w) || strings.Contains(nw, w) {
				return true
			}
		}
		for _, dw := range descriptionWords {
			if strings.HasPrefix(dw, w) || strings.Contains(dw, w) {
				return true
			}
		}
	}
	return false
}
