package service

import "strings"

// ParseIngredientCSV splits free-text comma-separated ingredients, trimming
// whitespace and dropping empty entries. "a, b ,, c" becomes [a b c];
// blank or whitespace-only input becomes an empty list.
func ParseIngredientCSV(text string) []string {
	if strings.TrimSpace(text) == "" {
		return []string{}
	}

	parts := strings.Split(text, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

// MergeIngredients returns the union of the identified and user-added
// ingredients, deduplicated by exact string match. First occurrence wins;
// no particular order is required by the suggestion adapter.
func MergeIngredients(identified, added []string) []string {
	seen := make(map[string]struct{}, len(identified)+len(added))
	out := make([]string, 0, len(identified)+len(added))
	for _, list := range [][]string{identified, added} {
		for _, ing := range list {
			if _, ok := seen[ing]; ok {
				continue
			}
			seen[ing] = struct{}{}
			out = append(out, ing)
		}
	}
	return out
}

// BuildSuggestRequest assembles the suggestion input from the editing
// state. It returns ErrNoIngredients when the merged union is empty, in
// which case the adapter must not be called.
func BuildSuggestRequest(identified []string, addedText, excludedText, instructions string) (SuggestRequest, error) {
	ingredients := MergeIngredients(identified, ParseIngredientCSV(addedText))
	if len(ingredients) == 0 {
		return SuggestRequest{}, ErrNoIngredients
	}

	return SuggestRequest{
		Ingredients:            ingredients,
		ExcludedIngredients:    ParseIngredientCSV(excludedText),
		AdditionalInstructions: strings.TrimSpace(instructions),
	}, nil
}
