package inventory

import "strings"

// consolidationKey identifies items that represent the same logical object.
// Two items with the same name (case-insensitive) and category are duplicates
// regardless of source photo or description.
type consolidationKey struct {
	name     string
	category string
}

// Consolidate merges duplicate items, counting occurrences into the
// representative's quantity and keeping the highest confidence tier seen.
// All other fields come from the first occurrence. Output preserves
// first-occurrence order.
func Consolidate(items []Item) []Item {
	merged := make([]Item, 0, len(items))
	index := make(map[consolidationKey]int, len(items))

	for _, item := range items {
		key := consolidationKey{name: strings.ToLower(item.Name), category: item.Category}
		i, seen := index[key]
		if !seen {
			index[key] = len(merged)
			merged = append(merged, item)
			continue
		}

		// Counts occurrences, not the sum of input quantities.
		merged[i].Quantity++
		if item.Confidence.Outranks(merged[i].Confidence) {
			merged[i].Confidence = item.Confidence
		}
	}

	return merged
}
