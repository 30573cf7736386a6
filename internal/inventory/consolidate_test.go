package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(name, category string, tier ConfidenceTier, source string) Item {
	return Item{
		Name:        name,
		Description: "Detected with 90% confidence",
		Category:    category,
		Quantity:    1,
		Condition:   "good",
		Confidence:  tier,
		AIGenerated: true,
		SourcePhoto: source,
	}
}

func TestConsolidate_Empty(t *testing.T) {
	assert.Empty(t, Consolidate(nil))
	assert.Empty(t, Consolidate([]Item{}))
}

func TestConsolidate_SingleItem(t *testing.T) {
	in := item("Laptop", "electronics", TierHigh, "http://a")
	out := Consolidate([]Item{in})

	require.Len(t, out, 1)
	assert.Equal(t, in, out[0])
}

func TestConsolidate_AllSameKey(t *testing.T) {
	out := Consolidate([]Item{
		item("Laptop", "electronics", TierLow, "http://a"),
		item("Laptop", "electronics", TierHigh, "http://b"),
		item("Laptop", "electronics", TierMedium, "http://c"),
	})

	require.Len(t, out, 1)
	assert.Equal(t, 3, out[0].Quantity)
	assert.Equal(t, TierHigh, out[0].Confidence)
	// Everything besides quantity and tier comes from the first occurrence.
	assert.Equal(t, "http://a", out[0].SourcePhoto)
}

func TestConsolidate_DistinctKeysUnchanged(t *testing.T) {
	in := []Item{
		item("Laptop", "electronics", TierHigh, "http://a"),
		item("Mouse", "electronics", TierMedium, "http://a"),
		item("Cup", "kitchen", TierLow, "http://b"),
	}
	out := Consolidate(in)

	require.Len(t, out, 3)
	assert.Equal(t, in, out)
}

func TestConsolidate_KeyIsCaseInsensitiveOnName(t *testing.T) {
	out := Consolidate([]Item{
		item("Laptop", "electronics", TierMedium, "http://a"),
		item("laptop", "electronics", TierHigh, "http://b"),
	})

	require.Len(t, out, 1)
	assert.Equal(t, "Laptop", out[0].Name)
	assert.Equal(t, 2, out[0].Quantity)
	assert.Equal(t, TierHigh, out[0].Confidence)
}

func TestConsolidate_SameNameDifferentCategoryStaysSeparate(t *testing.T) {
	out := Consolidate([]Item{
		item("Mouse", "electronics", TierHigh, "http://a"),
		item("Mouse", "toys", TierHigh, "http://a"),
	})

	assert.Len(t, out, 2)
}

func TestConsolidate_MergeNeverLowersTier(t *testing.T) {
	out := Consolidate([]Item{
		item("Laptop", "electronics", TierHigh, "http://a"),
		item("Laptop", "electronics", TierLow, "http://b"),
	})

	require.Len(t, out, 1)
	assert.Equal(t, TierHigh, out[0].Confidence)
}

func TestConsolidate_CountsOccurrencesNotQuantities(t *testing.T) {
	first := item("Laptop", "electronics", TierHigh, "http://a")
	second := item("Laptop", "electronics", TierHigh, "http://b")
	second.Quantity = 5

	out := Consolidate([]Item{first, second})

	require.Len(t, out, 1)
	assert.Equal(t, 2, out[0].Quantity)
}

func TestConsolidate_FirstOccurrenceOrder(t *testing.T) {
	out := Consolidate([]Item{
		item("Mouse", "electronics", TierMedium, "http://a"),
		item("Laptop", "electronics", TierHigh, "http://a"),
		item("Mouse", "electronics", TierHigh, "http://b"),
		item("Cup", "kitchen", TierLow, "http://b"),
	})

	require.Len(t, out, 3)
	assert.Equal(t, "Mouse", out[0].Name)
	assert.Equal(t, "Laptop", out[1].Name)
	assert.Equal(t, "Cup", out[2].Name)
}

func TestConsolidate_PermutationInvariant(t *testing.T) {
	a := item("Laptop", "electronics", TierLow, "http://a")
	b := item("Laptop", "electronics", TierMedium, "http://b")
	c := item("Laptop", "electronics", TierHigh, "http://c")

	permutations := [][]Item{
		{a, b, c}, {a, c, b},
		{b, a, c}, {b, c, a},
		{c, a, b}, {c, b, a},
	}

	for _, perm := range permutations {
		out := Consolidate(perm)
		require.Len(t, out, 1)
		assert.Equal(t, 3, out[0].Quantity)
		assert.Equal(t, TierHigh, out[0].Confidence)
	}
}
