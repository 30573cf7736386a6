package inventory

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Tier thresholds for raw [0,1] confidence scores.
const (
	highConfidenceThreshold   = 0.8
	mediumConfidenceThreshold = 0.5
)

// The model can't assess condition, so every item starts out as "good".
const defaultCondition = "good"

// TierForScore buckets a raw confidence score into a ConfidenceTier.
func TierForScore(score float64) ConfidenceTier {
	switch {
	case score >= highConfidenceThreshold:
		return TierHigh
	case score >= mediumConfidenceThreshold:
		return TierMedium
	default:
		return TierLow
	}
}

// BuildItem converts one raw detection into an inventory item with quantity 1.
// Duplicates across photos are folded together later by Consolidate.
func BuildItem(label string, confidence float64, sourcePhoto string) Item {
	// A Caser carries internal state, so one per call rather than shared.
	return Item{
		Name:        cases.Title(language.English).String(label),
		Description: fmt.Sprintf("Detected with %.0f%% confidence", confidence*100),
		Category:    Categorize(label),
		Quantity:    1,
		Condition:   defaultCondition,
		Confidence:  TierForScore(confidence),
		AIGenerated: true,
		SourcePhoto: sourcePhoto,
	}
}
