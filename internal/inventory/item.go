package inventory

// ConfidenceTier buckets a raw detection score into three levels.
type ConfidenceTier string

const (
	TierLow    ConfidenceTier = "low"
	TierMedium ConfidenceTier = "medium"
	TierHigh   ConfidenceTier = "high"
)

var tierRank = map[ConfidenceTier]int{
	TierLow:    1,
	TierMedium: 2,
	TierHigh:   3,
}

// Outranks reports whether t is a strictly higher tier than other.
func (t ConfidenceTier) Outranks(other ConfidenceTier) bool {
	return tierRank[t] > tierRank[other]
}

// Item is one inventory entry built from a detection. The JSON shape is the
// service's wire format; Confidence serializes the tier name, not a number.
type Item struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Category    string         `json:"category"`
	Quantity    int            `json:"quantity"`
	Condition   string         `json:"condition"`
	Confidence  ConfidenceTier `json:"confidence"`
	AIGenerated bool           `json:"aiGenerated"`
	SourcePhoto string         `json:"sourcePhoto"`
}
