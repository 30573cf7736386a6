package inventory

import "strings"

// UncategorizedCategory is returned for labels the table doesn't know.
const UncategorizedCategory = "uncategorized"

// categoryByLabel maps model class names (lowercase) to inventory categories.
// Static configuration data, loaded once.
var categoryByLabel = map[string]string{
	// Electronics
	"laptop":     "electronics",
	"cell phone": "electronics",
	"tv":         "electronics",
	"keyboard":   "electronics",
	"mouse":      "electronics",
	"remote":     "electronics",
	"clock":      "electronics",

	// Kitchen
	"bottle":       "kitchen",
	"wine glass":   "kitchen",
	"cup":          "kitchen",
	"fork":         "kitchen",
	"knife":        "kitchen",
	"spoon":        "kitchen",
	"bowl":         "kitchen",
	"banana":       "kitchen",
	"apple":        "kitchen",
	"orange":       "kitchen",
	"broccoli":     "kitchen",
	"carrot":       "kitchen",
	"pizza":        "kitchen",
	"donut":        "kitchen",
	"cake":         "kitchen",
	"refrigerator": "kitchen",
	"microwave":    "kitchen",
	"oven":         "kitchen",
	"toaster":      "kitchen",

	// Clothing
	"handbag":  "clothing",
	"tie":      "clothing",
	"suitcase": "clothing",
	"umbrella": "clothing",
	"backpack": "clothing",

	// Sports
	"frisbee":        "sports",
	"skis":           "sports",
	"snowboard":      "sports",
	"sports ball":    "sports",
	"kite":           "sports",
	"baseball bat":   "sports",
	"baseball glove": "sports",
	"skateboard":     "sports",
	"surfboard":      "sports",
	"tennis racket":  "sports",

	// Toys/Books
	"book":       "books",
	"teddy bear": "toys",

	// Tools
	"scissors":   "tools",
	"hair drier": "tools",
	"toothbrush": "tools",

	// Furniture/Decorations
	"chair":        "decorations",
	"couch":        "decorations",
	"potted plant": "decorations",
	"bed":          "decorations",
	"dining table": "decorations",
	"toilet":       "decorations",
	"sink":         "decorations",
	"vase":         "decorations",
}

// Categorize maps a detection label to an inventory category. The lookup is
// case-insensitive; unknown labels fall back to UncategorizedCategory.
func Categorize(label string) string {
	if category, ok := categoryByLabel[strings.ToLower(label)]; ok {
		return category
	}
	return UncategorizedCategory
}
