package dialogue

import "strings"

// Keyword sets for the free-text matcher. Checks are plain substring tests
// against the lower-cased input, so "techniques" also satisfies "technique".
var (
	bridalTerms   = []string{"bridal", "wedding", "bride"}
	learningTerms = []string{"learn", "learning", "class", "course", "training", "technique"}
	// The standalone learning rule accepts a broader set than the combined
	// bridal+learning rule.
	broadLearningTerms = []string{"learn", "learning", "class", "course", "training", "technique", "masterclass", "techniques"}
	pricingTerms       = []string{"price", "cost", "pricing", "how much", "fee", "charge"}
	contactTerms       = []string{"contact", "book", "appointment", "schedule", "available", "dates"}
	advancedTerms      = []string{"intermediate", "advanced", "masterclass"}
)

// Classify maps free text onto a node id using priority-ordered keyword
// rules. The combined bridal+learning rule runs before the standalone bridal
// and learning rules so "learning bridal makeup" lands on the masterclass
// path instead of a plain bridal or learning reply. Rule order is part of
// the contract. Returns false when no rule matches.
func Classify(text string) (NodeID, bool) {
	t := strings.ToLower(text)

	hasBridal := containsAny(t, bridalTerms)
	if hasBridal && containsAny(t, learningTerms) {
		return NodeBridalLearn, true
	}
	if hasBridal {
		return NodeBridalMakeup, true
	}
	if containsAny(t, broadLearningTerms) {
		return NodeLearnMakeup, true
	}
	if containsAny(t, pricingTerms) {
		return NodePricing, true
	}
	if containsAny(t, contactTerms) {
		return NodeContact, true
	}
	if containsAny(t, advancedTerms) {
		return NodeMasterclass, true
	}
	return "", false
}

func containsAny(s string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(s, term) {
			return true
		}
	}
	return false
}
