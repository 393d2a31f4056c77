package services

const (
	SeverityHigh   = "high"
	SeverityMedium = "medium"
	SeverityLow    = "low"
)

// ConflictRule fires between two products when one side's ingredient text
// contains any keyword from GroupA and the other side's contains any keyword
// from GroupB, in either direction.
type ConflictRule struct {
	ID          string   `json:"id"`
	GroupA      []string `json:"-"`
	GroupB      []string `json:"-"`
	Severity    string   `json:"severity"`
	Title       string   `json:"title"`
	Explanation string   `json:"explanation"`
	Suggestion  string   `json:"suggestion"`
}

var severityRank = map[string]int{
	SeverityHigh:   0,
	SeverityMedium: 1,
	SeverityLow:    2,
}

func SeverityRank(severity string) int {
	if rank, ok := severityRank[severity]; ok {
		return rank
	}
	return len(severityRank)
}

var retinoidKeywords = []string{"retinol", "retinal", "retinaldehyde", "tretinoin", "adapalene", "tazarotene", "retinyl"}
var ahaKeywords = []string{"glycolic acid", "lactic acid", "mandelic acid", "malic acid", "tartaric acid"}
var bhaKeywords = []string{"salicylic acid", "betaine salicylate"}
var vitaminCKeywords = []string{"ascorbic acid", "vitamin c", "ascorbyl"}
var benzoylKeywords = []string{"benzoyl peroxide"}
var copperKeywords = []string{"copper peptide", "copper tripeptide", "ghk-cu"}
var niacinamideKeywords = []string{"niacinamide", "nicotinamide"}

// DefaultConflictRules returns the curated interaction table. Callers must
// treat the result as immutable; the detector takes it as injected
// configuration so tests can swap in synthetic rule sets.
func DefaultConflictRules() []ConflictRule {
	return []ConflictRule{
		{
			ID:          "retinoid-aha",
			GroupA:      retinoidKeywords,
			GroupB:      ahaKeywords,
			Severity:    SeverityHigh,
			Title:       "Retinoid + AHA",
			Explanation: "Using a retinoid together with an alpha hydroxy acid compounds irritation and can damage the skin barrier.",
			Suggestion:  "Alternate nights, or keep the acid in the morning and the retinoid in the evening with sunscreen during the day.",
		},
		{
			ID:          "retinoid-bha",
			GroupA:      retinoidKeywords,
			GroupB:      bhaKeywords,
			Severity:    SeverityHigh,
			Title:       "Retinoid + BHA",
			Explanation: "Salicylic acid layered with a retinoid dries and irritates skin for most people.",
			Suggestion:  "Use them on alternate days, or buffer the retinoid with a moisturizer.",
		},
		{
			ID:          "retinoid-benzoyl",
			GroupA:      retinoidKeywords,
			GroupB:      benzoylKeywords,
			Severity:    SeverityHigh,
			Title:       "Retinoid + benzoyl peroxide",
			Explanation: "Benzoyl peroxide can oxidize and deactivate most retinoids while multiplying irritation.",
			Suggestion:  "Split them between morning and evening, or use a formulation designed to combine them.",
		},
		{
			ID:          "retinoid-vitc",
			GroupA:      retinoidKeywords,
			GroupB:      vitaminCKeywords,
			Severity:    SeverityMedium,
			Title:       "Retinoid + vitamin C",
			Explanation: "Both are strong actives at very different optimal pH levels; layering them raises irritation without added benefit.",
			Suggestion:  "Vitamin C in the morning, retinoid in the evening.",
		},
		{
			ID:          "double-retinoid",
			GroupA:      retinoidKeywords,
			GroupB:      retinoidKeywords,
			Severity:    SeverityHigh,
			Title:       "Two retinoid products",
			Explanation: "Doubling up on retinoids in one routine sharply raises the chance of peeling and retinoid dermatitis.",
			Suggestion:  "Keep a single retinoid product per routine.",
		},
		{
			ID:          "aha-bha",
			GroupA:      ahaKeywords,
			GroupB:      bhaKeywords,
			Severity:    SeverityMedium,
			Title:       "AHA + BHA",
			Explanation: "Stacking exfoliating acids over-exfoliates and compromises the moisture barrier.",
			Suggestion:  "Pick one exfoliant per routine, or alternate days.",
		},
		{
			ID:          "aha-vitc",
			GroupA:      ahaKeywords,
			GroupB:      vitaminCKeywords,
			Severity:    SeverityMedium,
			Title:       "AHA + vitamin C",
			Explanation: "Layering direct acids with vitamin C can destabilize the vitamin C and sting sensitive skin.",
			Suggestion:  "Separate them into different routines.",
		},
		{
			ID:          "bha-vitc",
			GroupA:      bhaKeywords,
			GroupB:      vitaminCKeywords,
			Severity:    SeverityLow,
			Title:       "BHA + vitamin C",
			Explanation: "Salicylic acid next to vitamin C is tolerable for many but raises irritation for sensitive skin.",
			Suggestion:  "Apply at different times of day if you notice stinging.",
		},
		{
			ID:          "benzoyl-vitc",
			GroupA:      benzoylKeywords,
			GroupB:      vitaminCKeywords,
			Severity:    SeverityMedium,
			Title:       "Benzoyl peroxide + vitamin C",
			Explanation: "Benzoyl peroxide oxidizes ascorbic acid, cancelling its antioxidant effect.",
			Suggestion:  "Use vitamin C in the morning and benzoyl peroxide in the evening.",
		},
		{
			ID:          "copper-vitc",
			GroupA:      copperKeywords,
			GroupB:      vitaminCKeywords,
			Severity:    SeverityMedium,
			Title:       "Copper peptides + vitamin C",
			Explanation: "Direct vitamin C can interfere with copper peptides when layered immediately.",
			Suggestion:  "Keep them in separate routines.",
		},
		{
			ID:          "copper-acids",
			GroupA:      copperKeywords,
			GroupB:      append(append([]string{}, ahaKeywords...), bhaKeywords...),
			Severity:    SeverityLow,
			Title:       "Copper peptides + exfoliating acids",
			Explanation: "Low pH acids may destabilize peptides applied in the same routine.",
			Suggestion:  "Apply acids and peptides at different times of day.",
		},
		{
			ID:          "niacinamide-vitc",
			GroupA:      niacinamideKeywords,
			GroupB:      vitaminCKeywords,
			Severity:    SeverityLow,
			Title:       "Niacinamide + vitamin C",
			Explanation: "Mostly a formulation myth at modern concentrations, but flushing is reported by some users.",
			Suggestion:  "No change needed unless you notice redness; then separate them.",
		},
	}
}
