package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/solenelark/glowlog/internal/models"
)

type DetectedConflict struct {
	Rule            ConflictRule   `json:"rule"`
	ProductA        models.Product `json:"product_a"`
	ProductB        models.Product `json:"product_b"`
	MatchedKeywordA string         `json:"matched_keyword_a"`
	MatchedKeywordB string         `json:"matched_keyword_b"`
}

type ConflictDetector struct {
	rules []ConflictRule
}

func NewConflictDetector(rules []ConflictRule) *ConflictDetector {
	return &ConflictDetector{rules: rules}
}

// Detect scans every unordered pair of active products against the rule set
// and returns deduplicated conflicts sorted by severity, high first. Products
// with a stopped_at date are excluded; pairs whose usage windows cannot
// overlap are skipped. Callers pass products with catalog fields already
// resolved.
func (detector *ConflictDetector) Detect(products []models.Product) []DetectedConflict {
	active := make([]models.Product, 0, len(products))
	for _, product := range products {
		if !product.IsStopped() {
			active = append(active, product)
		}
	}
	return detector.scanPairs(active)
}

// DetectForProduct previews conflicts for one product against the rest of the
// shelf. The subject is included even when stopped so a user can check what
// would conflict before restarting it; other stopped products stay excluded.
func (detector *ConflictDetector) DetectForProduct(product models.Product, all []models.Product) []DetectedConflict {
	pool := make([]models.Product, 0, len(all)+1)
	pool = append(pool, product)
	for _, candidate := range all {
		if candidate.ID == product.ID || candidate.IsStopped() {
			continue
		}
		pool = append(pool, candidate)
	}

	conflicts := detector.scanPairs(pool)
	filtered := make([]DetectedConflict, 0, len(conflicts))
	for _, conflict := range conflicts {
		if conflict.ProductA.ID == product.ID || conflict.ProductB.ID == product.ID {
			filtered = append(filtered, conflict)
		}
	}
	return filtered
}

func (detector *ConflictDetector) scanPairs(products []models.Product) []DetectedConflict {
	conflicts := make([]DetectedConflict, 0)
	seen := make(map[string]bool)

	for i := 0; i < len(products); i++ {
		for j := i + 1; j < len(products); j++ {
			first, second := products[i], products[j]
			if !usageWindowsOverlap(first.TimeOfDay, second.TimeOfDay) {
				continue
			}

			firstText := ingredientSearchText(first)
			secondText := ingredientSearchText(second)
			if firstText == "" || secondText == "" {
				continue
			}

			for _, rule := range detector.rules {
				keywordFirst, keywordSecond, matched := matchRule(rule, firstText, secondText)
				if !matched {
					continue
				}

				key := conflictKey(rule.ID, first.ID, second.ID)
				if seen[key] {
					continue
				}
				seen[key] = true

				conflicts = append(conflicts, DetectedConflict{
					Rule:            rule,
					ProductA:        first,
					ProductB:        second,
					MatchedKeywordA: keywordFirst,
					MatchedKeywordB: keywordSecond,
				})
			}
		}
	}

	sort.SliceStable(conflicts, func(i, j int) bool {
		return SeverityRank(conflicts[i].Rule.Severity) < SeverityRank(conflicts[j].Rule.Severity)
	})
	return conflicts
}

// usageWindowsOverlap: "both" overlaps everything; otherwise the windows must
// match exactly. Morning-only and evening-only products never meet on skin.
func usageWindowsOverlap(a models.TimeOfDay, b models.TimeOfDay) bool {
	if a == models.TimeBoth || b == models.TimeBoth {
		return true
	}
	return a == b
}

func ingredientSearchText(product models.Product) string {
	parts := make([]string, 0, 3)
	for _, part := range []string{product.ActiveIngredients, product.FullIngredients, product.Name} {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return strings.ToLower(strings.Join(parts, " "))
}

func matchRule(rule ConflictRule, firstText string, secondText string) (string, string, bool) {
	if keywordA, keywordB, ok := matchDirection(rule.GroupA, rule.GroupB, firstText, secondText); ok {
		return keywordA, keywordB, true
	}
	if keywordB, keywordA, ok := matchDirection(rule.GroupB, rule.GroupA, firstText, secondText); ok {
		return keywordB, keywordA, true
	}
	return "", "", false
}

func matchDirection(groupFirst []string, groupSecond []string, firstText string, secondText string) (string, string, bool) {
	keywordFirst := firstKeywordIn(groupFirst, firstText)
	if keywordFirst == "" {
		return "", "", false
	}
	keywordSecond := firstKeywordIn(groupSecond, secondText)
	if keywordSecond == "" {
		return "", "", false
	}
	return keywordFirst, keywordSecond, true
}

func firstKeywordIn(group []string, text string) string {
	for _, keyword := range group {
		if strings.Contains(text, keyword) {
			return keyword
		}
	}
	return ""
}

func conflictKey(ruleID string, productA uint, productB uint) string {
	low, high := productA, productB
	if low > high {
		low, high = high, low
	}
	return fmt.Sprintf("%s:%d:%d", ruleID, low, high)
}
