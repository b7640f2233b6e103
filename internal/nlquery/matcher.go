package nlquery

import (
	"strings"

	"github.com/arjaygg/analyze-fin-sub001/internal/models"
)

const fuzzyMerchantThreshold = 0.8

// MatchCategory maps free-text tokens to a known canonical category name.
// Exact case-insensitive phrase matches win over synonym keyword matches;
// among keyword matches the longest keyword wins, with ties broken by table
// declaration order. No match returns the empty string, never an error: an
// unmatched question is simply unscoped by category.
func MatchCategory(tokens []string, lookup models.Lookup) string {
	if len(tokens) == 0 {
		return ""
	}

	joined := " " + strings.Join(tokens, " ") + " "

	for _, entry := range lookup.Categories {
		if strings.Contains(joined, " "+strings.ToLower(entry.Category)+" ") {
			return entry.Category
		}
	}

	var bestCategory string
	var bestKeywordLen int
	for _, entry := range lookup.Categories {
		for _, keyword := range entry.Keywords {
			keyword = strings.ToLower(keyword)
			if len(keyword) <= bestKeywordLen {
				continue
			}
			if containsKeyword(joined, tokens, keyword) {
				bestCategory = entry.Category
				bestKeywordLen = len(keyword)
			}
		}
	}

	return bestCategory
}

// MatchMerchant maps tokens to a known normalized merchant name. Exact and
// substring matches are tried first; a Levenshtein pass then catches close
// misspellings. Ties go to the longest matched name, then declaration order.
func MatchMerchant(tokens []string, lookup models.Lookup) string {
	if len(tokens) == 0 {
		return ""
	}

	joinedNorm := normalizeForMatching(strings.Join(tokens, " "))

	var best string
	for _, merchant := range lookup.Merchants {
		norm := normalizeForMatching(merchant)
		if norm == "" {
			continue
		}
		if strings.Contains(joinedNorm, norm) && len(norm) > len(normalizeForMatching(best)) {
			best = merchant
		}
	}
	if best != "" {
		return best
	}

	var bestScore float64
	for _, merchant := range lookup.Merchants {
		norm := normalizeForMatching(merchant)
		for _, tok := range tokens {
			score := calculateSimilarity(normalizeForMatching(tok), norm)
			if score > bestScore && score >= fuzzyMerchantThreshold {
				bestScore = score
				best = merchant
			}
		}
	}

	return best
}

// containsKeyword matches multi-word keywords against the joined phrase and
// single-word keywords against individual tokens (as substrings, so
// "restaurant" also matches "restaurants").
func containsKeyword(joined string, tokens []string, keyword string) bool {
	if strings.Contains(keyword, " ") {
		return strings.Contains(joined, keyword)
	}
	for _, tok := range tokens {
		if strings.Contains(tok, keyword) {
			return true
		}
	}
	return false
}

// normalizeForMatching normalizes strings for consistent matching
func normalizeForMatching(s string) string {
	s = strings.ToLower(s)
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, "_", "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "'", "")
	s = strings.ReplaceAll(s, ".", "")
	return s
}

// calculateSimilarity calculates the similarity score between two strings
// using Levenshtein distance
func calculateSimilarity(s1, s2 string) float64 {
	if s1 == s2 {
		return 1.0
	}

	if len(s1) == 0 || len(s2) == 0 {
		return 0.0
	}

	distance := levenshteinDistance(s1, s2)
	maxLen := len(s1)
	if len(s2) > maxLen {
		maxLen = len(s2)
	}

	return 1.0 - float64(distance)/float64(maxLen)
}

// levenshteinDistance calculates the Levenshtein distance between two strings
func levenshteinDistance(s1, s2 string) int {
	if s1 == s2 {
		return 0
	}

	if len(s1) == 0 {
		return len(s2)
	}

	if len(s2) == 0 {
		return len(s1)
	}

	matrix := make([][]int, len(s1)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(s2)+1)
	}

	for i := 0; i <= len(s1); i++ {
		matrix[i][0] = i
	}
	for j := 0; j <= len(s2); j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= len(s1); i++ {
		for j := 1; j <= len(s2); j++ {
			cost := 1
			if s1[i-1] == s2[j-1] {
				cost = 0
			}

			matrix[i][j] = minOf(
				matrix[i-1][j]+1,      // deletion
				matrix[i][j-1]+1,      // insertion
				matrix[i-1][j-1]+cost, // substitution
			)
		}
	}

	return matrix[len(s1)][len(s2)]
}

func minOf(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}
