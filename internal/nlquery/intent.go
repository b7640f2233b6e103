package nlquery

import (
	"strings"

	"github.com/arjaygg/analyze-fin-sub001/internal/models"
)

type intentCue struct {
	phrase string
	intent models.Intent

	// aggregation cues beat listing cues: "count transactions" is a
	// COUNT, not a LIST
	aggregation bool
}

// Cue table in declaration order. The longest matched cue wins; equal
// lengths fall back to declaration order.
var intentCues = []intentCue{
	{phrase: "how many", intent: models.IntentCount, aggregation: true},
	{phrase: "count", intent: models.IntentCount, aggregation: true},
	{phrase: "average", intent: models.IntentAverage, aggregation: true},
	{phrase: "avg", intent: models.IntentAverage, aggregation: true},
	{phrase: "breakdown", intent: models.IntentBreakdown, aggregation: true},
	{phrase: "by category", intent: models.IntentBreakdown, aggregation: true},
	{phrase: "each category", intent: models.IntentBreakdown, aggregation: true},
	{phrase: "per category", intent: models.IntentBreakdown, aggregation: true},
	{phrase: "show", intent: models.IntentList, aggregation: false},
	{phrase: "list", intent: models.IntentList, aggregation: false},
	{phrase: "transactions", intent: models.IntentList, aggregation: false},
}

// ClassifyIntent decides which aggregation the user wants from keyword cues.
// The default is TOTAL, covering bare "how much" questions and input with no
// cues at all. The second return value reports whether two conflicting
// aggregation cues were present, so the parser can lower confidence.
func ClassifyIntent(tokens []string) (models.Intent, bool) {
	if len(tokens) == 0 {
		return models.IntentTotal, false
	}

	joined := " " + strings.Join(tokens, " ") + " "

	var aggregationIntents []models.Intent
	var bestAggregation, bestListing *intentCue
	for i := range intentCues {
		cue := &intentCues[i]
		if !strings.Contains(joined, " "+cue.phrase+" ") {
			continue
		}
		if cue.aggregation {
			aggregationIntents = append(aggregationIntents, cue.intent)
			if bestAggregation == nil || len(cue.phrase) > len(bestAggregation.phrase) {
				bestAggregation = cue
			}
		} else if bestListing == nil || len(cue.phrase) > len(bestListing.phrase) {
			bestListing = cue
		}
	}

	if bestAggregation != nil {
		ambiguous := false
		for _, intent := range aggregationIntents {
			if intent != bestAggregation.intent {
				ambiguous = true
			}
		}
		return bestAggregation.intent, ambiguous
	}

	if bestListing != nil {
		return models.IntentList, false
	}

	return models.IntentTotal, false
}
