package nlquery

import (
	"strconv"
	"time"
)

// DateRange is a half-open calendar interval [From, To)
type DateRange struct {
	From time.Time
	To   time.Time
}

// Candidate specificity ranks. When several temporal phrases appear in one
// question the most specific one wins; equal ranks fall back to scan order.
const (
	rankRelativeUnit  = 1 // "last month", "today", "past 3 months"
	rankMonthYear     = 2 // "November 2024"
	rankExplicitDate  = 3 // "2024-01-15"
	rankExplicitRange = 4 // "between 2024-01-01 and 2024-01-31"
)

type dateCandidate struct {
	rng  DateRange
	rank int
	pos  int
}

var monthsByName = map[string]time.Month{
	"january": time.January, "jan": time.January,
	"february": time.February, "feb": time.February,
	"march": time.March, "mar": time.March,
	"april": time.April, "apr": time.April,
	"may":  time.May,
	"june": time.June, "jun": time.June,
	"july": time.July, "jul": time.July,
	"august": time.August, "aug": time.August,
	"september": time.September, "sep": time.September, "sept": time.September,
	"october": time.October, "oct": time.October,
	"november": time.November, "nov": time.November,
	"december": time.December, "dec": time.December,
}

// ResolveDateRange maps temporal phrases in the token sequence to a concrete
// date interval anchored at now. It returns nil when no phrase is recognized.
// The second return value is the number of distinct temporal phrases found,
// so the caller can lower confidence when the question was ambiguous.
func ResolveDateRange(tokens []string, now time.Time) (*DateRange, int) {
	candidates := scanDateCandidates(tokens, now)
	if len(candidates) == 0 {
		return nil, 0
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.rank > best.rank {
			best = c
		}
	}

	rng := best.rng
	return &rng, len(candidates)
}

func scanDateCandidates(tokens []string, now time.Time) []dateCandidate {
	var candidates []dateCandidate
	consumed := make([]bool, len(tokens))

	today := truncateDay(now)
	tomorrow := today.AddDate(0, 0, 1)

	add := func(rng DateRange, rank, from, to int) {
		candidates = append(candidates, dateCandidate{rng: rng, rank: rank, pos: from})
		for i := from; i <= to && i < len(tokens); i++ {
			consumed[i] = true
		}
	}

	for i, tok := range tokens {
		if consumed[i] {
			continue
		}

		// "between A and B" / "from A to B" with literal dates, end
		// date inclusive.
		if tok == "between" || tok == "from" {
			connector := "and"
			if tok == "from" {
				connector = "to"
			}
			if i+3 < len(tokens) && tokens[i+2] == connector {
				start, okStart := parseLiteralDate(tokens[i+1], now.Location())
				end, okEnd := parseLiteralDate(tokens[i+3], now.Location())
				if okStart && okEnd && !end.Before(start) {
					add(DateRange{From: start, To: end.AddDate(0, 0, 1)}, rankExplicitRange, i, i+3)
					continue
				}
			}
		}

		// "last 30 days", "past 3 months"
		if tok == "last" || tok == "past" {
			if i+2 < len(tokens) {
				if n, err := strconv.Atoi(tokens[i+1]); err == nil && n > 0 {
					if from, ok := lookback(today, tokens[i+2], n); ok {
						add(DateRange{From: from, To: tomorrow}, rankRelativeUnit, i, i+2)
						continue
					}
				}
			}
		}

		// "this week", "last month", "last year", ...
		if tok == "this" || tok == "last" {
			if i+1 < len(tokens) {
				if rng, ok := calendarUnit(today, tomorrow, tok, tokens[i+1]); ok {
					add(rng, rankRelativeUnit, i, i+1)
					continue
				}
			}
		}

		// "November 2024", "nov 2024"
		if month, ok := monthsByName[tok]; ok {
			if i+1 < len(tokens) {
				if year, err := strconv.Atoi(tokens[i+1]); err == nil && year >= 1900 && year <= 2100 {
					from := time.Date(year, month, 1, 0, 0, 0, 0, now.Location())
					add(DateRange{From: from, To: from.AddDate(0, 1, 0)}, rankMonthYear, i, i+1)
					continue
				}
			}
		}

		switch tok {
		case "today":
			add(DateRange{From: today, To: tomorrow}, rankRelativeUnit, i, i)
			continue
		case "yesterday":
			add(DateRange{From: today.AddDate(0, 0, -1), To: today}, rankRelativeUnit, i, i)
			continue
		}

		// A lone literal date means that single day.
		if day, ok := parseLiteralDate(tok, now.Location()); ok {
			add(DateRange{From: day, To: day.AddDate(0, 0, 1)}, rankExplicitDate, i, i)
			continue
		}
	}

	return candidates
}

// calendarUnit resolves "this"/"last" + week/month/year. "this X" runs from
// the start of the unit through the end of today; "last X" is the previous
// full calendar unit. Weeks start on Monday.
func calendarUnit(today, tomorrow time.Time, qualifier, unit string) (DateRange, bool) {
	var floor time.Time

	switch unit {
	case "week", "weeks":
		floor = startOfWeek(today)
	case "month", "months":
		floor = time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
	case "year", "years":
		floor = time.Date(today.Year(), 1, 1, 0, 0, 0, 0, today.Location())
	default:
		return DateRange{}, false
	}

	if qualifier == "this" {
		return DateRange{From: floor, To: tomorrow}, true
	}

	var prev time.Time
	switch unit {
	case "week", "weeks":
		prev = floor.AddDate(0, 0, -7)
	case "month", "months":
		prev = floor.AddDate(0, -1, 0)
	default:
		prev = floor.AddDate(-1, 0, 0)
	}
	return DateRange{From: prev, To: floor}, true
}

// lookback resolves "last/past N <unit>" to the range start N units before
// today
func lookback(today time.Time, unit string, n int) (time.Time, bool) {
	switch unit {
	case "day", "days":
		return today.AddDate(0, 0, -n), true
	case "week", "weeks":
		return today.AddDate(0, 0, -7*n), true
	case "month", "months":
		return today.AddDate(0, -n, 0), true
	case "year", "years":
		return today.AddDate(-n, 0, 0), true
	default:
		return time.Time{}, false
	}
}

// parseLiteralDate accepts ISO-style dates ("2024-01-31", "2024/01/31")
func parseLiteralDate(tok string, loc *time.Location) (time.Time, bool) {
	for _, layout := range []string{"2006-01-02", "2006/01/02"} {
		if t, err := time.ParseInLocation(layout, tok, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func startOfWeek(day time.Time) time.Time {
	weekday := int(day.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday belongs to the week that started the prior Monday
	}
	return day.AddDate(0, 0, -(weekday - 1))
}
