// Package filter removes unwanted entries and aggregates counts by year.
package filter

import (
	"sort"
	"strings"

	"github.com/jjf3/rewindos-christmas-episodes/internal/wiki"
)

// Specials drops entries from animation sections and entries whose text
// contains any of the given keywords, case-insensitively. Keyword matching
// is plain substring matching, not whole-word.
func Specials(entries []wiki.Entry, keywords []string) []wiki.Entry {
	lowered := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw != "" {
			lowered = append(lowered, kw)
		}
	}

	kept := make([]wiki.Entry, 0, len(entries))
	for _, e := range entries {
		if e.InAnimationSection {
			continue
		}
		if containsAny(strings.ToLower(e.Text), lowered) {
			continue
		}
		kept = append(kept, e)
	}
	return kept
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// YearCount is one row of the aggregate: a year and how many filtered
// entries fell in it.
type YearCount struct {
	Year  int
	Count int
}

// CountByYear groups entries by year and orders the result by count
// descending. Equal counts order by year ascending so reruns produce
// byte-identical output.
func CountByYear(entries []wiki.Entry) []YearCount {
	byYear := make(map[int]int)
	for _, e := range entries {
		byYear[e.Year]++
	}

	counts := make([]YearCount, 0, len(byYear))
	for year, count := range byYear {
		counts = append(counts, YearCount{Year: year, Count: count})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Year < counts[j].Year
	})
	return counts
}
