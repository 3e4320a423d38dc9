package wiki

import (
	"regexp"

	"github.com/PuerkitoBio/goquery"
)

// Entry is one scraped list item that carried an extractable year.
// Entries are immutable once created.
type Entry struct {
	Year               int
	InAnimationSection bool
	Text               string
}

// Stats counts what the extraction pass visited. Diagnostic only; the
// numbers never influence the emitted rows.
type Stats struct {
	ListItems         int
	ListItemsWithYear int
}

// animationHeadingRE classifies section headings. Whole-word,
// case-insensitive.
var animationHeadingRE = regexp.MustCompile(`(?i)\b(animation|animated)\b`)

// Extract walks headings and list items of the content region in document
// order. Every heading, at any of the three levels, reassigns the running
// "inside an animation section" flag; list items inherit its current value.
// List items without an extractable year are skipped.
func Extract(content *goquery.Selection) ([]Entry, Stats) {
	var (
		entries     []Entry
		stats       Stats
		inAnimation bool
	)

	content.Find("h2, h3, h4, li").Each(func(_ int, sel *goquery.Selection) {
		switch goquery.NodeName(sel) {
		case "h2", "h3", "h4":
			inAnimation = animationHeadingRE.MatchString(flattenText(sel))
		case "li":
			stats.ListItems++
			text := flattenText(sel)
			year, ok := ExtractYear(text)
			if !ok {
				return
			}
			stats.ListItemsWithYear++
			entries = append(entries, Entry{
				Year:               year,
				InAnimationSection: inAnimation,
				Text:               text,
			})
		}
	})

	return entries, stats
}
