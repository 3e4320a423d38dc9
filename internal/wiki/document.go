// Package wiki parses the fetched article and extracts dated list entries.
package wiki

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// contentSelector is where MediaWiki keeps the rendered article body.
const contentSelector = "#mw-content-text .mw-parser-output"

// ErrStructure means the expected content container is missing, which
// almost always means the page layout changed upstream.
var ErrStructure = errors.New("page structure changed: " + contentSelector + " not found")

// ParseContent builds a node tree from raw markup and locates the main
// article content region.
func ParseContent(body []byte) (*goquery.Selection, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}
	content := doc.Find(contentSelector).First()
	if content.Length() == 0 {
		return nil, ErrStructure
	}
	return content, nil
}

// flattenText returns all descendant text of sel joined with single
// spaces, with surrounding whitespace trimmed and runs collapsed.
func flattenText(sel *goquery.Selection) string {
	var parts []string
	for _, node := range sel.Nodes {
		collectText(node, &parts)
	}
	return strings.Join(parts, " ")
}

func collectText(n *html.Node, parts *[]string) {
	if n.Type == html.TextNode {
		*parts = append(*parts, strings.Fields(n.Data)...)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, parts)
	}
}
