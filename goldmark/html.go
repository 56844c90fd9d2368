package goldmark

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// htmlText returns the visible text of an HTML fragment. Fragments that
// fail to parse are returned unchanged.
func htmlText(fragment string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return fragment
	}
	doc.Find("script, style").Remove()
	return doc.Text()
}
