package structure

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// NoiseSelector matches elements that never carry readable content.
const NoiseSelector = "script,style,noscript,iframe,template"

// TextFromHTML flattens the block elements of an HTML document into plain
// text, one block per paragraph. Markup without block elements yields its
// body text as a single paragraph.
func TextFromHTML(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}
	doc.Find(NoiseSelector).Remove()
	if text := TextFromSelection(doc.Selection); text != "" {
		return text
	}
	return normalizeText(doc.Find("body").Text())
}

// TextFromSelection is TextFromHTML for an already parsed subtree.
func TextFromSelection(s *goquery.Selection) string {
	return strings.Join(blocks(s), "\n\n")
}

// blocks returns the normalized text of outermost block elements, so a
// <p> inside an <li> is read once as part of the list item.
func blocks(root *goquery.Selection) []string {
	var out []string
	root.Find(blockSelector).Each(func(i int, s *goquery.Selection) {
		if s.ParentsFiltered(blockSelector).Length() > 0 {
			return
		}
		if text := normalizeText(s.Text()); text != "" {
			out = append(out, text)
		}
	})
	return out
}

// normalizeText collapses runs of whitespace into single spaces.
func normalizeText(input string) string {
	return strings.Join(strings.Fields(input), " ")
}
