package fetcher

import (
	"bytes"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/dtnitsch/llm-citability/models"
	"github.com/dtnitsch/llm-citability/pkg/structure"
	"github.com/go-shiori/go-readability"
)

// MinReadableChars is the least amount of distilled text accepted from
// readability before falling back to the container heuristic.
const MinReadableChars = 200

// Extract reduces a raw HTML page to its main content. go-readability does
// the distillation; when it fails or keeps too little, the longest of
// <article>, <main> or <body> is used instead.
func Extract(rawURL string, html []byte) (models.Content, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return models.Content{}, fmt.Errorf("failed to parse HTML: %w", err)
	}
	pageTitle := strings.TrimSpace(doc.Find("title").First().Text())
	meta := pageMeta(doc)
	doc.Find(structure.NoiseSelector).Remove()

	content := models.Content{URL: rawURL}
	if article, ok := distill(rawURL, html); ok {
		content.Title = article.Title
		content.HTML = article.Content
		content.Text = structure.TextFromHTML(article.Content)
		meta.Author = firstNonEmpty(strings.TrimSpace(article.Byline), meta.Author)
		meta.SiteName = firstNonEmpty(strings.TrimSpace(article.SiteName), meta.SiteName)
		if article.PublishedTime != nil {
			meta.PublishedTime = article.PublishedTime.Format("2006-01-02")
		}
	} else {
		best := mainContainer(doc)
		content.HTML, err = goquery.OuterHtml(best)
		if err != nil {
			return models.Content{}, fmt.Errorf("failed to render main content: %w", err)
		}
		content.Text = structure.TextFromSelection(best)
		if content.Text == "" {
			content.Text = strings.Join(strings.Fields(best.Text()), " ")
		}
	}

	content.Title = firstNonEmpty(strings.TrimSpace(content.Title), pageTitle, rawURL)
	content.Meta = meta
	return content, nil
}

// pageMeta reads byline metadata from <meta> tags.
func pageMeta(doc *goquery.Document) models.PageMeta {
	content := func(selector string) string {
		v, _ := doc.Find(selector).First().Attr("content")
		return strings.TrimSpace(v)
	}

	meta := models.PageMeta{
		Author:   firstNonEmpty(content(`meta[name="author"]`), content(`meta[property="article:author"]`)),
		SiteName: content(`meta[property="og:site_name"]`),
	}
	published := firstNonEmpty(content(`meta[property="article:published_time"]`), content(`meta[name="date"]`))
	if len(published) >= len("2006-01-02") {
		if t, err := time.Parse("2006-01-02", published[:10]); err == nil {
			meta.PublishedTime = t.Format("2006-01-02")
		}
	}
	return meta
}

func distill(rawURL string, html []byte) (readability.Article, bool) {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return readability.Article{}, false
	}
	readabilityParser := readability.NewParser()
	article, err := readabilityParser.Parse(bytes.NewReader(html), parsedURL)
	if err != nil {
		return readability.Article{}, false
	}
	if len(strings.TrimSpace(article.TextContent)) < MinReadableChars {
		return readability.Article{}, false
	}
	return article, true
}

// mainContainer picks the candidate container holding the most text.
func mainContainer(doc *goquery.Document) *goquery.Selection {
	var candidates []*goquery.Selection
	if article := doc.Find("article").First(); article.Length() > 0 {
		candidates = append(candidates, article)
	}
	if mainTag := doc.Find("main").First(); mainTag.Length() > 0 {
		candidates = append(candidates, mainTag)
	}
	if len(candidates) == 0 {
		candidates = append(candidates, doc.Find("body").First())
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		if textLen(c) > textLen(best) {
			best = c
		}
	}
	return best
}

func textLen(s *goquery.Selection) int {
	return len(strings.Join(strings.Fields(s.Text()), " "))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
