package structure

import (
	"testing"

	"github.com/dtnitsch/llm-citability/models"
)

func TestFromText(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		wantHeadings int
		wantLists    int
		wantParas    int
	}{
		{name: "empty", text: "", wantHeadings: 0, wantLists: 0, wantParas: 0},
		{name: "markdown heading", text: "# Title\n\nSome text.", wantHeadings: 1, wantLists: 0, wantParas: 2},
		{name: "deep markdown heading", text: "### Setup steps\n\nRun it.", wantHeadings: 1, wantParas: 2},
		{name: "hash without space is not a heading", text: "#hashtag\n\nBody text here.", wantHeadings: 0, wantParas: 2},
		{name: "inline html heading", text: "<h2>Overview</h2>\n\nBody.", wantHeadings: 1, wantParas: 2},
		{name: "all caps standalone line", text: "INTRODUCTION\n\nThe body follows here.", wantHeadings: 1, wantParas: 2},
		{name: "title case standalone line", text: "Getting Started with Go\n\nThe body follows here.", wantHeadings: 1, wantParas: 2},
		{name: "sentence is not a heading", text: "This is a sentence.", wantHeadings: 0, wantParas: 1},
		{name: "lowercase short line is not a heading", text: "just some words\n\nMore text.", wantHeadings: 0, wantParas: 2},
		{name: "title line inside paragraph is not standalone", text: "Getting Started\nwith some text below it", wantHeadings: 0, wantParas: 1},
		{
			name:      "bullets and numerals",
			text:      "Steps:\n\n- first\n- second\n* third\n• fourth\n1. fifth\n2) sixth",
			wantLists: 6, wantParas: 2,
		},
		{name: "dash without space is not a list", text: "-not a list\n\n-neither", wantLists: 0, wantParas: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromText(tt.text)
			if got.HeadingCount != tt.wantHeadings {
				t.Errorf("HeadingCount = %d, want %d", got.HeadingCount, tt.wantHeadings)
			}
			if got.ListItemCount != tt.wantLists {
				t.Errorf("ListItemCount = %d, want %d", got.ListItemCount, tt.wantLists)
			}
			if got.ParagraphCount != tt.wantParas {
				t.Errorf("ParagraphCount = %d, want %d", got.ParagraphCount, tt.wantParas)
			}
			if got.Source != models.StructureSourceText {
				t.Errorf("Source = %q, want %q", got.Source, models.StructureSourceText)
			}
		})
	}
}

func TestExtract_HTML(t *testing.T) {
	html := `<html><body>
		<h1>Guide</h1>
		<p>Intro paragraph.</p>
		<h2>Steps</h2>
		<ul><li><p>One</p></li><li>Two</li><li>   </li></ul>
		<ol><li>Three</li></ol>
		<blockquote><p>Quoted.</p></blockquote>
	</body></html>`

	got := Extract(models.Content{HTML: html})
	want := models.StructuralSignals{
		HeadingCount:   2,
		ListItemCount:  3,
		ParagraphCount: 7,
		Source:         models.StructureSourceHTML,
	}
	if got != want {
		t.Errorf("Extract() = %+v, want %+v", got, want)
	}
}

func TestExtract_FallsBackToText(t *testing.T) {
	tests := []struct {
		name string
		html string
	}{
		{name: "no html", html: ""},
		{name: "empty body", html: "<html><head><title>x</title></head><body>  </body></html>"},
		{name: "only scripts", html: "<script></script>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(models.Content{Text: "# Title\n\nBody.", HTML: tt.html})
			if got.Source != models.StructureSourceText {
				t.Fatalf("Source = %q, want %q", got.Source, models.StructureSourceText)
			}
			if got.HeadingCount != 1 {
				t.Errorf("HeadingCount = %d, want 1", got.HeadingCount)
			}
		})
	}
}

func TestExtract_MalformedHTMLNeverFails(t *testing.T) {
	got := Extract(models.Content{HTML: "<h1>Unclosed <p>text <li>item <<<>>>"})
	if got.HeadingCount < 0 || got.ListItemCount < 0 || got.ParagraphCount < 0 {
		t.Errorf("negative counts: %+v", got)
	}
}

func TestTextFromHTML(t *testing.T) {
	html := `<article><h1>Title</h1><p>First   line
		continues.</p><ul><li><p>Item</p></li></ul><div>ignored wrapper</div></article>`
	want := "Title\n\nFirst line continues.\n\nItem"
	if got := TextFromHTML(html); got != want {
		t.Errorf("TextFromHTML() = %q, want %q", got, want)
	}
}

func TestExtract_HTMLWithoutBlocksFallsBack(t *testing.T) {
	got := Extract(models.Content{Text: "# Title\n\nBody text.", HTML: "<<<>>>"})
	if got.Source != models.StructureSourceText {
		t.Errorf("Source = %q, want %q", got.Source, models.StructureSourceText)
	}
}

func TestTextFromHTML_NoBlocks(t *testing.T) {
	html := "<div>Loose   text <span>inside</span></div><script>var x = 1;</script>"
	if got := TextFromHTML(html); got != "Loose text inside" {
		t.Errorf("TextFromHTML() = %q, want %q", got, "Loose text inside")
	}
}
