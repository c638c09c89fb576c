package models

import "strings"

// Content is the normalized input of one analysis call. The fetcher fills
// URL and Title; pasted input leaves them empty.
type Content struct {
	Text  string   `json:"-" yaml:"-"`
	HTML  string   `json:"-" yaml:"-"`
	URL   string   `json:"url,omitempty" yaml:"url,omitempty"`
	Title string   `json:"title,omitempty" yaml:"title,omitempty"`
	Meta  PageMeta `json:"-" yaml:"-"`
}

// PageMeta is the byline metadata a fetched page declares about itself.
type PageMeta struct {
	Author        string
	SiteName      string
	PublishedTime string // YYYY-MM-DD
}

// IsEmpty reports whether there is nothing to analyze.
func (c Content) IsEmpty() bool {
	return strings.TrimSpace(c.Text) == "" && strings.TrimSpace(c.HTML) == ""
}

// HasHTML reports whether structural markup was supplied.
func (c Content) HasHTML() bool {
	return strings.TrimSpace(c.HTML) != ""
}
