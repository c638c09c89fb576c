package models

// StructuralSignals are the structure counts found in a Content.
type StructuralSignals struct {
	HeadingCount   int    `json:"heading_count" yaml:"heading_count"`
	ListItemCount  int    `json:"list_item_count" yaml:"list_item_count"`
	ParagraphCount int    `json:"paragraph_count" yaml:"paragraph_count"`
	Source         string `json:"source" yaml:"source"` // "html" or "text"
}

const (
	StructureSourceHTML = "html"
	StructureSourceText = "text"
)

// MetricsReport is the numeric profile of one analyzed document.
type MetricsReport struct {
	WordCount            int     `json:"word_count" yaml:"word_count"`
	SentenceCount        int     `json:"sentence_count" yaml:"sentence_count"`
	ParagraphCount       int     `json:"paragraph_count" yaml:"paragraph_count"`
	AvgSentenceLength    float64 `json:"avg_sentence_length" yaml:"avg_sentence_length"`
	LongParagraphCount   int     `json:"long_paragraph_count" yaml:"long_paragraph_count"`
	HeadingRatio         float64 `json:"heading_ratio" yaml:"heading_ratio"`
	ListRatio            float64 `json:"list_ratio" yaml:"list_ratio"`
	NumberCount          int     `json:"number_count" yaml:"number_count"`
	URLCount             int     `json:"url_count" yaml:"url_count"`
	CitationPatternCount int     `json:"citation_pattern_count" yaml:"citation_pattern_count"`
	TypeTokenRatio       float64 `json:"type_token_ratio" yaml:"type_token_ratio"`
	RepetitionScore      float64 `json:"repetition_score" yaml:"repetition_score"`
}

// SourceSignals describe where a fetched page comes from.
type SourceSignals struct {
	DomainType    string `json:"domain_type" yaml:"domain_type"` // gov, edu, academic, mobile, commercial
	Category      string `json:"category" yaml:"category"`
	Country       string `json:"country" yaml:"country"`
	Author        string `json:"author,omitempty" yaml:"author,omitempty"`
	SiteName      string `json:"site_name,omitempty" yaml:"site_name,omitempty"`
	PublishedTime string `json:"published_time,omitempty" yaml:"published_time,omitempty"`
	ArXivID       string `json:"arxiv_id,omitempty" yaml:"arxiv_id,omitempty"`
}

// Recommendation is one piece of advice tied to a single rule.
type Recommendation struct {
	Rule    string `json:"rule" yaml:"rule"`
	Metric  string `json:"metric" yaml:"metric"`
	Message string `json:"message" yaml:"message"`
}

// Analysis is everything the pipeline returns for one Content.
type Analysis struct {
	Metrics         MetricsReport     `json:"metrics" yaml:"metrics"`
	Structure       StructuralSignals `json:"structure" yaml:"structure"`
	Recommendations []Recommendation  `json:"recommendations" yaml:"recommendations"`
}
