package models

import "fmt"

// InputKind identifies where the analyzed content came from. The CLI
// resolves it before the pipeline runs; the pipeline only sees Content.
type InputKind int

const (
	InputRawText InputKind = iota
	InputHTML
	InputURL
)

func (k InputKind) String() string {
	switch k {
	case InputRawText:
		return "text"
	case InputHTML:
		return "html"
	case InputURL:
		return "url"
	default:
		return fmt.Sprintf("InputKind(%d)", int(k))
	}
}

// MarshalText lets the kind appear by name in JSON and YAML reports.
func (k InputKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}
