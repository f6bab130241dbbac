// Package models defines data structures shared by the CLI and the analyser.
package models

import (
	"fmt"
	"strings"
)

// SourceMode selects how a Source value is interpreted.
type SourceMode int

const (
	// SourceURL fetches the value over HTTP.
	SourceURL    SourceMode = iota
	SourceMarkup            // Raw HTML text
	SourceFile              // Path to a local HTML file
)

func (m SourceMode) String() string {
	switch m {
	case SourceURL:
		return "url"
	case SourceMarkup:
		return "markup"
	case SourceFile:
		return "file"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Source identifies one document to analyse.
type Source struct {
	Value string
	Mode  SourceMode
}

// String returns a short label for logs and reports. Markup is not echoed.
func (s Source) String() string {
	if s.Mode == SourceMarkup {
		return fmt.Sprintf("markup(%d bytes)", len(s.Value))
	}
	return s.Value
}

// ResolveSourceMode guesses the mode for a bare argument: anything with an
// http(s) scheme is a URL, anything that looks like a tag is markup, the rest
// is treated as a file path.
func ResolveSourceMode(value string) SourceMode {
	v := strings.TrimSpace(value)
	lower := strings.ToLower(v)
	switch {
	case strings.HasPrefix(lower, "http://"), strings.HasPrefix(lower, "https://"):
		return SourceURL
	case strings.HasPrefix(v, "<"):
		return SourceMarkup
	default:
		return SourceFile
	}
}
