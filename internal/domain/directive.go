package domain

import (
	"fmt"
	"strings"
)

// CallDirective is a textual request found in LLM output to invoke a tool.
type CallDirective struct {
	ToolName  string
	Arguments map[string]any
	// SourceSpan is the literal text that produced the directive.
	SourceSpan string
	// Start and End are byte offsets of SourceSpan in the scanned text.
	Start int
	End   int
	// Err is set when the directive's arguments could not be decoded.
	Err error
}

// Malformed reports whether the directive failed to parse.
func (d CallDirective) Malformed() bool {
	return d.Err != nil
}

// ParseErrorMarker is the inline text that replaces a malformed directive.
func (d CallDirective) ParseErrorMarker() string {
	return fmt.Sprintf("❌ Invalid tool call arguments for %s: %v", d.ToolName, d.Err)
}

// SubstituteDirectives replaces each directive's span with its replacement.
// Directives must be ordered and non-overlapping; text outside the spans is preserved verbatim.
func SubstituteDirectives(text string, directives []CallDirective, replacements []string) string {
	if len(directives) == 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	last := 0
	for i, d := range directives {
		if d.Start < last || d.End > len(text) || d.Start > d.End {
			continue
		}
		b.WriteString(text[last:d.Start])
		if i < len(replacements) {
			b.WriteString(replacements[i])
		} else {
			b.WriteString(d.SourceSpan)
		}
		last = d.End
	}
	b.WriteString(text[last:])
	return b.String()
}
