package usecases

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/cleitonmarx/symbiont-mcp-bridge/internal/domain"
)

const (
	// DIRECTIVE_MARKER opens every tool-call directive.
	DIRECTIVE_MARKER = "call_tool("

	// LIST_IN_NAMESPACE_TOOL gets domain.DEFAULT_NAMESPACE when called without a namespace.
	LIST_IN_NAMESPACE_TOOL = "pods_list_in_namespace"
)

// directiveRule is one surface form of a tool-call directive.
// match reports the byte length of the directive at the start of s and its captured groups.
type directiveRule struct {
	name    string
	match   func(s string) (length int, groups []string, ok bool)
	extract func(groups []string) (map[string]any, error)
}

const namePattern = `\Acall_tool\(\s*['"]([^'"]+)['"]`

var directiveGrammar = []directiveRule{
	{
		name:    "object-literal",
		match:   matchObjectLiteral,
		extract: extractObjectLiteral,
	},
	{
		name:  "single-value",
		match: regexMatcher(namePattern + `\s*,\s*['"]([^'"]*)['"]\s*\)`),
		extract: func(groups []string) (map[string]any, error) {
			return map[string]any{"namespace": groups[1]}, nil
		},
	},
	{
		name:  "named-namespace",
		match: regexMatcher(namePattern + `\s*,\s*namespace\s*=\s*['"]([^'"]*)['"]\s*\)`),
		extract: func(groups []string) (map[string]any, error) {
			return map[string]any{"namespace": groups[1]}, nil
		},
	},
	{
		name:  "two-values",
		match: regexMatcher(namePattern + `\s*,\s*['"]([^'"]*)['"]\s*,\s*['"]([^'"]*)['"]\s*\)`),
		extract: func(groups []string) (map[string]any, error) {
			return map[string]any{"arg1": groups[1], "arg2": groups[2]}, nil
		},
	},
	{
		name:  "no-arguments",
		match: regexMatcher(namePattern + `\s*\)`),
		extract: func([]string) (map[string]any, error) {
			return map[string]any{}, nil
		},
	},
}

// ContainsDirective reports whether text has at least one directive marker.
func ContainsDirective(text string) bool {
	return strings.Contains(text, DIRECTIVE_MARKER)
}

// ParseDirectives extracts the tool-call directives of text in textual order.
// Each occurrence of the marker is matched against directiveGrammar; the first rule
// that matches claims the span and later occurrences inside it are skipped.
// Occurrences no rule matches are left as literal text.
func ParseDirectives(text string) []domain.CallDirective {
	var (
		directives []domain.CallDirective
		claimedEnd int
	)

	for offset := 0; offset < len(text); {
		idx := strings.Index(text[offset:], DIRECTIVE_MARKER)
		if idx < 0 {
			break
		}
		start := offset + idx
		offset = start + len(DIRECTIVE_MARKER)
		if start < claimedEnd {
			continue
		}

		d, ok := parseDirectiveAt(text, start)
		if !ok {
			continue
		}
		directives = append(directives, d)
		claimedEnd = d.End
		offset = d.End
	}

	return directives
}

func parseDirectiveAt(text string, start int) (domain.CallDirective, bool) {
	rest := text[start:]
	for _, rule := range directiveGrammar {
		length, groups, ok := rule.match(rest)
		if !ok {
			continue
		}

		d := domain.CallDirective{
			ToolName:   groups[0],
			SourceSpan: rest[:length],
			Start:      start,
			End:        start + length,
		}
		args, err := rule.extract(groups)
		if err != nil {
			d.Err = err
			return d, true
		}
		d.Arguments = applyArgumentDefaults(d.ToolName, args)
		return d, true
	}
	return domain.CallDirective{}, false
}

// applyArgumentDefaults fills in the namespace of the list-in-namespace tool.
func applyArgumentDefaults(toolName string, args map[string]any) map[string]any {
	if args == nil {
		args = map[string]any{}
	}
	if toolName != LIST_IN_NAMESPACE_TOOL {
		return args
	}
	if ns, _ := args["namespace"].(string); strings.TrimSpace(ns) == "" {
		args["namespace"] = domain.DEFAULT_NAMESPACE
	}
	return args
}

func regexMatcher(pattern string) func(string) (int, []string, bool) {
	re := regexp.MustCompile(pattern)
	return func(s string) (int, []string, bool) {
		m := re.FindStringSubmatchIndex(s)
		if m == nil {
			return 0, nil, false
		}
		groups := make([]string, 0, len(m)/2-1)
		for i := 2; i < len(m); i += 2 {
			if m[i] < 0 {
				groups = append(groups, "")
				continue
			}
			groups = append(groups, s[m[i]:m[i+1]])
		}
		return m[1], groups, true
	}
}

var (
	objectLiteralHead = regexp.MustCompile(namePattern + `\s*,\s*\{`)
	objectLiteralTail = regexp.MustCompile(`\A\s*,?\s*\)`)
)

// matchObjectLiteral matches call_tool('name', {...}) with balanced, quote-aware braces.
func matchObjectLiteral(s string) (int, []string, bool) {
	head := objectLiteralHead.FindStringSubmatchIndex(s)
	if head == nil {
		return 0, nil, false
	}
	objStart := head[1] - 1
	objEnd, ok := scanBalancedObject(s, objStart)
	if !ok {
		return 0, nil, false
	}
	tail := objectLiteralTail.FindStringIndex(s[objEnd:])
	if tail == nil {
		return 0, nil, false
	}
	return objEnd + tail[1], []string{s[head[2]:head[3]], s[objStart:objEnd]}, true
}

// scanBalancedObject returns the index just past the brace closing the one at start.
func scanBalancedObject(s string, start int) (int, bool) {
	depth := 0
	for i := start; i < len(s); i++ {
		switch c := s[i]; c {
		case '\'', '"':
			end, ok := skipQuoted(s, i)
			if !ok {
				return 0, false
			}
			i = end - 1
		case '{', '[':
			depth++
		case '}', ']':
			depth--
			if depth == 0 {
				return i + 1, true
			}
		}
	}
	return 0, false
}

// skipQuoted returns the index just past the string literal starting at i.
// Python triple-quoted strings are supported.
func skipQuoted(s string, i int) (int, bool) {
	q := s[i]
	if strings.HasPrefix(s[i:], strings.Repeat(string(q), 3)) {
		end := strings.Index(s[i+3:], strings.Repeat(string(q), 3))
		if end < 0 {
			return 0, false
		}
		return i + 3 + end + 3, true
	}
	for j := i + 1; j < len(s); j++ {
		switch s[j] {
		case '\\':
			j++
		case q:
			return j + 1, true
		}
	}
	return 0, false
}

var namespaceRecovery = regexp.MustCompile(`namespace['"]?\s*[:=]\s*['"]([^'"]+)['"]`)

func extractObjectLiteral(groups []string) (map[string]any, error) {
	raw := groups[1]
	args, err := decodeObjectLiteral(raw)
	if err == nil {
		return args, nil
	}
	if m := namespaceRecovery.FindStringSubmatch(raw); m != nil {
		return map[string]any{"namespace": strings.TrimSpace(m[1])}, nil
	}
	return nil, err
}

// decodeObjectLiteral decodes a JSON-like object, repairing it first.
// A non-object value is wrapped as {"value": v}.
func decodeObjectLiteral(raw string) (map[string]any, error) {
	var v any
	if err := json.Unmarshal([]byte(repairObjectLiteral(raw)), &v); err != nil {
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) {
			return nil, fmt.Errorf("invalid JSON at offset %d: %w", syntaxErr.Offset, err)
		}
		return nil, err
	}
	if obj, ok := v.(map[string]any); ok {
		return obj, nil
	}
	return map[string]any{"value": v}, nil
}

// repairObjectLiteral rewrites the Python-flavoured literals LLMs tend to emit into JSON:
// single and triple quoted strings become JSON strings, trailing commas before a closing
// bracket are dropped and True/False/None become true/false/null.
func repairObjectLiteral(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))

	for i := 0; i < len(raw); {
		c := raw[i]
		switch {
		case c == '\'' || c == '"':
			end, ok := skipQuoted(raw, i)
			if !ok {
				b.WriteString(raw[i:])
				return b.String()
			}
			b.WriteString(requoteString(raw[i:end]))
			i = end
		case c == ',':
			j := i + 1
			for j < len(raw) && isSpace(raw[j]) {
				j++
			}
			if j < len(raw) && (raw[j] == '}' || raw[j] == ']') {
				i = j
				continue
			}
			b.WriteByte(c)
			i++
		case isIdentStart(c):
			j := i
			for j < len(raw) && isIdentPart(raw[j]) {
				j++
			}
			b.WriteString(pythonLiteral(raw[i:j]))
			i = j
		default:
			b.WriteByte(c)
			i++
		}
	}
	return b.String()
}

// requoteString converts a quoted literal (including its quotes) into a JSON string.
func requoteString(lit string) string {
	q := lit[0]
	body := lit[1 : len(lit)-1]
	if len(lit) >= 6 && strings.HasPrefix(lit, strings.Repeat(string(q), 3)) {
		body = lit[3 : len(lit)-3]
	}

	var b strings.Builder
	b.Grow(len(body) + 2)
	b.WriteByte('"')
	for i := 0; i < len(body); i++ {
		c := body[i]
		switch c {
		case '\\':
			if i+1 < len(body) && body[i+1] == '\'' {
				b.WriteByte('\'')
				i++
				continue
			}
			if i+1 < len(body) {
				b.WriteByte('\\')
				b.WriteByte(body[i+1])
				i++
				continue
			}
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}

func pythonLiteral(word string) string {
	switch word {
	case "True":
		return "true"
	case "False":
		return "false"
	case "None":
		return "null"
	}
	return word
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}
