package mcpserver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

func successMessage(name string) string {
	return fmt.Sprintf("Tool %s executed successfully", name)
}

// flattenResult converts a tools/call result of any shape into plain text.
// Text items of a content array are joined with newlines, strings are used as they are
// and any other value is stringified. The second return value mirrors the result's isError flag.
func flattenResult(name string, raw json.RawMessage) (string, bool) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var value any
	if err := dec.Decode(&value); err != nil {
		return successMessage(name), false
	}

	var content string
	isError := false
	switch v := value.(type) {
	case nil:
	case map[string]any:
		items, hasContent := v["content"]
		if !hasContent {
			content = stringify(v)
			break
		}
		isError, _ = v["isError"].(bool)
		content = joinTextItems(items)
	case string:
		content = v
	default:
		content = stringify(v)
	}

	if content == "" {
		content = successMessage(name)
	}
	return content, isError
}

func joinTextItems(items any) string {
	list, ok := items.([]any)
	if !ok {
		return ""
	}
	texts := make([]string, 0, len(list))
	for _, item := range list {
		m, ok := item.(map[string]any)
		if !ok || m["type"] != "text" {
			continue
		}
		switch text := m["text"].(type) {
		case nil:
			texts = append(texts, "")
		case string:
			texts = append(texts, text)
		default:
			texts = append(texts, stringify(text))
		}
	}
	return strings.Join(texts, "\n")
}

func stringify(v any) string {
	switch s := v.(type) {
	case json.Number:
		return s.String()
	case bool:
		return fmt.Sprint(s)
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}

// errorMessage extracts the message of a JSON-RPC error payload.
func errorMessage(raw json.RawMessage) string {
	var obj struct {
		Message *string `json:"message"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil {
		if obj.Message != nil {
			return *obj.Message
		}
		return "Unknown error"
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil && s != "" {
		return s
	}
	return string(raw)
}
