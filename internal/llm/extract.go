package llm

import (
	"encoding/json"
	"regexp"
	"strings"
)

var fencedJSON = regexp.MustCompile("(?is)```json\\r?\\n(.*?)\\r?\\n```")

// ExtractJSON pulls the JSON document out of a model reply. A ```json fenced
// block wins; otherwise the span from the first '{' to the last '}' is used;
// otherwise the trimmed text is returned unchanged.
func ExtractJSON(text string) string {
	if m := fencedJSON.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start != -1 && end > start {
		return text[start : end+1]
	}
	return strings.TrimSpace(text)
}

// DecodeJSON extracts and unmarshals a model reply into v.
func DecodeJSON(text string, v any) error {
	cleaned := ExtractJSON(text)
	if strings.TrimSpace(cleaned) == "" {
		return ErrEmptyOutput
	}
	return json.Unmarshal([]byte(cleaned), v)
}
