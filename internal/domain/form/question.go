package form

import (
	"fmt"
	"strings"
)

const (
	TypeText     = "text"
	TypeTextarea = "textarea"
	TypeNumber   = "number"
	TypeSelect   = "select"
	TypeCheckbox = "checkbox"
	TypeRadio    = "radio"
)

// NormalizeQuestions coerces loosely typed question objects, typically decoded
// from model output, into Questions. Missing ids become q_<n>, missing labels
// 문항 <n>, missing types text; falsy values such as 0, false and "" count as
// missing. Options survive only when given as an array.
func NormalizeQuestions(raw []map[string]any) []Question {
	out := make([]Question, 0, len(raw))
	for i, item := range raw {
		n := i + 1
		q := Question{
			ID:       stringOr(item["id"], fmt.Sprintf("q_%d", n)),
			Label:    stringOr(item["label"], fmt.Sprintf("문항 %d", n)),
			Type:     stringOr(item["type"], TypeText),
			Required: truthy(item["required"]),
		}
		if opts, ok := item["options"].([]any); ok {
			q.Options = make([]string, 0, len(opts))
			for _, o := range opts {
				if opt, ok := optionText(o); ok {
					q.Options = append(q.Options, opt)
				}
			}
		}
		out = append(out, q)
	}
	return out
}

func stringOr(v any, fallback string) string {
	if !truthy(v) {
		return fallback
	}
	switch s := v.(type) {
	case string:
		if strings.TrimSpace(s) != "" {
			return s
		}
	case float64, int, int64, bool:
		return fmt.Sprint(s)
	}
	return fallback
}

// optionText renders one option. Objects contribute their label or value.
func optionText(v any) (string, bool) {
	switch o := v.(type) {
	case string:
		return o, true
	case float64, int, int64, bool:
		return fmt.Sprint(o), true
	case map[string]any:
		for _, key := range []string{"label", "value", "text"} {
			if s, ok := o[key].(string); ok && s != "" {
				return s, true
			}
		}
	}
	return "", false
}

func truthy(v any) bool {
	switch b := v.(type) {
	case nil:
		return false
	case bool:
		return b
	case string:
		return b != ""
	case float64:
		return b != 0
	case int:
		return b != 0
	case int64:
		return b != 0
	default:
		return true
	}
}
