package extract

import (
	"encoding/json"
	"strings"
)

const (
	reasonNoDelimiters = "no JSON object delimiters found"
	reasonMalformed    = "malformed JSON after recovery attempts"
)

// Error reports a failure to recover a JSON object from a model reply.
type Error struct {
	Reason string
	Raw    string // original reply, kept for diagnostics
}

func (e *Error) Error() string {
	return "extract: " + e.Reason
}

// Object recovers a single JSON object from raw model output. Models that are
// told to answer in JSON still wrap the payload in prose or markdown fences
// often enough that a plain json.Unmarshal is unreliable. Object strips any
// fence, slices the outermost {...} region and parses it, trimming unbalanced
// trailing content when the first parse fails.
//
// Object is a pure function of its input and is safe for concurrent use.
func Object(raw string) (map[string]any, error) {
	candidate := strings.TrimSpace(raw)
	if candidate == "" {
		return nil, &Error{Reason: reasonNoDelimiters, Raw: raw}
	}

	candidate = stripFence(candidate)

	start := strings.Index(candidate, "{")
	end := strings.LastIndex(candidate, "}")
	if start < 0 || end < start {
		return nil, &Error{Reason: reasonNoDelimiters, Raw: raw}
	}
	slice := candidate[start : end+1]

	var obj map[string]any
	if err := json.Unmarshal([]byte(slice), &obj); err == nil {
		return obj, nil
	}

	// The slice spans the first '{' to the last '}', so commentary with stray
	// braces after the object leaks in. Retry on progressively shorter
	// prefixes, each ending at a structurally balanced close brace.
	for _, cut := range balancedEnds(slice) {
		if err := json.Unmarshal([]byte(slice[:cut]), &obj); err == nil {
			return obj, nil
		}
	}
	return nil, &Error{Reason: reasonMalformed, Raw: raw}
}

// stripFence reduces the input to the body of the first markdown code fence
// when one is present. The opening marker may carry a language tag.
func stripFence(s string) string {
	open := strings.Index(s, "```")
	if open < 0 {
		return s
	}
	body := s[open+3:]
	if nl := strings.IndexByte(body, '\n'); nl >= 0 {
		if tag := strings.TrimSpace(body[:nl]); tag == "" || isLanguageTag(tag) {
			body = body[nl+1:]
		}
	}
	if closing := strings.Index(body, "```"); closing >= 0 {
		body = body[:closing]
	}
	return strings.TrimSpace(body)
}

func isLanguageTag(s string) bool {
	if len(s) > 16 {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}

// balancedEnds scans s, which starts at an opening brace, and returns the
// offsets at which the outermost object closes, longest candidate first. The
// scan tracks string literals and escape sequences so braces inside quoted
// values do not affect the depth. The full-length offset is omitted because
// the caller has already tried the whole slice.
func balancedEnds(s string) []int {
	var (
		ends     []int
		depth    int
		inString bool
		escaped  bool
	)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				ends = append(ends, i+1)
			}
		}
	}

	out := make([]int, 0, len(ends))
	for i := len(ends) - 1; i >= 0; i-- {
		if ends[i] == len(s) {
			continue
		}
		out = append(out, ends[i])
	}
	return out
}
