package pipeline

import "strings"

// ExtractPayload locates the outermost balanced JSON object in generated
// text. Backends wrap payloads in prose or code fences often enough that a
// direct unmarshal of the raw text is hopeless; a depth-counting scan from
// the first brace is robust where a greedy regex is not. ok is false when no
// balanced object exists.
func ExtractPayload(text string) (payload string, ok bool) {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
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
				return text[start : i+1], true
			}
		}
	}
	return "", false
}

// rawPrefix truncates raw generated text for degraded payloads.
func rawPrefix(text string, max int) string {
	r := []rune(text)
	if len(r) > max {
		return string(r[:max])
	}
	return text
}
