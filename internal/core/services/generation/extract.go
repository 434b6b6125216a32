package generation

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"gitlab.com/elp-2025.net/internal/static/errs"
)

// The generative service returns free text that may or may not be strict
// JSON. Extraction is an ordered chain of strategies; the first one whose
// captured span parses wins.

type extractor func(text string) (string, bool)

var (
	fencedJSONBlock = regexp.MustCompile("(?s)```json\\s*(.*?)```")
	fencedBlock     = regexp.MustCompile("(?s)```\\s*(.*?)```")
)

// extractFencedJSON captures a fenced code block labeled json.
func extractFencedJSON(text string) (string, bool) {
	match := fencedJSONBlock.FindStringSubmatch(text)
	if match == nil {
		return "", false
	}
	return strings.TrimSpace(match[1]), true
}

// extractFenced captures the first fenced code block regardless of label.
func extractFenced(text string) (string, bool) {
	match := fencedBlock.FindStringSubmatch(text)
	if match == nil {
		return "", false
	}
	return strings.TrimSpace(match[1]), true
}

// extractBraceSpan captures the first balanced {...} span, tracking string
// literals so braces inside values do not break the balance.
func extractBraceSpan(text string) (string, bool) {
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

// extractWhole falls back to the whole trimmed text.
func extractWhole(text string) (string, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", false
	}
	return trimmed, true
}

// ExtractJSON decodes the first extractable JSON object from free text
// into out. Strategies are tried in order: labeled fence, unlabeled fence,
// balanced brace span, whole text.
func ExtractJSON(text string, out interface{}) error {
	for _, extract := range []extractor{extractFencedJSON, extractFenced, extractBraceSpan, extractWhole} {
		candidate, ok := extract(text)
		if !ok {
			continue
		}
		if err := json.Unmarshal([]byte(candidate), out); err == nil {
			return nil
		}
	}
	return fmt.Errorf("%w: no extraction strategy produced valid JSON", errs.ErrUnparsableResponse)
}
