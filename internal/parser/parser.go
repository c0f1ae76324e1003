// Package parser splits captured tool output into a code portion and a text
// portion using triple-backtick fences. It is a best-effort heuristic, not a
// markdown parser: malformed or multiply-fenced input degrades gracefully.
package parser

import "strings"

const fence = "```"

// Parse returns the content of the first fenced block as code and everything
// outside it as text. Without a complete fence pair the whole input is text.
//
// The first line of a fenced block is treated as a language tag and dropped
// when it is non-empty and does not start with '#'. This keeps shebang and
// comment-only snippets intact, but it also drops a genuine first line of
// code in untagged blocks. That trade-off is deliberate and kept for
// compatibility with the tools being wrapped.
func Parse(raw string) (code, text string) {
	text = raw
	if strings.Contains(raw, fence) {
		segments := strings.Split(raw, fence)
		if len(segments) >= 3 {
			block := segments[1]
			if i := strings.IndexByte(block, '\n'); i >= 0 {
				firstLine := strings.TrimSpace(block[:i])
				if firstLine != "" && !strings.HasPrefix(firstLine, "#") {
					code = block[i+1:]
				} else {
					code = block
				}
			} else {
				code = block
			}
			text = segments[0] + strings.Join(segments[2:], "")
		}
	}
	return strings.TrimSpace(code), strings.TrimSpace(text)
}
