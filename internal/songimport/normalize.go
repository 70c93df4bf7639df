package songimport

import "strings"

// NormalizeLineEndings converts CRLF and bare CR line endings to LF and
// strips a single leading byte-order mark. Normalizing already-normalized
// text is a no-op.
func NormalizeLineEndings(raw string) string {
	normalized := strings.ReplaceAll(raw, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")
	return strings.TrimPrefix(normalized, "\uFEFF")
}
