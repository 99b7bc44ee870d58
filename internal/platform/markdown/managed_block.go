package markdown

import "strings"

// ReplaceManagedBlock rewrites the text between the markers, appending the
// block when the body does not contain it yet.
func ReplaceManagedBlock(body, startMarker, endMarker, generated string) string {
	start := strings.Index(body, startMarker)
	end := strings.Index(body, endMarker)
	block := startMarker + "\n" + generated + "\n" + endMarker

	if start >= 0 && end > start {
		end += len(endMarker)
		return body[:start] + block + body[end:]
	}

	trimmed := strings.TrimSpace(body)
	if trimmed == "" {
		return block + "\n"
	}
	if strings.HasSuffix(body, "\n") {
		return body + "\n" + block + "\n"
	}
	return body + "\n\n" + block + "\n"
}

// ExtractManagedBlock returns the text between the markers.
func ExtractManagedBlock(body, startMarker, endMarker string) (string, bool) {
	start := strings.Index(body, startMarker)
	end := strings.Index(body, endMarker)
	if start < 0 || end <= start {
		return "", false
	}
	inner := body[start+len(startMarker) : end]
	return strings.Trim(inner, "\n"), true
}

// RemoveManagedBlock drops the block and the blank line that separated it.
func RemoveManagedBlock(body, startMarker, endMarker string) string {
	start := strings.Index(body, startMarker)
	end := strings.Index(body, endMarker)
	if start < 0 || end <= start {
		return body
	}
	end += len(endMarker)
	head := strings.TrimRight(body[:start], "\n")
	tail := strings.TrimLeft(body[end:], "\n")
	switch {
	case head == "":
		return tail
	case tail == "":
		return head + "\n"
	default:
		return head + "\n\n" + tail
	}
}
