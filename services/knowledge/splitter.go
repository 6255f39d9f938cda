package knowledge

import "strings"

// SplitText cuts a document into overlapping chunks of at most size runes.
// Chunk boundaries back up to the nearest whitespace when one is available so
// words are not cut in half. Overlap must be smaller than size.
func SplitText(text string, size, overlap int) []string {
	if size <= 0 {
		return nil
	}
	if overlap < 0 || overlap >= size {
		overlap = 0
	}

	runes := []rune(text)
	var chunks []string

	start := 0
	for start < len(runes) {
		end := start + size
		if end >= len(runes) {
			end = len(runes)
		} else {
			// Back up to a whitespace boundary, but never past the overlap
			// region or the chunk would stop advancing.
			for b := end; b > start+overlap; b-- {
				if isSpace(runes[b-1]) {
					end = b
					break
				}
			}
		}

		chunk := strings.TrimSpace(string(runes[start:end]))
		if chunk != "" {
			chunks = append(chunks, chunk)
		}

		if end == len(runes) {
			break
		}
		start = end - overlap
		// The overlap region must not begin mid-word either.
		for start < end && start > 0 && !isSpace(runes[start-1]) {
			start++
		}
	}

	return chunks
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\n' || r == '\t' || r == '\r'
}
