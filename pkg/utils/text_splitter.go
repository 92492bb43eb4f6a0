package utils

import "unicode"

// SplitText splits a long string into chunks of approximately chunkSize
// characters with an overlap to preserve context at boundaries. Chunk ends
// are pulled back to the nearest whitespace when one is close, so words are
// not cut in half.
func SplitText(text string, chunkSize int, overlap int) []string {
	if len(text) <= chunkSize {
		return []string{text}
	}

	var chunks []string
	runes := []rune(text)
	totalLen := len(runes)

	step := chunkSize - overlap
	if step <= 0 {
		step = chunkSize
	}

	for i := 0; i < totalLen; i += step {
		end := i + chunkSize
		if end > totalLen {
			end = totalLen
		} else {
			end = backtrackToSpace(runes, i, end)
		}

		chunks = append(chunks, string(runes[i:end]))

		if end == totalLen {
			break
		}
	}

	return chunks
}

// backtrackToSpace moves end left to the nearest whitespace, scanning at most
// 10% of the chunk. Falls back to the hard cut when the chunk has no spaces.
func backtrackToSpace(runes []rune, start, end int) int {
	limit := end - (end-start)/10
	for j := end; j > limit; j-- {
		if unicode.IsSpace(runes[j-1]) {
			return j
		}
	}
	return end
}
