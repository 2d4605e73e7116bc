package utils

import "strings"

// boundaryWindow is how far back from a chunk's end SplitText looks for a
// whitespace boundary before giving up and cutting mid-word.
const boundaryWindow = 100

// SplitText splits a long string into chunks of approximately 'chunkSize'
// runes with 'overlap' runes repeated between neighbours to preserve context
// at boundaries. Chunks prefer to end on whitespace so words stay whole.
// Empty or whitespace-only input yields no chunks.
func SplitText(text string, chunkSize int, overlap int) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	if chunkSize <= 0 {
		return []string{text}
	}

	runes := []rune(text)
	totalLen := len(runes)
	if totalLen <= chunkSize {
		return []string{text}
	}

	var chunks []string
	for start := 0; start < totalLen; {
		end := start + chunkSize
		if end >= totalLen {
			chunks = append(chunks, string(runes[start:totalLen]))
			break
		}

		cut := end
		for j := end; j > end-boundaryWindow && j > start; j-- {
			if runes[j-1] == '\n' || runes[j-1] == ' ' {
				cut = j
				break
			}
		}

		chunks = append(chunks, string(runes[start:cut]))

		next := cut - overlap
		if next <= start {
			// Degenerate overlap, step without it rather than looping.
			next = cut
		}
		start = next
	}

	return chunks
}
