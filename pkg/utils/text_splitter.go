package utils

// SplitText splits text into consecutive chunks of exactly 'chunkSize'
// characters (runes, so multi-byte text is never cut mid-character); the
// last chunk may be shorter. Chunks do not overlap and concatenate back to
// the original input. Empty input yields no chunks.
func SplitText(text string, chunkSize int) []string {
	if chunkSize <= 0 || text == "" {
		return nil
	}

	runes := []rune(text)
	totalLen := len(runes)

	chunks := make([]string, 0, (totalLen+chunkSize-1)/chunkSize)
	for i := 0; i < totalLen; i += chunkSize {
		end := i + chunkSize
		if end > totalLen {
			end = totalLen
		}
		chunks = append(chunks, string(runes[i:end]))
	}

	return chunks
}
