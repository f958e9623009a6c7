package utils

import "unicode/utf8"

// RuneIndexToByteOffset converts a rune index to a byte offset in a byte slice.
// Indexes past the end clamp to len(line).
func RuneIndexToByteOffset(line []byte, runeIndex int) int {
	if runeIndex <= 0 {
		return 0
	}
	byteOffset := 0
	currentRune := 0
	for byteOffset < len(line) {
		if currentRune == runeIndex {
			return byteOffset
		}
		_, size := utf8.DecodeRune(line[byteOffset:])
		byteOffset += size
		currentRune++
	}
	return len(line)
}

// RuneCount returns the number of runes in line.
func RuneCount(line []byte) int {
	return utf8.RuneCount(line)
}
