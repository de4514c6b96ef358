package main

// Index transitions for the wallpaper list. Both clamp at the boundary, no
// wraparound.

func clampPrev(index int) int {
	if index > 0 {
		return index - 1
	}
	return index
}

func clampNext(index, length int) int {
	if index < length-1 {
		return index + 1
	}
	return index
}
