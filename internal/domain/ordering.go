package domain

// ClampPosition limits a 1-based position to [1, count]. A count of zero
// yields 1.
func ClampPosition(pos, count int) int {
	if count < 1 {
		return 1
	}
	if pos < 1 {
		return 1
	}
	if pos > count {
		return count
	}
	return pos
}

// ClampInsertPosition resolves where a batch is inserted into a list of
// count items. Nil or out-of-range positions append.
func ClampInsertPosition(pos *int, count int) int {
	if pos == nil || *pos > count+1 {
		return count + 1
	}
	if *pos < 1 {
		return 1
	}
	return *pos
}

// MoveID removes id from ordered and reinserts it at the 1-based target
// (clamped). The input slice is not modified.
func MoveID(ordered []int64, id int64, target int) []int64 {
	rest := make([]int64, 0, len(ordered))
	found := false
	for _, v := range ordered {
		if v == id && !found {
			found = true
			continue
		}
		rest = append(rest, v)
	}
	if !found {
		out := make([]int64, len(ordered))
		copy(out, ordered)
		return out
	}

	target = ClampPosition(target, len(ordered))
	out := make([]int64, 0, len(ordered))
	out = append(out, rest[:target-1]...)
	out = append(out, id)
	out = append(out, rest[target-1:]...)
	return out
}

// Renumber maps each id to its contiguous 1-based position
func Renumber(ordered []int64) map[int64]int {
	positions := make(map[int64]int, len(ordered))
	for i, id := range ordered {
		positions[id] = i + 1
	}
	return positions
}
