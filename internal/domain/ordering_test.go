package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampPosition(t *testing.T) {
	tests := []struct {
		name     string
		pos      int
		count    int
		expected int
	}{
		{"within range", 2, 3, 2},
		{"below range", 0, 3, 1},
		{"negative", -4, 3, 1},
		{"above range", 9, 3, 3},
		{"empty list", 5, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClampPosition(tt.pos, tt.count))
		})
	}
}

func TestClampInsertPosition(t *testing.T) {
	two, zero, far := 2, 0, 40

	assert.Equal(t, 4, ClampInsertPosition(nil, 3), "nil appends")
	assert.Equal(t, 2, ClampInsertPosition(&two, 3))
	assert.Equal(t, 1, ClampInsertPosition(&zero, 3))
	assert.Equal(t, 4, ClampInsertPosition(&far, 3), "past the end appends")
}

func TestMoveID(t *testing.T) {
	tests := []struct {
		name     string
		ordered  []int64
		id       int64
		target   int
		expected []int64
	}{
		{"first to last", []int64{10, 20, 30}, 10, 3, []int64{20, 30, 10}},
		{"last to first", []int64{10, 20, 30}, 30, 1, []int64{30, 10, 20}},
		{"middle stays", []int64{10, 20, 30}, 20, 2, []int64{10, 20, 30}},
		{"target clamped high", []int64{10, 20, 30}, 10, 99, []int64{20, 30, 10}},
		{"target clamped low", []int64{10, 20, 30}, 30, -1, []int64{30, 10, 20}},
		{"unknown id", []int64{10, 20}, 99, 1, []int64{10, 20}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := append([]int64(nil), tt.ordered...)
			assert.Equal(t, tt.expected, MoveID(input, tt.id, tt.target))
			assert.Equal(t, tt.ordered, input, "input must not be modified")
		})
	}
}

func TestRenumber(t *testing.T) {
	positions := Renumber([]int64{7, 3, 9})
	assert.Equal(t, map[int64]int{7: 1, 3: 2, 9: 3}, positions)
}
