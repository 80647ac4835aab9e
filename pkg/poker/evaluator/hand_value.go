package evaluator

import (
	"fmt"
	"strings"
)

// HandValue packs a category and up to five tiebreak ranks into a single
// comparable value. A stronger hand always compares greater, so two hands
// can be ranked with plain < and >.
//
// Bit layout, high to low: the category sits above bit 48, followed by five
// 6-bit rank fields in decreasing significance. Unused fields are zero.
type HandValue uint64

const (
	categoryShift = 48
	rankStride    = 6
	tiebreakMask  = 1<<rankStride - 1
)

func newHandValue(category Category, tiebreaks ...int) HandValue {
	v := uint64(category) << categoryShift
	for i, rank := range tiebreaks {
		v |= uint64(rank) << (categoryShift - rankStride*(i+1))
	}

	return HandValue(v)
}

// Category returns the hand's category
func (v HandValue) Category() Category {
	return Category(v >> categoryShift)
}

// Tiebreaks returns the ranks that order hands within the category,
// most significant first
func (v HandValue) Tiebreaks() []int {
	tiebreaks := make([]int, 0, 5)
	for i := 1; i <= 5; i++ {
		rank := int(v>>(categoryShift-rankStride*i)) & tiebreakMask
		if rank == 0 {
			break
		}

		tiebreaks = append(tiebreaks, rank)
	}

	return tiebreaks
}

// String returns a human-readable form, e.g. "Straight (9 high)"
func (v HandValue) String() string {
	tiebreaks := v.Tiebreaks()
	if len(tiebreaks) == 0 {
		return v.Category().String()
	}

	parts := make([]string, len(tiebreaks))
	for i, rank := range tiebreaks {
		parts[i] = rankName(rank)
	}

	return fmt.Sprintf("%s (%s)", v.Category(), strings.Join(parts, ","))
}

func rankName(rank int) string {
	switch rank {
	case 11:
		return "J"
	case 12:
		return "Q"
	case 13:
		return "K"
	case 14:
		return "A"
	}

	return fmt.Sprintf("%d", rank)
}
