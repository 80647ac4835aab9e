package holdem

import "sort"

// Pot is a main or side pot. Eligible lists the seats that can win it.
type Pot struct {
	Amount   int   `json:"amount"`
	Eligible []int `json:"eligible"`
}

// Pots splits the chips wagered this hand into the main pot and side pots.
// Contributions are sliced at each all-in level; folded seats feed the pots
// but are never eligible. Adjacent slices with the same eligible seats
// collapse into one pot.
func (g *Game) Pots() []Pot {
	levels := make([]int, 0, len(g.players))
	for _, p := range g.players {
		if p.contributed > 0 {
			levels = append(levels, p.contributed)
		}
	}
	sort.Ints(levels)
	levels = dedupe(levels)

	var pots []Pot
	prev := 0
	for _, level := range levels {
		amount := 0
		var eligible []int
		for seat, p := range g.players {
			if p.contributed > prev {
				amount += min(p.contributed, level) - prev
			}

			if p.contributed >= level && p.inHand() {
				eligible = append(eligible, seat)
			}
		}

		if n := len(pots); n > 0 && equalSeats(pots[n-1].Eligible, eligible) {
			pots[n-1].Amount += amount
		} else {
			pots = append(pots, Pot{Amount: amount, Eligible: eligible})
		}

		prev = level
	}

	return pots
}

// PotTotal returns all chips wagered this hand
func (g *Game) PotTotal() int {
	total := 0
	for _, p := range g.players {
		total += p.contributed
	}

	return total
}

func dedupe(sorted []int) []int {
	out := sorted[:0]
	for i, v := range sorted {
		if i == 0 || v != sorted[i-1] {
			out = append(out, v)
		}
	}

	return out
}

func equalSeats(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
