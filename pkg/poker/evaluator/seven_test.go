package evaluator

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"nolimitholdem-server/pkg/deck"
)

func seven(t *testing.T, cards string) HandValue {
	t.Helper()
	v, err := Seven(deck.MustCards(cards))
	assert.NoError(t, err)
	return v
}

func TestSeven_categories(t *testing.T) {
	runTest := func(cards string, expected Category) {
		t.Helper()
		assert.Equal(t, expected, seven(t, cards).Category(), "cards=%s", cards)
	}

	runTest("Ah,Kd,9s,5c,2h,7d,3c", HighCard)
	runTest("Ah,As,9s,5c,2h,7d,3c", Pair)
	runTest("Ah,As,9s,9c,2h,7d,3c", TwoPair)
	runTest("Ah,As,Ac,9c,2h,7d,3c", ThreeOfAKind)
	runTest("9h,8s,7c,6d,5h,Ad,Kc", Straight)
	runTest("Ah,Jh,9h,5h,2h,Kd,Kc", Flush)
	runTest("Ah,As,Ac,9c,9h,7d,3c", FullHouse)
	runTest("Ah,As,Ac,Ad,9h,7d,3c", FourOfAKind)
	runTest("9h,8h,7h,6h,5h,Ad,Kc", StraightFlush)
}

func TestSeven_picksBestFive(t *testing.T) {
	a := assert.New(t)

	// six hearts: the flush keeps only the top five
	v := seven(t, "Ah,Jh,9h,5h,2h,3h,Kd")
	a.Equal(Flush, v.Category())
	a.Equal([]int{deck.Ace, deck.Jack, 9, 5, 3}, v.Tiebreaks())

	// two sets make a full house, higher set on top
	v = seven(t, "9h,9s,9c,4h,4s,4c,Kd")
	a.Equal(FullHouse, v.Category())
	a.Equal([]int{9, 4}, v.Tiebreaks())

	// three pairs: the third pair can only supply the kicker
	v = seven(t, "Ah,As,9s,9c,7h,7d,2c")
	a.Equal(TwoPair, v.Category())
	a.Equal([]int{deck.Ace, 9, 7}, v.Tiebreaks())

	// ...unless a single outranks it
	v = seven(t, "Ah,As,9s,9c,7h,7d,Kc")
	a.Equal([]int{deck.Ace, 9, deck.King}, v.Tiebreaks())

	// quads keep the best remaining card even from a pair
	v = seven(t, "9h,9s,9c,9d,4h,4s,2c")
	a.Equal(FourOfAKind, v.Category())
	a.Equal([]int{9, 4}, v.Tiebreaks())

	// straight flush wins over the higher plain straight
	v = seven(t, "9h,8h,7h,6h,5h,Th,Jd")
	a.Equal(StraightFlush, v.Category())
	a.Equal([]int{10}, v.Tiebreaks())
}

func TestSeven_flushBeatsStraightMix(t *testing.T) {
	a := assert.New(t)

	// both a straight and a flush are available; the flush is stronger
	v := seven(t, "Ah,Jh,9h,5h,2h,Ts,Qd")
	a.Equal(Flush, v.Category())
}

func TestSeven_errors(t *testing.T) {
	a := assert.New(t)

	_, err := Seven(deck.MustCards("Ah,Kd,9s,5c,2h"))
	a.ErrorIs(err, ErrWrongCardCount)

	_, err = Seven(deck.MustCards("Ah,Kd,9s,5c,2h,3d,Ah"))
	a.ErrorIs(err, ErrDuplicateCard)
}

func TestSeven_matchesEnumeration(t *testing.T) {
	a := assert.New(t)

	// fixed tricky hands first
	for _, cards := range []string{
		"Ah,2h,3h,4h,5h,6s,7s", // wheel flush vs higher straight
		"Ah,As,9s,9c,7h,7d,Kc",
		"9h,9s,9c,4h,4s,4c,Kd",
		"Ah,Kh,Qh,Jh,Th,As,Ac", // royal over trips
		"2h,2s,2c,2d,3h,3s,3c", // quads over a full house
		"Ah,Jh,9h,5h,2h,3h,8h", // seven-card flush
	} {
		parsed := deck.MustCards(cards)
		got, err := Seven(parsed)
		a.NoError(err)
		a.Equal(enumerate(parsed), got, "cards=%s", cards)
	}

	// seeded random sweep
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 20000; i++ {
		d := deck.New()
		d.Shuffle(r.Int63())
		cards := d.Cards[:7]

		got, err := Seven(cards)
		a.NoError(err)
		if got != enumerate(cards) {
			t.Fatalf("mismatch on %v: got %s, enumeration %s",
				deck.Hand(cards), got, enumerate(cards))
		}
	}
}

func TestFive_totality(t *testing.T) {
	if testing.Short() {
		t.Skip("full five-card sweep")
	}

	all := deck.New().Cards
	var hand [5]deck.Card
	for a := 0; a < 48; a++ {
		for b := a + 1; b < 49; b++ {
			for c := b + 1; c < 50; c++ {
				for d := c + 1; d < 51; d++ {
					for e := d + 1; e < 52; e++ {
						hand[0], hand[1], hand[2], hand[3], hand[4] =
							all[a], all[b], all[c], all[d], all[e]
						v, err := Five(hand[:])
						if err != nil {
							t.Fatalf("unexpected error on %v: %v", deck.Hand(hand[:]), err)
						}
						if cat := v.Category(); cat < HighCard || cat > StraightFlush {
							t.Fatalf("category out of range on %v: %d", deck.Hand(hand[:]), cat)
						}
					}
				}
			}
		}
	}
}
