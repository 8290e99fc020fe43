package searcher

import (
	"chomp/game"

	"golang.org/x/exp/rand"
)

// NewUniformChooser picks uniformly at random from a seeded source. It is
// safe for concurrent use.
func NewUniformChooser(seed uint64) Chooser {
	src := &rand.LockedSource{}
	src.Seed(seed)
	rng := rand.New(src)
	return func(moves []game.Move) game.Move {
		if len(moves) == 0 {
			panic("no moves to choose from")
		}
		return moves[rng.Intn(len(moves))]
	}
}
