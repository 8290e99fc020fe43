package searcher

import "chomp/game"

// Chooser picks one of the given legal moves. The solver stays deterministic;
// all randomness lives behind a Chooser.
type Chooser func(moves []game.Move) game.Move
