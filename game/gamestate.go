package game

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash"
)

// GameState is a board together with whose turn it is. Players[CurrentPlayer]
// moves next.
type GameState struct {
	Board         *Board
	Players       [2]string
	CurrentPlayer int
	Won           string // The player winner of the game, "" if no winner yet
}

func NewGameState(board *Board, players [2]string) *GameState {
	return &GameState{
		Board:   board,
		Players: players,
	}
}

func (gs GameState) Copy() *GameState {
	return &GameState{
		Board:         gs.Board.Clone(),
		Players:       gs.Players,
		CurrentPlayer: gs.CurrentPlayer,
		Won:           gs.Won,
	}
}

func (gs GameState) Player() string {
	return gs.Players[gs.CurrentPlayer]
}

func (gs GameState) Opponent() string {
	return gs.Players[1-gs.CurrentPlayer]
}

// LegalMoves lists every occupied cell, the poison included.
func (gs GameState) LegalMoves() []Move {
	if gs.Won != "" {
		return nil
	}
	return gs.Board.Cells()
}

// Play chomps at move on a copy of the state. Eating the poison hands the
// game to the opponent.
func (gs GameState) Play(move Move) State {
	if gs.Won != "" {
		panic(fmt.Sprintf("move %v played after %s won", move, gs.Won))
	}

	next := gs.Copy()
	next.Board.Chomp(move.Row, move.Col)
	if move.IsPoison() {
		next.Won = gs.Opponent()
	}
	next.CurrentPlayer = 1 - gs.CurrentPlayer
	return next
}

func (gs GameState) Hash() StateHash {
	hasher := xxhash.New()

	// Hash current player
	binary.Write(hasher, binary.LittleEndian, int64(gs.CurrentPlayer))

	// Hash staircase
	gs.Board.writeProfile(hasher)

	return StateHash(hasher.Sum64())
}

func (gs GameState) Winner() string {
	return gs.Won
}
