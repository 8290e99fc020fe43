package communication

import (
	"chomp/game"
	"time"
)

// FindMoveRequest asks a remote agent for a move on the given position.
type FindMoveRequest struct {
	GameID string      `json:"gameId"`
	Player string      `json:"player"`
	Cells  []game.Move `json:"cells"`
}

type FindMoveResponse struct {
	Move      game.Move     `json:"move"`
	ForcedWin bool          `json:"forcedWin"`
	Nodes     int           `json:"nodes"`
	Duration  time.Duration `json:"duration"`
}

func NewFindMoveRequest(gameID string, state *game.GameState) FindMoveRequest {
	return FindMoveRequest{
		GameID: gameID,
		Player: state.Player(),
		Cells:  state.Board.Cells(),
	}
}
