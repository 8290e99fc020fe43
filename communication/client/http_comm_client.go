package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"chomp/communication"
	"chomp/experiments/metrics"
	"chomp/game"

	"github.com/google/uuid"
)

const defaultTimeout = time.Minute

// RemoteAgent asks an agent server for its moves.
type RemoteAgent struct {
	serverURL string
	gameID    string
	client    *http.Client
}

// NewRemoteAgent initializes and returns a new RemoteAgent.
func NewRemoteAgent(serverURL string) *RemoteAgent {
	return &RemoteAgent{
		serverURL: serverURL,
		gameID:    uuid.NewString(),
		client:    &http.Client{Timeout: defaultTimeout},
	}
}

func (ra *RemoteAgent) FindMove(state *game.GameState) (game.Move, metrics.SearchMetric, error) {
	payload := communication.NewFindMoveRequest(ra.gameID, state)
	body, err := json.Marshal(payload)
	if err != nil {
		return game.Move{}, metrics.SearchMetric{}, fmt.Errorf("failed to encode request: %w", err)
	}

	resp, err := ra.client.Post(ra.serverURL+"/findmove", "application/json", bytes.NewReader(body))
	if err != nil {
		return game.Move{}, metrics.SearchMetric{}, fmt.Errorf("failed to reach agent: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		out, _ := io.ReadAll(resp.Body)
		return game.Move{}, metrics.SearchMetric{}, fmt.Errorf("agent returned status %d: %s", resp.StatusCode, out)
	}

	var found communication.FindMoveResponse
	if err := json.NewDecoder(resp.Body).Decode(&found); err != nil {
		return game.Move{}, metrics.SearchMetric{}, fmt.Errorf("failed to decode move: %w", err)
	}

	return found.Move, metrics.SearchMetric{
		Duration:  found.Duration,
		Nodes:     found.Nodes,
		ForcedWin: found.ForcedWin,
	}, nil
}
