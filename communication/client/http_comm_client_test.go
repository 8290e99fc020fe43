package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"chomp/communication"
	"chomp/game"

	"github.com/stretchr/testify/require"
)

func TestRemoteAgentFindMove(t *testing.T) {
	t.Run("posts the position and decodes the move", func(t *testing.T) {
		var got communication.FindMoveRequest
		var path, method string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path, method = r.URL.Path, r.Method
			json.NewDecoder(r.Body).Decode(&got)

			json.NewEncoder(w).Encode(communication.FindMoveResponse{
				Move:      game.Move{Row: 1, Col: 1},
				ForcedWin: true,
				Nodes:     12,
			})
		}))
		defer server.Close()

		state := game.NewGameState(game.NewBoard(2, 2), [2]string{"computer", "human"})
		move, metric, err := NewRemoteAgent(server.URL).FindMove(state)

		require.NoError(t, err)
		require.Equal(t, "/findmove", path)
		require.Equal(t, http.MethodPost, method)
		require.Equal(t, game.Move{Row: 1, Col: 1}, move)
		require.True(t, metric.ForcedWin)
		require.Equal(t, 12, metric.Nodes)
		require.Equal(t, "computer", got.Player)
		require.NotEmpty(t, got.GameID)
		require.ElementsMatch(t, state.Board.Cells(), got.Cells)
	})

	t.Run("reports non-200 responses", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer server.Close()

		state := game.NewGameState(game.NewBoard(2, 2), [2]string{"computer", "human"})
		_, _, err := NewRemoteAgent(server.URL).FindMove(state)

		require.ErrorContains(t, err, "status 500")
	})

	t.Run("reports unreachable servers", func(t *testing.T) {
		server := httptest.NewServer(http.NotFoundHandler())
		url := server.URL
		server.Close()

		state := game.NewGameState(game.NewBoard(2, 2), [2]string{"computer", "human"})
		_, _, err := NewRemoteAgent(url).FindMove(state)

		require.Error(t, err)
	})
}
