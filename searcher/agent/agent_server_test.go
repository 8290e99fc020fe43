package agent

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"chomp/communication"
	"chomp/game"
	"chomp/meta"
	"chomp/searcher"

	"github.com/stretchr/testify/require"
)

func postFindMove(t *testing.T, body []byte) *http.Response {
	t.Helper()
	return postFindMoveCapped(t, body, meta.DEFAULT_MAX_CELLS)
}

func postFindMoveCapped(t *testing.T, body []byte, maxCells int) *http.Response {
	t.Helper()
	app := NewServer(NewSolverAgent(searcher.NewNegamax(searcher.WithSeed(1), searcher.WithMetrics())), maxCells)

	req := httptest.NewRequest(http.MethodPost, "/findmove", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestFindMoveEndpoint(t *testing.T) {
	t.Run("returns a winning move", func(t *testing.T) {
		state := game.NewGameState(game.NewBoard(3, 2), [2]string{"computer", "human"})
		body, err := json.Marshal(communication.NewFindMoveRequest("g1", state))
		require.NoError(t, err)

		resp := postFindMove(t, body)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var found communication.FindMoveResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&found))
		require.True(t, found.ForcedWin)
		require.Positive(t, found.Nodes)
		require.True(t, state.Board.Contains(found.Move.Row, found.Move.Col))
	})

	t.Run("rejects malformed bodies", func(t *testing.T) {
		resp := postFindMove(t, []byte("{not json"))

		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("rejects boards that are not staircases", func(t *testing.T) {
		body, err := json.Marshal(communication.FindMoveRequest{Cells: []game.Move{{Row: 0, Col: 0}, {Row: 2, Col: 2}}})
		require.NoError(t, err)

		resp := postFindMove(t, body)

		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("rejects empty boards", func(t *testing.T) {
		resp := postFindMove(t, []byte(`{"cells": []}`))

		require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	})

	t.Run("rejects boards above the cell cap", func(t *testing.T) {
		state := game.NewGameState(game.NewBoard(6, 5), [2]string{"computer", "human"})
		body, err := json.Marshal(communication.NewFindMoveRequest("g2", state))
		require.NoError(t, err)

		resp := postFindMoveCapped(t, body, 29)

		require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		var failure map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&failure))
		require.Contains(t, failure["error"], "30 cells")
	})

	t.Run("default cap refuses a 6x5 bar", func(t *testing.T) {
		state := game.NewGameState(game.NewBoard(6, 5), [2]string{"computer", "human"})
		body, err := json.Marshal(communication.NewFindMoveRequest("g3", state))
		require.NoError(t, err)

		resp := postFindMoveCapped(t, body, 0)

		require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	})

	t.Run("boards at the cap are searched", func(t *testing.T) {
		state := game.NewGameState(game.NewBoard(3, 2), [2]string{"computer", "human"})
		body, err := json.Marshal(communication.NewFindMoveRequest("g4", state))
		require.NoError(t, err)

		resp := postFindMoveCapped(t, body, 6)

		require.Equal(t, http.StatusOK, resp.StatusCode)
	})
}

func TestHealthEndpoint(t *testing.T) {
	app := NewServer(NewRandomAgent(searcher.NewUniformChooser(1)), meta.DEFAULT_MAX_CELLS)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))

	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRandomAgent(t *testing.T) {
	state := game.NewGameState(game.NewBoard(3, 3), [2]string{"a", "b"})
	a := NewRandomAgent(searcher.NewUniformChooser(5))

	for i := 0; i < 20; i++ {
		move, _, err := a.FindMove(state)
		require.NoError(t, err)
		require.True(t, state.Board.Contains(move.Row, move.Col))
	}
}
