package experiments

import (
	"path/filepath"
	"testing"

	"chomp/experiments/metrics"

	"github.com/stretchr/testify/require"
)

func TestRunSolverScaling(t *testing.T) {
	writer, err := metrics.NewWriter(t.TempDir(), "scaling")
	require.NoError(t, err)

	records, err := RunSolverScaling([]BoardSize{{1, 1}, {0, 3}, {2, 2}, {3, 2}}, writer)

	require.NoError(t, err)
	require.Len(t, records, 3, "empty boards are skipped")
	require.False(t, records[0].ForcedWin, "1x1 is lost for the mover")
	require.Empty(t, records[0].Move)
	require.True(t, records[1].ForcedWin)
	require.NotEmpty(t, records[1].Move)
	require.Positive(t, records[2].Nodes)
	require.FileExists(t, filepath.Join(writer.Dir(), "solver_records.csv"))
}

func TestRunSelfPlay(t *testing.T) {
	writer, err := metrics.NewWriter(t.TempDir(), "selfplay")
	require.NoError(t, err)

	records, err := RunSelfPlay(SelfPlayConfig{Games: 4, Width: 3, Height: 2, Seed: 11}, writer)

	require.NoError(t, err)
	require.Len(t, records, 4)
	for i, record := range records {
		require.NotEmpty(t, record.ID)
		if record.StartingPlayer == "solver" {
			require.Equal(t, "solver", record.Winner, "game %d", i+1)
		}
	}
	require.Equal(t, "solver", records[0].StartingPlayer)
	require.Equal(t, "random", records[1].StartingPlayer)
	require.FileExists(t, filepath.Join(writer.Dir(), "game_records.csv"))
	require.FileExists(t, filepath.Join(writer.Dir(), "move_records.csv"))
}
