package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/cory-johannsen/pigs/internal/config"
	"github.com/cory-johannsen/pigs/internal/game/pigs"
)

func TestNewGame_Defaults(t *testing.T) {
	g, err := newGame(config.GameConfig{TargetScore: 100, MinPlayers: 2}, zaptest.NewLogger(t))
	require.NoError(t, err)
	assert.Equal(t, pigs.DefaultRules(), g.Rules())
	assert.Equal(t, pigs.PhasePregame, g.Phase())
}

func TestNewGame_CustomRules(t *testing.T) {
	g, err := newGame(config.GameConfig{TargetScore: 50, MinPlayers: 3}, zaptest.NewLogger(t))
	require.NoError(t, err)
	assert.Equal(t, pigs.Rules{TargetScore: 50, MinPlayers: 3}, g.Rules())
}

func TestNewGame_MissingScoresFile(t *testing.T) {
	_, err := newGame(config.GameConfig{TargetScore: 100, MinPlayers: 2, ScoresFile: "/nonexistent/scores.yaml"}, zaptest.NewLogger(t))
	assert.Error(t, err)
}

func TestNewGame_HouseScoresFile(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("..", "..", "internal", "game", "pigs", "content", "scores.yaml"))
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "house.yaml")
	require.NoError(t, os.WriteFile(path, data, 0644))

	g, err := newGame(config.GameConfig{TargetScore: 100, MinPlayers: 2, ScoresFile: path}, zaptest.NewLogger(t))
	require.NoError(t, err)
	require.NoError(t, g.AddPlayer("alice"))
	require.NoError(t, g.AddPlayer("bob"))
	require.NoError(t, g.StartGame())
	require.NoError(t, g.Double(pigs.Snouter))
	assert.Equal(t, 40, g.TurnPoints())
}
