package pigs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/pigs/internal/game/pigs"
)

func TestApply_FullGameByEvents(t *testing.T) {
	g, err := pigs.New()
	require.NoError(t, err)

	events := []pigs.Event{
		{Kind: pigs.EventUpdateDraft, Name: "alice"},
		{Kind: pigs.EventAddPlayer},
		{Kind: pigs.EventAddPlayer, Name: "bob"},
		{Kind: pigs.EventStartGame},
		{Kind: pigs.EventDouble, Face: pigs.Jowler},
		{Kind: pigs.EventToggleCombo},
		{Kind: pigs.EventPickComboFace, Face: pigs.Jowler},
		{Kind: pigs.EventPickComboFace, Face: pigs.Hoofer},
		{Kind: pigs.EventLean, Face: pigs.Snouter},
		{Kind: pigs.EventPigOut},
		{Kind: pigs.EventLean, Face: pigs.Razorback},
		{Kind: pigs.EventMakinBacon},
	}
	for _, ev := range events {
		require.NoError(t, g.Apply(ev), "event %s", ev.Kind)
	}

	assert.Equal(t, map[string]int{"alice": 85, "bob": 0}, g.Scoreboard())
	assert.Equal(t, []string{"alice", "bob"}, g.Players())

	require.NoError(t, g.Apply(pigs.Event{Kind: pigs.EventDouble, Face: pigs.Snouter}))
	require.NoError(t, g.Apply(pigs.Event{Kind: pigs.EventPigOut}))
	assert.True(t, g.IsLastTurn())
	require.NoError(t, g.Apply(pigs.Event{Kind: pigs.EventMakinBacon}))
	assert.Equal(t, pigs.PhaseOver, g.Phase())

	require.NoError(t, g.Apply(pigs.Event{Kind: pigs.EventNewGame}))
	assert.Equal(t, pigs.PhasePregame, g.Phase())
	assert.Empty(t, g.Players())
}

func TestApply_UnknownEvent(t *testing.T) {
	g, err := pigs.New()
	require.NoError(t, err)

	err = g.Apply(pigs.Event{Kind: pigs.EventKind(99)})
	assert.ErrorIs(t, err, pigs.ErrUnknownEvent)
	assert.Contains(t, err.Error(), "EventKind(99)")
}

func TestEventKind_String(t *testing.T) {
	assert.Equal(t, "pig_out", pigs.EventPigOut.String())
	assert.Equal(t, "pick_combo_face", pigs.EventPickComboFace.String())
}
