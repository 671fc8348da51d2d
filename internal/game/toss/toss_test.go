package toss_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/pigs/internal/game/pigs"
	"github.com/cory-johannsen/pigs/internal/game/toss"
)

// fixedSource returns queued values in order, then zero.
type fixedSource struct {
	vals []int
}

func (f *fixedSource) Intn(n int) int {
	if len(f.vals) == 0 {
		return 0
	}
	v := f.vals[0]
	f.vals = f.vals[1:]
	return v % n
}

// Offsets into the cumulative weight range that land each face.
const (
	landSider     = 0
	landHoofer    = 651
	landRazorback = 651 + 88
	landSnouter   = 651 + 88 + 224
	landJowler    = 999
)

func playing(t *testing.T) *pigs.Game {
	t.Helper()
	g, err := pigs.New(pigs.WithLogger(zaptest.NewLogger(t)))
	require.NoError(t, err)
	require.NoError(t, g.AddPlayer("alice"))
	require.NoError(t, g.AddPlayer("bob"))
	require.NoError(t, g.StartGame())
	return g
}

func TestWeightsCoverEveryFace(t *testing.T) {
	total := 0
	for _, f := range pigs.Faces() {
		w, ok := toss.Weights[f]
		require.True(t, ok, "missing weight for %s", f)
		assert.Positive(t, w)
		total += w
	}
	assert.Equal(t, 1000, total)
}

func TestThrower_LandsByWeight(t *testing.T) {
	src := &fixedSource{vals: []int{landSider, landHoofer, landRazorback, landSnouter, landJowler, landHoofer - 1}}
	th := toss.NewThrower(src, nil)

	assert.Equal(t, toss.Throw{First: pigs.Sider, Second: pigs.Hoofer}, th.Throw())
	assert.Equal(t, toss.Throw{First: pigs.Razorback, Second: pigs.Snouter}, th.Throw())
	assert.Equal(t, toss.Throw{First: pigs.Jowler, Second: pigs.Sider}, th.Throw())
}

func TestThrow_String(t *testing.T) {
	assert.Equal(t, "snouter+jowler", toss.Throw{First: pigs.Snouter, Second: pigs.Jowler}.String())
}

func TestThrow_Events(t *testing.T) {
	tests := []struct {
		throw toss.Throw
		kinds []pigs.EventKind
	}{
		{toss.Throw{First: pigs.Sider, Second: pigs.Sider}, []pigs.EventKind{pigs.EventLean}},
		{toss.Throw{First: pigs.Sider, Second: pigs.Jowler}, []pigs.EventKind{pigs.EventLean}},
		{toss.Throw{First: pigs.Hoofer, Second: pigs.Sider}, []pigs.EventKind{pigs.EventLean}},
		{toss.Throw{First: pigs.Snouter, Second: pigs.Snouter}, []pigs.EventKind{pigs.EventDouble}},
		{toss.Throw{First: pigs.Snouter, Second: pigs.Razorback}, []pigs.EventKind{pigs.EventToggleCombo, pigs.EventPickComboFace, pigs.EventPickComboFace}},
	}
	for _, tt := range tests {
		evs := tt.throw.Events()
		kinds := make([]pigs.EventKind, len(evs))
		for i, ev := range evs {
			kinds[i] = ev.Kind
		}
		assert.Equal(t, tt.kinds, kinds, "throw %s", tt.throw)
	}
}

func TestThrowFor_AddsTurnPoints(t *testing.T) {
	g := playing(t)
	src := &fixedSource{vals: []int{landSnouter, landJowler}}
	th := toss.NewThrower(src, zaptest.NewLogger(t))

	got, err := th.ThrowFor(g)
	require.NoError(t, err)
	assert.Equal(t, toss.Throw{First: pigs.Snouter, Second: pigs.Jowler}, got)
	assert.Equal(t, 15, g.TurnPoints())
	assert.False(t, g.Combo().Pending())
}

func TestThrowFor_WrongPhase(t *testing.T) {
	g, err := pigs.New()
	require.NoError(t, err)

	_, err = toss.NewThrower(toss.NewCryptoSource(), nil).ThrowFor(g)
	assert.True(t, errors.Is(err, pigs.ErrWrongPhase))
}

func TestThrowFor_ComboPending(t *testing.T) {
	g := playing(t)
	require.NoError(t, g.ToggleCombo())

	_, err := toss.NewThrower(toss.NewCryptoSource(), nil).ThrowFor(g)
	assert.True(t, errors.Is(err, pigs.ErrComboPending))
	assert.Equal(t, 0, g.TurnPoints())
	assert.True(t, g.Combo().Pending())
}

func TestCryptoSource_Range(t *testing.T) {
	src := toss.NewCryptoSource()
	for i := 0; i < 1000; i++ {
		v := src.Intn(7)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 7)
	}
	assert.Panics(t, func() { src.Intn(0) })
}

// Property: replaying a throw's events adds exactly the table value for the
// two faces, whatever they are.
func TestPropertyThrowEventsScoreTheTable(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		faces := pigs.Faces()
		th := toss.Throw{
			First:  faces[rapid.IntRange(0, len(faces)-1).Draw(rt, "first")],
			Second: faces[rapid.IntRange(0, len(faces)-1).Draw(rt, "second")],
		}
		g, err := pigs.New()
		require.NoError(rt, err)
		require.NoError(rt, g.AddPlayer("alice"))
		require.NoError(rt, g.AddPlayer("bob"))
		require.NoError(rt, g.StartGame())

		for _, ev := range th.Events() {
			require.NoError(rt, g.Apply(ev))
		}
		assert.Equal(rt, pigs.DefaultTable().Lookup(th.First, th.Second), g.TurnPoints())
		assert.False(rt, g.Combo().Pending())
	})
}

// Property: every throw from the crypto source lands valid faces.
func TestPropertyThrowLandsValidFaces(t *testing.T) {
	th := toss.NewThrower(toss.NewCryptoSource(), nil)
	rapid.Check(t, func(rt *rapid.T) {
		got := th.Throw()
		if !got.First.Valid() || !got.Second.Valid() {
			rt.Fatalf("invalid throw %v", got)
		}
	})
}
