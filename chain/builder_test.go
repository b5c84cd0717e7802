// SPDX-License-Identifier: MIT
package chain_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/xychain/chain"
)

func TestReduce_Scenario(t *testing.T) {
	g, err := chain.Reduce(scenarioEvents())
	require.NoError(t, err)
	if diff := cmp.Diff(scenarioGraph(), g); diff != "" {
		t.Errorf("Reduce(scenario) mismatch (-want +got):\n%s", diff)
	}
}

func TestReduce_Empty(t *testing.T) {
	g, err := chain.Reduce(nil)
	require.NoError(t, err)
	assert.Empty(t, g.X)
	assert.Empty(t, g.Y)
}

// TestReduce_Rejections verifies each invariant fails with its sentinel at
// the index of the offending event, and that no graph is returned.
func TestReduce_Rejections(t *testing.T) {
	base := scenarioEvents()
	n := len(base)

	cases := []struct {
		name    string
		events  []chain.Event
		opts    []chain.Option
		wantErr error
		wantIdx int
	}{
		{"DuplicateNodeOfFirstX", with(base, xa("0", "0")), nil, chain.ErrDuplicateNode, n},
		{"DuplicateFirstY", with(base, ya("1", "0", "1")), nil, chain.ErrDuplicateXChainInYChain, n},
		{"NodeNotInXChain", with(base, ya("3", "1", "3")), nil, chain.ErrNodeNotFoundInXChain, n},
		{"UnknownXChain", with(base, ya("1", "9", "1")), nil, chain.ErrUnknownXChain, n},
		{"YBeforeX", []chain.Event{ya("0", "0", "0"), xa("0", "0")}, nil, chain.ErrUnknownXChain, 0},
		{"SecondXChainOfY", with(base, ya("4", "0", "5")), nil, chain.ErrFixedIdentityViolation, n},
		{"SecondXChainOfYLenient", with(base, ya("4", "0", "5")), []chain.Option{chain.WithLenientIdentity()}, chain.ErrDuplicateXChainInYChain, n},
		{"EmptyNodeID", []chain.Event{xa("", "0")}, nil, chain.ErrEmptyID, 0},
		{"EmptyYChainID", []chain.Event{xa("0", "0"), ya("0", "0", "")}, nil, chain.ErrEmptyID, 1},
		{"NilEvent", []chain.Event{xa("0", "0"), nil}, nil, chain.ErrUnknownEvent, 1},
		{"PointerEvent", []chain.Event{&chain.XAdded{ID: "0", ChainID: "0"}}, nil, chain.ErrUnknownEvent, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := chain.Reduce(tc.events, tc.opts...)
			assert.Nil(t, g)
			require.ErrorIs(t, err, tc.wantErr)

			var ee *chain.EventError
			require.True(t, errors.As(err, &ee), "want *EventError, got %T", err)
			assert.Equal(t, tc.wantIdx, ee.Index)
			assert.Equal(t, tc.events[tc.wantIdx], ee.Event)
		})
	}
}

// TestReduce_DuplicateNodeIgnoresInterleaving checks that a repeated
// (chain, node) pair fails at its second occurrence however many unrelated
// events sit in between.
func TestReduce_DuplicateNodeIgnoresInterleaving(t *testing.T) {
	for gap := 0; gap < 6; gap++ {
		events := []chain.Event{xa("a", "c")}
		for i := 0; i < gap; i++ {
			events = append(events, xa("a", "other"+string(rune('0'+i))), xa(string(rune('b'+i)), "c"))
		}
		events = append(events, xa("a", "c"), xa("z", "c"))

		_, err := chain.Reduce(events)
		require.ErrorIs(t, err, chain.ErrDuplicateNode, "gap=%d", gap)
		var ee *chain.EventError
		require.ErrorAs(t, err, &ee)
		assert.Equal(t, 1+2*gap, ee.Index, "gap=%d", gap)
	}
}

func TestReduce_LenientKeepsFixedIdentity(t *testing.T) {
	events := []chain.Event{
		xa("n", "a"), xa("m", "b"),
		ya("n", "a", "y"),
		ya("m", "b", "y"),
	}

	_, err := chain.Reduce(events)
	require.ErrorIs(t, err, chain.ErrFixedIdentityViolation)

	g, err := chain.Reduce(events, chain.WithLenientIdentity())
	require.NoError(t, err)
	want := []chain.YMember{{XChainID: "a", NodeID: "n"}, {XChainID: "b", NodeID: "n"}}
	assert.Equal(t, want, g.Y["y"])
}

// TestApply_RejectionIsAtomic checks that a rejected event commits nothing,
// including the implicit creation of a Y-chain.
func TestApply_RejectionIsAtomic(t *testing.T) {
	s := chain.NewState()
	for _, e := range scenarioEvents() {
		require.NoError(t, s.Apply(e))
	}
	before := s.Snapshot()
	applied := s.Applied()

	rejected := []chain.Event{
		xa("3", "0"),
		ya("3", "1", "new"),
		ya("0", "9", "new"),
		ya("1", "2", "1"),
		ya("4", "0", "5"),
	}
	for _, e := range rejected {
		err := s.Apply(e)
		require.Error(t, err, "%v", e)
		var ee *chain.EventError
		require.ErrorAs(t, err, &ee)
		assert.Equal(t, applied, ee.Index)
	}

	assert.Equal(t, applied, s.Applied())
	if diff := cmp.Diff(before, s.Snapshot()); diff != "" {
		t.Errorf("state changed after rejections (-before +after):\n%s", diff)
	}
	assert.NotContains(t, s.Snapshot().Y, chain.YChainID("new"))

	// The state keeps accepting valid events after rejections.
	require.NoError(t, s.Apply(ya("4", "0", "4")))
	assert.Equal(t, applied+1, s.Applied())
}

func TestSnapshot_DoesNotAliasState(t *testing.T) {
	s := chain.NewState()
	require.NoError(t, s.Apply(xa("0", "a")))
	require.NoError(t, s.Apply(ya("0", "a", "y")))

	g := s.Snapshot()
	g.X["a"][0] = "mutated"
	g.Y["y"][0].NodeID = "mutated"

	again := s.Snapshot()
	assert.Equal(t, []chain.NodeID{"0"}, again.X["a"])
	assert.Equal(t, chain.NodeID("0"), again.Y["y"][0].NodeID)
}

func TestReduce_PrefixesAreConsistent(t *testing.T) {
	events := scenarioEvents()
	for i := 0; i <= len(events); i++ {
		g, err := chain.Reduce(events[:i])
		require.NoError(t, err, "prefix %d", i)
		total := 0
		for _, nodes := range g.X {
			total += len(nodes)
		}
		for _, members := range g.Y {
			total += len(members)
		}
		assert.Equal(t, i, total, "prefix %d", i)
	}
}

func TestWithLogger_RecordsRejection(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	_, err := chain.Reduce(with(scenarioEvents(), xa("0", "0")), chain.WithLogger(zap.New(core)))
	require.ErrorIs(t, err, chain.ErrDuplicateNode)

	entries := logs.FilterMessage("event rejected").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.EqualValues(t, len(scenarioEvents()), fields["index"])
	assert.Equal(t, "xAdded{id=0 chain=0}", fields["event"])
}

func TestOptions_PanicOnMeaninglessInput(t *testing.T) {
	assert.Panics(t, func() { chain.WithLogger(nil) })
	assert.Panics(t, func() { chain.WithParallelism(0) })
	assert.NotPanics(t, func() { chain.WithParallelism(1) })
}
