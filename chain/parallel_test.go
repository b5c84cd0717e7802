// SPDX-License-Identifier: MIT
package chain_test

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/katalvlaran/xychain/chain"
)

// TestReduceParallel_AgreesWithReduce folds the same inputs both ways and
// requires identical graphs, or identical failing indices and sentinels.
func TestReduceParallel_AgreesWithReduce(t *testing.T) {
	defer goleak.VerifyNone(t)

	base := scenarioEvents()
	xs, ys, _ := chain.Split(base)
	var xOnly []chain.Event
	for _, e := range xs {
		xOnly = append(xOnly, e)
	}
	yPhase := make([]chain.Event, 0, len(ys))
	for _, e := range ys {
		yPhase = append(yPhase, e)
	}

	// Two duplicates in different chains: the earlier input index must win
	// even though its chain sorts after the other one.
	twoDupes := with(xOnly[:9], xa("2", "1"), xa("0", "0"))
	twoDupes = append(twoDupes, yPhase...)

	inputs := map[string][]chain.Event{
		"Scenario":        base,
		"XOnly":           xOnly,
		"DuplicateInX":    append(with(xOnly, xa("6", "2")), yPhase...),
		"TwoDuplicates":   twoDupes,
		"DuplicateInY":    with(base, ya("1", "0", "1")),
		"NodeNotFound":    with(base, ya("3", "1", "3")),
		"EmptyIDInX":      append(with(xOnly, xa("", "3")), yPhase...),
		"NotPhaseOrdered": {xa("0", "0"), ya("0", "0", "0"), xa("1", "0")},
		"Empty":           nil,
	}
	for name, events := range inputs {
		t.Run(name, func(t *testing.T) {
			want, wantErr := chain.Reduce(events)
			got, gotErr := chain.ReduceParallel(context.Background(), events, chain.WithParallelism(2))

			if wantErr == nil {
				require.NoError(t, gotErr)
				if diff := cmp.Diff(want, got); diff != "" {
					t.Errorf("ReduceParallel mismatch (-Reduce +ReduceParallel):\n%s", diff)
				}
				return
			}
			var we, ge *chain.EventError
			require.ErrorAs(t, wantErr, &we)
			require.ErrorAs(t, gotErr, &ge)
			assert.Equal(t, we.Index, ge.Index)
			assert.Equal(t, we.Event, ge.Event)
			assert.Equal(t, sentinelOf(wantErr), sentinelOf(gotErr))
			assert.Nil(t, got)
		})
	}
}

// sentinelOf returns the chain sentinel err matches, or nil.
func sentinelOf(err error) error {
	for _, s := range []error{
		chain.ErrDuplicateNode,
		chain.ErrDuplicateXChainInYChain,
		chain.ErrUnknownXChain,
		chain.ErrNodeNotFoundInXChain,
		chain.ErrFixedIdentityViolation,
		chain.ErrEmptyID,
		chain.ErrUnknownEvent,
	} {
		if errors.Is(err, s) {
			return s
		}
	}
	return nil
}

func TestReduceParallel_ManyChains(t *testing.T) {
	defer goleak.VerifyNone(t)

	var events []chain.Event
	for c := 0; c < 64; c++ {
		for n := 0; n < 32; n++ {
			events = append(events, xa(strconv.Itoa(n), strconv.Itoa(c)))
		}
	}
	for c := 0; c < 64; c++ {
		events = append(events, ya("7", strconv.Itoa(c), "seven"))
	}

	want, err := chain.Reduce(events)
	require.NoError(t, err)
	got, err := chain.ReduceParallel(context.Background(), events, chain.WithParallelism(8))
	require.NoError(t, err)
	assert.Equal(t, want.Digest(), got.Digest())
	assert.Len(t, got.Y["seven"], 64)
}

func TestReduceParallel_Canceled(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g, err := chain.ReduceParallel(ctx, scenarioEvents())
	assert.Nil(t, g)
	assert.ErrorIs(t, err, context.Canceled)
}
