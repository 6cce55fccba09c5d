package storex_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/comalice/storex"
)

func TestRecorder_JournalsAppliedActions(t *testing.T) {
	rec := storex.NewRecorder[testState, testAction]()
	st := newTestStore(t, storex.WithPublisher[testState, testAction](rec))

	st.Dispatch(testAction{Kind: "incr"})
	st.Dispatch(testAction{Kind: "tag", Tag: "a"})
	st.Dispatch(testAction{Kind: "bogus"})

	actions := rec.Actions()
	require.Len(t, actions, 3)
	require.Equal(t, "incr", actions[0].Kind)
	require.Equal(t, "tag", actions[1].Kind)
	require.Equal(t, "bogus", actions[2].Kind)
}

func TestRecorder_ReplayMatchesStoreState(t *testing.T) {
	rec := storex.NewRecorder[testState, testAction]()
	st := newTestStore(t, storex.WithPublisher[testState, testAction](rec))

	st.Dispatch(testAction{Kind: "incr"})
	st.Dispatch(testAction{Kind: "tag", Tag: "x"})
	st.Dispatch(testAction{Kind: "incr"})

	require.Equal(t, st.State(), rec.Replay(testState{}, testReduce))
}

func TestRecorder_ActionsReturnsCopy(t *testing.T) {
	rec := storex.NewRecorder[testState, testAction]()
	st := newTestStore(t, storex.WithPublisher[testState, testAction](rec))

	st.Dispatch(testAction{Kind: "incr"})

	first := rec.Actions()
	first[0].Kind = "mutated"
	require.Equal(t, "incr", rec.Actions()[0].Kind)
}
