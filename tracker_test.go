package wavepick_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"git.solver4all.com/azaryc2s/wavepick"
)

// TrackerSuite exercises SolutionTracker's replace-on-strict-improvement
// semantics, including under concurrent Offer calls.
type TrackerSuite struct {
	suite.Suite
}

func (s *TrackerSuite) TestEmptyTrackerHasNoBest() {
	t := wavepick.NewSolutionTracker()
	_, ok := t.Best()
	require.False(s.T(), ok)
}

func (s *TrackerSuite) TestInfeasibleCandidateIgnored() {
	t := wavepick.NewSolutionTracker()
	t.Offer(wavepick.Candidate{Feasible: false, Ratio: 99})
	_, ok := t.Best()
	require.False(s.T(), ok)
}

func (s *TrackerSuite) TestStrictImprovementReplaces() {
	t := wavepick.NewSolutionTracker()
	t.Offer(wavepick.Candidate{Feasible: true, Ratio: 1.0, TotalItems: 10})
	t.Offer(wavepick.Candidate{Feasible: true, Ratio: 0.5, TotalItems: 5})
	best, ok := t.Best()
	require.True(s.T(), ok)
	require.Equal(s.T(), 1.0, best.Ratio)

	t.Offer(wavepick.Candidate{Feasible: true, Ratio: 2.0, TotalItems: 20})
	best, ok = t.Best()
	require.True(s.T(), ok)
	require.Equal(s.T(), 2.0, best.Ratio)
}

func (s *TrackerSuite) TestTieKeepsIncumbent() {
	t := wavepick.NewSolutionTracker()
	first := wavepick.Candidate{Feasible: true, Ratio: 1.0, TotalItems: 10}
	t.Offer(first)
	t.Offer(wavepick.Candidate{Feasible: true, Ratio: 1.0, TotalItems: 999})
	best, ok := t.Best()
	require.True(s.T(), ok)
	require.Equal(s.T(), first.TotalItems, best.TotalItems)
}

func (s *TrackerSuite) TestConcurrentOffersConvergeOnMax() {
	t := wavepick.NewSolutionTracker()
	var wg sync.WaitGroup
	for i := 1; i <= 100; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			t.Offer(wavepick.Candidate{Feasible: true, Ratio: float64(i), TotalItems: i})
		}()
	}
	wg.Wait()

	best, ok := t.Best()
	require.True(s.T(), ok)
	require.Equal(s.T(), 100.0, best.Ratio)
}

func TestTrackerSuite(t *testing.T) {
	suite.Run(t, new(TrackerSuite))
}
