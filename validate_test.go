package wavepick_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"git.solver4all.com/azaryc2s/wavepick"
)

// ValidateSuite exercises the §8 invariant self-check.
type ValidateSuite struct {
	suite.Suite
}

func (s *ValidateSuite) idx() *wavepick.ProblemIndex {
	orders := []wavepick.ItemQty{
		{0: 3},
		{0: 2, 1: 4},
	}
	corridors := []wavepick.ItemQty{
		{0: 10, 1: 10},
	}
	return wavepick.NewProblemIndex(orders, corridors, 2, 1, 20)
}

func (s *ValidateSuite) TestValidSelectionPasses() {
	err := wavepick.Validate(s.idx(), []int{0, 1}, []int{0})
	require.NoError(s.T(), err)
}

func (s *ValidateSuite) TestOrderOutOfRange() {
	err := wavepick.Validate(s.idx(), []int{0, 5}, []int{0})
	require.Error(s.T(), err)
}

func (s *ValidateSuite) TestCorridorOutOfRange() {
	err := wavepick.Validate(s.idx(), []int{0}, []int{7})
	require.Error(s.T(), err)
}

func (s *ValidateSuite) TestWaveSizeBelowLowerBound() {
	idx := wavepick.NewProblemIndex(
		[]wavepick.ItemQty{{0: 1}},
		[]wavepick.ItemQty{{0: 10}},
		1, 5, 20,
	)
	err := wavepick.Validate(idx, []int{0}, []int{0})
	require.Error(s.T(), err)
}

func (s *ValidateSuite) TestWaveSizeAboveUpperBound() {
	idx := wavepick.NewProblemIndex(
		[]wavepick.ItemQty{{0: 100}},
		[]wavepick.ItemQty{{0: 200}},
		1, 0, 10,
	)
	err := wavepick.Validate(idx, []int{0}, []int{0})
	require.Error(s.T(), err)
}

func (s *ValidateSuite) TestDemandExceedsSupply() {
	idx := wavepick.NewProblemIndex(
		[]wavepick.ItemQty{{0: 10}},
		[]wavepick.ItemQty{{0: 2}},
		1, 0, 100,
	)
	err := wavepick.Validate(idx, []int{0}, []int{0})
	require.Error(s.T(), err)
}

func TestValidateSuite(t *testing.T) {
	suite.Run(t, new(ValidateSuite))
}
