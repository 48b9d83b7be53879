package services

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hashpix_backend/utils"
)

const (
	e = CellEmpty
	p = CellPrimary
	s = CellSecondary
)

func TestDeriveGrid_Empty(t *testing.T) {
	assert.Nil(t, DeriveGrid(""))

	var blank Grid
	grid := DeriveGrid(" ")
	require.NotNil(t, grid)
	assert.NotEqual(t, blank, *grid)
}

func TestDeriveGrid_Vectors(t *testing.T) {
	tests := []struct {
		input string
		want  Grid
	}{
		{
			input: "a",
			want: Grid{
				{s, e, p, e, s},
				{e, p, s, p, e},
				{e, p, s, p, e},
				{p, s, e, s, p},
				{p, s, e, s, p},
			},
		},
		{
			input: "hello world",
			want: Grid{
				{p, s, e, s, p},
				{p, e, e, e, p},
				{s, e, p, e, s},
				{e, e, p, e, e},
				{e, p, s, p, e},
			},
		},
		{
			input: "550e8400-e29b-41d4-a716-446655440000",
			want: Grid{
				{e, p, p, p, e},
				{e, p, s, p, e},
				{p, s, e, s, p},
				{p, s, e, s, p},
				{s, e, p, e, s},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			grid := DeriveGrid(tt.input)
			require.NotNil(t, grid)
			assert.Equal(t, tt.want, *grid)
		})
	}
}

func TestDeriveGrid_Deterministic(t *testing.T) {
	first := DeriveGrid("a")
	second := DeriveGrid("a")
	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.Equal(t, *first, *second)
	assert.NotSame(t, first, second)
}

func TestDeriveGrid_CollisionsShareGrid(t *testing.T) {
	require.Equal(t, utils.HashString("Aa"), utils.HashString("BB"))
	assert.Equal(t, *DeriveGrid("Aa"), *DeriveGrid("BB"))
	assert.Equal(t, DerivePalette(utils.HashString("Aa")), DerivePalette(utils.HashString("BB")))
}

func TestGridRules_SymmetryAndBand(t *testing.T) {
	// Fills depend only on the digest modulo 100, so this covers every case.
	for d := uint32(0); d < 300; d++ {
		outcome := DefaultGridRules.Generate(d)
		assert.True(t, outcome.Grid.Symmetric(), "digest %d", d)
		for r := 0; r < GridSize; r++ {
			assert.Equal(t, outcome.Grid[r][1], outcome.Grid[r][3], "digest %d row %d", d, r)
			assert.Equal(t, outcome.Grid[r][0], outcome.Grid[r][4], "digest %d row %d", d, r)
		}
		fill := outcome.Grid.FillPercentage()
		assert.True(t, outcome.InBand, "digest %d", d)
		assert.True(t, fill >= 40 && fill <= 85, "digest %d fill %v", d, fill)
	}
}

func TestGridRules_Retries(t *testing.T) {
	rules := GridRules{MaxAttempts: 100, MinFill: 40, MaxFill: 55}

	outcome := rules.Generate(0)

	assert.True(t, outcome.InBand)
	assert.Equal(t, 17, outcome.Attempts)
	assert.Equal(t, 13, outcome.Grid.Filled())
	assert.Equal(t, Grid{
		{p, s, e, s, p},
		{p, e, e, e, p},
		{s, e, p, e, s},
		{e, e, p, e, e},
		{e, p, s, p, e},
	}, outcome.Grid)
}

func TestGridRules_ExhaustedBudgetKeepsLastCandidate(t *testing.T) {
	unreachable := GridRules{MaxAttempts: 100, MinFill: 90, MaxFill: 100}

	outcome := unreachable.Generate(0)

	assert.False(t, outcome.InBand)
	assert.Equal(t, 100, outcome.Attempts)
	assert.Equal(t, 15, outcome.Grid.Filled())
	assert.Equal(t, Grid{
		{e, e, p, e, e},
		{e, p, s, p, e},
		{p, p, s, p, p},
		{p, s, e, s, p},
		{s, e, e, e, s},
	}, outcome.Grid)
	assert.True(t, outcome.Grid.Symmetric())
}

func TestGridRules_ShortBudget(t *testing.T) {
	outcome := GridRules{MaxAttempts: 3, MinFill: 90, MaxFill: 100}.Generate(0)

	assert.False(t, outcome.InBand)
	assert.Equal(t, 3, outcome.Attempts)
	assert.Equal(t, *DeriveGrid("a"), outcome.Grid)
}

func TestGridRules_ZeroBudgetStillProducesGrid(t *testing.T) {
	outcome := GridRules{}.Generate(97)

	assert.Equal(t, 1, outcome.Attempts)
	assert.Equal(t, *DeriveGrid("a"), outcome.Grid)
}

func TestGrid_String(t *testing.T) {
	grid := DeriveGrid("a")
	require.NotNil(t, grid)

	assert.Equal(t, "+.#.+\n.#+#.\n.#+#.\n#+.+#\n#+.+#", grid.String())
	assert.Equal(t, 17, grid.Filled())
	assert.InDelta(t, 68.0, grid.FillPercentage(), 1e-9)
}

func TestGrid_SymmetricDetectsBrokenRow(t *testing.T) {
	grid := *DeriveGrid("a")
	grid[2][4] = CellSecondary
	assert.False(t, grid.Symmetric())
}

func TestCell_Text(t *testing.T) {
	data, err := json.Marshal([]Cell{CellEmpty, CellPrimary, CellSecondary})
	require.NoError(t, err)
	assert.Equal(t, `["empty","primary","secondary"]`, string(data))

	var cells []Cell
	require.NoError(t, json.Unmarshal(data, &cells))
	assert.Equal(t, []Cell{CellEmpty, CellPrimary, CellSecondary}, cells)

	assert.Error(t, json.Unmarshal([]byte(`["purple"]`), &cells))
	_, err = Cell(7).MarshalText()
	assert.Error(t, err)
	assert.Equal(t, "Cell(7)", fmt.Sprint(Cell(7)))
}
