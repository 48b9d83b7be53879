package services

import (
	"fmt"
	"strings"

	"hashpix_backend/utils"
)

// GridSize is the number of rows and columns of an avatar grid.
const GridSize = 5

const (
	gridCells = GridSize * GridSize
	// leftColumns are sampled; the remaining columns mirror them.
	leftColumns = 3

	rowSeedStep     = 17
	columnSeedStep  = 31
	attemptSeedStep = 97

	emptyBelow   = 35
	primaryBelow = 70
)

// Cell is the state of a single grid cell.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellPrimary
	CellSecondary
)

var cellNames = [...]string{"empty", "primary", "secondary"}

func (c Cell) String() string {
	if int(c) < len(cellNames) {
		return cellNames[c]
	}
	return fmt.Sprintf("Cell(%d)", c)
}

// MarshalText implements encoding.TextMarshaler.
func (c Cell) MarshalText() ([]byte, error) {
	if int(c) >= len(cellNames) {
		return nil, fmt.Errorf("invalid cell %d", c)
	}
	return []byte(cellNames[c]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Cell) UnmarshalText(text []byte) error {
	for i, name := range cellNames {
		if name == string(text) {
			*c = Cell(i)
			return nil
		}
	}
	return fmt.Errorf("unknown cell %q", text)
}

// Grid is a 5x5 avatar pattern, indexed [row][column].
type Grid [GridSize][GridSize]Cell

// Filled counts the non-empty cells.
func (g *Grid) Filled() int {
	n := 0
	for _, row := range g {
		for _, cell := range row {
			if cell != CellEmpty {
				n++
			}
		}
	}
	return n
}

// FillPercentage is the share of non-empty cells, 0-100.
func (g *Grid) FillPercentage() float64 {
	return float64(g.Filled()) / gridCells * 100
}

// Symmetric reports whether every row mirrors about the center column.
func (g *Grid) Symmetric() bool {
	for _, row := range g {
		for c := 0; c < GridSize/2; c++ {
			if row[c] != row[GridSize-1-c] {
				return false
			}
		}
	}
	return true
}

// String draws the grid with '.' for empty, '#' for primary and '+' for
// secondary cells, one line per row.
func (g *Grid) String() string {
	var b strings.Builder
	for r, row := range g {
		if r > 0 {
			b.WriteByte('\n')
		}
		for _, cell := range row {
			switch cell {
			case CellPrimary:
				b.WriteByte('#')
			case CellSecondary:
				b.WriteByte('+')
			default:
				b.WriteByte('.')
			}
		}
	}
	return b.String()
}

// GridRules bound the rejection sampling that picks a grid.
type GridRules struct {
	MaxAttempts int
	// MinFill and MaxFill are the accepted fill percentages, inclusive.
	MinFill int
	MaxFill int
}

// DefaultGridRules keep between 40% and 85% of the cells filled, trying at
// most 100 candidates.
var DefaultGridRules = GridRules{MaxAttempts: 100, MinFill: 40, MaxFill: 85}

// GridOutcome is the grid picked by GridRules.Generate and how it was found.
type GridOutcome struct {
	Grid Grid
	// Attempts is the number of candidates generated, 1..MaxAttempts.
	Attempts int
	// InBand is false when the attempt budget ran out and the last
	// candidate was kept regardless of its fill.
	InBand bool
}

// Generate samples candidates for digest until one falls in the fill band.
// When none does, the last candidate is returned.
func (r GridRules) Generate(digest uint32) GridOutcome {
	maxAttempts := r.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	var outcome GridOutcome
	for attempt := 0; attempt < maxAttempts; attempt++ {
		grid, filled := candidate(digest, attempt)
		outcome = GridOutcome{Grid: grid, Attempts: attempt + 1}
		if filled*100 >= r.MinFill*gridCells && filled*100 <= r.MaxFill*gridCells {
			outcome.InBand = true
			return outcome
		}
	}
	return outcome
}

// candidate builds the grid for one attempt and returns it with its fill count.
func candidate(digest uint32, attempt int) (Grid, int) {
	var grid Grid
	filled := 0
	for r := 0; r < GridSize; r++ {
		for c := 0; c < leftColumns; c++ {
			seed := uint64(digest) + uint64(r*rowSeedStep+c*columnSeedStep+attempt*attemptSeedStep)
			var cell Cell
			switch rnd := seed % 100; {
			case rnd < emptyBelow:
				cell = CellEmpty
			case rnd < primaryBelow:
				cell = CellPrimary
			default:
				cell = CellSecondary
			}
			if cell != CellEmpty {
				filled++
			}
			grid[r][c] = cell
		}
	}
	for r := 0; r < GridSize; r++ {
		grid[r][3] = grid[r][1]
		grid[r][4] = grid[r][0]
		if grid[r][3] != CellEmpty {
			filled++
		}
		if grid[r][4] != CellEmpty {
			filled++
		}
	}
	return grid, filled
}

// DeriveGrid returns the avatar grid for input, or nil when input is empty.
func DeriveGrid(input string) *Grid {
	if input == "" {
		return nil
	}
	outcome := DefaultGridRules.Generate(utils.HashString(input))
	return &outcome.Grid
}
