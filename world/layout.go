package world

import (
	"fmt"
	"strings"

	"github.com/jakecoffman/cp"
)

// Cell addresses one square of a maze layout. Column grows with world X,
// row grows with world Z.
type Cell struct {
	Col int
	Row int
}

// Layout is the collision-relevant result of parsing a chapter maze: the
// merged wall set, the start/end cells, and the rectangular bound covering
// the whole maze.
type Layout struct {
	Walls    Walls
	Start    Cell
	End      Cell
	HasEnd   bool
	Cols     int
	Rows     int
	CellSize float64
}

// ParseLayout reads maze rows ('#' wall, '.' floor, 'S' start, 'E' end)
// into world-plane walls. Contiguous wall cells are merged greedily into
// larger rectangles (width first, then height) so the controller tests far
// fewer boxes than one per cell.
func ParseLayout(rows []string, cellSize float64) (*Layout, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("world: empty layout")
	}
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}

	cols := len(rows[0])
	for i, r := range rows {
		if len(r) != cols {
			return nil, fmt.Errorf("world: layout row %d has %d cells, want %d", i, len(r), cols)
		}
	}

	l := &Layout{Cols: cols, Rows: len(rows), CellSize: cellSize}

	solid := make([]bool, cols*len(rows))
	seenStart := false
	for row, line := range rows {
		for col, ch := range line {
			switch ch {
			case '#':
				solid[row*cols+col] = true
			case '.', ' ':
			case 'S':
				l.Start = Cell{Col: col, Row: row}
				seenStart = true
			case 'E':
				l.End = Cell{Col: col, Row: row}
				l.HasEnd = true
			default:
				return nil, fmt.Errorf("world: layout row %d: unknown cell %q", row, string(ch))
			}
		}
	}
	if !seenStart {
		return nil, fmt.Errorf("world: layout has no start cell")
	}

	// Greedy rectangle merge over solid cells.
	processed := make([]bool, len(solid))
	for row := 0; row < l.Rows; row++ {
		for col := 0; col < cols; col++ {
			idx := row*cols + col
			if processed[idx] || !solid[idx] {
				processed[idx] = true
				continue
			}

			w := 1
			for col+w < cols {
				idx2 := row*cols + (col + w)
				if processed[idx2] || !solid[idx2] {
					break
				}
				w++
			}

			h := 1
		heightLoop:
			for row+h < l.Rows {
				for ci := col; ci < col+w; ci++ {
					idx2 := (row+h)*cols + ci
					if processed[idx2] || !solid[idx2] {
						break heightLoop
					}
				}
				h++
			}

			x0 := float64(col) * cellSize
			z0 := float64(row) * cellSize
			l.Walls = append(l.Walls, NewWall(x0, x0+float64(w)*cellSize, z0, z0+float64(h)*cellSize))

			for rr := row; rr < row+h; rr++ {
				for cc := col; cc < col+w; cc++ {
					processed[rr*cols+cc] = true
				}
			}
		}
	}

	return l, nil
}

// DefaultCellSize is the world-unit width of one maze cell.
const DefaultCellSize = 2.0

// CellCenter returns the world-plane center of a cell.
func (l *Layout) CellCenter(c Cell) cp.Vector {
	return cp.Vector{
		X: (float64(c.Col) + 0.5) * l.CellSize,
		Y: (float64(c.Row) + 0.5) * l.CellSize,
	}
}

// Bounds returns the rectangle covering the full maze.
func (l *Layout) Bounds() Wall {
	return NewWall(0, float64(l.Cols)*l.CellSize, 0, float64(l.Rows)*l.CellSize)
}

// String renders the layout back to its row form, mostly for debug output.
func (l *Layout) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%dx%d maze, %d walls", l.Cols, l.Rows, len(l.Walls))
	return b.String()
}
