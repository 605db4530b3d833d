package rules

import "fmt"

// Square addresses a board cell by zero-based (row, col). Row 0 is Black's
// home rank (rank 8), row 7 is White's home rank (rank 1); col 0 is the a-file.
type Square struct {
	Row int
	Col int
}

// NoSquare marks an absent square, e.g. no en passant target.
var NoSquare = Square{Row: -1, Col: -1}

// Sq is shorthand for Square{row, col}.
func Sq(row, col int) Square { return Square{Row: row, Col: col} }

// OnBoard reports whether the square lies inside the 8x8 grid.
func (s Square) OnBoard() bool {
	return s.Row >= 0 && s.Row < 8 && s.Col >= 0 && s.Col < 8
}

// Offset returns the square dr rows and dc cols away. It may be off-board.
func (s Square) Offset(dr, dc int) Square {
	return Square{Row: s.Row + dr, Col: s.Col + dc}
}

// File returns the file letter 'a'..'h'.
func (s Square) File() byte { return 'a' + byte(s.Col) }

// Rank returns the rank digit '1'..'8'.
func (s Square) Rank() byte { return '8' - byte(s.Row) }

func (s Square) String() string {
	if !s.OnBoard() {
		return "-"
	}
	return string([]byte{s.File(), s.Rank()})
}

// ParseSquare converts algebraic coordinates such as "e4" into a Square.
func ParseSquare(coord string) (Square, error) {
	if len(coord) != 2 {
		return NoSquare, fmt.Errorf("invalid square %q", coord)
	}
	file, rank := coord[0], coord[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return NoSquare, fmt.Errorf("invalid square %q", coord)
	}
	return Square{Row: int('8' - rank), Col: int(file - 'a')}, nil
}

// MustSquare is ParseSquare for literals; it panics on bad input.
func MustSquare(coord string) Square {
	sq, err := ParseSquare(coord)
	if err != nil {
		panic(err)
	}
	return sq
}
