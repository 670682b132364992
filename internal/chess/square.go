package chess

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Square is a (column, row) coordinate on the board, both in [0, 8).
// Column 0 is the a-file and row 0 is White's back rank.
type Square struct {
	Col int
	Row int
}

// Sq builds a square from column and row indices.
func Sq(col, row int) Square {
	return Square{Col: col, Row: row}
}

// IsValid reports whether the square lies on the board.
func (s Square) IsValid() bool {
	return s.Col >= 0 && s.Col < BoardSize && s.Row >= 0 && s.Row < BoardSize
}

// IsLight reports whether the square is a light square.
func (s Square) IsLight() bool {
	return (s.Col&1 != 0) != (s.Row&1 != 0)
}

// Offset returns the square shifted by the given deltas.
// The boolean is false when the result falls off the board.
func (s Square) Offset(dc, dr int) (Square, bool) {
	to := Square{Col: s.Col + dc, Row: s.Row + dr}
	return to, to.IsValid()
}

// String returns the algebraic name of the square, e.g. "e4".
func (s Square) String() string {
	if !s.IsValid() {
		return fmt.Sprintf("Square(%d,%d)", s.Col, s.Row)
	}
	return string([]byte{ColToChar(s.Col), RowToChar(s.Row)})
}

// ColToChar converts a column index to its file letter.
func ColToChar(col int) byte {
	return byte('a' + col)
}

// RowToChar converts a row index to its rank digit.
func RowToChar(row int) byte {
	return byte('1' + row)
}

// CharToCol converts a file letter ('a'-'h') to a column index.
func CharToCol(c byte) (int, error) {
	if c < 'a' || c > 'h' {
		return 0, &errors.ParseError{Err: errors.ErrInvalidSquare, Token: string(c), Reason: "character is not a file"}
	}
	return int(c - 'a'), nil
}

// CharToRow converts a rank digit ('1'-'8') to a row index.
func CharToRow(c byte) (int, error) {
	if c < '1' || c > '8' {
		return 0, &errors.ParseError{Err: errors.ErrInvalidSquare, Token: string(c), Reason: "character is not a rank"}
	}
	return int(c - '1'), nil
}

// ParseSquare parses an algebraic square name such as "e4".
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return Square{}, &errors.ParseError{Err: errors.ErrInvalidSquare, Token: s, Reason: "square must be two characters"}
	}
	col, err := CharToCol(s[0])
	if err != nil {
		return Square{}, errors.WithInput(err, s)
	}
	row, err := CharToRow(s[1])
	if err != nil {
		return Square{}, errors.WithInput(err, s)
	}
	return Square{Col: col, Row: row}, nil
}
