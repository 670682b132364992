package chess

// CastlingRight tracks, for one original rook file, whether each colour may
// still castle with the rook that started there. Rights are keyed by file
// rather than by side so arbitrary starting files are supported; whether
// the right is queenside or kingside is decided against the king's file.
type CastlingRight struct {
	RookCol int
	Allowed [NumColours]bool
}

// NewCastlingRight creates a right for the given rook file.
func NewCastlingRight(rookCol int, allowed bool) CastlingRight {
	return CastlingRight{RookCol: rookCol, Allowed: [NumColours]bool{allowed, allowed}}
}

// IsAllowed reports whether colour may still castle with this rook.
func (c CastlingRight) IsAllowed(colour Colour) bool {
	return c.Allowed[colour]
}

// SetAllowed grants or revokes the right for colour.
func (c *CastlingRight) SetAllowed(colour Colour, allowed bool) {
	c.Allowed[colour] = allowed
}

// Letter returns the position-string letter for this right and colour:
// the rook's file, uppercase for White.
func (c CastlingRight) Letter(colour Colour) byte {
	letter := ColToChar(c.RookCol)
	if colour == White {
		letter -= 'a' - 'A'
	}
	return letter
}
