package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// fenFields is the number of space-separated fields in a position string.
const fenFields = 6

// NewBoardFromFEN creates a board from a FEN string.
//
// Castling availability is given as rook file letters, upper case for White
// and lower case for Black; the K, Q, k and q letters are accepted too and
// name the outermost rook on that side of the king. Under crazyhouse a `~`
// after a piece marks it as promoted, and an optional ninth rank lists the
// pieces held in reserve.
func NewBoardFromFEN(fen string, crazyhouse bool) (*chess.Board, error) {
	board, err := parseFEN(fen, crazyhouse)
	if err != nil {
		return nil, errors.WithInput(err, fen)
	}
	return board, nil
}

// MustParseFEN is like NewBoardFromFEN but panics on error.
func MustParseFEN(fen string, crazyhouse bool) *chess.Board {
	board, err := NewBoardFromFEN(fen, crazyhouse)
	if err != nil {
		panic(err)
	}
	return board
}

func parseFEN(fen string, crazyhouse bool) (*chess.Board, error) {
	parts := strings.Fields(fen)
	if len(parts) != fenFields {
		return nil, fenError("", fmt.Sprintf("needs %d fields, found %d", fenFields, len(parts)))
	}

	board := chess.NewBoard(crazyhouse)

	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, err
	}

	colour, err := chess.ColourFromLetter(parts[1])
	if err != nil {
		return nil, err
	}

	if err := parseCastlingRights(board, parts[2]); err != nil {
		return nil, err
	}

	if err := parseEnPassant(board, parts[3], colour); err != nil {
		return nil, err
	}

	if err := parseClocks(board, parts[4], parts[5], colour); err != nil {
		return nil, err
	}

	return board, nil
}

func fenError(token, reason string) error {
	return &errors.ParseError{Err: errors.ErrInvalidFEN, Token: token, Reason: reason}
}

// parsePiecePositions parses the piece placement field, including the
// crazyhouse reserve rank.
func parsePiecePositions(board *chess.Board, positions string) error {
	ranks := strings.Split(positions, "/")
	switch {
	case len(ranks) == chess.BoardSize:
	case len(ranks) == chess.BoardSize+1 && board.Crazyhouse:
		if err := parseReserve(board, ranks[chess.BoardSize]); err != nil {
			return err
		}
	default:
		return fenError(positions, fmt.Sprintf("needs %d ranks, found %d", chess.BoardSize, len(ranks)))
	}

	var kings [chess.NumColours]int
	for i, rank := range ranks[:chess.BoardSize] {
		row := chess.BoardSize - 1 - i
		col := 0
		for j := 0; j < len(rank); j++ {
			c := rank[j]
			switch {
			case c >= '1' && c <= '8':
				col += int(c - '0')
			case c == '~':
				if !board.Crazyhouse {
					return fenError("~", "promoted marker outside crazyhouse")
				}
				if col == 0 || col > chess.BoardSize {
					return fenError("~", "promoted marker without a piece")
				}
				sq := chess.Sq(col-1, row)
				piece := board.Get(sq)
				if piece.IsEmpty() || piece.Promoted {
					return fenError("~", "promoted marker without a piece")
				}
				board.Set(sq, piece.Promote())
			default:
				piece, err := chess.PieceFromLetter(c)
				if err != nil {
					return fenError(string(c), "invalid piece character")
				}
				if col >= chess.BoardSize {
					return fenError(rank, "rank is longer than 8 squares")
				}
				if piece.Kind == chess.King {
					kings[piece.Colour]++
				}
				board.Set(chess.Sq(col, row), piece)
				col++
			}
			if col > chess.BoardSize {
				return fenError(rank, "rank is longer than 8 squares")
			}
		}
		if col != chess.BoardSize {
			return fenError(rank, "rank does not describe 8 squares")
		}
	}

	for colour := chess.Black; colour < chess.NumColours; colour++ {
		if kings[colour] != 1 {
			return fenError(positions, fmt.Sprintf("needs exactly one %v king, found %d", colour, kings[colour]))
		}
	}
	return nil
}

// parseReserve parses the crazyhouse reserve rank.
func parseReserve(board *chess.Board, reserve string) error {
	for i := 0; i < len(reserve); i++ {
		piece, err := chess.PieceFromLetter(reserve[i])
		if err != nil {
			return fenError(string(reserve[i]), "invalid reserve character")
		}
		if piece.Kind == chess.King {
			return fenError(string(reserve[i]), "a king cannot be held in reserve")
		}
		board.AddReserve(piece.Colour, piece.Kind, 1)
	}
	return nil
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(board *chess.Board, field string) error {
	if field == "-" {
		return nil
	}

	for i := 0; i < len(field); i++ {
		c := field[i]
		colour := chess.White
		lower := c | 0x20
		if c == lower {
			colour = chess.Black
		}

		var col int
		switch {
		case lower >= 'a' && lower <= 'h':
			col = int(lower - 'a')
		case lower == 'k' || lower == 'q':
			var ok bool
			col, ok = outermostRook(board, colour, lower == 'k')
			if !ok {
				return fenError(string(c), "no rook to castle with")
			}
		default:
			return fenError(string(c), "invalid castling character")
		}

		right := board.FindCastling(col)
		if right == nil {
			if !board.AddCastling(chess.NewCastlingRight(col, false)) {
				return fenError(field, fmt.Sprintf("more than %d castling files", chess.MaxCastlings))
			}
			right = board.FindCastling(col)
		}
		right.SetAllowed(colour, true)
	}
	return nil
}

// outermostRook finds the rook furthest from the king on the given side of
// colour's back rank.
func outermostRook(board *chess.Board, colour chess.Colour, kingside bool) (int, bool) {
	row := chess.HomeRow(colour)
	king := board.FindKing(colour)
	if king.Row != row {
		return 0, false
	}
	if kingside {
		for col := chess.BoardSize - 1; col > king.Col; col-- {
			if board.Get(chess.Sq(col, row)).Is(chess.Rook, colour) {
				return col, true
			}
		}
		return 0, false
	}
	for col := 0; col < king.Col; col++ {
		if board.Get(chess.Sq(col, row)).Is(chess.Rook, colour) {
			return col, true
		}
	}
	return 0, false
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(board *chess.Board, field string, toMove chess.Colour) error {
	if field == "-" {
		return nil
	}
	sq, err := chess.ParseSquare(field)
	if err != nil {
		return fenError(field, "invalid en passant square")
	}
	// The target lies behind a pawn of the side that just moved.
	if sq.Row != chess.PawnRow(toMove.Opposite())+chess.ColourOffset(toMove.Opposite()) {
		return fenError(field, "en passant square on the wrong rank")
	}
	board.EnPassant = true
	board.EPSquare = sq
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(board *chess.Board, halfmove, fullmove string, toMove chess.Colour) error {
	clock, err := strconv.Atoi(halfmove)
	if err != nil || clock < 0 {
		return fenError(halfmove, "half-move clock must be a non-negative integer")
	}
	number, err := strconv.Atoi(fullmove)
	if err != nil || number < 1 {
		return fenError(fullmove, "full-move number must be a positive integer")
	}

	board.HalfmoveClock = clock
	board.HalfMoves = (number - 1) * 2
	if toMove == chess.Black {
		board.HalfMoves++
	}
	return nil
}

// BoardToFEN converts a board to a FEN string.
func BoardToFEN(board *chess.Board) string {
	return encodeFEN(board, false)
}

// RepetitionKey returns the canonical position key used to detect repeated
// positions: the FEN without clocks, with the en passant square only when
// the side to move can legally capture onto it.
func RepetitionKey(board *chess.Board) string {
	return encodeFEN(board, true)
}

func encodeFEN(board *chess.Board, forRepetition bool) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	sb.WriteByte(board.ToMove().Letter())
	sb.WriteByte(' ')
	writeCastlingRights(&sb, board)
	sb.WriteByte(' ')
	writeEnPassant(&sb, board, forRepetition)
	if !forRepetition {
		fmt.Fprintf(&sb, " %d %d", board.HalfmoveClock, board.MoveNumber())
	}

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for row := chess.BoardSize - 1; row >= 0; row-- {
		emptyCount := 0
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.Get(chess.Sq(col, row))
			if piece.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
			if board.Crazyhouse && piece.Promoted {
				sb.WriteByte('~')
			}
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row > 0 {
			sb.WriteByte('/')
		}
	}

	if board.Crazyhouse {
		sb.WriteByte('/')
		for _, colour := range [...]chess.Colour{chess.White, chess.Black} {
			for _, kind := range chess.ReserveKinds {
				letter := chess.NewPiece(kind, colour).Letter()
				for i := board.Reserve(colour, kind); i > 0; i-- {
					sb.WriteByte(letter)
				}
			}
		}
	}
}

// writeCastlingRights writes the castling availability to the builder.
func writeCastlingRights(sb *strings.Builder, board *chess.Board) {
	start := sb.Len()
	for _, colour := range [...]chess.Colour{chess.White, chess.Black} {
		for _, right := range board.CastlingRights() {
			if right.IsAllowed(colour) {
				sb.WriteByte(right.Letter(colour))
			}
		}
	}
	if sb.Len() == start {
		sb.WriteByte('-')
	}
}

// writeEnPassant writes the en passant target square to the builder.
func writeEnPassant(sb *strings.Builder, board *chess.Board, forRepetition bool) {
	if board.EnPassant && (!forRepetition || canCaptureEnPassant(board)) {
		sb.WriteString(board.EPSquare.String())
	} else {
		sb.WriteByte('-')
	}
}

// canCaptureEnPassant reports whether the side to move has a legal pawn
// capture onto the en passant square.
func canCaptureEnPassant(board *chess.Board) bool {
	colour := board.ToMove()
	front := chess.ColourOffset(colour)
	for dc := -1; dc <= 1; dc += 2 {
		from, ok := board.EPSquare.Offset(dc, -front)
		if !ok || !board.Get(from).Is(chess.Pawn, colour) {
			continue
		}
		if isLegal(board, chess.NewMove(from, board.EPSquare)) {
			return true
		}
	}
	return false
}
