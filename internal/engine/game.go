package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// DefaultMaxMoves is the number of full moves after which a game is drawn.
const DefaultMaxMoves = 125

// Game tracks a board through a sequence of legal moves and decides when
// the game has ended.
//
// The result is computed lazily and cached once it is no longer Undecided.
// SetResult overrides it, for resignations and agreed draws, and is never
// recomputed afterwards. A Game has a single writer; callers must serialize
// ApplyMove and SetResult.
type Game struct {
	board    *chess.Board
	startFEN string
	maxMoves int
	history  []string
	moves    []chess.Move
	result   chess.Result
}

// GameOption configures a Game.
type GameOption func(*Game)

// WithMaxMoves sets the full-move cap after which the game is a forced draw.
func WithMaxMoves(n int) GameOption {
	return func(g *Game) {
		g.maxMoves = n
	}
}

// NewGame creates a game from the starting position for seed.
// Seed 0 selects the standard setup.
func NewGame(seed int64, crazyhouse bool, opts ...GameOption) *Game {
	return newGame(NewStartingBoard(seed, crazyhouse), opts)
}

// NewGameFromFEN creates a game starting from the given position.
func NewGameFromFEN(fen string, crazyhouse bool, opts ...GameOption) (*Game, error) {
	board, err := NewBoardFromFEN(fen, crazyhouse)
	if err != nil {
		return nil, err
	}
	return newGame(board, opts), nil
}

func newGame(board *chess.Board, opts []GameOption) *Game {
	g := &Game{
		board:    board,
		startFEN: BoardToFEN(board),
		maxMoves: DefaultMaxMoves,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.history = append(g.history, RepetitionKey(board))
	return g
}

// Replay builds a game from a starting position and a recorded move list.
// An empty fen selects the standard starting position.
func Replay(fen string, crazyhouse bool, moves []chess.Move, opts ...GameOption) (*Game, error) {
	if fen == "" {
		fen = InitialFEN
	}
	g, err := NewGameFromFEN(fen, crazyhouse, opts...)
	if err != nil {
		return nil, err
	}
	for i, move := range moves {
		if _, _, err := g.ApplyMove(move); err != nil {
			return g, errors.Wrapf(err, "ply %d", i+1)
		}
	}
	return g, nil
}

// Board returns a copy of the current position.
func (g *Game) Board() *chess.Board {
	return g.board.Copy()
}

// StartFEN returns the position string the game started from.
func (g *Game) StartFEN() string {
	return g.startFEN
}

// FEN returns the position string of the current position.
func (g *Game) FEN() string {
	return BoardToFEN(g.board)
}

// ToMove returns the side to move.
func (g *Game) ToMove() chess.Colour {
	return g.board.ToMove()
}

// MaxMoves returns the full-move cap of the game.
func (g *Game) MaxMoves() int {
	return g.maxMoves
}

// LegalMoves returns the legal moves in the current position.
func (g *Game) LegalMoves() []chess.Move {
	return GenerateLegalMoves(g.board)
}

// Highlights returns the squares touched by the last move.
func (g *Game) Highlights() []chess.Square {
	return append([]chess.Square(nil), g.board.Highlights...)
}

// History returns the repetition keys of every position reached, the
// starting position first.
func (g *Game) History() []string {
	return append([]string(nil), g.history...)
}

// Moves returns the moves applied so far.
func (g *Game) Moves() []chess.Move {
	return append([]chess.Move(nil), g.moves...)
}

// ApplyMove plays move if it is legal in the current position. It returns
// the move in algebraic notation and the position string after the move.
func (g *Game) ApplyMove(move chess.Move) (san, fen string, err error) {
	if result := g.Result(); result.IsDecided() {
		return "", "", errors.Wrapf(errors.ErrGameOver, "%v", result)
	}
	if !IsLegalMove(g.board, move) {
		return "", "", errors.Wrapf(errors.ErrIllegalMove, "%q", move.String())
	}

	san = MoveToSAN(g.board, move)
	ApplyMove(g.board, move)
	g.history = append(g.history, RepetitionKey(g.board))
	g.moves = append(g.moves, move)
	return san, BoardToFEN(g.board), nil
}

// Result returns the state of the game, computing it if still undecided.
func (g *Game) Result() chess.Result {
	if g.result == chess.Undecided {
		g.result = g.computeResult()
	}
	return g.result
}

// SetResult overrides the result. It is used for outcomes the board cannot
// tell, such as a resignation. Undecided is ignored, so an override
// cannot be cleared.
func (g *Game) SetResult(result chess.Result) {
	if result == chess.Undecided {
		return
	}
	g.result = result
}

// Resign ends the game with colour resigning.
func (g *Game) Resign(colour chess.Colour) {
	if colour == chess.White {
		g.SetResult(chess.WhiteResigns)
	} else {
		g.SetResult(chess.BlackResigns)
	}
}

// AgreeDraw ends the game as a draw by agreement.
func (g *Game) AgreeDraw() {
	g.SetResult(chess.DrawByAgreement)
}

// computeResult evaluates the end conditions in order: no legal moves,
// threefold repetition, insufficient material, the fifty-move rule and
// finally the move cap.
func (g *Game) computeResult() chess.Result {
	if IsCheckmate(g.board) {
		if g.board.ToMove() == chess.White {
			return chess.BlackWins
		}
		return chess.WhiteWins
	}
	if IsStalemate(g.board) {
		return chess.Stalemate
	}

	if g.isRepetition() {
		return chess.Repetition
	}

	if !HasSufficientMaterial(g.board) {
		return chess.InsufficientMaterial
	}

	if g.board.HalfmoveClock >= 100 {
		return chess.FiftyMove
	}

	if g.board.HalfMoves >= 2*g.maxMoves {
		return chess.ForcedDraw
	}

	return chess.Undecided
}

// isRepetition reports whether the current position occurred at least
// twice before.
func (g *Game) isRepetition() bool {
	last := g.history[len(g.history)-1]
	count := 0
	for _, key := range g.history[:len(g.history)-1] {
		if key == last {
			count++
			if count == 2 {
				return true
			}
		}
	}
	return false
}
