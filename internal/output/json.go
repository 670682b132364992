package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// JSONGame represents a game record in JSON format. Replaying Moves from
// InitialFEN reproduces the game.
type JSONGame struct {
	Variant    string     `json:"variant"`
	InitialFEN string     `json:"initialFEN"`
	Moves      []JSONMove `json:"moves,omitempty"`
	PlyCount   int        `json:"plyCount"`
	FinalFEN   string     `json:"finalFEN"`
	Result     string     `json:"result"`
	Score      string     `json:"score"`
	Status     string     `json:"status,omitempty"`
}

// JSONMove represents a ply in JSON format.
type JSONMove struct {
	MoveNumber int      `json:"moveNumber"`
	Color      string   `json:"color"` // "white" or "black"
	UCI        string   `json:"uci"`
	SAN        string   `json:"san"`
	FEN        string   `json:"fen"`
	Highlights []string `json:"highlights,omitempty"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// GameToJSON converts a game to its JSON record.
func GameToJSON(game *engine.Game) (*JSONGame, error) {
	plies, err := Plies(game)
	if err != nil {
		return nil, err
	}
	result := game.Result()

	jg := &JSONGame{
		Variant:    variantName(game),
		InitialFEN: game.StartFEN(),
		PlyCount:   len(plies),
		FinalFEN:   game.FEN(),
		Result:     result.String(),
		Score:      result.Score(),
		Status:     result.Status(),
	}
	for _, ply := range plies {
		jg.Moves = append(jg.Moves, convertPly(ply))
	}
	return jg, nil
}

func convertPly(ply Ply) JSONMove {
	jm := JSONMove{
		MoveNumber: ply.Number,
		Color:      colorName(ply.Colour),
		UCI:        ply.Move.String(),
		SAN:        ply.SAN,
		FEN:        ply.FEN,
	}
	for _, sq := range ply.Highlights {
		jm.Highlights = append(jm.Highlights, sq.String())
	}
	return jm
}

// colorName returns the color name for JSON output.
func colorName(colour chess.Colour) string {
	if colour == chess.White {
		return "white"
	}
	return "black"
}

// ReplayJSON rebuilds a game from its JSON record.
func ReplayJSON(jg *JSONGame, opts ...engine.GameOption) (*engine.Game, error) {
	moves := make([]chess.Move, len(jg.Moves))
	for i, jm := range jg.Moves {
		m, err := chess.ParseMove(jm.UCI)
		if err != nil {
			return nil, err
		}
		moves[i] = m
	}
	return engine.Replay(jg.InitialFEN, jg.Variant == "crazyhouse", moves, opts...)
}

// ReadJSON decodes a single game record.
func ReadJSON(r io.Reader) (*JSONGame, error) {
	var jg JSONGame
	if err := json.NewDecoder(r).Decode(&jg); err != nil {
		return nil, err
	}
	return &jg, nil
}

func encodeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
