package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/gorilla/schema"

	"github.com/vancomm/minesweeper/internal/mines"
)

var dec = schema.NewDecoder()

func init() {
	dec.IgnoreUnknownKeys(true)
}

type GameDTO struct {
	Rows      int    `schema:"rows,required"`
	Cols      int    `schema:"cols,required"`
	MineCount int    `schema:"mines,required"`
	Mode      string `schema:"mode"`
}

func ParseGameDTO(src map[string][]string) (GameDTO, error) {
	var dto GameDTO
	err := dec.Decode(&dto, src)
	return dto, err
}

func (dto GameDTO) GameParams() (mines.GameParams, error) {
	mode, err := mines.ParseMode(dto.Mode)
	if err != nil {
		return mines.GameParams{}, err
	}
	params := mines.GameParams{
		Rows:      dto.Rows,
		Cols:      dto.Cols,
		MineCount: dto.MineCount,
		Mode:      mode,
	}
	return params, params.Validate()
}

// ParseGame accepts a preset name ("expert"), a seed ("16:30:99:0") or a
// query string ("rows=16&cols=30&mines=99&mode=open").
func ParseGame(s string) (mines.GameParams, error) {
	s = strings.TrimSpace(s)
	if p, ok := mines.Preset(s); ok {
		return p, nil
	}
	if !strings.Contains(s, "=") {
		p, err := mines.ParseSeed(s)
		if err != nil {
			return mines.GameParams{}, fmt.Errorf(
				"game %q is neither a preset nor a seed: %w", s, err,
			)
		}
		return *p, nil
	}
	query, err := url.ParseQuery(s)
	if err != nil {
		return mines.GameParams{}, fmt.Errorf("invalid game query: %w", err)
	}
	dto, err := ParseGameDTO(query)
	if err != nil {
		return mines.GameParams{}, fmt.Errorf("invalid game query: %w", err)
	}
	return dto.GameParams()
}
