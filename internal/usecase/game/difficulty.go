package game

import (
	"fmt"
	"strings"

	"omok/internal/bootstrap"
	errs "omok/internal/errors"
)

const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// DifficultyTable maps UI difficulty labels to search depth in plies. The
// engine itself only ever sees the depth.
type DifficultyTable map[string]int

func NewDifficultyTable(cfg bootstrap.Config) DifficultyTable {
	return DifficultyTable{
		DifficultyEasy:   cfg.DepthEasy,
		DifficultyMedium: cfg.DepthMedium,
		DifficultyHard:   cfg.DepthHard,
	}
}

// Depth resolves a label; an empty label means easy.
func (d DifficultyTable) Depth(label string) (string, int, error) {
	label = strings.ToLower(strings.TrimSpace(label))
	if label == "" {
		label = DifficultyEasy
	}
	depth, ok := d[label]
	if !ok || depth < 1 {
		return "", 0, fmt.Errorf("%q: %w", label, errs.ErrInvalidDifficulty)
	}
	return label, depth, nil
}
