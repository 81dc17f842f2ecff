// Package config provides YAML-based configuration loading and validation
// for the game's board geometry, starting layout and round rules.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config contains all configuration for a snake game.
type Config struct {
	Window WindowConfig `yaml:"window"`
	Grid   GridConfig   `yaml:"grid"`
	Snake  SnakeConfig  `yaml:"snake"`
	Rules  RulesConfig  `yaml:"rules"`
}

// WindowConfig defines the logical render surface.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// GridConfig defines the cell size used for movement and collision.
type GridConfig struct {
	CellSize int `yaml:"cell_size"`
}

// SnakeConfig defines where and how long the snake starts each round.
type SnakeConfig struct {
	StartX        int `yaml:"start_x"`
	StartY        int `yaml:"start_y"`
	InitialLength int `yaml:"initial_length"`
}

// RulesConfig defines scoring and round transitions.
type RulesConfig struct {
	FruitReward   int           `yaml:"fruit_reward"`
	GameOverPause time.Duration `yaml:"game_over_pause"`
}

// Validate checks that the board is cell-aligned and the starting snake fits on it.
func (c Config) Validate() error {
	cell := c.Grid.CellSize
	if cell <= 0 {
		return fmt.Errorf("%w: grid.cell_size must be positive, got %d", ErrInvalid, cell)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size must be positive, got %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if c.Window.Width%cell != 0 || c.Window.Height%cell != 0 {
		return fmt.Errorf("%w: window %dx%d is not a multiple of cell size %d",
			ErrInvalid, c.Window.Width, c.Window.Height, cell)
	}
	// Fruit spawns in columns/rows 1..n-1, so at least two of each are needed.
	if cols, rows := c.Window.Width/cell, c.Window.Height/cell; cols < 2 || rows < 2 {
		return fmt.Errorf("%w: board must be at least 2x2 cells, got %dx%d", ErrInvalid, cols, rows)
	}

	s := c.Snake
	if s.InitialLength < 1 {
		return fmt.Errorf("%w: snake.initial_length must be at least 1, got %d", ErrInvalid, s.InitialLength)
	}
	if s.StartX%cell != 0 || s.StartY%cell != 0 {
		return fmt.Errorf("%w: snake start (%d,%d) is not cell-aligned", ErrInvalid, s.StartX, s.StartY)
	}
	if s.StartX < 0 || s.StartX > c.Window.Width-cell || s.StartY < 0 || s.StartY > c.Window.Height-cell {
		return fmt.Errorf("%w: snake start (%d,%d) is off the board", ErrInvalid, s.StartX, s.StartY)
	}
	if tail := s.StartX - (s.InitialLength-1)*cell; tail < 0 {
		return fmt.Errorf("%w: snake of length %d starting at x=%d would leave the board",
			ErrInvalid, s.InitialLength, s.StartX)
	}

	if c.Rules.FruitReward <= 0 {
		return fmt.Errorf("%w: rules.fruit_reward must be positive, got %d", ErrInvalid, c.Rules.FruitReward)
	}
	if c.Rules.GameOverPause < 0 {
		return fmt.Errorf("%w: rules.game_over_pause must not be negative, got %s", ErrInvalid, c.Rules.GameOverPause)
	}
	return nil
}
