package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/snake.yaml
var defaultYAML []byte

// Default returns the built-in configuration: a 720x480 board of 10-unit
// cells, a 4-segment snake at (100,50), 10 points per fruit and a 2 second
// game-over message.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:  720,
			Height: 480,
			Title:  "Smart Snakes!",
		},
		Grid: GridConfig{
			CellSize: 10,
		},
		Snake: SnakeConfig{
			StartX:        100,
			StartY:        50,
			InitialLength: 4,
		},
		Rules: RulesConfig{
			FruitReward:   10,
			GameOverPause: 2 * time.Second,
		},
	}
}

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	return defaultYAML
}
