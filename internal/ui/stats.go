package ui

import (
	"fmt"
	"math"
)

// Stats is the flight telemetry shown in the top-left corner.
type Stats struct {
	Distance  float64
	Fuel      float64
	HighScore float64
	Speed     float64
}

// StatLines formats the telemetry block, one line per value.
func StatLines(s Stats) []string {
	return []string{
		fmt.Sprintf("Distance: %d", floor(s.Distance)),
		fmt.Sprintf("Fuel: %d", floor(s.Fuel)),
		fmt.Sprintf("High Score: %d", floor(s.HighScore)),
		fmt.Sprintf("Speed: %.3f", s.Speed),
	}
}

// MenuTitle heads the start screen.
const MenuTitle = "ENDLESS LUNAR ROVER"

// MenuLines is the start screen body. After a run it also reports how far the
// run went.
func MenuLines(lastDistance, highScore float64, played bool) []string {
	lines := []string{
		"Use LEFT/RIGHT to tilt.",
		"Hold UP to thrust.",
		"Land gently on a pad to refuel.",
		"Press SPACE to start!",
	}
	if played {
		lines = append(lines, "",
			fmt.Sprintf("Last run: %d", floor(lastDistance)),
			fmt.Sprintf("High Score: %d", floor(highScore)),
		)
	}
	return lines
}

func floor(v float64) int64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return int64(math.Floor(v))
}
