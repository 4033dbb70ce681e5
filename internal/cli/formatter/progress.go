package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// progressStyle picks green from 67%, yellow from 34%, red below.
func progressStyle(pct int) func(...string) string {
	switch {
	case pct >= 67:
		return StyleGreen.Render
	case pct >= 34:
		return StyleYellow.Render
	default:
		return StyleRed.Render
	}
}

func barBlocks(pct, width int) (filled, empty int) {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	if width < 2 {
		width = 2
	}
	filled = pct * width / 100
	return filled, width - filled
}

// RenderProgress renders a progress bar like [████░░░░]  45% from an
// integer percentage.
func RenderProgress(pct, width int) string {
	filled, empty := barBlocks(pct, width)
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, empty)
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	return fmt.Sprintf("[%s] %3d%%", progressStyle(pct)(bar), pct)
}

// RenderCompactBar renders only the blocks, without brackets or a number.
// Dimmed bars use the muted color regardless of percentage.
func RenderCompactBar(pct, width int, dim bool) string {
	filled, empty := barBlocks(pct, width)
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, empty)
	if dim {
		return StyleDim.Render(bar)
	}
	return progressStyle(pct)(bar)
}
