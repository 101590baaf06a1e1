package render

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/light-blaster/engine"
	"github.com/lixenwraith/light-blaster/parameter"
	"github.com/lixenwraith/light-blaster/player"
)

const hpBarWidth = 20

func (r *Renderer) drawStatusBar(x, y, width int, s *engine.GameSession) {
	p := s.Player
	bar := r.base.Foreground(RgbStatusText).Background(RgbStatusBar)
	for col := x; col < x+width; col++ {
		r.screen.SetContent(col, y, ' ', nil, r.base)
	}

	col := r.text(x, y, fmt.Sprintf(" SCORE %d ", s.Score()), bar)
	col++

	// Health bar
	frac := 0.0
	if p.MaxHP > 0 {
		frac = float64(p.HP) / float64(p.MaxHP)
	}
	filled := int(math.Ceil(frac * hpBarWidth))
	for i := range hpBarWidth {
		style := r.base.Foreground(tcell.NewRGBColor(40, 40, 40))
		if i < filled {
			style = r.base.Foreground(HealthColor(float64(i+1) / hpBarWidth))
		}
		r.screen.SetContent(col+i, y, '█', nil, style)
	}
	col += hpBarWidth
	col = r.text(col, y, fmt.Sprintf(" %d/%d ", p.HP, p.MaxHP), r.base.Foreground(RgbStatusBar))

	if p.Path != player.PathNone {
		col = r.text(col+1, y, " "+strings.ToUpper(p.Path.String())+" ", r.base.Foreground(RgbStatusText).Background(PathColor(p.Path)))
	}

	if p.Path == player.PathMage {
		r.text(col+1, y, fmt.Sprintf("KIN %3.0f%%", 100*p.KineticCharge/parameter.KineticChargeMax), r.base.Foreground(RgbRayPlayer))
	}
}

// drawPhaseOverlay centers a banner for suspended phases that have no screen of their own
func (r *Renderer) drawPhaseOverlay(s *engine.GameSession) {
	var lines []string
	switch s.Phase() {
	case engine.PhasePaused:
		lines = []string{"PAUSED", "esc resume  r restart"}
	case engine.PhaseCountdown:
		secs := int(math.Ceil(s.Countdown().Seconds()))
		lines = []string{fmt.Sprintf("%d", max(secs, 1))}
	case engine.PhaseGameOver:
		lines = []string{
			"GAME OVER",
			fmt.Sprintf("score %d  survived %s", s.Score(), s.Elapsed().Round(time.Second)),
			"r restart  ctrl-q quit",
		}
	default:
		return
	}

	style := r.base.Foreground(RgbStatusBar).Bold(true)
	midY := r.view.Y + r.view.Rows/2 - len(lines)/2
	for i, line := range lines {
		x := r.view.X + (r.view.Cols-len([]rune(line)))/2
		r.text(x, midY+i, line, style)
	}
}
