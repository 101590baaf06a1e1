package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/lixenwraith/light-blaster/engine"
	"github.com/lixenwraith/light-blaster/storage"
)

const (
	labelResume   = "Resume"
	labelRestart  = "Restart"
	labelScores   = "High Scores"
	labelQuit     = "Quit"
	labelSoundOn  = "Sound: on"
	labelSoundOff = "Sound: off"
)

// toastDuration is how long an achievement unlock stays in the footer
const toastDuration = 3 * time.Second

func (a *App) soundLabel() string {
	if a.sound {
		return labelSoundOn
	}
	return labelSoundOff
}

// populatePause rebuilds the pause modal; buttons only enqueue intents
func (a *App) populatePause() {
	buttons := []string{labelResume, labelRestart, labelScores}
	if a.opts.ToggleSound != nil {
		buttons = append(buttons, a.soundLabel())
	}
	buttons = append(buttons, labelQuit)

	a.pause.ClearButtons().
		SetText("PAUSED\n\nscore " + fmt.Sprint(a.score)).
		AddButtons(buttons).
		SetDoneFunc(func(index int, label string) {
			switch label {
			case "", labelResume:
				a.intents.Push(engine.ActionPause)
			case labelRestart:
				a.intents.Push(engine.ActionRestart)
			case labelScores:
				a.openScores()
			case labelSoundOn, labelSoundOff:
				a.toggleSound()
				a.populatePause()
				a.pause.SetFocus(index)
				a.app.SetFocus(a.pause)
			case labelQuit:
				a.app.Stop()
			}
		})
}

// populateGameOver summarizes the finished run against the stored tables
func (a *App) populateGameOver() {
	var b strings.Builder
	b.WriteString("GAME OVER\n\n")
	if s := a.session; s != nil {
		fmt.Fprintf(&b, "score %d  survived %s\n", s.Score(), s.Elapsed().Round(time.Second))
		if top := s.HighScores.Top(storage.CategorySurvival); len(top) > 0 {
			if top[0].RunID == s.RunID() {
				b.WriteString("new best!\n")
			} else {
				fmt.Fprintf(&b, "best %d by %s\n", top[0].Value, top[0].Name)
			}
		}
		fmt.Fprintf(&b, "achievements %d/%d", s.Achievements.Count(), s.Achievements.Total())
	}

	a.gameOver.ClearButtons().
		SetText(b.String()).
		AddButtons([]string{labelRestart, labelScores, labelQuit}).
		SetDoneFunc(func(_ int, label string) {
			switch label {
			case labelRestart:
				a.intents.Push(engine.ActionRestart)
			case labelScores:
				a.openScores()
			case labelQuit:
				a.app.Stop()
			}
		})
}

func newScoresView(done func()) *tview.TextView {
	v := tview.NewTextView().SetDynamicColors(true).SetScrollable(true)
	v.SetBorder(true).SetTitle(" High Scores (esc to close) ")
	v.SetDoneFunc(func(tcell.Key) { done() })
	return v
}

// formatScores renders every category table
func formatScores(h *storage.HighScores) string {
	cats := h.Categories()
	if len(cats) == 0 {
		return "no runs recorded yet"
	}
	var b strings.Builder
	for _, cat := range cats {
		fmt.Fprintf(&b, "[#ffd75a]%s[-]\n", cat)
		for i, e := range h.Top(cat) {
			value := fmt.Sprint(e.Value)
			if cat != storage.CategorySurvival {
				value = (time.Duration(e.Value) * time.Millisecond).Round(100 * time.Millisecond).String()
			}
			fmt.Fprintf(&b, "%2d. %-16s %10s  %s  %s\n", i+1, tview.Escape(e.Name), value,
				e.Stats.Path, e.Timestamp.Format("2006-01-02"))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (a *App) openScores() {
	if a.session == nil {
		return
	}
	a.scores.SetText(formatScores(a.session.HighScores)).ScrollToBeginning()
	a.show(pageScores, a.scores)
}

// closeScores returns to the modal the table was opened from
func (a *App) closeScores() {
	a.pages.HidePage(pageScores)
	a.ShowPhase(a.phase)
}

// pollAchievements moves fresh unlocks into the footer toast
func (a *App) pollAchievements(dt time.Duration) {
	if a.toastTimer > 0 {
		a.toastTimer -= dt
		if a.toastTimer <= 0 {
			a.toast = ""
			a.updateFooter()
		}
	}
	recent := a.session.Achievements.TakeRecent()
	if len(recent) == 0 {
		return
	}
	names := make([]string, 0, len(recent))
	for _, id := range recent {
		if def, ok := a.session.Achievements.Definition(id); ok {
			names = append(names, def.Name)
		}
	}
	a.toast = "★ " + strings.Join(names, ", ")
	a.toastTimer = toastDuration
	a.updateFooter()
}
