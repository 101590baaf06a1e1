// Package ui hosts the tview application: the arena page, offer screens and modal overlays
// Every method runs on the tview event goroutine; simulation ticks are queued onto it
package ui

import (
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/lixenwraith/light-blaster/engine"
	"github.com/lixenwraith/light-blaster/input"
	"github.com/lixenwraith/light-blaster/parameter"
	"github.com/lixenwraith/light-blaster/render"
)

const (
	pageArena     = "arena"
	pageEvolution = "evolution"
	pageLoot      = "loot"
	pageUpgrade   = "upgrade"
	pagePause     = "pause"
	pageGameOver  = "gameover"
	pageScores    = "scores"
)

var overlayPages = []string{pageEvolution, pageLoot, pageUpgrade, pagePause, pageGameOver, pageScores}

// Options configure the frontend
type Options struct {
	Keys    *input.KeyTable // Nil uses the default bindings
	Overlay bool

	// ToggleSound flips audio and returns the new state; nil hides the control
	ToggleSound  func() bool
	SoundEnabled bool
}

// App is the terminal frontend and implements engine.UI
type App struct {
	app    *tview.Application
	pages  *tview.Pages
	arena  *tview.Box
	footer *tview.TextView

	evolution *offerScreen
	loot      *offerScreen
	upgrade   *offerScreen
	pause     *tview.Modal
	gameOver  *tview.Modal
	scores    *tview.TextView

	renderer *render.Renderer
	mapper   *input.Mapper
	intents  *engine.IntentBuffer
	session  *engine.GameSession
	opts     Options

	phase      engine.Phase
	score      int
	hp         int
	buffs      []buff
	cooldowns  string
	sound      bool
	toast      string
	toastTimer time.Duration
}

var _ engine.UI = (*App)(nil)

// New builds the page tree; Attach a session before Run
func New(intents *engine.IntentBuffer, opts Options) *App {
	a := &App{
		app:      tview.NewApplication(),
		pages:    tview.NewPages(),
		renderer: render.NewRenderer(),
		intents:  intents,
		opts:     opts,
		sound:    opts.SoundEnabled,
	}
	a.renderer.Overlay = opts.Overlay
	a.mapper = input.NewMapper(opts.Keys, intents)
	a.mapper.OnSystem = a.system

	a.arena = tview.NewBox().SetBackgroundColor(render.RgbBackground)
	a.arena.SetDrawFunc(a.drawArena)
	a.footer = tview.NewTextView().SetDynamicColors(true)
	a.footer.SetBackgroundColor(render.RgbBackground)

	layout := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(a.arena, 0, 1, true).
		AddItem(a.footer, parameter.FooterRows, 0, false)

	a.evolution = newOfferScreen("Evolution")
	a.loot = newOfferScreen("Boss Reward")
	a.upgrade = newOfferScreen("Free Upgrade")
	a.pause = tview.NewModal()
	a.gameOver = tview.NewModal()
	a.scores = newScoresView(a.closeScores)

	a.pages.AddPage(pageArena, layout, true, true)
	a.pages.AddPage(pageEvolution, a.evolution, true, false)
	a.pages.AddPage(pageLoot, a.loot, true, false)
	a.pages.AddPage(pageUpgrade, a.upgrade, true, false)
	a.pages.AddPage(pagePause, a.pause, true, false)
	a.pages.AddPage(pageGameOver, a.gameOver, true, false)
	a.pages.AddPage(pageScores, a.scores, true, false)

	a.app.SetRoot(a.pages, true).
		EnableMouse(true).
		SetInputCapture(a.captureKey).
		SetMouseCapture(a.captureMouse)
	return a
}

// Attach binds the session drawn and driven by the frame loop
func (a *App) Attach(s *engine.GameSession) {
	a.session = s
	a.ShowPhase(s.Phase())
}

// SetScreen replaces the terminal, used with simulation screens in tests
func (a *App) SetScreen(screen tcell.Screen) { a.app.SetScreen(screen) }

// Run starts the frame loop and blocks until the application stops
func (a *App) Run() error {
	if a.session == nil {
		return fmt.Errorf("ui run: no session attached")
	}
	done := make(chan struct{})
	go a.loop(done)
	err := a.app.Run()
	close(done)
	if err != nil {
		return fmt.Errorf("ui run: %w", err)
	}
	return nil
}

func (a *App) Stop() { a.app.Stop() }

// loop queues one simulation frame per tick onto the event goroutine
func (a *App) loop(done <-chan struct{}) {
	ticker := time.NewTicker(parameter.FrameUpdateInterval)
	defer ticker.Stop()
	last := time.Now()
	for {
		select {
		case <-done:
			return
		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now
			a.app.QueueUpdateDraw(func() { a.Frame(dt) })
		}
	}
}

// Frame advances the session by dt using the input gathered since the last frame
func (a *App) Frame(dt time.Duration) {
	if a.session == nil {
		return
	}
	a.mapper.Update()
	a.session.Tick(dt, a.intents.Take())
	a.pollAchievements(dt)
}

func (a *App) drawArena(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	if a.session == nil {
		return x, y, width, height
	}
	if width < parameter.MinArenaCols || height < parameter.MinArenaRows {
		msg := fmt.Sprintf("terminal too small (%dx%d)", width, height)
		tview.Print(screen, msg, x, y+height/2, width, tview.AlignCenter, render.RgbStatusBar)
		return x, y, width, height
	}
	a.renderer.Draw(screen, x, y, width, height, a.session)
	return x, y, width, height
}

// frontPage returns the name of the topmost visible page
func (a *App) frontPage() string {
	name, _ := a.pages.GetFrontPage()
	return name
}

// captureKey routes arena keys through the mapper; other pages handle their own keys
func (a *App) captureKey(ev *tcell.EventKey) *tcell.EventKey {
	if a.frontPage() != pageArena {
		if ev.Key() == tcell.KeyCtrlQ {
			a.app.Stop()
			return nil
		}
		return ev
	}
	if a.mapper.HandleKey(ev) {
		return nil
	}
	return ev
}

func (a *App) captureMouse(ev *tcell.EventMouse, action tview.MouseAction) (*tcell.EventMouse, tview.MouseAction) {
	if a.frontPage() != pageArena {
		return ev, action
	}
	a.mapper.HandleMouse(ev, a.renderer.Viewport())
	return nil, action
}

func (a *App) system(op input.SystemOp) {
	switch op {
	case input.SystemQuit:
		a.app.Stop()
	case input.SystemToggleSound:
		a.toggleSound()
	case input.SystemToggleOverlay:
		a.renderer.Overlay = !a.renderer.Overlay
	}
}

func (a *App) toggleSound() {
	if a.opts.ToggleSound == nil {
		return
	}
	a.sound = a.opts.ToggleSound()
	log.Printf("[ui] sound enabled=%v", a.sound)
	a.updateFooter()
}

// show raises an overlay page and focuses it
func (a *App) show(name string, focus tview.Primitive) {
	a.pages.ShowPage(name)
	a.pages.SendToFront(name)
	a.app.SetFocus(focus)
}

// ShowPhase switches pages to match the session phase
func (a *App) ShowPhase(phase engine.Phase) {
	if phase.Suspended() && phase != engine.PhaseCountdown {
		a.mapper.Release()
	}
	a.phase = phase
	for _, name := range overlayPages {
		a.pages.HidePage(name)
	}

	switch phase {
	case engine.PhaseEvolution:
		a.show(pageEvolution, a.evolution.list)
	case engine.PhaseLoot:
		a.show(pageLoot, a.loot.list)
	case engine.PhaseFreeUpgrade:
		a.show(pageUpgrade, a.upgrade.list)
	case engine.PhasePaused:
		a.populatePause()
		a.show(pagePause, a.pause)
	case engine.PhaseGameOver:
		a.populateGameOver()
		a.show(pageGameOver, a.gameOver)
	default:
		a.app.SetFocus(a.arena)
	}
}

func (a *App) SetScore(score int) { a.score = score }

// SetHealth flashes the arena border when health drops
func (a *App) SetHealth(hp, maxHP int) {
	if hp < a.hp {
		a.renderer.Flash = parameter.DamageFlashFrames
	}
	a.hp = hp
}
