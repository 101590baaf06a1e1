package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/light-blaster/engine"
	"github.com/lixenwraith/light-blaster/entity"
	"github.com/lixenwraith/light-blaster/parameter"
	"github.com/lixenwraith/light-blaster/player"
	"github.com/lixenwraith/light-blaster/ray"
	"github.com/lixenwraith/light-blaster/vmath"
)

// Renderer draws a session onto a tcell screen region
type Renderer struct {
	// Overlay shows engine telemetry in the arena corner
	Overlay bool

	// Flash counts down frames of damage tint on the arena border
	Flash int

	screen tcell.Screen
	view   Viewport
	base   tcell.Style
}

func NewRenderer() *Renderer {
	return &Renderer{base: tcell.StyleDefault.Background(RgbBackground)}
}

// Viewport returns the arena mapping of the last drawn frame
func (r *Renderer) Viewport() Viewport { return r.view }

// Draw renders the hud and arena inside the given rectangle
func (r *Renderer) Draw(screen tcell.Screen, x, y, width, height int, s *engine.GameSession) {
	r.screen = screen
	for row := y; row < y+height; row++ {
		for col := x; col < x+width; col++ {
			screen.SetContent(col, row, ' ', nil, r.base)
		}
	}
	if width < 4 || height < parameter.HudRows+3 {
		return
	}

	r.drawStatusBar(x, y, width, s)

	// Border occupies one cell on every side of the arena
	ax, ay, aw, ah := x+1, y+parameter.HudRows+1, width-2, height-parameter.HudRows-2
	r.drawBorder(ax-1, ay-1, aw+2, ah+2)
	r.view = NewViewport(s.Bounds(), ax, ay, aw, ah)

	r.drawEffects(s.Effects.Items())
	r.drawWell(s.Player)
	s.Targets.ForEachAlive(r.drawTarget)
	for _, pk := range s.Pickups {
		r.drawPickup(pk)
	}
	s.Pool.ForEachActive(r.drawRay)
	for _, b := range s.Bosses.Bosses() {
		if b.Active() {
			r.drawDisc(b.Pos(), b.Radius(), '█', r.base.Foreground(BossColor(b.Kind())))
			r.drawBossBar(b.Pos(), b.Radius(), b.Name(), b.Health(), b.MaxHealth(), BossColor(b.Kind()))
		}
	}
	r.drawPlayer(s.Player)

	if r.Overlay {
		for i, line := range s.Status.Lines() {
			r.text(ax, ay+i, line, r.base.Foreground(RgbDim))
		}
	}
	r.drawPhaseOverlay(s)
}

func (r *Renderer) set(cx, cy int, ch rune, style tcell.Style) {
	if r.view.Contains(cx, cy) {
		r.screen.SetContent(cx, cy, ch, nil, style)
	}
}

// text writes s starting at (x, y) without clipping to the arena
func (r *Renderer) text(x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}

func (r *Renderer) drawBorder(x, y, w, h int) {
	style := r.base.Foreground(RgbBorder)
	if r.Flash > 0 {
		style = r.base.Foreground(RgbRayBoss)
		r.Flash--
	}
	for col := x + 1; col < x+w-1; col++ {
		r.screen.SetContent(col, y, '─', nil, style)
		r.screen.SetContent(col, y+h-1, '─', nil, style)
	}
	for row := y + 1; row < y+h-1; row++ {
		r.screen.SetContent(x, row, '│', nil, style)
		r.screen.SetContent(x+w-1, row, '│', nil, style)
	}
	r.screen.SetContent(x, y, '┌', nil, style)
	r.screen.SetContent(x+w-1, y, '┐', nil, style)
	r.screen.SetContent(x, y+h-1, '└', nil, style)
	r.screen.SetContent(x+w-1, y+h-1, '┘', nil, style)
}

// drawDisc fills every cell whose center lies within radius of pos
// A radius smaller than one cell still marks the center cell
func (r *Renderer) drawDisc(pos vmath.Vec2, radius float64, ch rune, style tcell.Style) {
	cx, cy := r.view.Cell(pos)
	r.set(cx, cy, ch, style)
	sx, sy := r.view.Span(radius)
	for dy := -int(sy) - 1; dy <= int(sy)+1; dy++ {
		for dx := -int(sx) - 1; dx <= int(sx)+1; dx++ {
			if r.view.World(cx+dx, cy+dy).Dist(pos) <= radius {
				r.set(cx+dx, cy+dy, ch, style)
			}
		}
	}
}

// drawRing marks cells along a circle of radius around pos
func (r *Renderer) drawRing(pos vmath.Vec2, radius float64, ch rune, style tcell.Style) {
	sx, _ := r.view.Span(radius)
	steps := max(12, int(2*math.Pi*sx))
	for i := range steps {
		a := 2 * math.Pi * float64(i) / float64(steps)
		cx, cy := r.view.Cell(pos.Add(vmath.FromAngle(a).Scale(radius)))
		r.set(cx, cy, ch, style)
	}
}

func (r *Renderer) drawRay(rr *ray.Ray) {
	color := RayColor(rr.Color)
	opacity := rr.Opacity
	if rr.State != ray.StateFading {
		opacity = 1
	}

	trail := rr.Trail()
	for i := 1; i < len(trail); i++ {
		fade := opacity * float64(i) / float64(len(trail)+1) * 0.6
		style := r.base.Foreground(Dim(color, fade))
		r.view.Line(trail[i-1], trail[i], func(cx, cy int) { r.set(cx, cy, '·', style) })
	}

	style := r.base.Foreground(Dim(color, max(opacity, 0.2)))
	switch {
	case rr.IsGravityWellRay && rr.State == ray.StateForming:
		r.drawDisc(rr.Pos, rr.Radius, 'o', style)
	case rr.IsGravityWellRay:
		r.drawDisc(rr.Pos, rr.Radius, 'O', style.Bold(true))
	default:
		cx, cy := r.view.Cell(rr.Pos)
		r.set(cx, cy, '•', style)
	}
}

func (r *Renderer) drawTarget(t *entity.Target) {
	if t.Armored {
		r.drawDisc(t.Pos, t.Radius, '■', r.base.Foreground(RgbTargetArmored))
		return
	}
	cx, cy := r.view.Cell(t.Pos)
	r.set(cx, cy, '◆', r.base.Foreground(RgbTarget))
}

func (r *Renderer) drawPickup(pk *entity.Pickup) {
	cx, cy := r.view.Cell(pk.Pos)
	switch pk.Kind {
	case entity.PickupHeal:
		// Blink during the last few seconds
		if pk.Life < parameter.HealBlinkWindow && (pk.Life/parameter.HealBlinkPeriod)%2 == 0 {
			return
		}
		r.set(cx, cy, '+', r.base.Foreground(RgbHeal).Bold(true))
	case entity.PickupBossLoot:
		r.set(cx, cy, '★', r.base.Foreground(RgbLoot).Bold(true))
	}
}

func (r *Renderer) drawWell(p *player.Player) {
	w := p.Well
	if !w.Active() {
		return
	}
	r.drawRing(w.Pos, w.VisualRadius, '∙', r.base.Foreground(RgbRayPlayerWell))
	cx, cy := r.view.Cell(w.Pos)
	r.set(cx, cy, '◎', r.base.Foreground(RgbRayPlayerWell).Bold(true))
}

func (r *Renderer) drawPlayer(p *player.Player) {
	color := PathColor(p.Path)
	if p.LaserActive() {
		style := r.base.Foreground(RgbLaser).Bold(true)
		r.view.Line(p.Pos, p.LaserEnd, func(cx, cy int) { r.set(cx, cy, '═', style) })
	}
	if p.ShieldActive() {
		r.drawRing(p.Pos, p.Radius*1.8, '○', r.base.Foreground(RgbRayPlayer))
	}
	body := '▓'
	if p.Dashing() {
		body = '▒'
	}
	if p.ImmunityTimer > 0 || p.TeleportImmunityTimer > 0 {
		color = Dim(color, 0.5)
	}
	r.drawDisc(p.Pos, p.Radius, body, r.base.Foreground(color))
	cx, cy := r.view.Cell(p.Pos)
	r.set(cx, cy, '@', r.base.Foreground(color).Bold(true))
}

func (r *Renderer) drawEffects(items []entity.Effect) {
	for i := range items {
		e := &items[i]
		style := r.base.Foreground(Dim(RgbEffect, 1-e.Progress()))
		switch e.Kind {
		case entity.EffectChain, entity.EffectImpact:
			r.drawRing(e.Pos, e.Radius*max(e.Progress(), 0.2), '*', style)
		default:
			r.drawRing(e.Pos, e.Radius*max(e.Progress(), 0.2), '·', style)
		}
	}
}

func (r *Renderer) drawBossBar(pos vmath.Vec2, radius float64, name string, hp, maxHP int, color tcell.Color) {
	cx, cy := r.view.Cell(pos)
	_, sy := r.view.Span(radius)
	row := cy - int(sy) - 2
	const barWidth = 12
	x := cx - barWidth/2
	fill := 0
	if maxHP > 0 {
		fill = int(math.Ceil(float64(barWidth) * float64(hp) / float64(maxHP)))
	}
	for i := range barWidth {
		style := r.base.Foreground(RgbCooldownWait)
		if i < fill {
			style = r.base.Foreground(color)
		}
		r.set(x+i, row, '▬', style)
	}
	for i, ch := range name {
		r.set(x+i, row-1, ch, r.base.Foreground(color))
	}
}
