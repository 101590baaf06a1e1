package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/light-blaster/boss"
	"github.com/lixenwraith/light-blaster/player"
	"github.com/lixenwraith/light-blaster/ray"
)

var (
	RgbBackground = tcell.NewRGBColor(12, 12, 20)
	RgbBorder     = tcell.NewRGBColor(70, 70, 100)
	RgbStatusBar  = tcell.NewRGBColor(230, 230, 230)
	RgbStatusText = tcell.NewRGBColor(0, 0, 0)
	RgbDim        = tcell.NewRGBColor(110, 110, 130)

	RgbRayNeutral    = tcell.NewRGBColor(200, 200, 200)
	RgbRayPlayer     = tcell.NewRGBColor(80, 220, 255)
	RgbRayBoss       = tcell.NewRGBColor(255, 80, 80)
	RgbRayGravity    = tcell.NewRGBColor(190, 90, 255)
	RgbRayPlayerWell = tcell.NewRGBColor(120, 255, 180)

	RgbTarget        = tcell.NewRGBColor(255, 200, 60)
	RgbTargetArmored = tcell.NewRGBColor(255, 140, 0)
	RgbHeal          = tcell.NewRGBColor(60, 255, 90)
	RgbLoot          = tcell.NewRGBColor(255, 240, 120)
	RgbLaser         = tcell.NewRGBColor(255, 255, 255)
	RgbEffect        = tcell.NewRGBColor(255, 230, 180)

	RgbPlayerNone      = tcell.NewRGBColor(240, 240, 240)
	RgbPlayerMage      = tcell.NewRGBColor(120, 160, 255)
	RgbPlayerAegis     = tcell.NewRGBColor(255, 215, 90)
	RgbPlayerBerserker = tcell.NewRGBColor(255, 90, 70)

	RgbBossSentinel    = tcell.NewRGBColor(200, 60, 60)
	RgbBossHunter      = tcell.NewRGBColor(230, 120, 30)
	RgbBossSingularity = tcell.NewRGBColor(150, 60, 220)

	RgbCooldownReady = tcell.NewRGBColor(90, 220, 120)
	RgbCooldownWait  = tcell.NewRGBColor(90, 90, 90)
	RgbBuffActive    = tcell.NewRGBColor(255, 192, 203)
)

// RayColor maps a ray's damage color to a terminal color
func RayColor(c ray.Color) tcell.Color {
	switch c {
	case ray.ColorPlayer:
		return RgbRayPlayer
	case ray.ColorBoss:
		return RgbRayBoss
	case ray.ColorGravity:
		return RgbRayGravity
	case ray.ColorPlayerWell:
		return RgbRayPlayerWell
	default:
		return RgbRayNeutral
	}
}

func PathColor(p player.Path) tcell.Color {
	switch p {
	case player.PathMage:
		return RgbPlayerMage
	case player.PathAegis:
		return RgbPlayerAegis
	case player.PathBerserker:
		return RgbPlayerBerserker
	default:
		return RgbPlayerNone
	}
}

func BossColor(k boss.Kind) tcell.Color {
	switch k {
	case boss.KindHunter:
		return RgbBossHunter
	case boss.KindSingularity:
		return RgbBossSingularity
	default:
		return RgbBossSentinel
	}
}

// HealthColor returns the health bar color for a fill fraction
// progress is 0.0 to 1.0; red at empty through yellow to green at full
func HealthColor(progress float64) tcell.Color {
	if progress <= 0.0 {
		return tcell.NewRGBColor(0, 0, 0)
	}
	progress = min(progress, 1.0)

	if progress < 0.5 { // Red to Yellow
		t := progress / 0.5
		return tcell.NewRGBColor(int32(200+55*t), int32(40+175*t), 30)
	}
	t := (progress - 0.5) / 0.5 // Yellow to Green
	return tcell.NewRGBColor(int32(255-221*t), int32(215-35*t), int32(30+30*t))
}

// Dim scales a color toward black by factor in [0, 1]
func Dim(c tcell.Color, factor float64) tcell.Color {
	r, g, b := c.RGB()
	f := min(1, max(0, factor))
	return tcell.NewRGBColor(int32(float64(r)*f), int32(float64(g)*f), int32(float64(b)*f))
}
