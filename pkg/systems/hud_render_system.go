package systems

import (
	"image/color"
	"math"

	"github.com/cloudypatil/portfolio/pkg/components"
	"github.com/cloudypatil/portfolio/pkg/config"
	"github.com/cloudypatil/portfolio/pkg/ecs"
	"github.com/cloudypatil/portfolio/pkg/effects"
	"github.com/cloudypatil/portfolio/pkg/render"
	"github.com/cloudypatil/portfolio/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// HudRenderSystem 绘制固定在屏幕上的 HUD：导航栏、提示和自定义光标
type HudRenderSystem struct {
	entityManager *ecs.EntityManager
	nav           *NavRailSystem
	toasts        *ToastSystem
	cursor        *CursorSystem
}

// NewHudRenderSystem 创建 HUD 渲染系统，任一子系统可以为 nil
func NewHudRenderSystem(em *ecs.EntityManager, nav *NavRailSystem, toasts *ToastSystem, cursor *CursorSystem) *HudRenderSystem {
	return &HudRenderSystem{
		entityManager: em,
		nav:           nav,
		toasts:        toasts,
		cursor:        cursor,
	}
}

// Draw 绘制 HUD
func (s *HudRenderSystem) Draw(screen *ebiten.Image) {
	b := screen.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())

	if s.nav != nil {
		s.drawNavRail(screen, w, h)
	}
	if s.toasts != nil {
		s.drawToast(screen, w, h)
	}
	if s.cursor != nil && s.cursor.Enabled() {
		s.drawCursor(screen)
	}
}

func (s *HudRenderSystem) drawNavRail(screen *ebiten.Image, w, h float64) {
	x, top, bottom := RailGeometry(w, h)
	fx := float32(x)

	vector.StrokeLine(screen, fx, float32(top), fx, float32(bottom), 2, render.Fade(config.DimGray, 0.5), true)
	fillY := top + s.nav.Fill()*(bottom-top)
	vector.StrokeLine(screen, fx, float32(top), fx, float32(fillY), 2, config.NeonCyan, true)

	stops := s.nav.Stops()
	for i, id := range stops {
		stop, ok := ecs.GetComponent[*components.NavStopComponent](s.entityManager, id)
		if !ok {
			continue
		}
		hovered := false
		if c, ok := ecs.GetComponent[*components.ClickableComponent](s.entityManager, id); ok {
			hovered = c.IsHovered
		}

		y := StopY(i, len(stops), top, bottom)
		fy := float32(y)
		labelColor := render.Fade(config.DimGray, 1)

		switch {
		case stop.Active:
			vector.DrawFilledCircle(screen, fx, fy, config.NavStopRadius, config.NeonCyan, true)
			vector.StrokeCircle(screen, fx, fy, config.NavStopRadius+4, 1, render.Fade(config.NeonCyan, 0.6), true)
			labelColor = config.NeonCyan
		case hovered:
			vector.DrawFilledCircle(screen, fx, fy, config.NavStopRadius, config.SoftWhite, true)
			labelColor = config.SoftWhite
		default:
			vector.DrawFilledCircle(screen, fx, fy, config.NavStopRadius, config.VoidBlack, true)
			vector.StrokeCircle(screen, fx, fy, config.NavStopRadius, 1.5, config.DimGray, true)
		}

		labelX := x - config.NavStopRadius - 14 - utils.MeasureText(stop.Label, 1)
		utils.DrawText(screen, stop.Label, labelX, y-utils.LineHeight(1)/2, 1, labelColor)
	}
}

func (s *HudRenderSystem) drawToast(screen *ebiten.Image, w, h float64) {
	t := s.toasts.Current()
	if t == nil {
		return
	}

	alpha := 1.0
	if t.Remaining < 0.5 {
		alpha = math.Max(0, t.Remaining/0.5)
	}

	const scale = 1.5
	tw := utils.MeasureText(t.Message, scale) + 40
	th := utils.LineHeight(scale) + 20
	x, y := (w-tw)/2, h-th-40

	vector.DrawFilledRect(screen, float32(x), float32(y), float32(tw), float32(th), render.Fade(config.VoidBlack, 0.85*alpha), true)
	vector.StrokeRect(screen, float32(x), float32(y), float32(tw), float32(th), 1, render.Fade(t.Color, alpha), true)
	utils.DrawTextCentered(screen, t.Message, w/2, y+10, scale, render.Fade(t.Color, alpha))
}

// drawCursor 中心圆点 + 带四个准星刻度的旋转外环
func (s *HudRenderSystem) drawCursor(screen *ebiten.Image) {
	c := s.cursor.Cursor()
	if c == nil || c.Dot.Applied == 0 {
		return
	}

	ring := c.Ring.Current
	ring.Rotation = c.Follower.RingAngle()
	cx, cy := ring.Apply(0, 0)
	vector.StrokeCircle(screen, float32(cx), float32(cy), float32(c.RingRadius), 1, render.Fade(config.NeonCyan, 0.5), true)
	for _, t := range cursorRingTicks(ring, c.RingRadius) {
		vector.StrokeLine(screen, float32(t[0]), float32(t[1]), float32(t[2]), float32(t[3]), 3, config.NeonCyan, true)
	}

	dx, dy := c.Dot.Current.Apply(0, 0)
	vector.DrawFilledCircle(screen, float32(dx), float32(dy), float32(c.DotRadius), color.White, true)
}

// cursorRingTicks 返回外环四个刻度的端点（屏幕坐标）
func cursorRingTicks(ring effects.Transform, radius float64) [4][4]float64 {
	var out [4][4]float64
	for k := 0; k < 4; k++ {
		sin, cos := math.Sincos(float64(k) * math.Pi / 2)
		x0, y0 := ring.Apply(cos*(radius-4), sin*(radius-4))
		x1, y1 := ring.Apply(cos*(radius+2), sin*(radius+2))
		out[k] = [4]float64{x0, y0, x1, y1}
	}
	return out
}
