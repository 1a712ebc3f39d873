package systems

import (
	"strings"

	"github.com/cloudypatil/portfolio/pkg/components"
	"github.com/cloudypatil/portfolio/pkg/config"
	"github.com/cloudypatil/portfolio/pkg/contact"
	"github.com/cloudypatil/portfolio/pkg/ecs"
	"github.com/cloudypatil/portfolio/pkg/effects"
	"github.com/cloudypatil/portfolio/pkg/render"
	"github.com/cloudypatil/portfolio/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 正文字号
const (
	bodyScale  = 1.5
	smallScale = 1.0
)

// ContentRenderSystem 绘制随滚动平移的内容层
//
// 只绘制 Visible 的锚定实体；位置由 ContentLayoutSystem 预先计算。
type ContentRenderSystem struct {
	entityManager *ecs.EntityManager
}

// NewContentRenderSystem 创建内容渲染系统
func NewContentRenderSystem(em *ecs.EntityManager) *ContentRenderSystem {
	return &ContentRenderSystem{entityManager: em}
}

// Draw 绘制所有可见的内容实体
func (s *ContentRenderSystem) Draw(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith1[*components.AnchorComponent](s.entityManager) {
		a, _ := ecs.GetComponent[*components.AnchorComponent](s.entityManager, id)
		if !a.Visible {
			continue
		}

		if h, ok := ecs.GetComponent[*components.HeadingComponent](s.entityManager, id); ok {
			s.drawHeading(screen, id, a, h)
		}
		if tw, ok := ecs.GetComponent[*components.TypewriterComponent](s.entityManager, id); ok {
			s.drawTypewriter(screen, a, tw)
		}
		if card, ok := ecs.GetComponent[*components.CardComponent](s.entityManager, id); ok {
			s.drawCard(screen, id, a, card)
		}
		if b, ok := ecs.GetComponent[*components.ButtonComponent](s.entityManager, id); ok {
			s.drawButton(screen, id, a, b)
		}
	}

	for _, id := range ecs.GetEntitiesWith1[*components.ContactFormComponent](s.entityManager) {
		fc, _ := ecs.GetComponent[*components.ContactFormComponent](s.entityManager, id)
		for _, inputID := range fc.Inputs {
			s.drawInput(screen, inputID, fc.Form)
		}
	}
}

// HeadingText 返回标题完整文字（标题 + 故障文字）
func HeadingText(title, glitch string) string {
	switch {
	case glitch == "":
		return title
	case title == "":
		return glitch
	}
	return title + " " + glitch
}

// alignedX 按对齐方式返回宽度为 width 的文字在锚点矩形内的左边缘
func alignedX(a *components.AnchorComponent, width float64, align components.HeadingAlign) float64 {
	switch align {
	case components.AlignCenter:
		return a.X + (a.Width-width)/2
	case components.AlignRight:
		return a.X + a.Width - width
	}
	return a.X
}

func (s *ContentRenderSystem) drawHeading(screen *ebiten.Image, id ecs.EntityID, a *components.AnchorComponent, h *components.HeadingComponent) {
	glitch := ""
	if g, ok := ecs.GetComponent[*components.GlitchTextComponent](s.entityManager, id); ok && g.Animator != nil {
		glitch = g.Animator.Text()
	}

	full := HeadingText(h.Title, glitch)
	width := utils.MeasureText(full, h.Scale)
	x := alignedX(a, width, h.Align)

	utils.DrawText(screen, h.Title, x, a.ScreenY, h.Scale, h.Color)
	if glitch != "" {
		gx := x
		if h.Title != "" {
			gx += utils.MeasureText(h.Title+" ", h.Scale)
		}
		utils.DrawText(screen, glitch, gx, a.ScreenY, h.Scale, h.AccentColor)
	}

	y := a.ScreenY + utils.LineHeight(h.Scale) + 16
	for _, line := range h.Lines {
		lx := alignedX(a, utils.MeasureText(line, bodyScale), h.Align)
		clr := config.SoftWhite
		if strings.HasPrefix(line, "//") {
			clr = config.NeonCyan
		}
		utils.DrawText(screen, line, lx, y, bodyScale, clr)
		y += utils.LineHeight(bodyScale) + 4
	}
}

func (s *ContentRenderSystem) drawTypewriter(screen *ebiten.Image, a *components.AnchorComponent, tw *components.TypewriterComponent) {
	txt := tw.Prefix + tw.Writer.Text()
	utils.DrawText(screen, txt, a.X, a.ScreenY, config.TextScaleSubheading, config.SoftWhite)
	if tw.Writer.CursorVisible() {
		cx := a.X + utils.MeasureText(txt, config.TextScaleSubheading)
		utils.DrawText(screen, "_", cx, a.ScreenY, config.TextScaleSubheading, config.NeonCyan)
	}
}

// cardQuad 返回卡片四个角经过变换后的屏幕坐标
func cardQuad(t effects.Transform, x, y, w, h float64) [4][2]float64 {
	cx, cy := x+w/2, y+h/2
	t.TranslateX += cx
	t.TranslateY += cy
	var q [4][2]float64
	for i, c := range [4][2]float64{{-w / 2, -h / 2}, {w / 2, -h / 2}, {w / 2, h / 2}, {-w / 2, h / 2}} {
		q[i][0], q[i][1] = t.Apply(c[0], c[1])
	}
	return q
}

func (s *ContentRenderSystem) drawCard(screen *ebiten.Image, id ecs.EntityID, a *components.AnchorComponent, card *components.CardComponent) {
	t := effects.Identity()
	if card.Marker != nil {
		t = card.Marker.Current
	}
	hovered := false
	if c, ok := ecs.GetComponent[*components.ClickableComponent](s.entityManager, id); ok {
		hovered = c.IsHovered
	}

	vector.DrawFilledRect(screen, float32(a.X), float32(a.ScreenY), float32(a.Width), float32(a.Height), render.Fade(config.VoidBlack, 0.8), true)

	border := render.Fade(card.Color, 0.5)
	if hovered {
		border = card.Color
	}
	q := cardQuad(t, a.X, a.ScreenY, a.Width, a.Height)
	for i := range q {
		p0, p1 := q[i], q[(i+1)%4]
		vector.StrokeLine(screen, float32(p0[0]), float32(p0[1]), float32(p1[0]), float32(p1[1]), 1.5, border, true)
	}

	// 文字随卡片中心平移和缩放
	scale := t.Scale
	if scale == 0 {
		scale = 1
	}
	ox, oy := q[0][0], q[0][1]
	pad := 20 * scale
	y := oy + pad

	switch card.Kind {
	case components.CardSkill:
		utils.DrawText(screen, card.Title, ox+pad, y, 2*scale, card.Color)
		y += utils.LineHeight(2*scale) + 12*scale
		for _, item := range card.Items {
			utils.DrawText(screen, "> "+item, ox+pad, y, bodyScale*scale, config.SoftWhite)
			y += utils.LineHeight(bodyScale*scale) + 6*scale
		}

	case components.CardProject:
		utils.DrawText(screen, card.Subtitle, ox+pad, y, smallScale*scale, card.Color)
		y += utils.LineHeight(smallScale*scale) + 8*scale
		utils.DrawText(screen, card.Title, ox+pad, y, 3*scale, config.SoftWhite)
		y += utils.LineHeight(3*scale) + 10*scale
		for _, line := range card.Body {
			utils.DrawText(screen, line, ox+pad, y, bodyScale*scale, config.DimGray)
			y += utils.LineHeight(bodyScale*scale) + 4*scale
		}
		y += 8 * scale
		tx := ox + pad
		for _, tag := range card.Items {
			label := "#" + tag
			utils.DrawText(screen, label, tx, y, smallScale*scale, card.Color)
			tx += utils.MeasureText(label, smallScale*scale) + 14*scale
		}

	case components.CardAchievement:
		utils.DrawText(screen, card.Title, ox+pad, y, smallScale*scale, card.Color)
		y += utils.LineHeight(smallScale*scale) + 10*scale
		utils.DrawText(screen, card.Subtitle, ox+pad, y, 2.5*scale, config.SoftWhite)
		y += utils.LineHeight(2.5*scale) + 8*scale
		for _, line := range card.Body {
			utils.DrawText(screen, line, ox+pad, y, smallScale*scale, config.DimGray)
			y += utils.LineHeight(smallScale*scale) + 4*scale
		}
	}
}

func (s *ContentRenderSystem) drawButton(screen *ebiten.Image, id ecs.EntityID, a *components.AnchorComponent, b *components.ButtonComponent) {
	hovered, enabled := false, true
	if c, ok := ecs.GetComponent[*components.ClickableComponent](s.entityManager, id); ok {
		hovered, enabled = c.IsHovered, c.IsEnabled
	}

	x, y, w, h := float32(a.X), float32(a.ScreenY), float32(a.Width), float32(a.Height)
	textColor := b.Color
	switch {
	case b.Filled:
		fill := b.Color
		if hovered && enabled {
			fill = config.SoftWhite
		}
		vector.DrawFilledRect(screen, x, y, w, h, fill, true)
		textColor = config.VoidBlack
	case hovered:
		vector.DrawFilledRect(screen, x, y, w, h, b.Color, true)
		textColor = config.VoidBlack
	default:
		vector.DrawFilledRect(screen, x, y, w, h, render.Fade(config.VoidBlack, 0.6), true)
		vector.StrokeRect(screen, x, y, w, h, 1, b.Color, true)
	}

	utils.DrawTextCentered(screen, b.Label, a.X+a.Width/2, a.ScreenY+(a.Height-utils.LineHeight(bodyScale))/2, bodyScale, textColor)
}

func (s *ContentRenderSystem) drawInput(screen *ebiten.Image, id ecs.EntityID, form *contact.Form) {
	a, ok := ecs.GetComponent[*components.AnchorComponent](s.entityManager, id)
	if !ok || !a.Visible {
		return
	}
	input, ok := ecs.GetComponent[*components.TextInputComponent](s.entityManager, id)
	if !ok {
		return
	}

	utils.DrawText(screen, input.Label, a.X, a.ScreenY-utils.LineHeight(smallScale)-4, smallScale, config.DimGray)

	border := render.Fade(config.DimGray, 0.8)
	if input.IsFocused {
		border = config.NeonCyan
	}
	x, y, w, h := float32(a.X), float32(a.ScreenY), float32(a.Width), float32(a.Height)
	vector.DrawFilledRect(screen, x, y, w, h, render.Fade(config.VoidBlack, 0.7), true)
	vector.StrokeRect(screen, x, y, w, h, 1, border, true)

	value := form.Field(input.Field)
	const pad = 8.0
	lineH := utils.LineHeight(bodyScale) + 2
	if value == "" {
		utils.DrawText(screen, input.Placeholder, a.X+pad, a.ScreenY+pad, bodyScale, render.Fade(config.DimGray, 0.7))
	} else {
		for i, line := range strings.Split(value, "\n") {
			utils.DrawText(screen, line, a.X+pad, a.ScreenY+pad+float64(i)*lineH, bodyScale, config.SoftWhite)
		}
	}

	if input.IsFocused && input.CursorVisible {
		cx, row := CaretPosition(value, input.CursorPosition, bodyScale)
		px := float32(a.X + pad + cx)
		py := float32(a.ScreenY + pad + float64(row)*lineH)
		vector.StrokeLine(screen, px, py, px, py+float32(utils.LineHeight(bodyScale)), 1.5, config.NeonCyan, true)
	}
}

// CaretPosition 返回光标在输入框内的横向偏移和行号
func CaretPosition(value string, pos int, scale float64) (x float64, row int) {
	runes := []rune(value)
	pos = utils.ClampInt(pos, 0, len(runes))
	before := string(runes[:pos])
	row = strings.Count(before, "\n")
	if i := strings.LastIndex(before, "\n"); i >= 0 {
		before = before[i+1:]
	}
	return utils.MeasureText(before, scale), row
}
