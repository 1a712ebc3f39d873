package systems

import (
	"github.com/cloudypatil/portfolio/pkg/components"
	"github.com/cloudypatil/portfolio/pkg/ecs"
	"github.com/cloudypatil/portfolio/pkg/scroll"
	"github.com/cloudypatil/portfolio/pkg/timeline"
)

// ContentLayoutSystem 内容层布局
//
// 内容层随平滑后的滚动进度平移，与镜头使用同一个偏移量，
// 因此文字和 3D 场景同步移动。
type ContentLayoutSystem struct {
	entityManager *ecs.EntityManager
	surface       scroll.Surface
}

// NewContentLayoutSystem 创建内容布局系统
func NewContentLayoutSystem(em *ecs.EntityManager, surface scroll.Surface) *ContentLayoutSystem {
	return &ContentLayoutSystem{
		entityManager: em,
		surface:       surface,
	}
}

// ScrollTop 返回内容层当前的像素偏移
func (s *ContentLayoutSystem) ScrollTop() float64 {
	if s.surface == nil {
		return 0
	}
	scrollRange := float64(s.surface.Pages()-1) * s.surface.ViewportHeight()
	return s.surface.Offset() * scrollRange
}

// Update 计算所有锚定实体的屏幕位置和可见性，并同步点击区域
func (s *ContentLayoutSystem) Update(deltaTime float64) {
	vh := 0.0
	if s.surface != nil {
		vh = s.surface.ViewportHeight()
	}
	scrollTop := s.ScrollTop()

	for _, id := range ecs.GetEntitiesWith1[*components.AnchorComponent](s.entityManager) {
		a, ok := ecs.GetComponent[*components.AnchorComponent](s.entityManager, id)
		if !ok {
			continue
		}

		a.ScreenY = timeline.ScreenY(a.Page, scrollTop, vh) + a.OffsetY
		a.Visible = timeline.IsVisible(a.Page, scrollTop-a.OffsetY, vh, a.Height)

		if c, ok := ecs.GetComponent[*components.ClickableComponent](s.entityManager, id); ok {
			c.X = a.X
			c.Y = a.ScreenY
			c.Width = a.Width
			c.Height = a.Height
		}
	}
}
