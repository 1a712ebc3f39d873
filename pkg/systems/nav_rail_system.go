package systems

import (
	"log"
	"math"

	"github.com/cloudypatil/portfolio/pkg/components"
	"github.com/cloudypatil/portfolio/pkg/config"
	"github.com/cloudypatil/portfolio/pkg/ecs"
	"github.com/cloudypatil/portfolio/pkg/scroll"
	"github.com/cloudypatil/portfolio/pkg/timeline"
)

// NavRailSystem HUD 导航栏
//
// 每帧把滚动偏移量解析为站点索引，只在索引变化时改写前一个和新的站点
// （其余站点不动）。点击站点发出一次平滑 ScrollTo。
type NavRailSystem struct {
	entityManager *ecs.EntityManager
	surface       scroll.Surface
	tracker       *timeline.SectionTracker

	stops   []ecs.EntityID // 按 Index 排列
	active  int
	hasLast bool
	fill    float64

	// touched 累计被改写的站点数
	touched int
	// commands 累计发出的滚动命令数
	commands int
}

// NewNavRailSystem 创建导航栏，并为每个站点创建实体
func NewNavRailSystem(em *ecs.EntityManager, surface scroll.Surface, items []config.NavItemConfig, screenW, screenH float64) *NavRailSystem {
	s := &NavRailSystem{
		entityManager: em,
		surface:       surface,
		tracker:       timeline.NewSectionTracker(len(items)),
	}

	for i, item := range items {
		id := em.CreateEntity()
		ecs.AddComponent(em, id, &components.NavStopComponent{
			Index: i,
			Label: item.Label,
			Page:  item.Page,
		})
		ecs.AddComponent(em, id, &components.ClickableComponent{IsEnabled: true})
		s.stops = append(s.stops, id)
	}
	s.Layout(screenW, screenH)

	log.Printf("[NavRailSystem] 创建 %d 个导航站点", len(items))
	return s
}

// RailGeometry 返回导航轨道的位置：节点 X 坐标，轨道顶部和底部 Y 坐标
// 轨道高度为屏幕高度的一半（至少 NavRailMinHeight），垂直居中
func RailGeometry(screenW, screenH float64) (x, top, bottom float64) {
	h := math.Max(screenH*config.NavRailHeightRatio, config.NavRailMinHeight)
	x = screenW - config.NavRailRightMargin
	top = (screenH - h) / 2
	return x, top, top + h
}

// StopY 返回第 i 个站点的 Y 坐标（n 个站点在轨道上均匀分布）
func StopY(i, n int, top, bottom float64) float64 {
	if n <= 1 {
		return (top + bottom) / 2
	}
	return top + float64(i)/float64(n-1)*(bottom-top)
}

// Layout 根据屏幕尺寸重新计算站点的点击区域
// 点击区域包含节点左侧的标签
func (s *NavRailSystem) Layout(screenW, screenH float64) {
	x, top, bottom := RailGeometry(screenW, screenH)
	for i, id := range s.stops {
		c, ok := ecs.GetComponent[*components.ClickableComponent](s.entityManager, id)
		if !ok {
			continue
		}
		y := StopY(i, len(s.stops), top, bottom)
		c.X = x + config.NavStopRadius - config.NavStopHitWidth
		c.Y = y - config.NavStopHitHeight/2
		c.Width = config.NavStopHitWidth
		c.Height = config.NavStopHitHeight
	}
}

// Update 更新当前站点并处理点击
func (s *NavRailSystem) Update(deltaTime float64) {
	offset := 0.0
	if s.surface != nil {
		offset = s.surface.Offset()
	}

	if idx, changed := s.tracker.Observe(offset); changed {
		if s.hasLast && s.active != idx {
			s.setActive(s.active, false)
		}
		s.setActive(idx, true)
		s.active = idx
		s.hasLast = true
		s.fill = timeline.RailFill(idx, len(s.stops))
	}

	for i, id := range s.stops {
		c, ok := ecs.GetComponent[*components.ClickableComponent](s.entityManager, id)
		if ok && c.JustClicked {
			s.Navigate(i)
		}
	}
}

// setActive 改写单个站点的激活状态
func (s *NavRailSystem) setActive(index int, active bool) {
	if index < 0 || index >= len(s.stops) {
		return
	}
	stop, ok := ecs.GetComponent[*components.NavStopComponent](s.entityManager, s.stops[index])
	if !ok {
		return
	}
	stop.Active = active
	stop.Redraws++
	s.touched++
}

// Navigate 滚动到第 index 个站点
//
// 每次调用都发出一条平滑滚动命令（重复点击不合并），
// 没有滚动容器时什么都不做，返回 false。
func (s *NavRailSystem) Navigate(index int) bool {
	if s.surface == nil || index < 0 || index >= len(s.stops) {
		return false
	}
	stop, ok := ecs.GetComponent[*components.NavStopComponent](s.entityManager, s.stops[index])
	if !ok {
		return false
	}

	target := float64(stop.Page) * s.surface.ViewportHeight()
	s.surface.ScrollTo(target, scroll.BehaviorSmooth)
	s.commands++
	log.Printf("[NavRailSystem] 跳转到 %s (page %d, %.0fpx)", stop.Label, stop.Page, target)
	return true
}

// Active 返回当前激活的站点索引
func (s *NavRailSystem) Active() int {
	return s.active
}

// Fill 返回轨道填充比例 [0, 1]
func (s *NavRailSystem) Fill() float64 {
	return s.fill
}

// Touched 返回累计被改写的站点数
func (s *NavRailSystem) Touched() int {
	return s.touched
}

// Commands 返回累计发出的滚动命令数
func (s *NavRailSystem) Commands() int {
	return s.commands
}

// Stops 返回站点实体（按索引排列）
func (s *NavRailSystem) Stops() []ecs.EntityID {
	return s.stops
}
