package systems

import (
	"github.com/cloudypatil/portfolio/pkg/components"
	"github.com/cloudypatil/portfolio/pkg/config"
	"github.com/cloudypatil/portfolio/pkg/ecs"
	"github.com/cloudypatil/portfolio/pkg/effects"
	"github.com/cloudypatil/portfolio/pkg/utils"
)

// CursorSystem 自定义光标
//
// 创建光标实体并在启用时挂载到 PointerHub。禁用时取消订阅，
// hub 的监听者数量恢复到挂载前。
type CursorSystem struct {
	entityManager *ecs.EntityManager
	hub           *utils.PointerHub
	entity        ecs.EntityID
}

// NewCursorSystem 创建光标系统并立即挂载
func NewCursorSystem(em *ecs.EntityManager, hub *utils.PointerHub, cfg config.CursorConfig) *CursorSystem {
	dot, ring := effects.NewMarker(), effects.NewMarker()
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.CursorComponent{
		Follower:   effects.NewCursorFollower(dot, ring, cfg.RingPeriodSeconds),
		Dot:        dot,
		Ring:       ring,
		DotRadius:  cfg.DotRadius,
		RingRadius: cfg.RingRadius,
	})

	s := &CursorSystem{
		entityManager: em,
		hub:           hub,
		entity:        id,
	}
	s.SetEnabled(true)
	return s
}

// Cursor 返回光标组件
func (s *CursorSystem) Cursor() *components.CursorComponent {
	c, _ := ecs.GetComponent[*components.CursorComponent](s.entityManager, s.entity)
	return c
}

// SetEnabled 挂载或卸载光标
func (s *CursorSystem) SetEnabled(on bool) {
	c := s.Cursor()
	if c == nil {
		return
	}
	if on {
		c.Follower.Mount(s.hub)
	} else {
		c.Follower.Unmount()
	}
}

// Enabled 光标是否挂载
func (s *CursorSystem) Enabled() bool {
	c := s.Cursor()
	return c != nil && c.Follower.Mounted()
}

// Update 推进外环旋转
func (s *CursorSystem) Update(deltaTime float64) {
	if c := s.Cursor(); c != nil && c.Follower.Mounted() {
		c.Follower.Advance(deltaTime)
	}
}
