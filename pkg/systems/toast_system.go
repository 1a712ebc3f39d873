package systems

import (
	"image/color"
	"log"

	"github.com/cloudypatil/portfolio/pkg/components"
	"github.com/cloudypatil/portfolio/pkg/ecs"
)

// DefaultToastDuration 提示显示时间（秒）
const DefaultToastDuration = 3.0

// ToastSystem 管理屏幕底部的短暂提示
// 同一时间只显示一条，新提示替换旧提示
type ToastSystem struct {
	entityManager *ecs.EntityManager
}

// NewToastSystem 创建提示系统
func NewToastSystem(em *ecs.EntityManager) *ToastSystem {
	return &ToastSystem{entityManager: em}
}

// Show 显示一条提示
func (s *ToastSystem) Show(message string, clr color.RGBA) ecs.EntityID {
	for _, id := range ecs.GetEntitiesWith1[*components.ToastComponent](s.entityManager) {
		s.entityManager.DestroyEntity(id)
		ecs.RemoveComponent[*components.ToastComponent](s.entityManager, id)
	}

	id := s.entityManager.CreateEntity()
	ecs.AddComponent(s.entityManager, id, &components.ToastComponent{
		Message:   message,
		Color:     clr,
		Remaining: DefaultToastDuration,
		Duration:  DefaultToastDuration,
	})
	log.Printf("[ToastSystem] %s", message)
	return id
}

// Current 返回当前显示的提示，没有时返回 nil
func (s *ToastSystem) Current() *components.ToastComponent {
	ids := ecs.GetEntitiesWith1[*components.ToastComponent](s.entityManager)
	if len(ids) == 0 {
		return nil
	}
	t, _ := ecs.GetComponent[*components.ToastComponent](s.entityManager, ids[len(ids)-1])
	return t
}

// Update 倒计时，到期的提示标记删除
func (s *ToastSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.ToastComponent](s.entityManager) {
		t, ok := ecs.GetComponent[*components.ToastComponent](s.entityManager, id)
		if !ok {
			continue
		}
		t.Remaining -= deltaTime
		if t.Remaining <= 0 {
			s.entityManager.DestroyEntity(id)
			ecs.RemoveComponent[*components.ToastComponent](s.entityManager, id)
		}
	}
}
