package systems

import (
	"github.com/cloudypatil/portfolio/pkg/components"
	"github.com/cloudypatil/portfolio/pkg/ecs"
)

// ButtonSystem 按钮点击分发
type ButtonSystem struct {
	entityManager *ecs.EntityManager
}

// NewButtonSystem 创建按钮系统
func NewButtonSystem(em *ecs.EntityManager) *ButtonSystem {
	return &ButtonSystem{entityManager: em}
}

// Update 对本帧被点击的按钮调用 OnClick
func (s *ButtonSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith2[*components.ButtonComponent, *components.ClickableComponent](s.entityManager) {
		b, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, id)
		c, _ := ecs.GetComponent[*components.ClickableComponent](s.entityManager, id)
		if !c.JustClicked {
			continue
		}
		b.Clicks++
		if b.OnClick != nil {
			b.OnClick()
		}
	}
}
