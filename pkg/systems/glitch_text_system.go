package systems

import (
	"log"
	"time"

	"github.com/cloudypatil/portfolio/pkg/components"
	"github.com/cloudypatil/portfolio/pkg/ecs"
)

// GlitchTextSystem 悬停触发故障文字动画
//
// 指针进入文字区域的上升沿触发一次；停留在区域内不会重复触发。
type GlitchTextSystem struct {
	entityManager *ecs.EntityManager
	effects       Toggle
}

// NewGlitchTextSystem 创建故障文字系统
// effects 为 nil 时效果始终开启
func NewGlitchTextSystem(em *ecs.EntityManager, effects Toggle) *GlitchTextSystem {
	return &GlitchTextSystem{
		entityManager: em,
		effects:       effects,
	}
}

// Update 处理悬停触发并推进所有动画
func (s *GlitchTextSystem) Update(deltaTime float64) {
	dt := time.Duration(deltaTime * float64(time.Second))
	on := enabled(s.effects)

	for _, id := range ecs.GetEntitiesWith1[*components.GlitchTextComponent](s.entityManager) {
		g, ok := ecs.GetComponent[*components.GlitchTextComponent](s.entityManager, id)
		if !ok || g.Animator == nil {
			continue
		}

		if c, ok := ecs.GetComponent[*components.ClickableComponent](s.entityManager, id); ok && c.JustEntered && on {
			g.Animator.Trigger()
			g.Triggers++
			log.Printf("[GlitchTextSystem] 触发故障动画: %s", g.Animator.Source())
		}

		g.Animator.Advance(dt)
	}
}
