package systems

import (
	"time"

	"github.com/cloudypatil/portfolio/pkg/components"
	"github.com/cloudypatil/portfolio/pkg/ecs"
)

// TypewriterSystem 推进打字机横幅
type TypewriterSystem struct {
	entityManager *ecs.EntityManager
}

// NewTypewriterSystem 创建打字机系统
func NewTypewriterSystem(em *ecs.EntityManager) *TypewriterSystem {
	return &TypewriterSystem{entityManager: em}
}

// Update 推进所有打字机
func (s *TypewriterSystem) Update(deltaTime float64) {
	dt := time.Duration(deltaTime * float64(time.Second))
	for _, id := range ecs.GetEntitiesWith1[*components.TypewriterComponent](s.entityManager) {
		tw, ok := ecs.GetComponent[*components.TypewriterComponent](s.entityManager, id)
		if ok && tw.Writer != nil {
			tw.Writer.Advance(dt)
		}
	}
}
