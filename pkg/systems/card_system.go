package systems

import (
	"log"

	"github.com/cloudypatil/portfolio/pkg/components"
	"github.com/cloudypatil/portfolio/pkg/ecs"
)

// CardSystem 卡片悬停倾斜和链接点击
type CardSystem struct {
	entityManager *ecs.EntityManager
	pointer       PointerSource
	effects       Toggle
	openURL       func(string) error
}

// NewCardSystem 创建卡片系统
// openURL 为 nil 时忽略链接点击
func NewCardSystem(em *ecs.EntityManager, pointer PointerSource, effects Toggle, openURL func(string) error) *CardSystem {
	return &CardSystem{
		entityManager: em,
		pointer:       pointer,
		effects:       effects,
		openURL:       openURL,
	}
}

// Update 更新卡片倾斜并处理点击
func (s *CardSystem) Update(deltaTime float64) {
	on := enabled(s.effects)
	var px, py float64
	if s.pointer != nil {
		st := s.pointer.State()
		px, py = float64(st.X), float64(st.Y)
	}

	for _, id := range ecs.GetEntitiesWith2[*components.CardComponent, *components.ClickableComponent](s.entityManager) {
		card, _ := ecs.GetComponent[*components.CardComponent](s.entityManager, id)
		c, _ := ecs.GetComponent[*components.ClickableComponent](s.entityManager, id)

		if card.Tilt != nil {
			if c.IsHovered && on {
				card.Tilt.Hover(px-c.X, py-c.Y, c.Width, c.Height)
			} else {
				card.Tilt.Leave()
			}
			card.Tilt.Update(deltaTime)
		}

		if c.JustClicked && card.URL != "" && s.openURL != nil {
			if err := s.openURL(card.URL); err != nil {
				log.Printf("[CardSystem] Warning: %v", err)
			}
		}
	}
}
