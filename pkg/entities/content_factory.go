package entities

import (
	"time"

	"github.com/cloudypatil/portfolio/pkg/components"
	"github.com/cloudypatil/portfolio/pkg/config"
	"github.com/cloudypatil/portfolio/pkg/ecs"
	"github.com/cloudypatil/portfolio/pkg/effects"
	"github.com/cloudypatil/portfolio/pkg/utils"
)

// BodyTextScale 正文文字缩放，换行宽度按此计算
const BodyTextScale = 1.5

// GlitchOptions 把配置转换为故障动画参数
func GlitchOptions(cfg config.GlitchConfig) effects.GlitchOptions {
	return effects.GlitchOptions{
		Speed:    time.Duration(cfg.SpeedMs) * time.Millisecond,
		Alphabet: cfg.Alphabet,
	}
}

// addAnchor 给实体添加锚点组件（复制一份）
func addAnchor(em *ecs.EntityManager, id ecs.EntityID, anchor components.AnchorComponent) *components.AnchorComponent {
	a := anchor
	ecs.AddComponent(em, id, &a)
	return &a
}

// NewHeadingEntity 创建内容块标题实体
//
// glitch 非空时标题后面追加故障文字，整个锚点区域悬停触发动画。
// 返回：
//   - 标题实体ID
func NewHeadingEntity(
	em *ecs.EntityManager,
	anchor components.AnchorComponent,
	heading components.HeadingComponent,
	glitch string,
	opts effects.GlitchOptions,
) ecs.EntityID {
	id := em.CreateEntity()
	addAnchor(em, id, anchor)

	h := heading
	if h.Scale == 0 {
		h.Scale = config.TextScaleHeading
	}
	ecs.AddComponent(em, id, &h)

	if glitch != "" {
		ecs.AddComponent(em, id, &components.GlitchTextComponent{
			Animator: effects.NewGlitchAnimator(glitch, opts),
		})
		ecs.AddComponent(em, id, &components.ClickableComponent{IsEnabled: true})
	}
	return id
}

// NewTypewriterEntity 创建打字机横幅实体
func NewTypewriterEntity(
	em *ecs.EntityManager,
	anchor components.AnchorComponent,
	cfg config.TypewriterConfig,
	prefix string,
) ecs.EntityID {
	id := em.CreateEntity()
	addAnchor(em, id, anchor)
	ecs.AddComponent(em, id, &components.TypewriterComponent{
		Writer: effects.NewTypewriter(cfg.Roles, effects.TypewriterOptions{
			TypeDelay:   time.Duration(cfg.TypeDelayMs) * time.Millisecond,
			DeleteDelay: time.Duration(cfg.DeleteDelayMs) * time.Millisecond,
			Hold:        time.Duration(cfg.HoldMs) * time.Millisecond,
		}),
		Prefix: prefix,
	})
	return id
}

// wrapBody 按卡片内边距换行
func wrapBody(text string, width, scale float64) []string {
	const padding = 20.0
	return utils.WrapText(text, width-2*padding, scale)
}
