package entities

import (
	"github.com/cloudypatil/portfolio/pkg/components"
	"github.com/cloudypatil/portfolio/pkg/config"
	"github.com/cloudypatil/portfolio/pkg/ecs"
	"github.com/cloudypatil/portfolio/pkg/effects"
)

// newCard 创建卡片实体的公共部分
// maxTilt 为 0 时卡片不倾斜
func newCard(em *ecs.EntityManager, anchor components.AnchorComponent, card *components.CardComponent, maxTilt, hoverScale float64) ecs.EntityID {
	id := em.CreateEntity()
	addAnchor(em, id, anchor)

	card.Marker = effects.NewMarker()
	if maxTilt > 0 {
		card.Tilt = effects.NewCardTilt(card.Marker, maxTilt, hoverScale)
	}
	ecs.AddComponent(em, id, card)
	ecs.AddComponent(em, id, &components.ClickableComponent{IsEnabled: true})
	return id
}

// NewSkillCardEntity 创建技能卡（悬停倾斜 ±10°）
func NewSkillCardEntity(em *ecs.EntityManager, anchor components.AnchorComponent, cfg config.SkillCardConfig) ecs.EntityID {
	return newCard(em, anchor, &components.CardComponent{
		Kind:  components.CardSkill,
		Title: cfg.Title,
		Items: cfg.Items,
		Color: config.MustHexColor(cfg.Color),
	}, effects.SkillCardMaxTilt, effects.SkillCardHoverScale)
}

// NewProjectCardEntity 创建项目卡（悬停倾斜 ±5°）
func NewProjectCardEntity(em *ecs.EntityManager, anchor components.AnchorComponent, p config.ProjectConfig) ecs.EntityID {
	return newCard(em, anchor, &components.CardComponent{
		Kind:     components.CardProject,
		Title:    p.Title,
		Subtitle: p.CodeName,
		Body:     wrapBody(p.Description, anchor.Width, BodyTextScale),
		Items:    p.Tags,
		Color:    config.MustHexColor(p.Color),
	}, effects.ProjectCardMaxTilt, effects.ProjectCardHoverScale)
}

// NewAchievementCardEntity 创建成就卡
// 带 URL 的成就卡点击后在浏览器中打开
func NewAchievementCardEntity(em *ecs.EntityManager, anchor components.AnchorComponent, a config.AchievementConfig) ecs.EntityID {
	return newCard(em, anchor, &components.CardComponent{
		Kind:     components.CardAchievement,
		Title:    a.Title,
		Subtitle: a.Value,
		Body:     wrapBody(a.Subtext, anchor.Width, 1),
		Color:    config.MustHexColor(a.Color),
		URL:      a.URL,
	}, 0, 1)
}
