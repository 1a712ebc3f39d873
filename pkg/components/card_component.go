package components

import (
	"image/color"

	"github.com/cloudypatil/portfolio/pkg/effects"
)

// CardKind 卡片类型
type CardKind int

const (
	CardSkill CardKind = iota
	CardProject
	CardAchievement
)

// CardComponent 全息卡片（技能卡、项目卡、成就卡）
type CardComponent struct {
	Kind CardKind

	Title    string
	Subtitle string   // 项目代号 / 成就数值
	Body     []string // 已换行的描述
	Items    []string // 技能列表或项目标签
	Color    color.RGBA

	// Tilt 悬停倾斜效果，成就卡为 nil
	Tilt *effects.CardTilt
	// Marker Tilt 的变换输出，渲染时读取
	Marker *effects.Marker

	// URL 非空时点击在浏览器中打开
	URL string
}
