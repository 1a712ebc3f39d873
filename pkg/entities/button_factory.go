package entities

import (
	"image/color"

	"github.com/cloudypatil/portfolio/pkg/components"
	"github.com/cloudypatil/portfolio/pkg/ecs"
)

// NewButtonEntity 创建文字按钮实体
//
// 参数：
//   - em: 实体管理器
//   - anchor: 按钮在内容层上的位置和尺寸
//   - label: 按钮文字
//   - clr: 描边/填充颜色
//   - filled: 实心按钮
//   - onClick: 点击回调函数
//
// 返回：
//   - 按钮实体ID
func NewButtonEntity(
	em *ecs.EntityManager,
	anchor components.AnchorComponent,
	label string,
	clr color.RGBA,
	filled bool,
	onClick func(),
) ecs.EntityID {
	id := em.CreateEntity()
	addAnchor(em, id, anchor)

	ecs.AddComponent(em, id, &components.ButtonComponent{
		Label:   label,
		Color:   clr,
		Filled:  filled,
		OnClick: onClick,
	})

	ecs.AddComponent(em, id, &components.ClickableComponent{IsEnabled: true})
	return id
}
