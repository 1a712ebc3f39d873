package effects

import "math"

// 卡片倾斜预设
const (
	SkillCardMaxTilt    = 10 * math.Pi / 180
	SkillCardHoverScale = 1.05

	ProjectCardMaxTilt    = 5 * math.Pi / 180
	ProjectCardHoverScale = 1.02
)

// tiltSmoothing 倾斜跟随速度（每秒）
const tiltSmoothing = 12.0

// CardTilt 悬停时随指针倾斜的卡片
//
// 指针位于卡片中心时不倾斜，位于边缘时达到 MaxTilt；
// 离开卡片后回到单位变换。
type CardTilt struct {
	MaxTilt    float64
	HoverScale float64

	target  TransformTarget
	hovered bool

	// 当前值与目标值
	tiltX, tiltY, scale float64
	goalX, goalY, goalS float64
}

// NewCardTilt 创建卡片倾斜效果
func NewCardTilt(target TransformTarget, maxTilt, hoverScale float64) *CardTilt {
	return &CardTilt{
		MaxTilt:    maxTilt,
		HoverScale: hoverScale,
		target:     target,
		scale:      1,
		goalS:      1,
	}
}

// Hover 指针位于卡片内 (localX, localY)，卡片尺寸 w x h
func (c *CardTilt) Hover(localX, localY, w, h float64) {
	if w <= 0 || h <= 0 {
		return
	}
	// 归一化到 [-1, 1]
	nx := clampUnit((localX/w)*2 - 1)
	ny := clampUnit((localY/h)*2 - 1)

	// 指针在上方时卡片上沿后倾
	c.goalX = -ny * c.MaxTilt
	c.goalY = nx * c.MaxTilt
	c.goalS = c.HoverScale
	c.hovered = true
}

// Leave 指针离开卡片
func (c *CardTilt) Leave() {
	c.goalX, c.goalY, c.goalS = 0, 0, 1
	c.hovered = false
}

// Hovered 是否处于悬停状态
func (c *CardTilt) Hovered() bool {
	return c.hovered
}

// Update 向目标值趋近并把结果应用到目标元素
func (c *CardTilt) Update(dt float64) {
	w := 1 - math.Exp(-dt*tiltSmoothing)
	if dt <= 0 {
		w = 0
	}
	c.tiltX += (c.goalX - c.tiltX) * w
	c.tiltY += (c.goalY - c.tiltY) * w
	c.scale += (c.goalS - c.scale) * w

	if c.target != nil {
		c.target.ApplyTransform(c.Transform())
	}
}

// Transform 返回当前变换
func (c *CardTilt) Transform() Transform {
	return Transform{TiltX: c.tiltX, TiltY: c.tiltY, Scale: c.scale}
}

func clampUnit(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(-1, math.Min(1, v))
}
