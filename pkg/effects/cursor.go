package effects

import (
	"math"

	"github.com/cloudypatil/portfolio/pkg/utils"
)

// DefaultRingPeriod 外环旋转一周的时间（秒）
const DefaultRingPeriod = 10.0

// CursorFollower 自定义光标
//
// 挂载期间订阅文档级指针移动事件，每次事件同步地把圆点和外环容器
// 平移到指针位置。外环自身的旋转与位置无关，由 Advance 连续推进。
type CursorFollower struct {
	dot  TransformTarget
	ring TransformTarget

	ringPeriod float64
	ringAngle  float64

	x, y        float64
	unsubscribe func()
}

// NewCursorFollower 创建光标跟随器
//
// dot 是中心圆点，ring 是外环的位置容器；ringPeriod <= 0 使用默认值。
func NewCursorFollower(dot, ring TransformTarget, ringPeriod float64) *CursorFollower {
	if ringPeriod <= 0 {
		ringPeriod = DefaultRingPeriod
	}
	return &CursorFollower{
		dot:        dot,
		ring:       ring,
		ringPeriod: ringPeriod,
	}
}

// Mount 订阅指针移动事件；重复挂载不会重复订阅
func (c *CursorFollower) Mount(hub *utils.PointerHub) {
	if c.unsubscribe != nil || hub == nil {
		return
	}
	c.unsubscribe = hub.Subscribe(c.onMove)
}

// Unmount 取消订阅，监听者数量恢复到挂载前
func (c *CursorFollower) Unmount() {
	if c.unsubscribe == nil {
		return
	}
	c.unsubscribe()
	c.unsubscribe = nil
}

// Mounted 是否处于挂载状态
func (c *CursorFollower) Mounted() bool {
	return c.unsubscribe != nil
}

func (c *CursorFollower) onMove(e utils.PointerEvent) {
	c.x, c.y = e.X, e.Y

	t := Identity()
	t.TranslateX, t.TranslateY = e.X, e.Y
	if c.dot != nil {
		c.dot.ApplyTransform(t)
	}
	if c.ring != nil {
		c.ring.ApplyTransform(t)
	}
}

// Advance 推进外环旋转
func (c *CursorFollower) Advance(dt float64) {
	if dt <= 0 {
		return
	}
	c.ringAngle = math.Mod(c.ringAngle+dt/c.ringPeriod*2*math.Pi, 2*math.Pi)
}

// RingAngle 返回外环当前旋转角（弧度，[0, 2π)）
func (c *CursorFollower) RingAngle() float64 {
	return c.ringAngle
}

// Position 返回最后一次移动事件的位置
func (c *CursorFollower) Position() (x, y float64) {
	return c.x, c.y
}
