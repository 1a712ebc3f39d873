package utils

// PointerEvent 指针移动事件（视口像素坐标）
type PointerEvent struct {
	X, Y float64
}

// PointerListener 指针移动监听函数
type PointerListener func(PointerEvent)

type pointerSubscription struct {
	id int
	fn PointerListener
}

// PointerHub 文档级指针移动事件分发器
//
// Ebitengine 没有事件回调，输入需要每帧轮询。PointerHub 把轮询结果
// 转换为"移动事件"，供光标跟随等组件订阅。所有调用都发生在帧循环中，
// 不需要加锁。
type PointerHub struct {
	subs   []pointerSubscription
	nextID int

	lastX, lastY float64
	hasLast      bool
}

// NewPointerHub 创建指针事件分发器
func NewPointerHub() *PointerHub {
	return &PointerHub{}
}

// Subscribe 注册监听函数
//
// 返回取消订阅函数；重复调用取消函数是安全的。
func (h *PointerHub) Subscribe(fn PointerListener) (unsubscribe func()) {
	h.nextID++
	id := h.nextID
	h.subs = append(h.subs, pointerSubscription{id: id, fn: fn})

	return func() {
		for i, s := range h.subs {
			if s.id == id {
				h.subs = append(h.subs[:i], h.subs[i+1:]...)
				return
			}
		}
	}
}

// ListenerCount 返回当前监听者数量
func (h *PointerHub) ListenerCount() int {
	return len(h.subs)
}

// Publish 立即向所有监听者分发移动事件
func (h *PointerHub) Publish(x, y float64) {
	h.lastX, h.lastY, h.hasLast = x, y, true

	// 复制一份，监听者可以在回调中取消订阅
	subs := make([]pointerSubscription, len(h.subs))
	copy(subs, h.subs)
	for _, s := range subs {
		s.fn(PointerEvent{X: x, Y: y})
	}
}

// Poll 提交本帧轮询到的指针位置，只有位置变化时才分发事件
//
// 返回是否分发了事件。
func (h *PointerHub) Poll(x, y int) bool {
	fx, fy := float64(x), float64(y)
	if h.hasLast && fx == h.lastX && fy == h.lastY {
		return false
	}
	h.Publish(fx, fy)
	return true
}

// Last 返回最后一次分发的位置
func (h *PointerHub) Last() (x, y float64, ok bool) {
	return h.lastX, h.lastY, h.hasLast
}
