// Package scroll 实现虚拟滚动容器
//
// 页面由 Pages 个视口高度组成，可滚动范围为 (Pages-1) * 视口高度 像素。
// 滚动容器对外暴露归一化偏移量 Offset() ∈ [0, 1]，并接受 ScrollTo 命令。
package scroll

import (
	"log"
	"math"

	"github.com/cloudypatil/portfolio/pkg/utils"
)

// Behavior 滚动方式
type Behavior int

const (
	// BehaviorInstant 立即跳到目标位置（滚轮、键盘）
	BehaviorInstant Behavior = iota
	// BehaviorSmooth 平滑滚动到目标位置（导航点击）
	BehaviorSmooth
)

func (b Behavior) String() string {
	if b == BehaviorSmooth {
		return "smooth"
	}
	return "instant"
}

// Surface 滚动容器接口
//
// 时间轴引擎只读取 Offset 并发出 ScrollTo，不关心容器的具体实现。
type Surface interface {
	// Offset 当前归一化滚动进度 [0, 1]
	Offset() float64
	// Pages 总页数
	Pages() int
	// ViewportHeight 视口高度（像素）
	ViewportHeight() float64
	// ScrollTo 滚动到 pixelTop 像素处；新命令覆盖尚未完成的旧命令
	ScrollTo(pixelTop float64, behavior Behavior)
}

// smoothScrollDuration 平滑滚动持续时间（秒）
const smoothScrollDuration = 0.6

// VirtualSurface 帧驱动的虚拟滚动容器
//
// 三层数值：
//   - target: 最新命令要求的像素位置
//   - scrollTop: 实际像素位置（平滑滚动时按缓动曲线趋近 target）
//   - offset: 对外暴露的归一化进度，按 damping 时间常数向 scrollTop/range 趋近
type VirtualSurface struct {
	pages          int
	viewportHeight float64
	damping        float64

	scrollTop float64
	target    float64

	// 平滑滚动动画状态
	animating bool
	animFrom  float64
	animTime  float64

	offset float64
}

// NewVirtualSurface 创建虚拟滚动容器
//
// 参数:
//   - pages: 总页数（至少为 1）
//   - viewportHeight: 视口高度（像素）
//   - damping: 偏移量平滑时间（秒），0 表示不平滑
func NewVirtualSurface(pages int, viewportHeight, damping float64) *VirtualSurface {
	if pages < 1 {
		pages = 1
	}
	if viewportHeight < 0 {
		viewportHeight = 0
	}
	return &VirtualSurface{
		pages:          pages,
		viewportHeight: viewportHeight,
		damping:        damping,
	}
}

// Offset 返回平滑后的归一化偏移量
func (s *VirtualSurface) Offset() float64 {
	return s.offset
}

// RawOffset 返回未平滑的归一化偏移量 scrollTop / range
func (s *VirtualSurface) RawOffset() float64 {
	r := s.ScrollRange()
	if r <= 0 {
		return 0
	}
	return utils.Clamp01(s.scrollTop / r)
}

// Pages 返回总页数
func (s *VirtualSurface) Pages() int {
	return s.pages
}

// ViewportHeight 返回视口高度
func (s *VirtualSurface) ViewportHeight() float64 {
	return s.viewportHeight
}

// ScrollRange 返回可滚动的像素范围 (pages-1) * viewportHeight
func (s *VirtualSurface) ScrollRange() float64 {
	return float64(s.pages-1) * s.viewportHeight
}

// ScrollTop 返回当前像素位置
func (s *VirtualSurface) ScrollTop() float64 {
	return s.scrollTop
}

// Target 返回最新命令的目标像素位置
func (s *VirtualSurface) Target() float64 {
	return s.target
}

// Animating 是否正在平滑滚动
func (s *VirtualSurface) Animating() bool {
	return s.animating
}

// ScrollTo 滚动到指定像素位置（超出范围会被限制）
//
// 新命令直接替换正在进行的平滑滚动，不排队，没有完成回调。
func (s *VirtualSurface) ScrollTo(pixelTop float64, behavior Behavior) {
	if math.IsNaN(pixelTop) {
		return
	}
	s.target = utils.Clamp(pixelTop, 0, s.ScrollRange())

	if behavior == BehaviorSmooth && s.target != s.scrollTop {
		s.animating = true
		s.animFrom = s.scrollTop
		s.animTime = 0
		log.Printf("[Scroll] smooth scroll %.0f -> %.0f", s.animFrom, s.target)
		return
	}

	s.animating = false
	s.scrollTop = s.target
}

// ScrollBy 相对当前目标滚动 delta 像素（立即生效）
func (s *VirtualSurface) ScrollBy(delta float64) {
	if delta == 0 {
		return
	}
	base := s.scrollTop
	if s.animating {
		base = s.target
	}
	s.ScrollTo(base+delta, BehaviorInstant)
}

// Update 推进平滑滚动和偏移量平滑
func (s *VirtualSurface) Update(dt float64) {
	if dt < 0 {
		dt = 0
	}

	if s.animating {
		s.animTime += dt
		p := utils.Clamp01(s.animTime / smoothScrollDuration)
		s.scrollTop = utils.Lerp(s.animFrom, s.target, utils.EaseOutCubic(p))
		if p >= 1 {
			s.scrollTop = s.target
			s.animating = false
		}
	}

	s.offset = utils.Clamp01(utils.Damp(s.offset, s.RawOffset(), s.damping, dt))
}

// Resize 修改视口高度，保持归一化进度不变
func (s *VirtualSurface) Resize(viewportHeight float64) {
	if viewportHeight <= 0 || viewportHeight == s.viewportHeight {
		return
	}
	raw := s.RawOffset()
	targetRatio := 0.0
	if r := s.ScrollRange(); r > 0 {
		targetRatio = s.target / r
	}

	s.viewportHeight = viewportHeight
	s.scrollTop = raw * s.ScrollRange()
	s.target = targetRatio * s.ScrollRange()
	if s.animating {
		s.animFrom = s.scrollTop
		s.animTime = 0
	}
}

// JumpToOffset 立即跳到归一化进度 o，同时跳过偏移量平滑（用于恢复上次位置）
func (s *VirtualSurface) JumpToOffset(o float64) {
	o = utils.Clamp01(o)
	s.ScrollTo(o*s.ScrollRange(), BehaviorInstant)
	s.offset = s.RawOffset()
}
