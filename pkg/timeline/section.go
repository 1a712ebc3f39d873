package timeline

import (
	"math"

	"github.com/cloudypatil/portfolio/pkg/utils"
)

// ResolveSection 把滚动偏移量映射为导航站点索引
//
// index = round(offset * (n-1))，结果限制在 [0, n-1]。
// n 与 PageCount 不相等，因此站点与滚动页之间不是均匀对应的。
func ResolveSection(offset float64, n int) int {
	if n <= 1 {
		return 0
	}
	idx := int(math.Round(utils.Clamp01(offset) * float64(n-1)))
	if idx < 0 {
		return 0
	}
	if idx > n-1 {
		return n - 1
	}
	return idx
}

// SectionTracker 边沿触发的站点索引跟踪器
//
// 每帧调用 Observe，只有索引与上一次发出的值不同时才报告变化，
// 避免导航栏在每一帧都做无意义的更新。
type SectionTracker struct {
	stops   int
	current int
	emitted bool
}

// NewSectionTracker 创建站点跟踪器
func NewSectionTracker(stops int) *SectionTracker {
	return &SectionTracker{stops: stops}
}

// Observe 观察本帧偏移量
// 返回当前索引，以及与上一次发出的索引相比是否发生了变化（首次观察总是变化）
func (t *SectionTracker) Observe(offset float64) (index int, changed bool) {
	idx := ResolveSection(offset, t.stops)
	if t.emitted && idx == t.current {
		return idx, false
	}
	t.current = idx
	t.emitted = true
	return idx, true
}

// Current 返回最后一次发出的索引
func (t *SectionTracker) Current() int {
	return t.current
}

// Stops 返回站点数量
func (t *SectionTracker) Stops() int {
	return t.stops
}

// RailFill 返回导航轨道填充比例 active/(n-1)
func RailFill(active, n int) float64 {
	if n <= 1 {
		return 0
	}
	return utils.Clamp01(float64(active) / float64(n-1))
}
