package timeline

import (
	"errors"
	"fmt"
	"sort"

	"github.com/cloudypatil/portfolio/pkg/config"
)

// ErrBeyondDepthBudget 内容或装饰物超出了镜头可以到达的深度
var ErrBeyondDepthBudget = errors.New("placement beyond reachable depth")

// Placement 内容块在滚动长度上的固定位置
type Placement struct {
	ID   string
	Kind config.ContentBlockKind
	// Page 以视口高度为单位的偏移
	Page float64
	// Depth 等价的镜头深度（正值）
	Depth float64
}

// ContentStager 内容布局
//
// 纯声明式布局：每个内容块有固定的页偏移，每个场景装饰物有固定的深度。
// 深度预算来自共享的 TimelineConfig，与镜头模型使用同一个值。
type ContentStager struct {
	cfg        config.TimelineConfig
	placements []Placement
	propDepths []float64
}

// NewContentStager 创建内容布局并检查深度预算
//
// 约束：max(内容块深度) <= TotalVirtualDepth 且每个装饰物深度 <= TotalVirtualDepth，
// 否则内容会出现在镜头永远到不了的位置。
func NewContentStager(cfg config.TimelineConfig, blocks []config.ContentBlockConfig, props []config.PropConfig) (*ContentStager, error) {
	s := &ContentStager{cfg: cfg}

	for _, b := range blocks {
		if b.Page < 0 {
			return nil, fmt.Errorf("block %q: negative page offset %.2f", b.ID, b.Page)
		}
		depth := cfg.PageToDepth(b.Page)
		if b.Page > float64(cfg.PageCount-1) || depth > cfg.TotalVirtualDepth {
			return nil, fmt.Errorf("block %q at page %.2f (depth %.1f > %.1f): %w",
				b.ID, b.Page, depth, cfg.TotalVirtualDepth, ErrBeyondDepthBudget)
		}
		s.placements = append(s.placements, Placement{
			ID:    b.ID,
			Kind:  b.Kind,
			Page:  b.Page,
			Depth: depth,
		})
	}

	for i, p := range props {
		depth := -p.Position[2]
		if depth > cfg.TotalVirtualDepth {
			return nil, fmt.Errorf("prop %d (%s) at depth %.1f > %.1f: %w",
				i, p.Shape, depth, cfg.TotalVirtualDepth, ErrBeyondDepthBudget)
		}
		s.propDepths = append(s.propDepths, depth)
	}

	sort.SliceStable(s.placements, func(i, j int) bool {
		return s.placements[i].Page < s.placements[j].Page
	})
	return s, nil
}

// Placements 返回按页偏移排序的内容块位置
func (s *ContentStager) Placements() []Placement {
	return s.placements
}

// Placement 按 ID 查找内容块位置
func (s *ContentStager) Placement(id string) (Placement, bool) {
	for _, p := range s.placements {
		if p.ID == id {
			return p, true
		}
	}
	return Placement{}, false
}

// MaxDepth 返回所有内容块和装饰物中的最大深度
func (s *ContentStager) MaxDepth() float64 {
	max := 0.0
	for _, p := range s.placements {
		if p.Depth > max {
			max = p.Depth
		}
	}
	for _, d := range s.propDepths {
		if d > max {
			max = d
		}
	}
	return max
}

// ScreenY 返回内容块顶部的屏幕 Y 坐标
// 内容层随滚动像素平移：y = page * viewportHeight - scrollTop
func ScreenY(page, scrollTop, viewportHeight float64) float64 {
	return page*viewportHeight - scrollTop
}

// IsVisible 判断高度为 extent 的内容块是否与视口相交
func IsVisible(page, scrollTop, viewportHeight, extent float64) bool {
	y := ScreenY(page, scrollTop, viewportHeight)
	return y+extent > 0 && y < viewportHeight
}
