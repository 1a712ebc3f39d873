package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// SiteConfig 站点配置
//
// 包含页面内容（导航、内容块、卡片、项目）和所有效果参数。
// 默认配置嵌入在 data/site.yaml 中，可通过覆盖文件和环境变量修改（见 Load）。
type SiteConfig struct {
	Timeline     TimelineConfig       `yaml:"timeline" koanf:"timeline"`
	Nav          []NavItemConfig      `yaml:"nav" koanf:"nav"`
	Blocks       []ContentBlockConfig `yaml:"blocks" koanf:"blocks"`
	Skills       []SkillCardConfig    `yaml:"skills" koanf:"skills"`
	Projects     []ProjectConfig      `yaml:"projects" koanf:"projects"`
	Achievements []AchievementConfig  `yaml:"achievements" koanf:"achievements"`
	Props        []PropConfig         `yaml:"props" koanf:"props"`
	Typewriter   TypewriterConfig     `yaml:"typewriter" koanf:"typewriter"`
	Glitch       GlitchConfig         `yaml:"glitch" koanf:"glitch"`
	Cursor       CursorConfig         `yaml:"cursor" koanf:"cursor"`
	Contact      ContactConfig        `yaml:"contact" koanf:"contact"`
	Links        LinksConfig          `yaml:"links" koanf:"links"`
	Resume       ResumeConfig         `yaml:"resume" koanf:"resume"`
}

// NavItemConfig 导航站点（静态、不可变）
type NavItemConfig struct {
	// Label 显示文字，如 "01 // IDENTITY"
	Label string `yaml:"label" koanf:"label"`

	// Page 点击后滚动到的页码（滚动目标 = Page * 视口高度）
	Page int `yaml:"page" koanf:"page"`
}

// ContentBlockKind 内容块类型
type ContentBlockKind string

const (
	BlockHero         ContentBlockKind = "hero"
	BlockSkills       ContentBlockKind = "skills"
	BlockProject      ContentBlockKind = "project"
	BlockAchievements ContentBlockKind = "achievements"
	BlockContact      ContentBlockKind = "contact"
)

// ContentBlockConfig 内容块
//
// Page 是内容块顶部在滚动长度上的位置，以视口高度为单位（2.6 表示第 260% 视口高度处）
type ContentBlockConfig struct {
	ID    string           `yaml:"id" koanf:"id"`
	Kind  ContentBlockKind `yaml:"kind" koanf:"kind"`
	Page  float64          `yaml:"page" koanf:"page"`
	Title string           `yaml:"title" koanf:"title"`
	// Glitch 标题后面带故障效果的词，悬停时触发
	Glitch  string   `yaml:"glitch" koanf:"glitch"`
	Lines   []string `yaml:"lines" koanf:"lines"`
	Project string   `yaml:"project" koanf:"project"`
}

// SkillCardConfig 技能卡
type SkillCardConfig struct {
	Title string   `yaml:"title" koanf:"title"`
	Color string   `yaml:"color" koanf:"color"`
	Items []string `yaml:"items" koanf:"items"`
}

// ProjectConfig 项目卡
type ProjectConfig struct {
	ID          string   `yaml:"id" koanf:"id"`
	Title       string   `yaml:"title" koanf:"title"`
	CodeName    string   `yaml:"codeName" koanf:"codeName"`
	Description string   `yaml:"description" koanf:"description"`
	Tags        []string `yaml:"tags" koanf:"tags"`
	Color       string   `yaml:"color" koanf:"color"`
	Align       string   `yaml:"align" koanf:"align"` // "left" 或 "right"
}

// AchievementConfig 成就卡
type AchievementConfig struct {
	Title   string `yaml:"title" koanf:"title"`
	Value   string `yaml:"value" koanf:"value"`
	Subtext string `yaml:"subtext" koanf:"subtext"`
	Color   string `yaml:"color" koanf:"color"`
	// URL 非空时卡片可点击，在浏览器中打开
	URL string `yaml:"url" koanf:"url"`
}

// PropConfig 3D 场景装饰物
type PropConfig struct {
	// Shape 几何体类型：box, icosahedron, sphere, cylinder, octahedron, torus, ring
	Shape    string     `yaml:"shape" koanf:"shape"`
	Position [3]float64 `yaml:"position" koanf:"position"`
	Rotation [3]float64 `yaml:"rotation" koanf:"rotation"`
	Size     float64    `yaml:"size" koanf:"size"`
	Color    string     `yaml:"color" koanf:"color"`
	// Spin 每秒自转角速度（弧度），为零则静止
	Spin [3]float64 `yaml:"spin" koanf:"spin"`
}

// TypewriterConfig 打字机横幅
type TypewriterConfig struct {
	Roles         []string `yaml:"roles" koanf:"roles"`
	TypeDelayMs   int      `yaml:"typeDelayMs" koanf:"typeDelayMs"`
	DeleteDelayMs int      `yaml:"deleteDelayMs" koanf:"deleteDelayMs"`
	HoldMs        int      `yaml:"holdMs" koanf:"holdMs"`
}

// GlitchConfig 故障文字效果
type GlitchConfig struct {
	SpeedMs  int    `yaml:"speedMs" koanf:"speedMs"`
	Alphabet string `yaml:"alphabet" koanf:"alphabet"`
}

// CursorConfig 自定义光标
type CursorConfig struct {
	DotRadius         float64 `yaml:"dotRadius" koanf:"dotRadius"`
	RingRadius        float64 `yaml:"ringRadius" koanf:"ringRadius"`
	RingPeriodSeconds float64 `yaml:"ringPeriodSeconds" koanf:"ringPeriodSeconds"`
}

// ContactConfig 事务邮件服务配置（EmailJS）
type ContactConfig struct {
	Endpoint       string  `yaml:"endpoint" koanf:"endpoint"`
	ServiceID      string  `yaml:"serviceId" koanf:"serviceId"`
	TemplateID     string  `yaml:"templateId" koanf:"templateId"`
	PublicKey      string  `yaml:"publicKey" koanf:"publicKey"`
	TimeoutSeconds float64 `yaml:"timeoutSeconds" koanf:"timeoutSeconds"`
	ResetSeconds   float64 `yaml:"resetSeconds" koanf:"resetSeconds"`
}

// LinksConfig 外部链接
type LinksConfig struct {
	GitHub   string `yaml:"github" koanf:"github"`
	LinkedIn string `yaml:"linkedin" koanf:"linkedin"`
}

// ResumeConfig 简历文件
type ResumeConfig struct {
	// Asset 嵌入资源路径
	Asset string `yaml:"asset" koanf:"asset"`
	// FileName 下载后保存的文件名
	FileName string `yaml:"fileName" koanf:"fileName"`
	// DownloadDir 下载目录，为空时使用 ~/Downloads
	DownloadDir string `yaml:"downloadDir" koanf:"downloadDir"`
}

// ParseSiteConfig 解析 YAML 格式的站点配置并验证
func ParseSiteConfig(data []byte) (*SiteConfig, error) {
	var cfg SiteConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse site config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid site config: %w", err)
	}
	return &cfg, nil
}

// Validate 验证站点配置
//
// 深度预算相关的跨组件约束（内容块不能超出镜头可达范围）
// 由 timeline.NewContentStager 检查，这里只做结构性检查。
func (c *SiteConfig) Validate() error {
	if err := c.Timeline.Validate(); err != nil {
		return fmt.Errorf("timeline: %w", err)
	}

	if len(c.Nav) == 0 {
		return fmt.Errorf("nav must contain at least one stop")
	}
	for i, item := range c.Nav {
		if item.Label == "" {
			return fmt.Errorf("nav[%d]: label is required", i)
		}
		if item.Page < 0 || item.Page > c.Timeline.PageCount-1 {
			return fmt.Errorf("nav[%d] %q: page %d outside [0, %d]", i, item.Label, item.Page, c.Timeline.PageCount-1)
		}
	}

	projects := make(map[string]bool, len(c.Projects))
	for _, p := range c.Projects {
		projects[p.ID] = true
		if _, err := ParseHexColor(p.Color); err != nil {
			return fmt.Errorf("project %q: %w", p.ID, err)
		}
	}

	for i, b := range c.Blocks {
		switch b.Kind {
		case BlockHero, BlockSkills, BlockAchievements, BlockContact:
		case BlockProject:
			if !projects[b.Project] {
				return fmt.Errorf("blocks[%d] %q: unknown project %q", i, b.ID, b.Project)
			}
		default:
			return fmt.Errorf("blocks[%d] %q: unknown kind %q", i, b.ID, b.Kind)
		}
	}

	for _, s := range c.Skills {
		if _, err := ParseHexColor(s.Color); err != nil {
			return fmt.Errorf("skill card %q: %w", s.Title, err)
		}
	}
	for _, a := range c.Achievements {
		if _, err := ParseHexColor(a.Color); err != nil {
			return fmt.Errorf("achievement %q: %w", a.Title, err)
		}
	}
	for i, p := range c.Props {
		if _, err := ParseHexColor(p.Color); err != nil {
			return fmt.Errorf("props[%d]: %w", i, err)
		}
		if p.Size <= 0 {
			return fmt.Errorf("props[%d]: size must be > 0", i)
		}
	}

	if c.Glitch.SpeedMs <= 0 {
		return fmt.Errorf("glitch: speedMs must be > 0")
	}
	if c.Glitch.Alphabet == "" {
		return fmt.Errorf("glitch: alphabet is required")
	}
	if c.Typewriter.TypeDelayMs <= 0 || c.Typewriter.DeleteDelayMs <= 0 {
		return fmt.Errorf("typewriter: delays must be > 0")
	}
	if c.Typewriter.HoldMs < 0 {
		return fmt.Errorf("typewriter: holdMs must be >= 0")
	}
	if c.Cursor.RingPeriodSeconds <= 0 {
		return fmt.Errorf("cursor: ringPeriodSeconds must be > 0")
	}
	if c.Contact.ResetSeconds <= 0 {
		return fmt.Errorf("contact: resetSeconds must be > 0")
	}

	return nil
}

// ProjectByID 查找项目配置
func (c *SiteConfig) ProjectByID(id string) (ProjectConfig, bool) {
	for _, p := range c.Projects {
		if p.ID == id {
			return p, true
		}
	}
	return ProjectConfig{}, false
}

// ParseHexColor 解析 "#rrggbb" 格式的颜色
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid color %q: expected #rrggbb", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// MustHexColor 解析颜色，失败时返回霓虹青色
// 只用于已经通过 Validate 的配置
func MustHexColor(s string) color.RGBA {
	c, err := ParseHexColor(s)
	if err != nil {
		return NeonCyan
	}
	return c
}
