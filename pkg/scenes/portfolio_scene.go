package scenes

import (
	"errors"
	"fmt"
	"io/fs"
	"log"

	"github.com/cloudypatil/portfolio/pkg/config"
	"github.com/cloudypatil/portfolio/pkg/contact"
	"github.com/cloudypatil/portfolio/pkg/ecs"
	"github.com/cloudypatil/portfolio/pkg/game"
	"github.com/cloudypatil/portfolio/pkg/render"
	"github.com/cloudypatil/portfolio/pkg/scroll"
	"github.com/cloudypatil/portfolio/pkg/systems"
	"github.com/cloudypatil/portfolio/pkg/timeline"
	"github.com/cloudypatil/portfolio/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// PortfolioSceneID 场景管理器中使用的场景ID
const PortfolioSceneID = "portfolio"

// PortfolioOptions 创建场景所需的依赖
type PortfolioOptions struct {
	Site     *config.SiteConfig
	Settings *game.SettingsManager

	// Assets 嵌入资源（简历文件），可以为 nil
	Assets fs.FS
	// Sender 事务邮件服务，nil 时表单提交总是失败
	Sender contact.Sender
	// OpenURL 打开外部链接，nil 使用系统浏览器
	OpenURL func(string) error
	// Keys 键盘输入，nil 使用 ebiten
	Keys systems.KeySource

	Width, Height int

	// StartOffset 初始滚动偏移量，负数表示恢复上次退出时的位置
	StartOffset float64
}

// PortfolioScene 作品集页面
//
// 一个可滚动的长页面：线框 3D 背景随滚动飞行，内容块按页偏移排布，
// 右侧 HUD 导航栏，底部联系表单。
type PortfolioScene struct {
	site     *config.SiteConfig
	settings *game.SettingsManager
	keys     systems.KeySource
	openURL  func(string) error
	resume   *game.ResumeExporter

	width, height int

	// Scroll Timeline Engine
	surface *scroll.VirtualSurface
	stager  *timeline.ContentStager
	wire    *render.WireScene
	hub     *utils.PointerHub
	form    *contact.Form

	// ECS Framework and Systems
	entityManager       *ecs.EntityManager
	inputSystem         *systems.InputSystem
	cameraSystem        *systems.CameraSystem
	contentLayoutSystem *systems.ContentLayoutSystem
	navRailSystem       *systems.NavRailSystem
	glitchTextSystem    *systems.GlitchTextSystem
	cardSystem          *systems.CardSystem
	typewriterSystem    *systems.TypewriterSystem
	buttonSystem        *systems.ButtonSystem
	textInputSystem     *systems.TextInputSystem
	contactFormSystem   *systems.ContactFormSystem
	toastSystem         *systems.ToastSystem
	cursorSystem        *systems.CursorSystem
	contentRenderSystem *systems.ContentRenderSystem
	hudRenderSystem     *systems.HudRenderSystem

	formEntity ecs.EntityID
}

// NewPortfolioScene 创建作品集场景
//
// 内容块超出镜头深度预算时返回 timeline.ErrBeyondDepthBudget。
func NewPortfolioScene(opts PortfolioOptions) (*PortfolioScene, error) {
	if opts.Site == nil {
		return nil, errors.New("portfolio scene: site config is required")
	}
	if opts.Settings == nil {
		opts.Settings = game.NewSettingsManager(nil)
	}
	if opts.Keys == nil {
		opts.Keys = systems.EbitenKeys{}
	}
	if opts.OpenURL == nil {
		opts.OpenURL = utils.OpenURL
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = config.GameWindowWidth, config.GameWindowHeight
	}

	site := opts.Site
	stager, err := timeline.NewContentStager(site.Timeline, site.Blocks, site.Props)
	if err != nil {
		return nil, fmt.Errorf("portfolio scene: %w", err)
	}
	wire, err := render.NewWireScene(site.Props, opts.Width, opts.Height)
	if err != nil {
		return nil, fmt.Errorf("portfolio scene: %w", err)
	}

	s := &PortfolioScene{
		site:     site,
		settings: opts.Settings,
		keys:     opts.Keys,
		openURL:  opts.OpenURL,
		width:    opts.Width,
		height:   opts.Height,
		stager:   stager,
		wire:     wire,
		hub:      utils.NewPointerHub(),
		surface:  scroll.NewVirtualSurface(site.Timeline.PageCount, float64(opts.Height), site.Timeline.ScrollDamping),
		form: contact.NewForm(opts.Sender, contact.FormOptions{
			Timeout:    seconds(site.Contact.TimeoutSeconds),
			ResetAfter: seconds(site.Contact.ResetSeconds),
		}),
		entityManager: ecs.NewEntityManager(),
	}
	if opts.Assets != nil {
		s.resume = game.NewResumeExporter(opts.Assets, site.Resume)
	}

	s.initSystems()
	s.buildContent()
	s.applySettings()
	s.restoreOffset(opts.StartOffset)

	log.Printf("[PortfolioScene] %d pages, %d blocks, %d entities",
		site.Timeline.PageCount, len(stager.Placements()), s.entityManager.Count())
	return s, nil
}

// Update 推进一帧
func (s *PortfolioScene) Update(deltaTime float64) {
	s.handleHotkeys()

	s.surface.Update(deltaTime)
	s.wire.Update(deltaTime)
	s.cameraSystem.Update(deltaTime)
	s.contentLayoutSystem.Update(deltaTime)

	// 命中测试使用本帧的内容位置
	s.inputSystem.Update(deltaTime)

	s.navRailSystem.Update(deltaTime)
	s.glitchTextSystem.Update(deltaTime)
	s.cardSystem.Update(deltaTime)
	s.typewriterSystem.Update(deltaTime)
	s.buttonSystem.Update(deltaTime)
	s.textInputSystem.Update(deltaTime)
	s.contactFormSystem.Update(deltaTime)
	s.toastSystem.Update(deltaTime)
	s.cursorSystem.Update(deltaTime)

	s.entityManager.RemoveMarkedEntities()
}

// Draw 绘制背景、内容层和 HUD
func (s *PortfolioScene) Draw(screen *ebiten.Image) {
	s.wire.Draw(render.NewEbitenCanvas(screen))
	s.contentRenderSystem.Draw(screen)
	s.hudRenderSystem.Draw(screen)
}

// SaveOnExit 保存滚动位置和设置，没有变化时不写入存储
func (s *PortfolioScene) SaveOnExit() bool {
	s.settings.SetLastOffset(s.surface.Offset())
	if !s.settings.Dirty() {
		return true
	}
	if err := s.settings.Save(); err != nil {
		log.Printf("[PortfolioScene] Warning: 保存设置失败: %v", err)
		return false
	}
	return true
}

// Resize 跟随逻辑屏幕尺寸变化
//
// 内容列按创建时的宽度排版，视口高度、线框投影和导航栏跟随新尺寸。
// 归一化的滚动进度保持不变。
func (s *PortfolioScene) Resize(width, height int) {
	if width <= 0 || height <= 0 || (width == s.width && height == s.height) {
		return
	}
	s.width, s.height = width, height
	s.surface.Resize(float64(height))
	s.wire.Resize(width, height)
	s.navRailSystem.Layout(float64(width), float64(height))
	log.Printf("[PortfolioScene] Resize %dx%d", width, height)
}

// Surface 返回滚动容器
func (s *PortfolioScene) Surface() *scroll.VirtualSurface {
	return s.surface
}

// Form 返回联系表单
func (s *PortfolioScene) Form() *contact.Form {
	return s.form
}

// NavRail 返回导航栏系统
func (s *PortfolioScene) NavRail() *systems.NavRailSystem {
	return s.navRailSystem
}

// Wire 返回线框背景
func (s *PortfolioScene) Wire() *render.WireScene {
	return s.wire
}

// EntityManager 返回实体管理器
func (s *PortfolioScene) EntityManager() *ecs.EntityManager {
	return s.entityManager
}
