// Package app 提供应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math"

	"github.com/cloudypatil/portfolio/pkg/config"
	"github.com/cloudypatil/portfolio/pkg/contact"
	"github.com/cloudypatil/portfolio/pkg/embedded"
	"github.com/cloudypatil/portfolio/pkg/game"
	"github.com/cloudypatil/portfolio/pkg/scenes"
	"github.com/cloudypatil/portfolio/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// AppName gdata 存储使用的应用名
const AppName = "cloudypatil_portfolio"

// DefaultSiteConfigPath 嵌入的默认站点配置
const DefaultSiteConfigPath = "data/site.yaml"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 站点配置覆盖文件，为空则只使用嵌入的默认配置
	ConfigPath string
	// StartOffset 初始滚动偏移量 [0, 1]，负数表示恢复上次退出时的位置
	StartOffset float64
}

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	settings                 *game.SettingsManager
	verbose                  bool
	width, height            int     // 当前逻辑屏幕尺寸
	sinceAutosave            float64 // 距上次定期保存的秒数
	pendingWindowSizeReset   bool    // 延迟设置窗口大小标志
	windowSizeResetCountdown int     // 延迟帧数
}

// NewApp 创建并初始化应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	defaults, err := embedded.ReadFile(DefaultSiteConfigPath)
	if err != nil {
		return nil, fmt.Errorf("默认站点配置读取失败: %w", err)
	}
	// 首次加载时校验一次，避免窗口打开后才发现配置错误
	if _, err := config.Load(defaults, cfg.ConfigPath); err != nil {
		return nil, fmt.Errorf("站点配置加载失败: %w", err)
	}

	settings := game.NewSettingsManager(openStorage())
	if settings.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	a := &App{
		sceneManager: game.NewSceneManager(),
		settings:     settings,
		verbose:      cfg.Verbose,
		width:        config.GameWindowWidth,
		height:       config.GameWindowHeight,
	}

	startOffset := cfg.StartOffset
	a.sceneManager.SetSceneFactory(func(sceneID string) (game.Scene, error) {
		if sceneID != scenes.PortfolioSceneID {
			return nil, fmt.Errorf("unknown scene %q", sceneID)
		}
		// 重新加载时读取覆盖文件的最新内容
		site, err := config.Load(defaults, cfg.ConfigPath)
		if err != nil {
			return nil, err
		}
		scene, err := scenes.NewPortfolioScene(scenes.PortfolioOptions{
			Site:        site,
			Settings:    settings,
			Assets:      embedded.FS(),
			Sender:      contact.NewEmailJSClient(site.Contact),
			Width:       a.width,
			Height:      a.height,
			StartOffset: startOffset,
		})
		if err != nil {
			return nil, err
		}
		// 之后的重新加载恢复到退出时的位置
		startOffset = -1
		return scene, nil
	})

	if !a.sceneManager.Load(scenes.PortfolioSceneID) {
		return nil, fmt.Errorf("场景创建失败: %s", scenes.PortfolioSceneID)
	}
	log.Printf("[App] 初始化完成 (persistent=%v)", settings.Persistent())
	return a, nil
}

// openStorage 打开 gdata 存储，失败时返回 nil（设置只保存在内存中）
func openStorage() *gdata.Manager {
	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[App] Warning: 存储目录不可用: %v", err)
		return nil
	}
	m, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		log.Printf("[App] Warning: gdata 初始化失败，设置不会持久化: %v", err)
		return nil
	}
	log.Printf("[App] 设置存储目录: %s", utils.GetStoragePath())
	return m
}

// Update 更新逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		isFullscreen := ebiten.IsFullscreen()
		if isFullscreen {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
		a.settings.SetFullscreen(!isFullscreen)
	}

	// F5 重新读取配置覆盖文件
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		a.sceneManager.Reload()
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	a.autosave(deltaTime)
	return nil
}

// autosave 定期保存滚动位置
// 移动端没有窗口关闭回调，进程在后台可能被直接结束
func (a *App) autosave(deltaTime float64) {
	a.sinceAutosave += deltaTime
	if a.sinceAutosave < config.AutosaveIntervalSeconds {
		return
	}
	a.sinceAutosave = 0
	if !a.sceneManager.SaveCurrent() {
		log.Printf("[App] Warning: 定期保存失败")
	}
}

// Draw 绘制画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(config.VoidBlack)
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
// 宽度固定，高度跟随窗口宽高比，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := LogicalSize(outsideWidth, outsideHeight)
	if w != a.width || h != a.height {
		a.width, a.height = w, h
		a.sceneManager.Resize(w, h)
	}
	return w, h
}

// LogicalSize 根据窗口尺寸计算逻辑屏幕尺寸
//
// 窗口尺寸未知时返回默认尺寸。
func LogicalSize(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return config.GameWindowWidth, config.GameWindowHeight
	}
	h := int(math.Round(float64(config.GameWindowWidth) * float64(outsideHeight) / float64(outsideWidth)))
	h = max(config.MinLogicalHeight, min(h, config.MaxLogicalHeight))
	return config.GameWindowWidth, h
}

// GetSceneManager 返回场景管理器
// 用于在窗口关闭时保存滚动位置和设置
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
