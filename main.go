package main

import (
	"flag"
	"log"

	"github.com/cloudypatil/portfolio/pkg/app"
	"github.com/cloudypatil/portfolio/pkg/config"
	"github.com/cloudypatil/portfolio/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	verbose := flag.Bool("verbose", false, "启用详细日志输出")
	configPath := flag.String("config", "", "站点配置覆盖文件（YAML）")
	offset := flag.Float64("offset", -1, "初始滚动偏移量 [0, 1]，负数恢复上次位置")
	flag.Parse()

	// assetsFS 和 dataFS 在 embed.go 中声明
	embedded.Init(assetsFS, dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:     *verbose,
		ConfigPath:  *configPath,
		StartOffset: *offset,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(gameApp); err != nil && err != ebiten.Termination {
		log.Fatal(err)
	}

	// 窗口关闭时保存滚动位置和设置
	if !gameApp.GetSceneManager().SaveCurrent() {
		log.Printf("[Main] Warning: 退出时保存失败")
	}
}
