// snapshot 在没有窗口的情况下渲染线框背景的静态快照
//
// 用法：
//
//	go run ./cmd/snapshot --offsets 0,0.5,1 --format webp --out build/snapshots
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cloudypatil/portfolio/pkg/config"
	"github.com/cloudypatil/portfolio/pkg/render"
	"github.com/cloudypatil/portfolio/pkg/timeline"
)

var (
	sitePath    = flag.String("site", "data/site.yaml", "默认站点配置")
	overlay     = flag.String("config", "", "站点配置覆盖文件")
	offsetsFlag = flag.String("offsets", "0,0.25,0.5,0.75,1", "逗号分隔的滚动偏移量")
	formatFlag  = flag.String("format", "webp", "输出格式: webp, png, tga")
	supersample = flag.Int("supersample", 2, "超采样倍数")
	frames      = flag.Int("frames", 240, "每个偏移量推进的帧数（镜头逐帧收敛）")
	outDir      = flag.String("out", "snapshots", "输出目录")
	width       = flag.Int("width", config.GameWindowWidth, "输出宽度")
	height      = flag.Int("height", config.GameWindowHeight, "输出高度")
)

func main() {
	flag.Parse()

	format, err := render.ParseFormat(*formatFlag)
	if err != nil {
		log.Fatal(err)
	}
	offsets, err := parseOffsets(*offsetsFlag)
	if err != nil {
		log.Fatal(err)
	}

	defaults, err := os.ReadFile(*sitePath)
	if err != nil {
		log.Fatalf("读取站点配置失败: %v", err)
	}
	site, err := config.Load(defaults, *overlay)
	if err != nil {
		log.Fatalf("站点配置无效: %v", err)
	}

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		log.Fatalf("创建输出目录失败: %v", err)
	}

	factor := max(*supersample, 1)
	for _, o := range offsets {
		path := filepath.Join(*outDir, fmt.Sprintf("offset_%03d%s", int(o*100+0.5), format.Ext()))
		if err := renderSnapshot(site, o, factor, format, path); err != nil {
			log.Fatalf("offset %.2f: %v", o, err)
		}
		fmt.Printf("offset %.2f -> %s\n", o, path)
	}
}

// renderSnapshot 从初始位姿逐帧推进到 offset 对应的位姿后渲染
func renderSnapshot(site *config.SiteConfig, offset float64, factor int, format render.Format, path string) error {
	w, h := *width*factor, *height*factor
	scene, err := render.NewWireScene(site.Props, w, h)
	if err != nil {
		return err
	}

	model := timeline.NewCameraMotionModel(site.Timeline)
	for i := 0; i < *frames; i++ {
		scene.ApplyPose(model.Step(offset))
		scene.Update(1.0 / 60.0)
	}

	canvas := render.NewRasterCanvas(w, h)
	scene.Draw(canvas)
	img := render.Downsample(canvas.Image(), factor)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render.Encode(f, img, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func parseOffsets(s string) ([]float64, error) {
	var out []float64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid offset %q: %w", part, err)
		}
		if v < 0 || v > 1 {
			return nil, fmt.Errorf("offset %v outside [0, 1]", v)
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no offsets given")
	}
	return out, nil
}
