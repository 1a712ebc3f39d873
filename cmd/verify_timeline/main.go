// verify_timeline 打印滚动偏移量到镜头位姿、导航站点的对照表
//
// 用于调整 site.yaml 中的 timeline 参数。
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"github.com/cloudypatil/portfolio/pkg/config"
	"github.com/cloudypatil/portfolio/pkg/timeline"
)

var (
	sitePath = flag.String("site", "data/site.yaml", "默认站点配置")
	overlay  = flag.String("config", "", "站点配置覆盖文件")
	steps    = flag.Int("steps", 12, "偏移量采样数")
	frames   = flag.Int("frames", 30, "阻尼帧数")
)

func main() {
	flag.Parse()

	defaults, err := os.ReadFile(*sitePath)
	if err != nil {
		log.Fatalf("读取站点配置失败: %v", err)
	}
	site, err := config.Load(defaults, *overlay)
	if err != nil {
		log.Fatalf("站点配置无效: %v", err)
	}

	cfg := site.Timeline
	stager, err := timeline.NewContentStager(cfg, site.Blocks, site.Props)
	if err != nil {
		log.Fatalf("内容布局无效: %v", err)
	}

	vh := float64(config.GameWindowHeight)
	fmt.Printf("pages=%d depth=%.1f damping=%.2f stops=%d max block depth=%.1f\n\n",
		cfg.PageCount, cfg.TotalVirtualDepth, cfg.DampingFactor, len(site.Nav), stager.MaxDepth())

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "offset\ttarget z\tz@%d\tx\trot\tsection\tnav px\t\n", *frames)
	n := max(*steps, 1)
	for i := 0; i <= n; i++ {
		o := float64(i) / float64(n)
		model := timeline.NewCameraMotionModel(cfg)
		var pose timeline.CameraPose
		for f := 0; f < *frames; f++ {
			pose = model.Step(o)
		}
		section := timeline.ResolveSection(o, len(site.Nav))
		fmt.Fprintf(tw, "%.3f\t%.2f\t%.2f\t%.3f\t%.4f\t%d\t%.0f\t\n",
			o, timeline.TargetZ(cfg, o), pose.Z, pose.X, pose.RotationZ,
			section, float64(site.Nav[section].Page)*vh)
	}
	tw.Flush()

	fmt.Println()
	for _, p := range stager.Placements() {
		fmt.Printf("%-18s %-13s page %.2f depth %.1f\n", p.ID, p.Kind, p.Page, p.Depth)
	}
}
