package scenes

import (
	"image/color"
	"log"
	"time"

	"github.com/cloudypatil/portfolio/pkg/components"
	"github.com/cloudypatil/portfolio/pkg/config"
	"github.com/cloudypatil/portfolio/pkg/ecs"
	"github.com/cloudypatil/portfolio/pkg/entities"
	"github.com/cloudypatil/portfolio/pkg/systems"
	"github.com/cloudypatil/portfolio/pkg/timeline"
	"github.com/cloudypatil/portfolio/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// 内容布局常量（像素）
const (
	heroHeadingOffsetY = 180.0
	heroWidth          = 900.0
	linkButtonWidth    = 140.0
	linkButtonHeight   = 40.0
	buttonGap          = 16.0

	sectionHeadingOffsetY = 40.0
	skillCardsOffsetY     = 220.0
	skillCardGap          = 40.0
	projectOffsetY        = 120.0

	achievementWidth   = 480.0
	achievementHeight  = 120.0
	achievementGap     = 40.0
	achievementOffsetY = 160.0
	dossierButtonWidth = 360.0

	formOffsetY = 120.0
)

// setCursorMode 切换系统光标（测试时替换）
var setCursorMode = ebiten.SetCursorMode

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// initSystems 创建所有系统，顺序与 Update 中的调用顺序一致
func (s *PortfolioScene) initSystems() {
	em := s.entityManager
	effectsOn := func() bool { return s.settings.GetSettings().EffectsEnabled }

	s.inputSystem = systems.NewInputSystem(em, s.surface, s.hub, s.keys)
	s.cameraSystem = systems.NewCameraSystem(s.surface, timeline.NewCameraMotionModel(s.site.Timeline), s.wire)
	s.contentLayoutSystem = systems.NewContentLayoutSystem(em, s.surface)
	s.navRailSystem = systems.NewNavRailSystem(em, s.surface, s.site.Nav, float64(s.width), float64(s.height))
	s.glitchTextSystem = systems.NewGlitchTextSystem(em, effectsOn)
	s.cardSystem = systems.NewCardSystem(em, s.inputSystem, effectsOn, s.openURL)
	s.typewriterSystem = systems.NewTypewriterSystem(em)
	s.buttonSystem = systems.NewButtonSystem(em)
	s.textInputSystem = systems.NewTextInputSystem(em, s.form, s.keys, s.inputSystem)
	s.toastSystem = systems.NewToastSystem(em)
	s.contactFormSystem = systems.NewContactFormSystem(em, s.toastSystem)
	s.cursorSystem = systems.NewCursorSystem(em, s.hub, s.site.Cursor)
	s.contentRenderSystem = systems.NewContentRenderSystem(em)
	s.hudRenderSystem = systems.NewHudRenderSystem(em, s.navRailSystem, s.toastSystem, s.cursorSystem)
}

// buildContent 按内容块创建实体
func (s *PortfolioScene) buildContent() {
	for _, b := range s.site.Blocks {
		p, ok := s.stager.Placement(b.ID)
		if !ok {
			continue
		}
		switch b.Kind {
		case config.BlockHero:
			s.buildHero(b, p.Page)
		case config.BlockSkills:
			s.buildSkills(b, p.Page)
		case config.BlockProject:
			s.buildProject(b, p.Page)
		case config.BlockAchievements:
			s.buildAchievements(b, p.Page)
		case config.BlockContact:
			s.buildContact(b, p.Page)
		}
	}
}

// headingHeight 标题加正文的总高度，与 ContentRenderSystem 的排版一致
func headingHeight(scale float64, lines int) float64 {
	h := utils.LineHeight(scale)
	if lines > 0 {
		h += 16 + float64(lines)*(utils.LineHeight(entities.BodyTextScale)+4)
	}
	return h
}

func (s *PortfolioScene) sectionHeading(b config.ContentBlockConfig, page float64, offsetY float64) ecs.EntityID {
	return entities.NewHeadingEntity(s.entityManager,
		components.AnchorComponent{
			Page:    page,
			X:       config.ContentMarginX,
			OffsetY: offsetY,
			Width:   float64(s.width) - 2*config.ContentMarginX,
			Height:  utils.LineHeight(config.TextScaleHeading),
		},
		components.HeadingComponent{
			Title:       b.Title,
			Color:       config.SoftWhite,
			AccentColor: config.NeonCyan,
			Align:       components.AlignCenter,
		},
		b.Glitch, entities.GlitchOptions(s.site.Glitch))
}

func (s *PortfolioScene) buildHero(b config.ContentBlockConfig, page float64) {
	em := s.entityManager
	lines := utils.WrapLines(b.Lines, heroWidth, entities.BodyTextScale)
	height := headingHeight(config.TextScaleHeading, len(lines))

	entities.NewHeadingEntity(em,
		components.AnchorComponent{
			Page:    page,
			X:       config.ContentMarginX,
			OffsetY: heroHeadingOffsetY,
			Width:   heroWidth,
			Height:  height,
		},
		components.HeadingComponent{
			Title:       b.Title,
			Lines:       lines,
			Color:       config.SoftWhite,
			AccentColor: config.NeonCyan,
		},
		b.Glitch, entities.GlitchOptions(s.site.Glitch))

	y := heroHeadingOffsetY + height + 24
	entities.NewTypewriterEntity(em, components.AnchorComponent{
		Page:    page,
		X:       config.ContentMarginX,
		OffsetY: y,
		Width:   heroWidth,
		Height:  utils.LineHeight(config.TextScaleSubheading),
	}, s.site.Typewriter, "> ")

	y += utils.LineHeight(config.TextScaleSubheading) + 32
	links := []struct {
		label string
		clr   color.RGBA
		act   func()
	}{
		{"GITHUB", config.NeonCyan, func() { s.openLink(s.site.Links.GitHub) }},
		{"LINKEDIN", config.NeonCyan, func() { s.openLink(s.site.Links.LinkedIn) }},
		{"RESUME", config.NeonPink, s.exportResume},
	}
	for i, l := range links {
		entities.NewButtonEntity(em, components.AnchorComponent{
			Page:    page,
			X:       config.ContentMarginX + float64(i)*(linkButtonWidth+buttonGap),
			OffsetY: y,
			Width:   linkButtonWidth,
			Height:  linkButtonHeight,
		}, l.label, l.clr, false, l.act)
	}
}

func (s *PortfolioScene) buildSkills(b config.ContentBlockConfig, page float64) {
	s.sectionHeading(b, page, sectionHeadingOffsetY)

	n := len(s.site.Skills)
	if n == 0 {
		return
	}
	total := float64(n)*config.CardWidth + float64(n-1)*skillCardGap
	x := (float64(s.width) - total) / 2
	for _, sk := range s.site.Skills {
		entities.NewSkillCardEntity(s.entityManager, components.AnchorComponent{
			Page:    page,
			X:       x,
			OffsetY: skillCardsOffsetY,
			Width:   config.CardWidth,
			Height:  config.CardHeight,
		}, sk)
		x += config.CardWidth + skillCardGap
	}
}

func (s *PortfolioScene) buildProject(b config.ContentBlockConfig, page float64) {
	p, ok := s.site.ProjectByID(b.Project)
	if !ok {
		return
	}
	x := config.ContentMarginX
	if p.Align == "right" {
		x = float64(s.width) - config.ContentMarginX - config.ProjectCardWidth
	}
	entities.NewProjectCardEntity(s.entityManager, components.AnchorComponent{
		Page:    page,
		X:       x,
		OffsetY: projectOffsetY,
		Width:   config.ProjectCardWidth,
		Height:  config.ProjectCardHeight,
	}, p)
}

func (s *PortfolioScene) buildAchievements(b config.ContentBlockConfig, page float64) {
	s.sectionHeading(b, page, sectionHeadingOffsetY)

	left := (float64(s.width) - 2*achievementWidth - achievementGap) / 2
	for i, a := range s.site.Achievements {
		col, row := i%2, i/2
		entities.NewAchievementCardEntity(s.entityManager, components.AnchorComponent{
			Page:    page,
			X:       left + float64(col)*(achievementWidth+achievementGap),
			OffsetY: achievementOffsetY + float64(row)*(achievementHeight+20),
			Width:   achievementWidth,
			Height:  achievementHeight,
		}, a)
	}

	rows := (len(s.site.Achievements) + 1) / 2
	entities.NewButtonEntity(s.entityManager, components.AnchorComponent{
		Page:    page,
		X:       (float64(s.width) - dossierButtonWidth) / 2,
		OffsetY: achievementOffsetY + float64(rows)*(achievementHeight+20) + 20,
		Width:   dossierButtonWidth,
		Height:  linkButtonHeight,
	}, "[ DOWNLOAD_FULL_DOSSIER.PDF ]", config.NeonCyan, false, s.exportResume)
}

func (s *PortfolioScene) buildContact(b config.ContentBlockConfig, page float64) {
	em := s.entityManager
	footer := b
	footer.Title, footer.Glitch = "", ""
	b.Lines = nil
	s.sectionHeading(b, page, sectionHeadingOffsetY)

	s.formEntity = entities.NewContactFormEntity(em, s.form, components.AnchorComponent{
		Page:    page,
		X:       (float64(s.width) - config.FormWidth) / 2,
		OffsetY: formOffsetY,
		Width:   config.FormWidth,
	}, func(formID ecs.EntityID) {
		if err := s.contactFormSystem.Submit(formID); err != nil {
			log.Printf("[PortfolioScene] 表单未提交: %v", err)
		}
	})

	if len(footer.Lines) == 0 {
		return
	}
	entities.NewHeadingEntity(em,
		components.AnchorComponent{
			Page:    page,
			X:       config.ContentMarginX,
			OffsetY: formOffsetY + entities.FormHeight() + 40,
			Width:   float64(s.width) - 2*config.ContentMarginX,
			Height:  headingHeight(config.TextScaleSubheading, len(footer.Lines)),
		},
		components.HeadingComponent{
			Lines: footer.Lines,
			Scale: config.TextScaleSubheading,
			Color: config.DimGray,
			Align: components.AlignCenter,
		},
		"", entities.GlitchOptions(s.site.Glitch))
}

// openLink 在浏览器中打开外部链接
func (s *PortfolioScene) openLink(url string) {
	if url == "" {
		return
	}
	if err := s.openURL(url); err != nil {
		log.Printf("[PortfolioScene] 打开链接失败 %s: %v", url, err)
		s.toastSystem.Show("LINK_OPEN_FAILED", config.NeonPink)
	}
}

// exportResume 把嵌入的简历复制到下载目录
func (s *PortfolioScene) exportResume() {
	if s.resume == nil {
		s.toastSystem.Show("DOSSIER_UNAVAILABLE", config.NeonPink)
		return
	}
	path, err := s.resume.Export()
	if err != nil {
		log.Printf("[PortfolioScene] 简历导出失败: %v", err)
		s.toastSystem.Show("DOSSIER_EXPORT_FAILED", config.NeonPink)
		return
	}
	log.Printf("[PortfolioScene] 简历已保存到 %s", path)
	s.toastSystem.Show("DOSSIER SAVED: "+path, config.NeonGreen)
}

// applySettings 把访问者设置应用到光标和效果
func (s *PortfolioScene) applySettings() {
	st := s.settings.GetSettings()
	s.setCursor(st.CursorEnabled && !utils.IsMobile())
}

func (s *PortfolioScene) setCursor(on bool) {
	s.cursorSystem.SetEnabled(on)
	if on {
		setCursorMode(ebiten.CursorModeHidden)
	} else {
		setCursorMode(ebiten.CursorModeVisible)
	}
}

// restoreOffset 跳到初始滚动位置，负数表示使用上次保存的位置
func (s *PortfolioScene) restoreOffset(start float64) {
	if start < 0 {
		start = s.settings.GetSettings().LastOffset
	}
	s.surface.JumpToOffset(utils.Clamp01(start))
}

// handleHotkeys C 切换自定义光标，E 切换装饰效果
// 输入框获得焦点时按键用于编辑
func (s *PortfolioScene) handleHotkeys() {
	if s.inputSystem.TextInputFocused() {
		return
	}
	if s.keys.IsKeyJustPressed(ebiten.KeyC) {
		on := !s.cursorSystem.Enabled()
		s.settings.SetCursorEnabled(on)
		s.setCursor(on)
		log.Printf("[PortfolioScene] 自定义光标: %v", on)
	}
	if s.keys.IsKeyJustPressed(ebiten.KeyE) {
		on := !s.settings.GetSettings().EffectsEnabled
		s.settings.SetEffectsEnabled(on)
		log.Printf("[PortfolioScene] 装饰效果: %v", on)
	}
}
