package effects

import (
	"math/rand/v2"
	"time"
)

// DefaultGlitchAlphabet 故障字符表
const DefaultGlitchAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789@#$%^&*"

// DefaultGlitchSpeed 默认定时器间隔
const DefaultGlitchSpeed = 30 * time.Millisecond

// ticksPerReveal 每揭示一个字符需要的定时器触发次数（iteration 每次 +1/3）
const ticksPerReveal = 3

// GlitchOptions 故障动画参数
type GlitchOptions struct {
	// Speed 定时器间隔，<= 0 使用 DefaultGlitchSpeed
	Speed time.Duration
	// Alphabet 随机字符表，为空使用 DefaultGlitchAlphabet
	Alphabet string
	// Rand 随机数源，nil 使用全局随机源
	Rand *rand.Rand
}

// glitchTimer 定时器句柄，由帧时间累加驱动
type glitchTimer struct {
	elapsed   time.Duration
	cancelled bool
}

// GlitchAnimator 单个文字实例的故障动画状态
//
// 状态：Idle -> Scrambling -> Idle。
// 每个实例最多持有一个定时器句柄；Trigger 会先显式取消旧定时器。
// 揭示进度以整数 tick 计数保存，iteration = ticks / 3。
type GlitchAnimator struct {
	source   []rune
	display  []rune
	alphabet []rune
	speed    time.Duration
	rng      *rand.Rand

	ticks int
	timer *glitchTimer
}

// NewGlitchAnimator 创建故障动画，初始显示原文
func NewGlitchAnimator(text string, opts GlitchOptions) *GlitchAnimator {
	if opts.Speed <= 0 {
		opts.Speed = DefaultGlitchSpeed
	}
	if opts.Alphabet == "" {
		opts.Alphabet = DefaultGlitchAlphabet
	}
	source := []rune(text)
	return &GlitchAnimator{
		source:   source,
		display:  append([]rune(nil), source...),
		alphabet: []rune(opts.Alphabet),
		speed:    opts.Speed,
		rng:      opts.Rand,
	}
}

// Trigger 开始（或重新开始）动画
//
// 取消正在运行的定时器，iteration 归零，并立即显示全乱码的第 0 帧。
// 空文本直接完成。
func (g *GlitchAnimator) Trigger() {
	g.Cancel()
	g.ticks = 0

	if len(g.source) == 0 {
		return
	}
	g.timer = &glitchTimer{}
	g.render()
}

// Cancel 停止定时器，保留当前显示
func (g *GlitchAnimator) Cancel() {
	if g.timer != nil {
		g.timer.cancelled = true
		g.timer = nil
	}
}

// Advance 推进帧时间；每累计一个 speed 间隔触发一次定时器
func (g *GlitchAnimator) Advance(dt time.Duration) {
	timer := g.timer
	if timer == nil || dt <= 0 {
		return
	}
	timer.elapsed += dt
	for timer.elapsed >= g.speed && !timer.cancelled {
		timer.elapsed -= g.speed
		g.tick()
	}
}

// tick 定时器回调
func (g *GlitchAnimator) tick() {
	g.ticks++
	g.render()
	if g.ticks >= ticksPerReveal*len(g.source) {
		copy(g.display, g.source)
		g.Cancel()
	}
}

// render 前 floor(iteration) 个字符显示原文，其余显示随机字符
func (g *GlitchAnimator) render() {
	revealed := g.ticks / ticksPerReveal
	for i := range g.source {
		if i < revealed {
			g.display[i] = g.source[i]
			continue
		}
		g.display[i] = g.alphabet[g.randIndex(len(g.alphabet))]
	}
}

func (g *GlitchAnimator) randIndex(n int) int {
	if g.rng != nil {
		return g.rng.IntN(n)
	}
	return rand.IntN(n)
}

// SetText 替换原文并停止动画
func (g *GlitchAnimator) SetText(text string) {
	g.Cancel()
	g.ticks = 0
	g.source = []rune(text)
	g.display = append([]rune(nil), g.source...)
}

// Text 返回当前显示的文字
func (g *GlitchAnimator) Text() string {
	return string(g.display)
}

// Source 返回原文
func (g *GlitchAnimator) Source() string {
	return string(g.source)
}

// Running 是否处于 Scrambling 状态
func (g *GlitchAnimator) Running() bool {
	return g.timer != nil
}

// ActiveTimers 返回活动定时器数量（0 或 1）
func (g *GlitchAnimator) ActiveTimers() int {
	if g.timer != nil {
		return 1
	}
	return 0
}

// Iteration 返回揭示进度 ticks/3
func (g *GlitchAnimator) Iteration() float64 {
	return float64(g.ticks) / ticksPerReveal
}
