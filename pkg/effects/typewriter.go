package effects

import "time"

// typewriterPhase 打字机状态
type typewriterPhase int

const (
	phaseTyping typewriterPhase = iota
	phaseHolding
	phaseDeleting
	phasePausing
)

// pauseBeforeNext 删除完毕后到下一个角色开始打字的间隔
const pauseBeforeNext = 500 * time.Millisecond

// cursorBlinkPeriod 文本光标闪烁周期
const cursorBlinkPeriod = time.Second

// TypewriterOptions 打字机参数
type TypewriterOptions struct {
	TypeDelay   time.Duration
	DeleteDelay time.Duration
	Hold        time.Duration
}

// Typewriter 循环打出角色名的横幅
//
// typing -> holding -> deleting -> pausing -> 下一个角色，无限循环。
type Typewriter struct {
	roles [][]rune
	opts  TypewriterOptions

	role    int
	visible int
	phase   typewriterPhase
	elapsed time.Duration
	blink   time.Duration
}

// NewTypewriter 创建打字机；roles 为空时 Text 始终返回空串
func NewTypewriter(roles []string, opts TypewriterOptions) *Typewriter {
	tw := &Typewriter{opts: opts}
	for _, r := range roles {
		tw.roles = append(tw.roles, []rune(r))
	}
	if tw.opts.TypeDelay <= 0 {
		tw.opts.TypeDelay = 50 * time.Millisecond
	}
	if tw.opts.DeleteDelay <= 0 {
		tw.opts.DeleteDelay = 30 * time.Millisecond
	}
	return tw
}

// Advance 推进帧时间
func (tw *Typewriter) Advance(dt time.Duration) {
	if len(tw.roles) == 0 || dt <= 0 {
		return
	}
	tw.blink = (tw.blink + dt) % cursorBlinkPeriod
	tw.elapsed += dt

	for {
		delay := tw.delay()
		if tw.elapsed < delay {
			return
		}
		tw.elapsed -= delay
		tw.step()
	}
}

func (tw *Typewriter) delay() time.Duration {
	switch tw.phase {
	case phaseHolding:
		return tw.opts.Hold
	case phaseDeleting:
		return tw.opts.DeleteDelay
	case phasePausing:
		return pauseBeforeNext
	default:
		return tw.opts.TypeDelay
	}
}

func (tw *Typewriter) step() {
	current := tw.roles[tw.role]
	switch tw.phase {
	case phaseTyping:
		if tw.visible < len(current) {
			tw.visible++
		}
		if tw.visible >= len(current) {
			tw.phase = phaseHolding
		}
	case phaseHolding:
		tw.phase = phaseDeleting
	case phaseDeleting:
		if tw.visible > 0 {
			tw.visible--
		}
		if tw.visible == 0 {
			tw.phase = phasePausing
		}
	case phasePausing:
		tw.role = (tw.role + 1) % len(tw.roles)
		tw.phase = phaseTyping
	}
}

// Text 返回当前可见的文字
func (tw *Typewriter) Text() string {
	if len(tw.roles) == 0 {
		return ""
	}
	return string(tw.roles[tw.role][:tw.visible])
}

// Role 返回当前角色索引
func (tw *Typewriter) Role() int {
	return tw.role
}

// CursorVisible 文本光标在闪烁周期前半段可见
func (tw *Typewriter) CursorVisible() bool {
	return tw.blink < cursorBlinkPeriod/2
}
