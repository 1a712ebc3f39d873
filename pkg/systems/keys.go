package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// KeySource 键盘输入来源
// 默认实现直接读取 ebiten，测试中替换为脚本化的按键序列
type KeySource interface {
	AppendInputChars(runes []rune) []rune
	KeyPressDuration(key ebiten.Key) int
	IsKeyJustPressed(key ebiten.Key) bool
}

// EbitenKeys 读取 ebiten 的键盘状态
type EbitenKeys struct{}

func (EbitenKeys) AppendInputChars(runes []rune) []rune {
	return ebiten.AppendInputChars(runes)
}

func (EbitenKeys) KeyPressDuration(key ebiten.Key) int {
	return inpututil.KeyPressDuration(key)
}

func (EbitenKeys) IsKeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

// keyRepeat 按住按键时的重复判断
// 第1帧立即响应，30 帧后每隔 3 帧响应一次
func keyRepeat(keys KeySource, key ebiten.Key) bool {
	d := keys.KeyPressDuration(key)
	return d == 1 || (d >= 30 && d%3 == 0)
}
