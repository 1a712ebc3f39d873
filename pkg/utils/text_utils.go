package utils

import (
	"image/color"
	"strings"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// 位图字体
//
// 整个页面只使用 7x13 位图字体，通过缩放得到标题字号。
// 字体内置在 x/image 中，不需要加载资源文件，移动端和无头渲染都可用。
const (
	// GlyphWidth 单个字符的宽度（缩放前）
	GlyphWidth = 7.0
	// GlyphHeight 行高（缩放前）
	GlyphHeight = 13.0
)

var defaultFace = text.NewGoXFace(basicfont.Face7x13)

// DefaultFace 返回页面使用的字体
func DefaultFace() text.Face {
	return defaultFace
}

// DrawText 在 (x, y) 绘制文字，(x, y) 为文字左上角
func DrawText(dst *ebiten.Image, s string, x, y, scale float64, clr color.Color) {
	if s == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, defaultFace, op)
}

// DrawTextCentered 以 cx 为中心水平居中绘制文字
func DrawTextCentered(dst *ebiten.Image, s string, cx, y, scale float64, clr color.Color) {
	DrawText(dst, s, cx-MeasureText(s, scale)/2, y, scale, clr)
}

// MeasureText 测量文字宽度（像素）
func MeasureText(s string, scale float64) float64 {
	if s == "" {
		return 0
	}
	return text.Advance(s, defaultFace) * scale
}

// LineHeight 返回缩放后的行高
func LineHeight(scale float64) float64 {
	return GlyphHeight * scale
}

// WrapText 将文本按指定宽度自动换行
//
// 换行规则:
//   - 优先在空格处断行
//   - 单词本身超过最大宽度时强制按字符断行
//   - 保留空字符串（用于段落间距）
func WrapText(s string, maxWidth, scale float64) []string {
	if s == "" || maxWidth <= 0 || MeasureText(s, scale) <= maxWidth {
		return []string{s}
	}

	var lines []string
	current := ""
	for _, word := range strings.Fields(s) {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if MeasureText(candidate, scale) <= maxWidth {
			current = candidate
			continue
		}

		if current != "" {
			lines = append(lines, current)
			current = ""
		}

		// 单词太长，按字符断开
		for MeasureText(word, scale) > maxWidth {
			cut := fitRunes(word, maxWidth, scale)
			lines = append(lines, word[:cut])
			word = word[cut:]
		}
		current = word
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

// fitRunes 返回能放进 maxWidth 的最长前缀的字节长度（至少一个字符）
func fitRunes(s string, maxWidth, scale float64) int {
	end := 0
	for end < len(s) {
		_, size := utf8.DecodeRuneInString(s[end:])
		if end > 0 && MeasureText(s[:end+size], scale) > maxWidth {
			break
		}
		end += size
	}
	return end
}

// WrapLines 对多行文本逐行换行
func WrapLines(lines []string, maxWidth, scale float64) []string {
	var out []string
	for _, l := range lines {
		out = append(out, WrapText(l, maxWidth, scale)...)
	}
	return out
}
