package render

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/draw"
)

// Format 快照图像格式
type Format string

const (
	FormatWebP Format = "webp"
	FormatPNG  Format = "png"
	FormatTGA  Format = "tga"
)

// ParseFormat 解析格式名称（不区分大小写）
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatWebP, FormatPNG, FormatTGA:
		return f, nil
	}
	return "", fmt.Errorf("unsupported image format %q (want webp, png or tga)", s)
}

// Ext 返回文件扩展名
func (f Format) Ext() string {
	return "." + string(f)
}

// Encode 按格式编码图像
func Encode(w io.Writer, img image.Image, format Format) error {
	var err error
	switch format {
	case FormatWebP:
		err = nativewebp.Encode(w, img, nil)
	case FormatPNG:
		err = png.Encode(w, img)
	case FormatTGA:
		err = tga.Encode(w, img)
	default:
		return fmt.Errorf("unsupported image format %q", format)
	}
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", format, err)
	}
	return nil
}

// Downsample 把超采样渲染结果缩小 factor 倍
// 背景不透明，不需要预乘处理
func Downsample(img *image.RGBA, factor int) *image.RGBA {
	if factor <= 1 {
		return img
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()/factor, b.Dy()/factor))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
