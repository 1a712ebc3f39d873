package components

import "github.com/cloudypatil/portfolio/pkg/effects"

// TypewriterComponent 打字机横幅
type TypewriterComponent struct {
	Writer *effects.Typewriter
	// Prefix 横幅前缀，如 "> "
	Prefix string
}
