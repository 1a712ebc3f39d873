package scenes

import (
	"github.com/cloudypatil/portfolio/pkg/game"
)

// Scene is a type alias for game.Scene.
// All scene implementations should implement the game.Scene interface.
type Scene = game.Scene
