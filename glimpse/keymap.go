package glimpse

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/oliverbestmann/tricam/input"
)

var glfwToKey = map[glfw.Key]input.Key{
	glfw.KeyA: input.KeyA,
	glfw.KeyB: input.KeyB,
	glfw.KeyC: input.KeyC,
	glfw.KeyD: input.KeyD,
	glfw.KeyE: input.KeyE,
	glfw.KeyF: input.KeyF,
	glfw.KeyG: input.KeyG,
	glfw.KeyH: input.KeyH,
	glfw.KeyI: input.KeyI,
	glfw.KeyJ: input.KeyJ,
	glfw.KeyK: input.KeyK,
	glfw.KeyL: input.KeyL,
	glfw.KeyM: input.KeyM,
	glfw.KeyN: input.KeyN,
	glfw.KeyO: input.KeyO,
	glfw.KeyP: input.KeyP,
	glfw.KeyQ: input.KeyQ,
	glfw.KeyR: input.KeyR,
	glfw.KeyS: input.KeyS,
	glfw.KeyT: input.KeyT,
	glfw.KeyU: input.KeyU,
	glfw.KeyV: input.KeyV,
	glfw.KeyW: input.KeyW,
	glfw.KeyX: input.KeyX,
	glfw.KeyY: input.KeyY,
	glfw.KeyZ: input.KeyZ,

	glfw.KeySpace:       input.KeySpace,
	glfw.KeyEscape:      input.KeyEscape,
	glfw.KeyEnter:       input.KeyEnter,
	glfw.KeyTab:         input.KeyTab,
	glfw.KeyLeftShift:   input.KeyLeftShift,
	glfw.KeyLeftControl: input.KeyLeftControl,

	glfw.KeyUp:    input.KeyArrowUp,
	glfw.KeyDown:  input.KeyArrowDown,
	glfw.KeyLeft:  input.KeyArrowLeft,
	glfw.KeyRight: input.KeyArrowRight,
}
