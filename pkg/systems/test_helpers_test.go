package systems

import (
	"github.com/decker502/fling/pkg/utils"
)

// scriptedPointer 可在测试中逐帧设置的指针
type scriptedPointer struct {
	state utils.PointerState
}

func (p *scriptedPointer) Pointer() utils.PointerState {
	return p.state
}

func (p *scriptedPointer) move(x, y float64) {
	p.state.X, p.state.Y = x, y
}

func (p *scriptedPointer) press(x, y float64) {
	p.state = utils.PointerState{Pressed: true, X: x, Y: y}
}

func (p *scriptedPointer) release() {
	p.state.Pressed = false
}

const frameDT = 1.0 / 60.0
