package input

import (
	"gesture-snake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// DefaultKeyMap binds the arrow keys and WASD
var DefaultKeyMap = map[int32]types.Direction{
	rl.KeyUp:    types.Up,
	rl.KeyDown:  types.Down,
	rl.KeyLeft:  types.Left,
	rl.KeyRight: types.Right,
	rl.KeyW:     types.Up,
	rl.KeyS:     types.Down,
	rl.KeyA:     types.Left,
	rl.KeyD:     types.Right,
}

// Sampler is polled once per rendered frame on the raylib thread
type Sampler interface {
	Sample()
}

// KeySource publishes the heading of any held direction key. Holding a key
// republishes it every frame.
type KeySource struct {
	slot *Slot
	keys map[int32]types.Direction
}

func NewKeySource(slot *Slot, keys map[int32]types.Direction) *KeySource {
	if keys == nil {
		keys = DefaultKeyMap
	}
	return &KeySource{slot: slot, keys: keys}
}

func (k *KeySource) Sample() {
	// Newly pressed keys win over held ones so a quick tap is not lost
	for key, dir := range k.keys {
		if rl.IsKeyPressed(key) {
			k.slot.Publish(dir)
			return
		}
	}
	for key, dir := range k.keys {
		if rl.IsKeyDown(key) {
			k.slot.Publish(dir)
			return
		}
	}
}

// PointerSource classifies the mouse position by screen quadrant, standing
// in for a hand tracker that reports a palm centre.
type PointerSource struct {
	slot     *Slot
	deadZone float32
}

func NewPointerSource(slot *Slot, deadZone float32) *PointerSource {
	return &PointerSource{slot: slot, deadZone: deadZone}
}

func (p *PointerSource) Sample() {
	pos := rl.GetMousePosition()
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	if dir, ok := Quadrant(pos.X, pos.Y, w, h, p.deadZone); ok {
		p.slot.Publish(dir)
	}
}
