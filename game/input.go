package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Command is a player action decoded from input
type Command int

const (
	CmdNone Command = iota
	CmdUp
	CmdDown
	CmdLeft
	CmdRight
	CmdPause
	CmdClear
	CmdReset
	CmdAutopilot
	CmdBurst
	CmdToggleHUD
)

// InputProvider yields the commands issued since the previous frame
type InputProvider interface {
	Poll(dst []Command) []Command
}

// KeyboardInput maps freshly pressed keys to commands
type KeyboardInput struct {
	bindings map[ebiten.Key]Command
	keys     []ebiten.Key
}

// NewKeyboardInput creates the default key bindings: arrows or WASD steer,
// space fires a golden burst at the head.
func NewKeyboardInput() *KeyboardInput {
	return &KeyboardInput{
		bindings: map[ebiten.Key]Command{
			ebiten.KeyArrowUp:    CmdUp,
			ebiten.KeyW:          CmdUp,
			ebiten.KeyArrowDown:  CmdDown,
			ebiten.KeyS:          CmdDown,
			ebiten.KeyArrowLeft:  CmdLeft,
			ebiten.KeyA:          CmdLeft,
			ebiten.KeyArrowRight: CmdRight,
			ebiten.KeyD:          CmdRight,
			ebiten.KeyP:          CmdPause,
			ebiten.KeyC:          CmdClear,
			ebiten.KeyR:          CmdReset,
			ebiten.KeyTab:        CmdAutopilot,
			ebiten.KeySpace:      CmdBurst,
			ebiten.KeyH:          CmdToggleHUD,
		},
		keys: make([]ebiten.Key, 0, 10),
	}
}

func (k *KeyboardInput) Poll(dst []Command) []Command {
	k.keys = inpututil.AppendJustPressedKeys(k.keys[:0])
	for _, key := range k.keys {
		if cmd, ok := k.bindings[key]; ok {
			dst = append(dst, cmd)
		}
	}
	return dst
}

// ScriptedInput replays a fixed list of commands, one slice per frame
type ScriptedInput struct {
	frames [][]Command
	next   int
}

func NewScriptedInput(frames ...[]Command) *ScriptedInput {
	return &ScriptedInput{frames: frames}
}

func (s *ScriptedInput) Poll(dst []Command) []Command {
	if s.next >= len(s.frames) {
		return dst
	}
	dst = append(dst, s.frames[s.next]...)
	s.next++
	return dst
}
