package keys

import "github.com/charmbracelet/bubbles/key"

type KeyName int

const (
	KeyUp KeyName = iota
	KeyDown
	KeyNextPalette
	KeyPrevPalette
	KeyCopy
	KeyCycleFormat
	KeyPicker
	KeyQuit
)

// GlobalKeyStringsMap is a global, immutable map string to keybinding.
var GlobalKeyStringsMap = map[string]KeyName{
	"up":        KeyUp,
	"k":         KeyUp,
	"down":      KeyDown,
	"j":         KeyDown,
	"right":     KeyNextPalette,
	"l":         KeyNextPalette,
	"tab":       KeyNextPalette,
	"left":      KeyPrevPalette,
	"h":         KeyPrevPalette,
	"shift+tab": KeyPrevPalette,
	"enter":     KeyCopy,
	"y":         KeyCopy,
	"f":         KeyCycleFormat,
	"p":         KeyPicker,
	"/":         KeyPicker,
	"q":         KeyQuit,
	"ctrl+c":    KeyQuit,
}

// GlobalkeyBindings is a global, immutable map of KeyName to keybinding.
var GlobalkeyBindings = map[KeyName]key.Binding{
	KeyUp: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	KeyDown: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	KeyNextPalette: key.NewBinding(
		key.WithKeys("right", "l", "tab"),
		key.WithHelp("→/l", "next palette"),
	),
	KeyPrevPalette: key.NewBinding(
		key.WithKeys("left", "h", "shift+tab"),
		key.WithHelp("←/h", "prev palette"),
	),
	KeyCopy: key.NewBinding(
		key.WithKeys("enter", "y"),
		key.WithHelp("↵/y", "copy"),
	),
	KeyCycleFormat: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "format"),
	),
	KeyPicker: key.NewBinding(
		key.WithKeys("p", "/"),
		key.WithHelp("p", "palettes"),
	),
	KeyQuit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// HelpOrder is the order bindings appear in the browser's help line.
var HelpOrder = []KeyName{KeyUp, KeyDown, KeyNextPalette, KeyPrevPalette, KeyCopy, KeyCycleFormat, KeyPicker, KeyQuit}
