package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit       // Esc, q, Ctrl+C
	IntentToggleMute // m

	// Pointer intents
	IntentPointerMove
	IntentPointerEnter
	IntentPointerLeave

	IntentResize // Terminal resize event
)

// String returns the intent name
func (i IntentType) String() string {
	switch i {
	case IntentQuit:
		return "quit"
	case IntentToggleMute:
		return "toggle_mute"
	case IntentPointerMove:
		return "pointer_move"
	case IntentPointerEnter:
		return "pointer_enter"
	case IntentPointerLeave:
		return "pointer_leave"
	case IntentResize:
		return "resize"
	default:
		return "none"
	}
}
