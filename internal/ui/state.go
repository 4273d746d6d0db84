// Package ui holds the password generator's UI state and the controller that
// drives it from user events and backend responses.
package ui

import "strconv"

// Length bounds of the slider and numeric textbox.
const (
	MinLength     = 4
	MaxLength     = 32
	DefaultLength = 12
)

// Color tokens used for the password field and the copy button.
const (
	ColorMuted  = "#6b7280"
	ColorNormal = "#1f2937"
	ColorError  = "#ef4444"
	ColorCopied = "#10b981"
)

const (
	iconCopy   = "📋"
	iconCopied = "✅"

	maxBarWidth = 100
	barPerPoint = 20
)

// DisplayState is the lifecycle of the password display field.
type DisplayState int

const (
	DisplayIdle DisplayState = iota
	DisplayBusy
	DisplayError
	DisplayPopulated
)

func (s DisplayState) String() string {
	switch s {
	case DisplayIdle:
		return "idle"
	case DisplayBusy:
		return "busy"
	case DisplayError:
		return "error"
	case DisplayPopulated:
		return "populated"
	}
	return "unknown"
}

// ButtonAppearance is what the copy button currently shows.
type ButtonAppearance struct {
	Icon       string
	Label      string
	Background string
}

// State is the UI state owned by a Controller. Values handed out by
// Controller.Snapshot are copies; mutate state only through the controller.
type State struct {
	slider     int
	lengthText string

	uppercase bool
	digits    bool
	symbols   bool

	display      DisplayState
	displayText  string
	displayColor string

	strengthLabel string
	strengthColor string
	barWidth      int
	barColor      string

	copyButton ButtonAppearance
	copied     bool
}

func newState(copyLabel string) State {
	return State{
		slider:       DefaultLength,
		lengthText:   strconv.Itoa(DefaultLength),
		uppercase:    true,
		digits:       true,
		symbols:      true,
		displayColor: ColorNormal,
		copyButton:   ButtonAppearance{Icon: iconCopy, Label: copyLabel},
	}
}

func (s State) Slider() int                  { return s.slider }
func (s State) LengthText() string           { return s.lengthText }
func (s State) Uppercase() bool              { return s.uppercase }
func (s State) Digits() bool                 { return s.digits }
func (s State) Symbols() bool                { return s.symbols }
func (s State) Display() DisplayState        { return s.display }
func (s State) DisplayText() string          { return s.displayText }
func (s State) DisplayColor() string         { return s.displayColor }
func (s State) StrengthLabel() string        { return s.strengthLabel }
func (s State) StrengthColor() string        { return s.strengthColor }
func (s State) BarWidth() int                { return s.barWidth }
func (s State) BarColor() string             { return s.barColor }
func (s State) CopyButton() ButtonAppearance { return s.copyButton }

// Copied reports whether the copy confirmation is showing.
func (s State) Copied() bool { return s.copied }

// Length is the current password length, as held by the slider.
func (s State) Length() int { return s.slider }

// ClampLength limits n to [MinLength, MaxLength].
func ClampLength(n int) int {
	return max(MinLength, min(MaxLength, n))
}

// ScoreWidth converts a strength score into a bar fill percentage.
func ScoreWidth(score int) int {
	return max(0, min(maxBarWidth, score*barPerPoint))
}
