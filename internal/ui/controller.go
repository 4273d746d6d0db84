package ui

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/vaultpass/passgen-go/internal/i18n"
	"github.com/vaultpass/passgen-go/internal/model"
)

// DefaultCopyFeedback is how long the copy button shows its confirmation.
const DefaultCopyFeedback = 2 * time.Second

var (
	// ErrNoCharacterClass is returned by GenerateCustom when every toggle is off.
	ErrNoCharacterClass = errors.New("at least one character type must be selected")
	// ErrSuperseded is returned when a response arrives after a newer request was issued.
	ErrSuperseded = errors.New("response superseded by a newer request")
)

// Backend is the remote side of the generator.
type Backend interface {
	GeneratePassword(ctx context.Context, req model.GenerateRequest) (string, error)
	CheckStrength(ctx context.Context, password string) (model.StrengthResponse, error)
}

// Notifier surfaces user-facing errors. Notify must not block.
type Notifier interface {
	Notify(message string)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(message string)

func (f NotifierFunc) Notify(message string) { f(message) }

// Controller owns the UI state and implements the event handlers.
// Its methods are safe to call from multiple goroutines; backend calls run
// without holding the state lock.
type Controller struct {
	backend   Backend
	clipboard Clipboard
	notifier  Notifier
	onChange  func()
	logger    *slog.Logger

	copyFeedback time.Duration

	mu          sync.Mutex
	state       State
	genSeq      uint64
	strengthSeq uint64
	copySeq     uint64
}

// Option configures a Controller.
type Option func(*Controller)

// WithNotifier sets where generation errors are reported.
func WithNotifier(n Notifier) Option {
	return func(c *Controller) { c.notifier = n }
}

// WithOnChange registers a callback invoked after every state change.
// It is called without the state lock held.
func WithOnChange(fn func()) Option {
	return func(c *Controller) { c.onChange = fn }
}

// WithLogger sets the controller's logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// WithCopyFeedback sets how long the copy confirmation stays visible.
func WithCopyFeedback(d time.Duration) Option {
	return func(c *Controller) { c.copyFeedback = d }
}

// NewController creates a Controller in the Idle state.
func NewController(backend Backend, clipboard Clipboard, opts ...Option) *Controller {
	c := &Controller{
		backend:      backend,
		clipboard:    clipboard,
		notifier:     NotifierFunc(func(string) {}),
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		copyFeedback: DefaultCopyFeedback,
		state:        newState(i18n.T("copy_label")),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// SetSlider moves the range control and mirrors the value into the textbox.
func (c *Controller) SetSlider(v int) {
	c.update(func(s *State) {
		s.slider = ClampLength(v)
		s.lengthText = strconv.Itoa(s.slider)
	})
}

// SetLengthInput handles an edit of the numeric textbox. Integer values are
// clamped to [MinLength, MaxLength] and mirrored into the slider; it reports
// false and changes nothing when text is not an integer.
func (c *Controller) SetLengthInput(text string) bool {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return false
	}
	c.SetSlider(n)
	return true
}

// SetUppercase sets the uppercase toggle.
func (c *Controller) SetUppercase(on bool) { c.update(func(s *State) { s.uppercase = on }) }

// SetDigits sets the digits toggle.
func (c *Controller) SetDigits(on bool) { c.update(func(s *State) { s.digits = on }) }

// SetSymbols sets the symbols toggle.
func (c *Controller) SetSymbols(on bool) { c.update(func(s *State) { s.symbols = on }) }

// GeneratePreset requests a password for a named preset.
func (c *Controller) GeneratePreset(ctx context.Context, preset string) error {
	return c.generate(ctx, model.GenerateRequest{Type: preset})
}

// GenerateCustom requests a password using the length and toggles from the
// state. With every toggle off it fails with ErrNoCharacterClass without
// calling the backend.
func (c *Controller) GenerateCustom(ctx context.Context) error {
	s := c.Snapshot()
	if !s.uppercase && !s.digits && !s.symbols {
		c.mu.Lock()
		c.genSeq++
		c.strengthSeq++
		c.showError()
		c.mu.Unlock()
		c.changed()
		c.notifier.Notify(i18n.T("select_character_type"))
		return ErrNoCharacterClass
	}

	return c.generate(ctx, model.GenerateRequest{
		Type:      model.TypeCustom,
		Length:    s.Length(),
		Uppercase: model.Bool(s.uppercase),
		Digits:    model.Bool(s.digits),
		Symbols:   model.Bool(s.symbols),
	})
}

func (c *Controller) generate(ctx context.Context, req model.GenerateRequest) error {
	c.mu.Lock()
	c.genSeq++
	id := c.genSeq
	// A strength check still in flight belongs to the previous password.
	c.strengthSeq++
	c.state.display = DisplayBusy
	c.state.displayText = i18n.T("generating")
	c.state.displayColor = ColorMuted
	c.mu.Unlock()
	c.changed()

	password, err := c.backend.GeneratePassword(ctx, req)

	c.mu.Lock()
	if id != c.genSeq {
		c.mu.Unlock()
		c.logger.Debug("discarding stale generation response", "request", id, "type", req.Type)
		return ErrSuperseded
	}
	if err != nil {
		c.showError()
		c.mu.Unlock()
		c.changed()
		c.logger.Error("password generation failed", "type", req.Type, "error", err)
		c.notifier.Notify(i18n.Tf("generation_failed", map[string]any{"Error": err.Error()}))
		return err
	}
	c.state.display = DisplayPopulated
	c.state.displayText = password
	c.state.displayColor = ColorNormal
	c.mu.Unlock()
	c.changed()

	// Strength failures never fail the generation.
	_ = c.CheckStrength(ctx, password)
	return nil
}

// showError puts the display field into the Error state. Callers hold c.mu.
func (c *Controller) showError() {
	c.state.display = DisplayError
	c.state.displayText = i18n.T("error_placeholder")
	c.state.displayColor = ColorError
}

// CheckStrength scores password and renders the label and bar. An empty
// password is a no-op. Failures are logged and leave the state untouched.
func (c *Controller) CheckStrength(ctx context.Context, password string) error {
	if password == "" {
		return nil
	}

	c.mu.Lock()
	c.strengthSeq++
	id := c.strengthSeq
	c.mu.Unlock()

	resp, err := c.backend.CheckStrength(ctx, password)
	if err != nil {
		c.logger.Warn("strength check failed", "error", err)
		return err
	}

	c.mu.Lock()
	if id != c.strengthSeq {
		c.mu.Unlock()
		c.logger.Debug("discarding stale strength response", "request", id)
		return ErrSuperseded
	}
	c.state.strengthLabel = LocalizeStrength(resp.Strength)
	c.state.strengthColor = resp.Color
	c.state.barWidth = ScoreWidth(resp.Score)
	c.state.barColor = resp.Color
	c.mu.Unlock()
	c.changed()
	return nil
}

// CopyCurrentPassword copies the display field to the clipboard and shows a
// confirmation on the copy button that reverts after the feedback duration.
// An empty field is a no-op.
func (c *Controller) CopyCurrentPassword() error {
	text := c.Snapshot().displayText
	if text == "" {
		return nil
	}

	if err := c.clipboard.WriteAll(text); err != nil {
		c.logger.Warn("clipboard write failed", "error", err)
		return err
	}

	c.mu.Lock()
	c.copySeq++
	id := c.copySeq
	c.state.copied = true
	c.state.copyButton = ButtonAppearance{Icon: iconCopied, Label: i18n.T("copied_label"), Background: ColorCopied}
	c.mu.Unlock()
	c.changed()

	time.AfterFunc(c.copyFeedback, func() {
		c.mu.Lock()
		if id != c.copySeq {
			c.mu.Unlock()
			return
		}
		c.state.copied = false
		c.state.copyButton = ButtonAppearance{Icon: iconCopy, Label: i18n.T("copy_label")}
		c.mu.Unlock()
		c.changed()
	})
	return nil
}

func (c *Controller) update(fn func(*State)) {
	c.mu.Lock()
	fn(&c.state)
	c.mu.Unlock()
	c.changed()
}

func (c *Controller) changed() {
	if c.onChange != nil {
		c.onChange()
	}
}
