package core

import (
	"log"
	"slices"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/sheild/internal/entitlement"
)

// Screen is one full-page view. A screen leaves by returning a Navigate
// command; it never swaps itself out.
type Screen interface {
	ID() ScreenID
	Title() string
	Scope() string
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)
	View(width, height int) string
	Timers() *TimerScope
}

// Overlay is a modal drawn over the mounted screen. Returning pop closes it.
type Overlay interface {
	Update(msg tea.Msg) (Overlay, tea.Cmd, bool)
	View(width, height int) string
	Scope() string
	Title() string
}

// InputCapturer is implemented by screens that are editing text and need
// global keys passed through.
type InputCapturer interface {
	CapturingInput() bool
}

// Factory builds a fresh screen instance owning the given timer scope.
type Factory func(timers *TimerScope) Screen

type Options struct {
	AppName    string
	Start      ScreenID
	Factories  map[ScreenID]Factory
	Keys       *KeyRegistry
	Commands   *CommandRegistry
	Session    *entitlement.Session
	Haptics    Haptics
	Voice      VoiceRecognizer
	VoiceOn    bool
	VoiceTick  time.Duration
	VoiceDelay time.Duration
}

const (
	timerVoiceListen = "sys:voice-listen"
	timerVoiceExec   = "sys:voice-exec"
	timerFlashClear  = "sys:flash-clear"
)

type Model struct {
	width     int
	height    int
	appName   string
	nav       *Navigator
	screen    Screen
	overlays  OverlayStack
	factories map[ScreenID]Factory
	keys      *KeyRegistry
	commands  *CommandRegistry
	session   *entitlement.Session
	haptics   Haptics
	voice     *voiceState
	sys       *TimerScope
	status    string
	statusErr bool
	flash     string
	pending   tea.Cmd
	quitting  bool
}

type voiceState struct {
	recognizer VoiceRecognizer
	listening  bool
	tick       time.Duration
	delay      time.Duration
	heard      *VoiceHeard
	commandID  string
}

func NewModel(opts Options) Model {
	if opts.Keys == nil {
		opts.Keys = NewKeyRegistry(DefaultKeyBindings())
	}
	if opts.Commands == nil {
		opts.Commands = NewCommandRegistry(DefaultCommands())
	}
	if opts.Session == nil {
		opts.Session = entitlement.NewSession()
	}
	if opts.AppName == "" {
		opts.AppName = "SHEild"
	}
	if opts.VoiceTick <= 0 {
		opts.VoiceTick = 100 * time.Millisecond
	}
	if opts.VoiceDelay <= 0 {
		opts.VoiceDelay = 1500 * time.Millisecond
	}
	m := Model{
		width:     60,
		height:    32,
		appName:   opts.AppName,
		nav:       NewNavigator(),
		factories: opts.Factories,
		keys:      opts.Keys,
		commands:  opts.Commands,
		session:   opts.Session,
		haptics:   opts.Haptics,
		sys:       NewTimerScope(),
		status:    "Ready",
		voice: &voiceState{
			recognizer: opts.Voice,
			listening:  opts.VoiceOn && opts.Voice != nil,
			tick:       opts.VoiceTick,
			delay:      opts.VoiceDelay,
		},
	}
	m.nav.Restore(opts.Start)
	m.pending = m.mount(m.nav.Current())
	return m
}

func (m Model) Init() tea.Cmd {
	return m.pending
}

func (m Model) Current() ScreenID { return m.nav.Current() }

func (m Model) Screen() Screen { return m.screen }

func (m Model) Session() *entitlement.Session { return m.session }

func (m Model) Keys() *KeyRegistry { return m.keys }

func (m Model) Overlays() int { return m.overlays.Len() }

func (m Model) VoiceListening() bool { return m.voice.listening }

func (m *Model) SetStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m Model) ActiveScope() string {
	if top := m.overlays.Top(); top != nil {
		return top.Scope()
	}
	if m.screen == nil {
		return "app"
	}
	return m.screen.Scope()
}

func (m *Model) CommandRegistry() *CommandRegistry {
	return m.commands
}

// navigate applies t and swaps the mounted screen when it moved. A
// transition that does not apply is dropped.
func (m *Model) navigate(t Transition) tea.Cmd {
	from := m.nav.Current()
	to, ok := m.nav.Apply(t)
	if !ok {
		log.Printf("sheild: session=%s ignored %s on %s", m.session.ID(), t, from)
		return nil
	}
	log.Printf("sheild: session=%s %s: %s -> %s", m.session.ID(), t, from, to)
	return m.mount(to)
}

// mount releases the outgoing screen's timers before building the next one,
// so no stale tick can reach the successor.
func (m *Model) mount(id ScreenID) tea.Cmd {
	if m.screen != nil {
		m.screen.Timers().Release()
	}
	m.overlays.Clear()
	m.voice.heard = nil
	m.voice.commandID = ""

	id = id.Normalize()
	factory, ok := m.factories[id]
	if !ok && id != Welcome {
		log.Printf("sheild: session=%s no screen registered for %s, showing welcome", m.session.ID(), id)
		m.nav.Restore(Welcome)
		id = Welcome
		factory, ok = m.factories[Welcome]
	}
	scope := NewTimerScope()
	if ok && factory != nil {
		m.screen = factory(scope)
	}
	if m.screen == nil || m.screen.Timers() != scope {
		m.screen = newPlaceholderScreen(id, scope)
	}
	return tea.Batch(m.screen.Init(), m.armVoice())
}

func (m *Model) armVoice() tea.Cmd {
	if !m.voice.listening || len(m.voicePhrases()) == 0 {
		return nil
	}
	return m.screen.Timers().Schedule(timerVoiceListen, m.voice.tick)
}

func (m Model) voicePhrases() []string {
	target, ok := m.screen.(VoiceTarget)
	if !ok {
		return nil
	}
	cmds := target.VoiceCommands()
	phrases := make([]string, 0, len(cmds))
	for p := range cmds {
		phrases = append(phrases, p)
	}
	slices.Sort(phrases)
	return phrases
}

func (m *Model) toggleVoice() tea.Cmd {
	if m.voice.recognizer == nil {
		m.SetStatus("Voice recognition unavailable")
		return nil
	}
	m.voice.listening = !m.voice.listening
	m.voice.heard = nil
	m.voice.commandID = ""
	if !m.voice.listening {
		m.screen.Timers().Cancel(timerVoiceListen)
		m.screen.Timers().Cancel(timerVoiceExec)
		m.SetStatus("Voice off")
		return nil
	}
	m.SetStatus("Voice on")
	return m.armVoice()
}

func (m *Model) feedback(kind FeedbackKind) tea.Cmd {
	glyph, err := pulse(m.haptics, kind)
	if err != nil {
		return ErrorCmd(err)
	}
	if glyph == "" {
		return nil
	}
	m.flash = glyph
	return m.sys.Schedule(timerFlashClear, time.Second)
}
