package core

import (
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case StatusMsg:
		m.status = msg.Text
		m.statusErr = msg.IsErr
		return m, nil
	case NavigateMsg:
		return m, m.navigate(msg.Transition)
	case PushOverlayMsg:
		m.overlays.Push(msg.Overlay)
		return m, nil
	case PopOverlayMsg:
		m.overlays.Pop()
		return m, nil
	case CommandExecuteMsg:
		return m, m.commands.Execute(msg.CommandID, &m)
	case FeedbackMsg:
		return m, m.feedback(msg.Kind)
	case EntitlementChangedMsg:
		snap := m.session.Snapshot()
		log.Printf("sheild: session=%s entitlement tier=%s trial_days=%d", m.session.ID(), snap.Tier(), snap.TrialDaysLeft)
		return m, m.forward(msg)
	case timerFire:
		return m, m.handleTimer(msg)
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	return m, m.forward(msg)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return tea.Quit
	}

	if top := m.overlays.Top(); top != nil {
		next, cmd, pop := top.Update(msg)
		if pop {
			m.overlays.Pop()
			return cmd
		}
		m.overlays.ReplaceTop(next)
		return cmd
	}

	capturing := false
	if c, ok := m.screen.(InputCapturer); ok {
		capturing = c.CapturingInput()
	}
	if !capturing {
		scope := m.ActiveScope()
		switch {
		case m.keys.IsAction(msg, "quit", scope):
			m.quitting = true
			return tea.Quit
		case m.keys.IsAction(msg, "command-palette", scope):
			m.overlays.Push(newCommandPalette(m.commands.Search("", scope, m), m.keys))
			return nil
		case m.keys.IsAction(msg, "toggle-voice", scope):
			return m.toggleVoice()
		case m.keys.IsAction(msg, "reset", scope):
			log.Printf("sheild: session=%s reset from %s", m.session.ID(), m.nav.Current())
			m.nav.Reset()
			return m.mount(m.nav.Current())
		}
	}
	return m.forward(msg)
}

func (m *Model) handleTimer(f timerFire) tea.Cmd {
	if m.sys.accept(f) {
		if f.msg.Name == timerFlashClear {
			m.flash = ""
		}
		return nil
	}
	if m.screen == nil || !m.screen.Timers().accept(f) {
		return nil
	}
	switch f.msg.Name {
	case timerVoiceListen:
		return m.voiceTick()
	case timerVoiceExec:
		id := m.voice.commandID
		m.voice.heard = nil
		m.voice.commandID = ""
		return tea.Batch(m.commands.Execute(id, m), m.armVoice())
	}
	return m.forward(f.msg)
}

func (m *Model) voiceTick() tea.Cmd {
	if !m.voice.listening || m.voice.heard != nil {
		return nil
	}
	heard, ok := listen(m.voice.recognizer, m.voicePhrases())
	if !ok {
		return m.armVoice()
	}
	target, _ := m.screen.(VoiceTarget)
	id := target.VoiceCommands()[heard.Phrase]
	if id == "" {
		return m.armVoice()
	}
	m.voice.heard = &heard
	m.voice.commandID = id
	m.SetStatus(fmt.Sprintf("Heard: %q (%d%% confidence)", heard.Phrase, int(heard.Confidence*100+0.5)))
	return m.screen.Timers().Schedule(timerVoiceExec, m.voice.delay)
}

// forward hands msg to the top overlay, if any, and then to the mounted
// screen. Keys never reach here while an overlay is open.
func (m *Model) forward(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	if top := m.overlays.Top(); top != nil {
		next, cmd, pop := top.Update(msg)
		if pop {
			m.overlays.Pop()
		} else {
			m.overlays.ReplaceTop(next)
		}
		cmds = append(cmds, cmd)
	}
	cmds = append(cmds, m.updateScreen(msg))
	return tea.Batch(cmds...)
}

func (m *Model) updateScreen(msg tea.Msg) tea.Cmd {
	if m.screen == nil {
		return nil
	}
	next, cmd := m.screen.Update(msg)
	if next != nil && next.Timers() == m.screen.Timers() {
		m.screen = next
	}
	return cmd
}
