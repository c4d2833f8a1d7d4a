package core

import tea "github.com/charmbracelet/bubbletea"

type StatusMsg struct {
	Text  string
	IsErr bool
}

// NavigateMsg asks the root model to apply a transition.
type NavigateMsg struct {
	Transition Transition
}

type PushOverlayMsg struct {
	Overlay Overlay
}

type PopOverlayMsg struct{}

type CommandExecuteMsg struct {
	CommandID string
}

// FeedbackMsg requests a haptic pulse.
type FeedbackMsg struct {
	Kind FeedbackKind
}

// EntitlementChangedMsg is broadcast after a session mutation so the header
// and mounted screen can refresh.
type EntitlementChangedMsg struct{}

func StatusCmd(text string) tea.Cmd {
	return func() tea.Msg { return StatusMsg{Text: text} }
}

func ErrorCmd(err error) tea.Cmd {
	return func() tea.Msg {
		if err == nil {
			return StatusMsg{Text: "", IsErr: false}
		}
		return StatusMsg{Text: err.Error(), IsErr: true}
	}
}

// Navigate is the callback screens use to leave.
func Navigate(t Transition) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Transition: t} }
}

// NavigateWithFeedback pulses haptics before navigating, in that order.
func NavigateWithFeedback(kind FeedbackKind, t Transition) tea.Cmd {
	return tea.Sequence(Feedback(kind), Navigate(t))
}

func Feedback(kind FeedbackKind) tea.Cmd {
	return func() tea.Msg { return FeedbackMsg{Kind: kind} }
}

func PushOverlay(o Overlay) tea.Cmd {
	return func() tea.Msg { return PushOverlayMsg{Overlay: o} }
}

func EntitlementChanged() tea.Cmd {
	return func() tea.Msg { return EntitlementChangedMsg{} }
}
