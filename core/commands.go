package core

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type Command struct {
	ID          string
	Name        string
	Description string
	Group       string
	Scopes      []string
	Execute     func(m *Model) tea.Cmd
	Disabled    func(m *Model) (bool, string)
}

type CommandResult struct {
	CommandID string
	Name      string
	Desc      string
	Group     string
	Disabled  bool
	Reason    string
}

type CommandRegistry struct {
	commands map[string]Command
}

func NewCommandRegistry(cmds []Command) *CommandRegistry {
	reg := &CommandRegistry{commands: map[string]Command{}}
	for _, c := range cmds {
		reg.Register(c)
	}
	return reg
}

func (r *CommandRegistry) Register(c Command) {
	if c.ID == "" {
		return
	}
	r.commands[c.ID] = c
}

func (r *CommandRegistry) Search(query, scope string, m *Model) []CommandResult {
	q := strings.ToLower(strings.TrimSpace(query))
	results := make([]CommandResult, 0, len(r.commands))
	for _, c := range r.commands {
		if !scopeMatch(scope, c.Scopes) {
			continue
		}
		h := strings.ToLower(c.Name + " " + c.Description + " " + c.ID)
		if q != "" && !strings.Contains(h, q) {
			continue
		}
		disabled := false
		reason := ""
		if c.Disabled != nil {
			disabled, reason = c.Disabled(m)
		}
		results = append(results, CommandResult{
			CommandID: c.ID,
			Name:      c.Name,
			Desc:      c.Description,
			Group:     c.Group,
			Disabled:  disabled,
			Reason:    reason,
		})
	}
	slices.SortFunc(results, func(a, b CommandResult) int {
		if a.Disabled != b.Disabled {
			if !a.Disabled {
				return -1
			}
			return 1
		}
		return cmp.Compare(a.Name, b.Name)
	})
	return results
}

func (r *CommandRegistry) Execute(id string, m *Model) tea.Cmd {
	c, ok := r.commands[id]
	if !ok {
		return ErrorCmd(fmt.Errorf("unknown command %q", id))
	}
	if c.Disabled != nil {
		disabled, reason := c.Disabled(m)
		if disabled {
			if reason == "" {
				reason = "command is disabled"
			}
			return StatusCmd(reason)
		}
	}
	if c.Execute == nil {
		return nil
	}
	return c.Execute(m)
}

// DefaultCommands exposes every transition as a command, plus the session
// mutations. Voice commands resolve through these ids.
func DefaultCommands() []Command {
	cmds := make([]Command, 0, int(transitionCount)+3)
	for _, t := range AllTransitions() {
		cmds = append(cmds, Command{
			ID:          t.String(),
			Name:        strings.ReplaceAll(t.String(), "-", " "),
			Description: "go to " + t.Target().String(),
			Group:       "navigate",
			Execute: func(m *Model) tea.Cmd {
				return NavigateWithFeedback(t.Feedback(), t)
			},
			Disabled: func(m *Model) (bool, string) {
				if t.AllowedFrom(m.Current()) {
					return false, ""
				}
				return true, "Not available from " + m.Current().String()
			},
		})
	}
	cmds = append(cmds,
		Command{
			ID:          "start-trial",
			Name:        "start trial",
			Description: "start the 7 day free trial",
			Group:       "session",
			Execute: func(m *Model) tea.Cmd {
				m.session.StartTrial()
				return tea.Batch(EntitlementChanged(), StatusCmd("Free trial started"))
			},
			Disabled: func(m *Model) (bool, string) {
				if m.session.IsPremium() {
					return true, "Premium already active"
				}
				return false, ""
			},
		},
		Command{
			ID:          "upgrade-premium",
			Name:        "upgrade",
			Description: "upgrade to premium",
			Group:       "session",
			Execute: func(m *Model) tea.Cmd {
				m.session.UpgradeToPremium()
				return tea.Batch(EntitlementChanged(), StatusCmd("Premium active"))
			},
			Disabled: func(m *Model) (bool, string) {
				if m.session.IsPremium() {
					return true, "Premium already active"
				}
				return false, ""
			},
		},
		Command{
			ID:          "toggle-voice",
			Name:        "voice",
			Description: "toggle voice listening",
			Group:       "session",
			Execute: func(m *Model) tea.Cmd {
				return m.toggleVoice()
			},
		},
	)
	return cmds
}
