package core

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// TimerMsg is delivered when a scheduled timer elapses. The root model only
// forwards it to the screen instance whose scope issued it.
type TimerMsg struct {
	Scope uuid.UUID
	Name  string
	At    time.Time
}

// TimerScope owns the timers of one mounted screen instance. Releasing it on
// screen exit makes every outstanding tick stale.
type TimerScope struct {
	id       uuid.UUID
	released bool
	armed    map[string]int
}

func NewTimerScope() *TimerScope {
	return &TimerScope{id: uuid.New(), armed: map[string]int{}}
}

func (s *TimerScope) ID() uuid.UUID { return s.id }

func (s *TimerScope) Released() bool { return s.released }

// Schedule arms a one-shot timer. Re-arming a name supersedes the pending
// tick under that name.
func (s *TimerScope) Schedule(name string, d time.Duration) tea.Cmd {
	if s.released {
		return nil
	}
	s.armed[name]++
	gen := s.armed[name]
	id := s.id
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return timerFire{msg: TimerMsg{Scope: id, Name: name, At: t}, gen: gen}
	})
}

// Cancel disarms a named timer; its pending tick will be dropped.
func (s *TimerScope) Cancel(name string) {
	s.armed[name]++
}

// Release disarms everything the scope ever scheduled.
func (s *TimerScope) Release() {
	s.released = true
	clear(s.armed)
}

// accept reports whether a raw tick is still current for this scope.
func (s *TimerScope) accept(f timerFire) bool {
	if s == nil || s.released || f.msg.Scope != s.id {
		return false
	}
	return s.armed[f.msg.Name] == f.gen
}

// timerFire carries the arming generation alongside the public message.
type timerFire struct {
	msg TimerMsg
	gen int
}
