package core

type OverlayStack struct {
	items []Overlay
}

func (s *OverlayStack) Push(o Overlay) {
	if o == nil {
		return
	}
	s.items = append(s.items, o)
}

func (s *OverlayStack) Pop() Overlay {
	if len(s.items) == 0 {
		return nil
	}
	last := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return last
}

func (s OverlayStack) Top() Overlay {
	if len(s.items) == 0 {
		return nil
	}
	return s.items[len(s.items)-1]
}

func (s *OverlayStack) ReplaceTop(o Overlay) {
	if len(s.items) == 0 || o == nil {
		return
	}
	s.items[len(s.items)-1] = o
}

func (s *OverlayStack) Clear() {
	s.items = nil
}

func (s OverlayStack) Len() int {
	return len(s.items)
}
