package screens

type ScreenStack struct {
	items []Screen
}

func (s *ScreenStack) Push(screen Screen) {
	if screen == nil {
		return
	}
	s.items = append(s.items, screen)
}

func (s *ScreenStack) Pop() Screen {
	if len(s.items) == 0 {
		return nil
	}
	last := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return last
}

func (s ScreenStack) Top() Screen {
	if len(s.items) == 0 {
		return nil
	}
	return s.items[len(s.items)-1]
}

func (s ScreenStack) Len() int {
	return len(s.items)
}

// Truncate drops everything above the first n screens.
func (s *ScreenStack) Truncate(n int) {
	if n < 0 {
		n = 0
	}
	if n < len(s.items) {
		clear(s.items[n:])
		s.items = s.items[:n]
	}
}

func (s ScreenStack) Items() []Screen {
	out := make([]Screen, len(s.items))
	copy(out, s.items)
	return out
}
