package domain

import "time"

// Timer is a cancellable scheduled callback.
type Timer interface {
	Stop() bool
}

// AfterFunc schedules f to run once after d.
type AfterFunc func(d time.Duration, f func()) Timer

// TimerSlot is the single timer an entity owns for one purpose. Every
// Rearm or Cancel bumps the generation, so a callback that already fired
// but has not yet been handled can tell it was superseded.
type TimerSlot struct {
	timer Timer
	gen   uint64
}

// Rearm cancels any pending timer and schedules fire after d. fire receives
// the generation it was armed with and should pass it to Fire.
func (s *TimerSlot) Rearm(after AfterFunc, d time.Duration, fire func(gen uint64)) {
	s.Cancel()
	gen := s.gen
	s.timer = after(d, func() { fire(gen) })
}

func (s *TimerSlot) Cancel() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.gen++
}

func (s *TimerSlot) Armed() bool {
	return s.timer != nil
}

// Fire claims a fired callback. It returns false when the slot has been
// rearmed or cancelled since gen was handed out.
func (s *TimerSlot) Fire(gen uint64) bool {
	if s.timer == nil || gen != s.gen {
		return false
	}
	s.timer = nil
	s.gen++

	return true
}
