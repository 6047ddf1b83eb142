// Package schedule runs delayed callbacks against virtual game time.
package schedule

import "sort"

// TimerID identifies a scheduled callback. Zero is never issued.
type TimerID uint64

type timer struct {
	id    TimerID
	due   float64
	label string
	fn    func()
}

// Scheduler holds pending delayed callbacks. Time only moves when Advance
// is called, so tests drive it deterministically.
type Scheduler struct {
	now     float64
	nextID  TimerID
	pending []*timer
}

func New() *Scheduler {
	return &Scheduler{nextID: 1}
}

// Now is the virtual time in seconds.
func (s *Scheduler) Now() float64 { return s.now }

// After schedules fn to run once delay seconds from now.
func (s *Scheduler) After(delay float64, label string, fn func()) TimerID {
	if delay < 0 {
		delay = 0
	}
	id := s.nextID
	s.nextID++
	s.pending = append(s.pending, &timer{id: id, due: s.now + delay, label: label, fn: fn})
	return id
}

// Cancel removes a pending timer. It reports whether the timer was pending.
func (s *Scheduler) Cancel(id TimerID) bool {
	for i, t := range s.pending {
		if t.id == id {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			return true
		}
	}
	return false
}

// CancelAll drops every pending timer and returns how many there were.
func (s *Scheduler) CancelAll() int {
	n := len(s.pending)
	s.pending = nil
	return n
}

// Pending lists the labels of pending timers in due order.
func (s *Scheduler) Pending() []string {
	ts := append([]*timer(nil), s.pending...)
	sortTimers(ts)
	labels := make([]string, len(ts))
	for i, t := range ts {
		labels[i] = t.label
	}
	return labels
}

// Remaining returns the seconds left on a pending timer.
func (s *Scheduler) Remaining(id TimerID) (float64, bool) {
	for _, t := range s.pending {
		if t.id == id {
			return t.due - s.now, true
		}
	}
	return 0, false
}

// Advance moves time forward by dt and fires every timer that became due,
// earliest first. Timers scheduled by a callback fire in the same call if
// they fall inside the window. A timer canceled by an earlier callback in
// the same window does not fire.
func (s *Scheduler) Advance(dt float64) {
	if dt < 0 {
		return
	}
	end := s.now + dt
	for {
		next := s.popDue(end)
		if next == nil {
			break
		}
		if next.due > s.now {
			s.now = next.due
		}
		next.fn()
	}
	s.now = end
}

func (s *Scheduler) popDue(end float64) *timer {
	best := -1
	for i, t := range s.pending {
		if t.due > end {
			continue
		}
		if best < 0 || t.due < s.pending[best].due || t.due == s.pending[best].due && t.id < s.pending[best].id {
			best = i
		}
	}
	if best < 0 {
		return nil
	}
	t := s.pending[best]
	s.pending = append(s.pending[:best], s.pending[best+1:]...)
	return t
}

func sortTimers(ts []*timer) {
	sort.Slice(ts, func(i, j int) bool {
		if ts[i].due != ts[j].due {
			return ts[i].due < ts[j].due
		}
		return ts[i].id < ts[j].id
	})
}
