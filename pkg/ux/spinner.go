// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package ux

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// SpinnerFrames is the default animation.
var SpinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// DefaultSpinnerInterval is the time between frames.
const DefaultSpinnerInterval = 80 * time.Millisecond

// Spinner is an animated progress line for long runs.
//
// A spinner on a plain theme prints nothing, so callers can start one
// unconditionally. Thread Safety: SetProgress may be called from any
// goroutine while the spinner runs.
type Spinner struct {
	w        io.Writer
	theme    *Theme
	message  string
	interval time.Duration

	mu      sync.Mutex
	current int
	total   int
	running bool
	stop    chan struct{}
	done    chan struct{}
}

// NewSpinner returns a stopped spinner writing to w.
func NewSpinner(w io.Writer, theme *Theme, message string) *Spinner {
	return &Spinner{w: w, theme: theme, message: message, interval: DefaultSpinnerInterval}
}

// WithInterval sets the frame interval.
func (s *Spinner) WithInterval(d time.Duration) *Spinner {
	if d > 0 {
		s.interval = d
	}
	return s
}

// SetProgress updates the done/total counter shown after the message.
func (s *Spinner) SetProgress(current, total int) {
	s.mu.Lock()
	s.current, s.total = current, total
	s.mu.Unlock()
}

func (s *Spinner) line(frame string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.total > 0 {
		return fmt.Sprintf("\r%s %s [%d/%d]", s.theme.Title.Render(frame), s.message, s.current, s.total)
	}
	return fmt.Sprintf("\r%s %s", s.theme.Title.Render(frame), s.message)
}

// Start begins the animation. It is a no-op on a plain theme or when the
// spinner is already running.
func (s *Spinner) Start() {
	s.mu.Lock()
	if s.running || s.theme.Plain() {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.stop = make(chan struct{})
	s.done = make(chan struct{})
	stop, done := s.stop, s.done
	s.mu.Unlock()

	go func() {
		defer close(done)
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for i := 0; ; i = (i + 1) % len(SpinnerFrames) {
			select {
			case <-stop:
				fmt.Fprint(s.w, "\r\033[K")
				return
			case <-ticker.C:
				fmt.Fprint(s.w, s.line(SpinnerFrames[i]))
			}
		}
	}()
}

// Stop ends the animation and clears the line.
func (s *Spinner) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	stop, done := s.stop, s.done
	s.mu.Unlock()

	close(stop)
	<-done
}
