// Package state persists personal-best times across quiz sessions. the
// state file is a small JSON document; writes are atomic (temp file and
// rename) so an interrupted session can never corrupt existing records.
package state

import (
	"fmt"
	"time"
)

// CurrentVersion is the version written to new state files. files with a
// newer version than this are ignored rather than misread.
const CurrentVersion = 1

// State holds the recorded personal bests. times are stored in seconds,
// keyed by challenge name and by session key respectively.
type State struct {
	Version        int                `json:"version"`
	ChallengeBests map[string]float64 `json:"challenge_bests"`
	SessionBests   map[string]float64 `json:"session_bests"`
}

// NewState returns an empty state.
func NewState() *State {
	return &State{
		Version:        CurrentVersion,
		ChallengeBests: make(map[string]float64),
		SessionBests:   make(map[string]float64),
	}
}

// ChallengeBest returns the best recorded time for a challenge. the
// second return value is false if the challenge has never been completed.
func (s *State) ChallengeBest(name string) (time.Duration, bool) {
	best, ok := s.ChallengeBests[name]
	if !ok {
		return 0, false
	}
	return secondsToDuration(best), true
}

// SessionBest returns the best recorded time for a session key. the
// second return value is false if no session has been recorded under it.
func (s *State) SessionBest(key string) (time.Duration, bool) {
	best, ok := s.SessionBests[key]
	if !ok {
		return 0, false
	}
	return secondsToDuration(best), true
}

// RecordChallenge records a completed challenge, returning true if the
// elapsed time became the new best. the state is mutated in place and
// not saved to disk.
func (s *State) RecordChallenge(name string, elapsed time.Duration) bool {
	prev, ok := s.ChallengeBest(name)
	if ok && elapsed >= prev {
		return false
	}
	s.ChallengeBests[name] = elapsed.Seconds()
	return true
}

// RecordSession records a completed session under the given key. the
// semantics are the same as RecordChallenge.
func (s *State) RecordSession(key string, elapsed time.Duration) bool {
	prev, ok := s.SessionBest(key)
	if ok && elapsed >= prev {
		return false
	}
	s.SessionBests[key] = elapsed.Seconds()
	return true
}

func secondsToDuration(seconds float64) time.Duration {
	return time.Duration(seconds * float64(time.Second))
}

// FormatTime presents a duration as a short human-readable time string,
// matching what the picker and the quiz print: "12.3s" or "1m 2.5s".
func FormatTime(d time.Duration) string {
	seconds := d.Seconds()
	if seconds < 60 {
		return fmt.Sprintf("%.1fs", seconds)
	}
	minutes := int(seconds) / 60
	return fmt.Sprintf("%dm %.1fs", minutes, seconds-float64(minutes*60))
}
