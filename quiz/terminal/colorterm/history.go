package colorterm

import "strings"

// history is the input history for the lifetime of the terminal. it is
// owned by the ColorTerminal and shared by every TermRead() invocation.
// entries are appended in chronological order and never removed.
type history struct {
	entries []string
}

func newHistory() *history {
	return &history{entries: make([]string, 0)}
}

func (h *history) len() int {
	return len(h.entries)
}

func (h *history) entry(idx int) string {
	return h.entries[idx]
}

// append adds a submitted line to the history. empty lines are never
// recorded.
func (h *history) append(line string) {
	if line == "" {
		return
	}
	h.entries = append(h.entries, line)
}

// searchBackward returns the index of the most recent entry, no newer than
// the from index, that contains the query as a substring. returns -1 if no
// entry matches.
func (h *history) searchBackward(query string, from int) int {
	if from >= len(h.entries) {
		from = len(h.entries) - 1
	}
	for i := from; i >= 0; i-- {
		if strings.Contains(h.entries[i], query) {
			return i
		}
	}
	return -1
}
