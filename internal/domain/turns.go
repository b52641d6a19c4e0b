package domain

import (
	"slices"
	"time"
)

// Defaults for the read-side turn policies
const (
	DefaultExpirationThreshold = 3
	DefaultToolResponseLimit   = 3
)

// AppendPool stages turns produced by an in-flight run
func (s *Session) AppendPool(turns ...Turn) error {
	for _, t := range turns {
		if err := t.Validate(); err != nil {
			return err
		}
	}
	s.Pools = append(s.Pools, turns...)
	return nil
}

// CommitPool moves every pooled turn, in order, to the end of the turn log
// and clears the pool. It returns the number of committed turns.
func (s *Session) CommitPool() int {
	pooled := s.Pools
	s.Pools = nil
	s.Turns = append(s.Turns, pooled...)
	return len(pooled)
}

// RollbackPool discards every pooled turn and returns how many were dropped
func (s *Session) RollbackPool() int {
	n := len(s.Pools)
	s.Pools = nil
	return n
}

// DeleteTurns removes the turns at the given 0-based indices. All indices are
// validated before anything is removed; duplicates are ignored.
func (s *Session) DeleteTurns(indices []int) error {
	if len(indices) == 0 {
		return nil
	}
	for _, idx := range indices {
		if idx < 0 || idx >= len(s.Turns) {
			return ErrTurnIndexOutOfRange
		}
	}

	sorted := slices.Clone(indices)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)
	// Descending so earlier removals don't shift later indices
	for i := len(sorted) - 1; i >= 0; i-- {
		idx := sorted[i]
		s.Turns = slices.Delete(s.Turns, idx, idx+1)
	}
	return nil
}

// EditTurn applies edit to the turn at index
func (s *Session) EditTurn(index int, edit TurnEdit) error {
	if index < 0 || index >= len(s.Turns) {
		return ErrTurnIndexOutOfRange
	}
	edited, err := edit.apply(s.Turns[index])
	if err != nil {
		return err
	}
	s.Turns[index] = edited
	return nil
}

// ValidateTurnRange checks 0 <= start <= end < len(turns)
func (s *Session) ValidateTurnRange(start, end int) error {
	if start < 0 || end < start || end >= len(s.Turns) {
		return ErrInvalidRange
	}
	return nil
}

// ReplaceTurnRange splices a compressed_history turn holding summary in place
// of turns [start, end] inclusive.
func (s *Session) ReplaceTurnRange(start, end int, summary string, now time.Time) error {
	if err := s.ValidateTurnRange(start, end); err != nil {
		return err
	}
	compressed := NewCompressedHistory(summary, start, end, now)

	turns := make([]Turn, 0, len(s.Turns)-(end-start))
	turns = append(turns, s.Turns[:start]...)
	turns = append(turns, compressed)
	turns = append(turns, s.Turns[end+1:]...)
	s.Turns = turns
	return nil
}

// TurnsForPrompt returns the history used to build a prompt: the last turn is
// treated as the pending task and dropped, and only the limit most recent
// tool responses are kept. Chronological order is preserved.
func TurnsForPrompt(turns []Turn, limit int) []Turn {
	if len(turns) <= 1 {
		return []Turn{}
	}
	history := turns[:len(turns)-1]

	keep := make([]bool, len(history))
	toolResponses := 0
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Type != TurnToolResponse {
			keep[i] = true
			continue
		}
		if toolResponses < limit {
			keep[i] = true
			toolResponses++
		}
	}

	result := make([]Turn, 0, len(history))
	for i, t := range history {
		if keep[i] {
			result = append(result, t)
		}
	}
	return result
}

// ExpireOldToolResponses replaces the message of succeeded tool responses
// older than the threshold-th most recent user task with a fixed notice.
// The input slice is never modified; a new slice is returned together with
// whether anything changed.
func ExpireOldToolResponses(turns []Turn, threshold int) ([]Turn, bool) {
	var userTaskTimes []time.Time
	for _, t := range turns {
		if t.Type == TurnUserTask {
			userTaskTimes = append(userTaskTimes, t.Timestamp)
		}
	}
	if threshold <= 0 || len(userTaskTimes) <= threshold {
		return turns, false
	}
	cutoff := userTaskTimes[len(userTaskTimes)-threshold]

	result := make([]Turn, len(turns))
	changed := false
	for i, t := range turns {
		if t.Type == TurnToolResponse &&
			t.Result.Status == ToolStatusSucceeded &&
			t.Timestamp.Before(cutoff) &&
			t.Result.Message != ExpiredToolResponseMessage {
			t.Result = ToolResult{Status: t.Result.Status, Message: ExpiredToolResponseMessage}
			changed = true
		}
		result[i] = t
	}
	return result, changed
}
