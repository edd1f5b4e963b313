package state

import (
	"strings"
	"unicode"
)

// SetQuery updates the search query and its cursor position.
func (s *Suggestions) SetQuery(query string, cursor int) {
	s.Query = query
	runes := []rune(query)
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(runes) {
		cursor = len(runes)
	}
	s.QueryCursor = cursor
}

// TrimmedQuery returns the query without surrounding whitespace.
func (s *Suggestions) TrimmedQuery() string {
	return strings.TrimSpace(s.Query)
}

// ResetQuery empties the query.
func (s *Suggestions) ResetQuery() {
	s.Query = ""
	s.QueryCursor = 0
}

// QueryCursorPos returns the rune offset of the query cursor.
func (s *Suggestions) QueryCursorPos() int {
	runes := []rune(s.Query)
	if s.QueryCursor < 0 {
		return 0
	}
	if s.QueryCursor > len(runes) {
		return len(runes)
	}
	return s.QueryCursor
}

// InsertText inserts text into the query at the cursor position.
func (s *Suggestions) InsertText(text string) bool {
	insert := []rune(text)
	if len(insert) == 0 {
		return false
	}
	runes := []rune(s.Query)
	pos := s.QueryCursorPos()
	updated := make([]rune, 0, len(runes)+len(insert))
	updated = append(updated, runes[:pos]...)
	updated = append(updated, insert...)
	updated = append(updated, runes[pos:]...)
	s.SetQuery(string(updated), pos+len(insert))
	return true
}

// DeleteRuneBackward deletes the rune before the cursor.
func (s *Suggestions) DeleteRuneBackward() bool {
	runes := []rune(s.Query)
	pos := s.QueryCursorPos()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	updated := append(runes[:pos-1], runes[pos:]...)
	s.SetQuery(string(updated), pos-1)
	return true
}

// DeleteRuneForward deletes the rune under the cursor.
func (s *Suggestions) DeleteRuneForward() bool {
	runes := []rune(s.Query)
	pos := s.QueryCursorPos()
	if pos >= len(runes) {
		return false
	}
	updated := append(runes[:pos], runes[pos+1:]...)
	s.SetQuery(string(updated), pos)
	return true
}

// DeleteWordBackward deletes the word preceding the cursor.
func (s *Suggestions) DeleteWordBackward() bool {
	runes := []rune(s.Query)
	pos := s.QueryCursorPos()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	i := wordStart(runes, pos)
	updated := append(runes[:i], runes[pos:]...)
	s.SetQuery(string(updated), i)
	return true
}

// DeleteToStart deletes everything before the cursor.
func (s *Suggestions) DeleteToStart() bool {
	runes := []rune(s.Query)
	pos := s.QueryCursorPos()
	if pos == 0 {
		return false
	}
	s.SetQuery(string(runes[pos:]), 0)
	return true
}

// MoveCursorStart moves the query cursor to the start.
func (s *Suggestions) MoveCursorStart() bool {
	if s.QueryCursorPos() == 0 {
		return false
	}
	s.QueryCursor = 0
	return true
}

// MoveCursorEnd moves the query cursor to the end.
func (s *Suggestions) MoveCursorEnd() bool {
	end := len([]rune(s.Query))
	if s.QueryCursorPos() == end {
		return false
	}
	s.QueryCursor = end
	return true
}

// MoveCursorWordBackward moves the query cursor one word backward.
func (s *Suggestions) MoveCursorWordBackward() bool {
	runes := []rune(s.Query)
	pos := s.QueryCursorPos()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	i := wordStart(runes, pos)
	if i == pos {
		return false
	}
	s.QueryCursor = i
	return true
}

// MoveCursorWordForward moves the query cursor one word forward.
func (s *Suggestions) MoveCursorWordForward() bool {
	runes := []rune(s.Query)
	pos := s.QueryCursorPos()
	if pos >= len(runes) {
		return false
	}
	i := pos
	for i < len(runes) && !unicode.IsSpace(runes[i]) {
		i++
	}
	for i < len(runes) && unicode.IsSpace(runes[i]) {
		i++
	}
	if i == pos {
		return false
	}
	s.QueryCursor = i
	return true
}

// MoveCursorRuneBackward moves the query cursor one rune backward.
func (s *Suggestions) MoveCursorRuneBackward() bool {
	if s.QueryCursorPos() == 0 {
		return false
	}
	s.QueryCursor = s.QueryCursorPos() - 1
	return true
}

// MoveCursorRuneForward moves the query cursor one rune forward.
func (s *Suggestions) MoveCursorRuneForward() bool {
	pos := s.QueryCursorPos()
	if pos >= len([]rune(s.Query)) {
		return false
	}
	s.QueryCursor = pos + 1
	return true
}

func wordStart(runes []rune, pos int) int {
	i := pos
	for i > 0 && unicode.IsSpace(runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(runes[i-1]) {
		i--
	}
	return i
}
