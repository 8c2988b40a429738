package store

import "testing"

func TestNewFallsBackToMemory(t *testing.T) {
	s := New(nil)
	if _, ok := s.(*MemoryStore); !ok {
		t.Errorf("Expected in-memory store without a database, got %T", s)
	}
}
