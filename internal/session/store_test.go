package session

import (
	"testing"
	"time"
)

func TestStoreCreateAndGet(t *testing.T) {
	st := NewStore(time.Hour)
	s := st.Create()
	if s.ID() == "" {
		t.Fatal("expected non-empty session id")
	}
	if len(s.ID()) != 26 {
		t.Errorf("expected 26-char id, got %d (%q)", len(s.ID()), s.ID())
	}
	if got := st.Get(s.ID()); got != s {
		t.Error("Get should return the created session")
	}
	if st.Get("nope") != nil {
		t.Error("Get for unknown id should return nil")
	}
}

func TestStoreIDsAreUnique(t *testing.T) {
	st := NewStore(time.Hour)
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := st.Create().ID()
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
}

func TestStoreDelete(t *testing.T) {
	st := NewStore(time.Hour)
	s := st.Create()
	st.Delete(s.ID())
	if st.Get(s.ID()) != nil {
		t.Error("deleted session should be gone")
	}
	if st.Len() != 0 {
		t.Errorf("expected empty store, got %d", st.Len())
	}
}

func TestStoreCleanupEvictsIdleSessions(t *testing.T) {
	st := NewStore(10 * time.Millisecond)
	old := st.Create()
	time.Sleep(25 * time.Millisecond)
	fresh := st.Create()

	st.Cleanup()
	if st.Get(old.ID()) != nil {
		t.Error("idle session should be evicted")
	}
	if st.Get(fresh.ID()) == nil {
		t.Error("fresh session should survive cleanup")
	}
}

func TestStoreCleanupKeepsActiveSessions(t *testing.T) {
	st := NewStore(50 * time.Millisecond)
	s := st.Create()
	time.Sleep(30 * time.Millisecond)
	s.AppendMessage(RoleUser, "still here") // refreshes updatedAt
	time.Sleep(30 * time.Millisecond)

	st.Cleanup()
	if st.Get(s.ID()) == nil {
		t.Error("recently active session should survive cleanup")
	}
}
