package game

import (
	"sync"
	"testing"
)

func TestHighScoreCommitStrictlyGreater(t *testing.T) {
	m := NewHighScoreManager(nil)

	tests := []struct {
		name      string
		score     int
		wantOK    bool
		wantAfter int
	}{
		{"first score", 10, true, 10},
		{"equal score does not replace", 10, false, 10},
		{"lower score does not replace", 7, false, 10},
		{"higher score replaces", 12, true, 12},
		{"zero on fresh table stays zero", 0, false, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.Commit("hard", tt.score); got != tt.wantOK {
				t.Errorf("Commit(hard, %d) = %v, want %v", tt.score, got, tt.wantOK)
			}
			if got := m.Get("hard"); got != tt.wantAfter {
				t.Errorf("Get(hard) = %d, want %d", got, tt.wantAfter)
			}
		})
	}
}

func TestHighScoreDifficultiesAreIndependent(t *testing.T) {
	m := NewHighScoreManager(nil)
	m.Commit("easy", 30)
	m.Commit("hard", 5)

	if got := m.Get("medium"); got != 0 {
		t.Errorf("Get(medium) = %d, want 0", got)
	}
	if m.Commit("easy", 0) {
		t.Error("Commit(easy, 0) should not replace 30")
	}

	all := m.All()
	if len(all) != 2 || all["easy"] != 30 || all["hard"] != 5 {
		t.Errorf("All() = %v, want map[easy:30 hard:5]", all)
	}

	// All 返回副本
	all["easy"] = 1
	if got := m.Get("easy"); got != 30 {
		t.Errorf("Get(easy) after mutating copy = %d, want 30", got)
	}
}

func TestHighScorePersistence(t *testing.T) {
	gdataManager := openTestGdata(t, "test_balloon_highscores")

	m1 := NewHighScoreManager(gdataManager)
	m1.Commit("medium", 17)
	m1.Commit("hard", 4)

	m2 := NewHighScoreManager(gdataManager)
	if got := m2.Get("medium"); got != 17 {
		t.Errorf("reloaded Get(medium) = %d, want 17", got)
	}
	if got := m2.Get("hard"); got != 4 {
		t.Errorf("reloaded Get(hard) = %d, want 4", got)
	}
}

func TestHighScoreLoadCorrupted(t *testing.T) {
	gdataManager := openTestGdata(t, "test_balloon_highscores_corrupted")
	if err := gdataManager.SaveObjectProp(highScoreObject, highScoreProperty, []byte("scores: [1, 2")); err != nil {
		t.Fatalf("SaveObjectProp() error: %v", err)
	}

	m := NewHighScoreManager(gdataManager)
	if got := len(m.All()); got != 0 {
		t.Errorf("corrupted store should start empty, got %d entries", got)
	}
	if !m.Commit("easy", 3) {
		t.Error("Commit after corrupted load should succeed")
	}
}

func TestHighScoreConcurrentCommit(t *testing.T) {
	m := NewHighScoreManager(nil)

	var wg sync.WaitGroup
	for i := 1; i <= 100; i++ {
		wg.Add(1)
		go func(score int) {
			defer wg.Done()
			m.Commit("easy", score)
		}(i)
	}
	wg.Wait()

	if got := m.Get("easy"); got != 100 {
		t.Errorf("Get(easy) after concurrent commits = %d, want 100", got)
	}
}
