package cache

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/openvoicekit/voicecatalog/domain/entities"
)

func TestGetMissWhenEmpty(t *testing.T) {
	c := New()

	if _, ok := c.Get("polly"); ok {
		t.Error("Expected miss on empty cache")
	}
}

func TestPutThenGet(t *testing.T) {
	c := New()
	voices := []entities.Voice{{ID: "Joanna", Name: "Joanna", Engine: "polly"}}

	c.Put("polly", voices)

	got, ok := c.Get("polly")
	if !ok {
		t.Fatal("Expected hit after put")
	}
	if len(got) != 1 || got[0].ID != "Joanna" {
		t.Errorf("Unexpected cached voices: %v", got)
	}
}

func TestEntriesArePerEngine(t *testing.T) {
	c := New()
	c.Put("polly", []entities.Voice{{ID: "Joanna", Engine: "polly"}})

	if _, ok := c.Get("google"); ok {
		t.Error("Expected miss for engine that was never populated")
	}
}

func TestFreshnessExpiry(t *testing.T) {
	current := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	c := NewWithClock(func() time.Time { return current })

	c.Put("watson", []entities.Voice{{ID: "Allison", Engine: "watson"}})

	current = current.Add(FreshnessWindow - time.Minute)
	if _, ok := c.Get("watson"); !ok {
		t.Error("Expected hit within the freshness window")
	}

	current = current.Add(time.Minute)
	if _, ok := c.Get("watson"); ok {
		t.Error("Expected miss once the entry reaches the freshness window")
	}
}

func TestPutReplacesWholesale(t *testing.T) {
	c := New()
	c.Put("google", []entities.Voice{{ID: "old-a"}, {ID: "old-b"}})
	c.Put("google", []entities.Voice{{ID: "new-a"}})

	got, ok := c.Get("google")
	if !ok {
		t.Fatal("Expected hit after second put")
	}
	if len(got) != 1 || got[0].ID != "new-a" {
		t.Errorf("Expected replacement, not merge: %v", got)
	}
}

func TestConcurrentAccess(t *testing.T) {
	c := New()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(2)
		engine := fmt.Sprintf("engine-%d", i%4)
		go func(engine string, n int) {
			defer wg.Done()
			c.Put(engine, []entities.Voice{{ID: fmt.Sprintf("v-%d", n), Engine: engine}})
		}(engine, i)
		go func(engine string) {
			defer wg.Done()
			if voices, ok := c.Get(engine); ok && len(voices) != 1 {
				t.Errorf("Observed partial entry for %s: %v", engine, voices)
			}
		}(engine)
	}
	wg.Wait()
}
