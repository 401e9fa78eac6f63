package utils

import (
	"sync"
	"testing"
)

func TestInFlightBeginEnd(t *testing.T) {
	g := NewInFlight()

	if !g.Begin("a") {
		t.Fatal("first Begin should succeed")
	}
	if g.Begin("a") {
		t.Error("second Begin for the same key should fail")
	}
	if !g.Begin("b") {
		t.Error("a different key must not be blocked")
	}

	g.End("a")
	if !g.Begin("a") {
		t.Error("Begin should succeed again after End")
	}
}

func TestInFlightConcurrentBegin(t *testing.T) {
	g := NewInFlight()

	const n = 32
	wins := make(chan struct{}, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if g.Begin("key") {
				wins <- struct{}{}
			}
		}()
	}
	wg.Wait()
	close(wins)

	count := 0
	for range wins {
		count++
	}
	if count != 1 {
		t.Errorf("exactly one goroutine should win, got %d", count)
	}
}
