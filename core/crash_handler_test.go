package core

import (
	"sync"
	"testing"
)

func TestGoRunsFunction(t *testing.T) {
	var wg sync.WaitGroup
	wg.Add(1)
	ran := false
	Go(func() {
		defer wg.Done()
		ran = true
	})
	wg.Wait()
	if !ran {
		t.Error("Expected function to run")
	}
}

func TestHandleCrashIgnoresNil(t *testing.T) {
	called := false
	SetResetHook(func() { called = true })
	defer SetResetHook(nil)

	HandleCrash(nil)
	if called {
		t.Error("Expected reset hook not to run for nil panic value")
	}
}
