package windfarm

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestDebugLogEveryInterval(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	cfg := DefaultConfig()
	cfg.Debug = true
	a := NewApp(cfg, WithLogger(zap.New(core)))

	for i := 0; i < debugInterval*2; i++ {
		a.Tick()
	}
	entries := logs.FilterMessage("frame stats").All()
	if len(entries) != 2 {
		t.Fatalf("frame stats lines = %d, want 2", len(entries))
	}
	if got := entries[1].ContextMap()["tick"]; got != uint64(debugInterval*2) {
		t.Errorf("tick = %v, want %d", got, debugInterval*2)
	}
}

func TestDebugLogOff(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	a := NewApp(DefaultConfig(), WithLogger(zap.New(core)))
	for i := 0; i < debugInterval*2; i++ {
		a.Tick()
	}
	if n := logs.FilterMessage("frame stats").Len(); n != 0 {
		t.Errorf("frame stats lines = %d, want 0", n)
	}
}
