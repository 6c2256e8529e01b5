package life

import (
	"testing"
	"time"
)

func TestFromMapOverrides(t *testing.T) {
	cfg := FromMap(map[string]string{
		"max_age":      "7",
		"rows":         "10",
		"cols":         "12",
		"cells":        "30",
		"pause_fast":   "0",
		"pause_medium": "50",
		"pause_slow":   "250",
		"stop_word":    "stop",
		"empty":        ".",
		"comment":      ";",
	})
	if cfg.MaxAge != 7 || cfg.Rows != 10 || cfg.Cols != 12 || cfg.Cells != 30 {
		t.Fatalf("unexpected sizing %+v", cfg)
	}
	if cfg.Pause(SpeedFast) != 0 || cfg.Pause(SpeedMedium) != 50*time.Millisecond || cfg.Pause(SpeedSlow) != 250*time.Millisecond {
		t.Fatalf("unexpected pauses %+v", cfg)
	}
	if cfg.StopWord != "stop" || cfg.Empty != '.' || cfg.Comment != ';' {
		t.Fatalf("unexpected markers %+v", cfg)
	}
}

func TestFromMapKeepsDefaultsOnBadInput(t *testing.T) {
	def := DefaultConfig()
	cfg := FromMap(map[string]string{
		"max_age":   "-3",
		"rows":      "zero",
		"empty":     "--",
		"stop_word": "",
	})
	if cfg != def {
		t.Fatalf("got %+v, want defaults %+v", cfg, def)
	}
}

func TestFromMapCapsPopulation(t *testing.T) {
	cfg := FromMap(map[string]string{"rows": "3", "cols": "3"})
	if cfg.Cells != 9 {
		t.Fatalf("cells = %d, want 9", cfg.Cells)
	}
}

func TestPauseForManualIsZero(t *testing.T) {
	if d := DefaultConfig().Pause(SpeedManual); d != 0 {
		t.Fatalf("manual pause = %s", d)
	}
}

func TestParametersSnapshot(t *testing.T) {
	snap := DefaultConfig().Parameters()
	p, ok := snap.Lookup("max_age")
	if !ok || p.Value != "20" {
		t.Fatalf("max_age parameter = %+v, %v", p, ok)
	}
	p, ok = snap.Lookup("pause_medium")
	if !ok || p.Value != "100ms" {
		t.Fatalf("pause_medium parameter = %+v, %v", p, ok)
	}
	if _, ok := snap.Lookup("missing"); ok {
		t.Fatal("lookup of unknown key succeeded")
	}
}
