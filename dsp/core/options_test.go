package core

import "testing"

func TestApplySweepOptions(t *testing.T) {
	cfg := ApplySweepOptions(WithSamples(256), WithLoops(4), WithPeriodic())
	if cfg.Samples != 256 {
		t.Fatalf("samples = %d, want 256", cfg.Samples)
	}
	if cfg.Loops != 4 {
		t.Fatalf("loops = %v, want 4", cfg.Loops)
	}
	if !cfg.Periodic {
		t.Fatal("expected periodic sweep")
	}
}

func TestInvalidOptionsIgnored(t *testing.T) {
	cfg := ApplySweepOptions(WithSamples(0), WithLoops(-1), nil)
	def := DefaultSweepConfig()
	if cfg != def {
		t.Fatalf("cfg = %#v, want %#v", cfg, def)
	}
}
