package controls

import (
	"math"
	"testing"
)

func TestNewDefaults(t *testing.T) {
	p := New(0)
	if p.Len() != DefaultPhasors {
		t.Fatalf("Len() = %d, want %d", p.Len(), DefaultPhasors)
	}
	for i := 0; i < p.Len(); i++ {
		if p.Ratios()[i] != 1 || p.Radii()[i] != 1 {
			t.Fatalf("phasor %d not at initial values", i)
		}
	}
}

func TestSetClamps(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		in   float64
		want float64
	}{
		{name: "ratio inside", kind: KindRatio, in: 1.25, want: 1.25},
		{name: "ratio below", kind: KindRatio, in: 0, want: 0.1},
		{name: "ratio above", kind: KindRatio, in: 5, want: 1.9},
		{name: "radius inside", kind: KindRadius, in: 0.5, want: 0.5},
		{name: "radius negative", kind: KindRadius, in: -1, want: 0},
		{name: "radius above", kind: KindRadius, in: 3, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(2)
			got, err := p.Set(tt.kind, 1, tt.in)
			if err != nil {
				t.Fatalf("Set() error = %v", err)
			}
			if got != tt.want {
				t.Fatalf("Set() = %v, want %v", got, tt.want)
			}

			stored := p.Ratios()[1]
			if tt.kind == KindRadius {
				stored = p.Radii()[1]
			}
			if stored != tt.want {
				t.Fatalf("stored = %v, want %v", stored, tt.want)
			}
		})
	}
}

func TestSetErrors(t *testing.T) {
	p := New(2)
	if _, err := p.SetRatio(2, 1); err == nil {
		t.Fatal("expected error for index past end")
	}
	if _, err := p.SetRadius(-1, 1); err == nil {
		t.Fatal("expected error for negative index")
	}
	if _, err := p.SetRatio(0, math.NaN()); err == nil {
		t.Fatal("expected error for NaN")
	}
	if _, err := p.Set(Kind(9), 0, 1); err == nil {
		t.Fatal("expected error for unknown kind")
	}
}

func TestOnChangeNotifies(t *testing.T) {
	p := New(3)

	var got []Change
	var order []int
	p.OnChange(func(c Change) {
		got = append(got, c)
		order = append(order, 1)
	})
	p.OnChange(func(Change) { order = append(order, 2) })

	if _, err := p.SetRadius(2, 0.5); err != nil {
		t.Fatalf("SetRadius() error = %v", err)
	}
	if _, err := p.SetRatio(0, 7); err != nil {
		t.Fatalf("SetRatio() error = %v", err)
	}

	want := []Change{
		{Kind: KindRadius, Index: 2, Value: 0.5},
		{Kind: KindRatio, Index: 0, Value: 1.9},
	}
	if len(got) != len(want) {
		t.Fatalf("changes = %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("change %d = %+v, want %+v", i, got[i], want[i])
		}
	}
	if len(order) != 4 || order[0] != 1 || order[1] != 2 {
		t.Fatalf("handler order = %v", order)
	}
}

func TestUnchangedValueDoesNotNotify(t *testing.T) {
	p := New(1)
	calls := 0
	p.OnChange(func(Change) { calls++ })

	if _, err := p.SetRatio(0, 1); err != nil {
		t.Fatalf("SetRatio() error = %v", err)
	}
	if calls != 0 {
		t.Fatalf("calls = %d, want 0", calls)
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	p := New(1)
	r := p.Ratios()
	r[0] = 99
	if p.Ratios()[0] != 1 {
		t.Fatal("Ratios() exposed internal state")
	}
}

func TestControls(t *testing.T) {
	p := New(2)
	if _, err := p.SetRadius(1, 1.5); err != nil {
		t.Fatalf("SetRadius() error = %v", err)
	}

	cs := p.Controls()
	if len(cs) != 4 {
		t.Fatalf("len = %d, want 4", len(cs))
	}
	if cs[0].Label != "Theta 1" || cs[0].Range != RatioRange {
		t.Fatalf("unexpected first control: %+v", cs[0])
	}
	if cs[3].Label != "Radius 2" || cs[3].Value != 1.5 {
		t.Fatalf("unexpected last control: %+v", cs[3])
	}
}

func TestKindString(t *testing.T) {
	if KindRatio.String() != "ratio" || KindRadius.String() != "radius" {
		t.Fatal("unexpected kind names")
	}
	if Kind(5).String() != "Kind(5)" {
		t.Fatalf("Kind(5).String() = %q", Kind(5).String())
	}
}
