package categorical

import "testing"

func TestIntern_FirstSeenOrder(t *testing.T) {
	d := New()

	if code := d.Intern("Atlanta Hawks"); code != 0 {
		t.Errorf("first intern = %d, want 0", code)
	}
	if code := d.Intern("Chicago Bulls"); code != 1 {
		t.Errorf("second intern = %d, want 1", code)
	}
	if code := d.Intern("Atlanta Hawks"); code != 0 {
		t.Errorf("re-intern = %d, want stable 0", code)
	}
	if d.Len() != 2 {
		t.Errorf("Len = %d, want 2", d.Len())
	}
}

func TestCode_DoesNotIntern(t *testing.T) {
	d := New()
	d.Intern("Boston Celtics")

	if _, ok := d.Code("Miami Heat"); ok {
		t.Error("Code must not find an uninterned name")
	}
	if d.Len() != 1 {
		t.Errorf("Len = %d, want 1 (Code must not grow the vocabulary)", d.Len())
	}
	if code, ok := d.Code("Boston Celtics"); !ok || code != 0 {
		t.Errorf("Code = %d, %v, want 0, true", code, ok)
	}
}

func TestName_RoundTrip(t *testing.T) {
	d := New()
	names := []string{"Hawks", "Bulls", "Celtics"}
	for _, n := range names {
		d.Intern(n)
	}

	for i, n := range names {
		if got := d.Name(i); got != n {
			t.Errorf("Name(%d) = %q, want %q", i, got, n)
		}
	}
}

func TestName_OutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Name on out-of-range code must panic")
		}
	}()
	New().Name(0)
}

func TestNewOrdered(t *testing.T) {
	d := NewOrdered("low", "med", "high", "med")

	if !d.Ordered() {
		t.Error("Ordered() = false, want true")
	}
	if d.Len() != 3 {
		t.Errorf("Len = %d, want 3 (duplicate keeps first rank)", d.Len())
	}
	lo, _ := d.Code("low")
	hi, _ := d.Code("high")
	if lo >= hi {
		t.Errorf("rank order violated: low=%d high=%d", lo, hi)
	}
	if New().Ordered() {
		t.Error("New() must be unordered")
	}
}

func TestNames_ReturnsCopy(t *testing.T) {
	d := New()
	d.Intern("Hawks")

	names := d.Names()
	names[0] = "mutated"

	if d.Name(0) != "Hawks" {
		t.Error("Names() must return a copy, not the backing slice")
	}
}
