package names

import "testing"

func TestString(t *testing.T) {
	n := New("demo", "inner", "Item")
	if got := n.String(); got != "demo::inner::Item" {
		t.Errorf("String = %q", got)
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		a, b Name
		want bool
	}{
		{New("a", "b"), New("a", "b"), true},
		{New("a", "b"), New("a", "c"), false},
		{New("a", "b"), New("a", "b", "c"), false},
		{New(), New(), true},
	}
	for _, tt := range tests {
		if got := tt.a.Equal(tt.b); got != tt.want {
			t.Errorf("Equal(%s, %s) = %t, want %t", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestIsInModules(t *testing.T) {
	modules := map[string]struct{}{
		"ffi":         {},
		"vendor::raw": {},
	}
	tests := []struct {
		name Name
		want bool
	}{
		{New("demo", "ffi", "bind"), true},
		{New("demo", "ffi", "deep", "bind"), true},
		{New("demo", "vendor", "raw", "sys"), true},
		{New("demo", "vendor", "cooked"), false},
		// The module path must fully enclose the item, not just share a
		// prefix with its name.
		{New("demo", "ffi"), false},
		{New("demo"), false},
		{New("other", "ffi", "bind"), false},
	}
	for _, tt := range tests {
		if got := tt.name.IsInModules("demo", modules); got != tt.want {
			t.Errorf("IsInModules(%s) = %t, want %t", tt.name, got, tt.want)
		}
	}
}
