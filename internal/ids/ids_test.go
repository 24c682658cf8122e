package ids_test

import (
	"testing"

	"llbc/internal/ids"
)

type testID int32

func TestGeneratorFresh(t *testing.T) {
	gen := ids.NewGenerator[testID]()
	for want := testID(0); want < 5; want++ {
		if got := gen.Fresh(); got != want {
			t.Fatalf("Fresh() = %d, want %d", got, want)
		}
	}
	if gen.Issued() != 5 {
		t.Fatalf("Issued() = %d, want 5", gen.Issued())
	}
}

func TestVectorPushGet(t *testing.T) {
	vec := ids.NewVector[testID, string]()
	gen := ids.NewGenerator[testID]()

	a := gen.Fresh()
	vec.Push(a, "a")
	b := gen.Fresh()
	vec.Push(b, "b")

	if got, ok := vec.Get(a); !ok || got != "a" {
		t.Fatalf("Get(%d) = %q, %v", a, got, ok)
	}
	if got, ok := vec.Get(b); !ok || got != "b" {
		t.Fatalf("Get(%d) = %q, %v", b, got, ok)
	}
	if _, ok := vec.Get(testID(7)); ok {
		t.Fatal("Get of absent id succeeded")
	}
	if _, ok := vec.Get(testID(-1)); ok {
		t.Fatal("Get of negative id succeeded")
	}
}

func TestVectorPushOutOfOrderPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("out-of-order Push did not panic")
		}
	}()
	vec := ids.NewVector[testID, string]()
	vec.Push(testID(1), "b")
}

func TestVectorIterationOrder(t *testing.T) {
	vec := ids.NewVector[testID, int]()
	for i := range 4 {
		vec.Push(testID(i), i*10)
	}
	next := testID(0)
	for id, v := range vec.All {
		if id != next {
			t.Fatalf("iteration id = %d, want %d", id, next)
		}
		if v != int(id)*10 {
			t.Fatalf("iteration value = %d, want %d", v, int(id)*10)
		}
		next++
	}
	if next != 4 {
		t.Fatalf("iterated %d elements, want 4", next)
	}
}

func TestMapMemoizes(t *testing.T) {
	m := ids.NewMap[uint64, testID]()

	id1, inserted := m.GetOrInsert(42)
	if !inserted {
		t.Fatal("first GetOrInsert not reported as inserted")
	}
	id2, inserted := m.GetOrInsert(42)
	if inserted {
		t.Fatal("second GetOrInsert reported as inserted")
	}
	if id1 != id2 {
		t.Fatalf("ids differ: %d vs %d", id1, id2)
	}
	if m.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", m.Len())
	}
}

func TestMapPairsSortedByKey(t *testing.T) {
	m := ids.NewMap[uint64, testID]()
	// Insertion order deliberately differs from key order.
	for _, k := range []uint64{30, 10, 20} {
		m.Insert(k)
	}
	pairs := m.Pairs()
	wantKeys := []uint64{10, 20, 30}
	wantIDs := []testID{1, 2, 0}
	for i, p := range pairs {
		if p.Key != wantKeys[i] || p.ID != wantIDs[i] {
			t.Fatalf("pair %d = (%d, %d), want (%d, %d)", i, p.Key, p.ID, wantKeys[i], wantIDs[i])
		}
	}
}

func TestOrderedMapIteratesInKeyOrder(t *testing.T) {
	m := ids.NewOrderedMap[int32, string]()
	m.Set(2, "c")
	m.Set(0, "a")
	m.Set(1, "b")

	var got []string
	for _, v := range m.All {
		got = append(got, v)
	}
	want := []string{"a", "b", "c"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("iteration = %v, want %v", got, want)
		}
	}
}
