package main

import "testing"

func TestCompareAgrees(t *testing.T) {
	for _, cell := range []float32{1, 4, 10} {
		r, err := compare(300, 1, cell, 7)
		if err != nil {
			t.Fatalf("cell %v: %v", cell, err)
		}
		if r.Bodies != 300 {
			t.Errorf("Expected 300 bodies, got %d", r.Bodies)
		}
		if r.Contacts > r.Pairs {
			t.Errorf("cell %v: %d contacts from only %d candidates", cell, r.Contacts, r.Pairs)
		}
	}
}

func TestRandomBodiesDeterministic(t *testing.T) {
	a := randomBodies(50, 3)
	b := randomBodies(50, 3)
	if len(a) != 50 || len(b) != 50 {
		t.Fatalf("Expected 50 bodies, got %d and %d", len(a), len(b))
	}
	static := 0
	for i := range a {
		if a[i].Position != b[i].Position || a[i].LocalSize != b[i].LocalSize {
			t.Fatalf("body %d differs between runs", i)
		}
		if !a[i].IsDynamic() {
			static++
		}
	}
	if static != 3 {
		t.Errorf("Expected 3 static bodies, got %d", static)
	}
}
