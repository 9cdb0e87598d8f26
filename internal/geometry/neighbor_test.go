package geometry

import "testing"

// Float arrangement used across the center-neighbor tests:
//
//	+---+    +---+
//	| 1 |    | 2 |
//	+---+    +---+
//	+---+
//	| 3 |
//	+---+
func floatSet() []Candidate {
	return []Candidate{
		{ID: 1, Rect: Rect{X: 100, Y: 100, W: 200, H: 200}},
		{ID: 2, Rect: Rect{X: 400, Y: 100, W: 200, H: 200}},
		{ID: 3, Rect: Rect{X: 100, Y: 400, W: 200, H: 200}},
	}
}

func TestCenterNeighbor(t *testing.T) {
	cands := floatSet()

	tests := []struct {
		name   string
		ref    Rect
		dir    Direction
		want   int
		wantOK bool
	}{
		{"right from 1", cands[0].Rect, DirRight, 1, true},
		{"down from 1", cands[0].Rect, DirDown, 2, true},
		{"left from 2", cands[1].Rect, DirLeft, 0, true},
		{"up from 3", cands[2].Rect, DirUp, 0, true},
		{"left from 1", cands[0].Rect, DirLeft, 0, false},
		{"up from 1", cands[0].Rect, DirUp, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// The reference float never competes with itself.
			var others []Candidate
			for _, c := range cands {
				if c.Rect != tt.ref {
					others = append(others, c)
				}
			}
			got, ok := CenterNeighbor(tt.ref, others, tt.dir)
			if ok != tt.wantOK {
				t.Fatalf("CenterNeighbor ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if others[got].ID != cands[tt.want].ID {
				t.Errorf("CenterNeighbor = id %d, want id %d", others[got].ID, cands[tt.want].ID)
			}
		})
	}
}

func TestCenterNeighborScoring(t *testing.T) {
	// Two candidates to the right; the diagonal one is closer on the
	// primary axis but pays for its secondary offset.
	ref := Rect{X: 0, Y: 0, W: 100, H: 100}
	cands := []Candidate{
		{ID: 1, Rect: Rect{X: 200, Y: 300, W: 100, H: 100}}, // score 200 + 300
		{ID: 2, Rect: Rect{X: 400, Y: 0, W: 100, H: 100}},   // score 400 + 0
	}
	got, ok := CenterNeighbor(ref, cands, DirRight)
	if !ok {
		t.Fatal("expected a neighbor")
	}
	if cands[got].ID != 2 {
		t.Errorf("got id %d, want id 2 (aligned candidate wins on total score)", cands[got].ID)
	}
}

func TestCenterNeighborTieBreaksOnID(t *testing.T) {
	ref := Rect{X: 0, Y: 400, W: 100, H: 100}
	// Equidistant above and below the reference center on the
	// secondary axis, identical primary delta.
	cands := []Candidate{
		{ID: 7, Rect: Rect{X: 300, Y: 0, W: 100, H: 100}},
		{ID: 4, Rect: Rect{X: 300, Y: 800, W: 100, H: 100}},
	}
	got, ok := CenterNeighbor(ref, cands, DirRight)
	if !ok {
		t.Fatal("expected a neighbor")
	}
	if cands[got].ID != 4 {
		t.Errorf("got id %d, want id 4 (smaller id wins the tie)", cands[got].ID)
	}
}

func TestClosestPointNeighbor(t *testing.T) {
	// Two outputs side by side plus one offset below-right. The
	// closest-point rule keeps the vertically offset output reachable.
	left := Rect{X: 0, Y: 0, W: 1000, H: 1000}
	cands := []Candidate{
		{ID: 1, Rect: Rect{X: 1000, Y: 0, W: 1000, H: 1000}},
		{ID: 2, Rect: Rect{X: 1000, Y: 1500, W: 1000, H: 500}},
	}

	got, ok := ClosestPointNeighbor(left.Center(), cands, DirRight)
	if !ok {
		t.Fatal("expected a neighbor to the right")
	}
	if cands[got].ID != 1 {
		t.Errorf("got id %d, want id 1", cands[got].ID)
	}

	got, ok = ClosestPointNeighbor(left.Center(), cands, DirDown)
	if !ok {
		t.Fatal("expected a neighbor below")
	}
	if cands[got].ID != 2 {
		t.Errorf("got id %d, want id 2", cands[got].ID)
	}

	if _, ok := ClosestPointNeighbor(left.Center(), cands, DirLeft); ok {
		t.Error("expected no neighbor to the left")
	}
}

func TestExtremeOpposite(t *testing.T) {
	cands := floatSet()

	// Moving right past the edge wraps to the candidate with the
	// leftmost center; 1 and 3 tie on X, smaller id wins.
	got, ok := ExtremeOpposite(cands, DirRight)
	if !ok {
		t.Fatal("expected a wrap candidate")
	}
	if cands[got].ID != 1 {
		t.Errorf("wrap right = id %d, want id 1", cands[got].ID)
	}

	got, ok = ExtremeOpposite(cands, DirLeft)
	if !ok {
		t.Fatal("expected a wrap candidate")
	}
	if cands[got].ID != 2 {
		t.Errorf("wrap left = id %d, want id 2", cands[got].ID)
	}

	if _, ok := ExtremeOpposite(nil, DirRight); ok {
		t.Error("expected no wrap candidate for empty set")
	}
}

func TestFarthestOpposite(t *testing.T) {
	// Three outputs in a row; wrapping right from the rightmost lands
	// on the leftmost.
	ref := Rect{X: 4000, Y: 0, W: 2000, H: 1000}.Center()
	cands := []Candidate{
		{ID: 1, Rect: Rect{X: 0, Y: 0, W: 2000, H: 1000}},
		{ID: 2, Rect: Rect{X: 2000, Y: 0, W: 2000, H: 1000}},
	}
	got, ok := FarthestOpposite(ref, cands, DirRight)
	if !ok {
		t.Fatal("expected a wrap candidate")
	}
	if cands[got].ID != 1 {
		t.Errorf("wrap = id %d, want id 1", cands[got].ID)
	}
}
