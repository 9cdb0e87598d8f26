package geometry

// Candidate is a rectangle competing for directional selection, tagged
// with the stable container id used for tie-breaking.
type Candidate struct {
	ID   int64
	Rect Rect
}

// score orders candidates: Manhattan score first, then primary delta,
// then secondary delta, then smaller id.
type score struct {
	total     int
	primary   int
	secondary int
	id        int64
}

func (s score) less(o score) bool {
	if s.total != o.total {
		return s.total < o.total
	}
	if s.primary != o.primary {
		return s.primary < o.primary
	}
	if s.secondary != o.secondary {
		return s.secondary < o.secondary
	}
	return s.id < o.id
}

// eval scores the point p against the reference ref for direction d.
// Returns false when p is not strictly beyond ref along d's axis.
func eval(ref, p Point, d Direction, id int64) (score, bool) {
	refP, refS := split(ref, d)
	pP, pS := split(p, d)
	if d.Backward() {
		if pP >= refP {
			return score{}, false
		}
	} else {
		if pP <= refP {
			return score{}, false
		}
	}
	dp := abs(pP - refP)
	ds := abs(pS - refS)
	return score{total: dp + ds, primary: dp, secondary: ds, id: id}, true
}

// CenterNeighbor selects the directional neighbor among candidates whose
// centers are strictly beyond ref's center along d's axis. Used for
// floating containers, which carry no tree ordering. Returns the index
// into cands, or false when no candidate is eligible.
func CenterNeighbor(ref Rect, cands []Candidate, d Direction) (int, bool) {
	refC := ref.Center()
	best := -1
	var bestScore score
	for i, c := range cands {
		s, ok := eval(refC, c.Rect.Center(), d, c.ID)
		if !ok {
			continue
		}
		if best < 0 || s.less(bestScore) {
			best = i
			bestScore = s
		}
	}
	return best, best >= 0
}

// ClosestPointNeighbor selects the directional neighbor among candidates
// measuring against the closest point inside each candidate's rectangle
// rather than its center. This copes with output arrangements that are
// offset or differently sized.
func ClosestPointNeighbor(ref Point, cands []Candidate, d Direction) (int, bool) {
	best := -1
	var bestScore score
	for i, c := range cands {
		s, ok := eval(ref, c.Rect.ClosestPoint(ref), d, c.ID)
		if !ok {
			continue
		}
		if best < 0 || s.less(bestScore) {
			best = i
			bestScore = s
		}
	}
	return best, best >= 0
}

// ExtremeOpposite picks the candidate whose center sits at the far end
// opposite to d: moving right past the last float wraps to the one whose
// center is leftmost. Ties break on smaller id.
func ExtremeOpposite(cands []Candidate, d Direction) (int, bool) {
	best := -1
	var bestPos int
	var bestID int64
	for i, c := range cands {
		pos, _ := split(c.Rect.Center(), d)
		if d.Backward() {
			pos = -pos
		}
		if best < 0 || pos < bestPos || (pos == bestPos && c.ID < bestID) {
			best = i
			bestPos = pos
			bestID = c.ID
		}
	}
	return best, best >= 0
}

// FarthestOpposite picks the candidate farthest away against d, measured
// like ClosestPointNeighbor. Used to wrap output navigation: moving right
// past the last output lands on the leftmost one.
func FarthestOpposite(ref Point, cands []Candidate, d Direction) (int, bool) {
	opp := d.Opposite()
	best := -1
	var bestScore score
	for i, c := range cands {
		s, ok := eval(ref, c.Rect.ClosestPoint(ref), opp, c.ID)
		if !ok {
			continue
		}
		// Invert the ordering sense: farthest wins, smaller id still
		// breaks ties.
		if best < 0 || s.total > bestScore.total ||
			(s.total == bestScore.total && s.id < bestScore.id) {
			best = i
			bestScore = s
		}
	}
	return best, best >= 0
}
