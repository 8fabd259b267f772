// Copyright 2026 The CSA Authors. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package interval

// Union computes s ∪ t: both interval lists are concatenated and passed
// to New, which sorts them and merges overlapping or adjacent runs.
func Union(s, t *Set) *Set {
	merged := make([]Interval, 0, len(s.ivs)+len(t.ivs))
	merged = append(merged, s.ivs...)
	merged = append(merged, t.ivs...)
	return New(merged...)
}

// Intersection computes s ∩ t via a sweep over both sorted interval lists.
func Intersection(s, t *Set) *Set {
	var out []Interval
	i, j := 0, 0
	for i < len(s.ivs) && j < len(t.ivs) {
		a, b := s.ivs[i], t.ivs[j]
		if a.Intersects(b) {
			out = append(out, a.Intersect(b))
		}
		if a.High < b.High {
			i++
		} else {
			j++
		}
	}
	return New(out...)
}

// Difference computes s \ t: the elements of s with no counterpart in t, via
// a sweep over both sorted interval lists.
func Difference(s, t *Set) *Set {
	var out []Interval
	j := 0
	for i := 0; i < len(s.ivs); i++ {
		cur := s.ivs[i]
		for j < len(t.ivs) && t.ivs[j].High < cur.Low {
			j++
		}
		k := j
		for k < len(t.ivs) && t.ivs[k].Low <= cur.High {
			if cur.Low < t.ivs[k].Low {
				out = append(out, Interval{cur.Low, t.ivs[k].Low - 1})
			}
			cur.Low = t.ivs[k].High + 1
			if cur.Empty() {
				break
			}
			k++
		}
		if !cur.Empty() {
			out = append(out, cur)
		}
	}
	return New(out...)
}
