// Package similarity computes composite match scores between a candidate
// record and a canonical paper. The base signal is a matching-character-runs
// ratio over normalized titles; year and author-overlap bonuses are added on
// top. Scores are rankings, not probabilities, and may exceed 1.0.
package similarity

// Ratio returns 2*M/T where M is the number of characters in matching runs
// shared between a and b and T is the total length of both strings. The
// result is in [0, 1]; identical strings score 1. Matching runs are found
// greedily by longest common substring, recursing on the pieces to either
// side, so the measure favors long contiguous overlaps over scattered
// character coincidences.
func Ratio(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	total := len(ra) + len(rb)
	if total == 0 {
		return 1
	}

	matched := 0
	type span struct{ alo, ahi, blo, bhi int }
	stack := []span{{0, len(ra), 0, len(rb)}}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		i, j, size := longestMatch(ra, rb, s.alo, s.ahi, s.blo, s.bhi)
		if size == 0 {
			continue
		}
		matched += size
		stack = append(stack,
			span{s.alo, i, s.blo, j},
			span{i + size, s.ahi, j + size, s.bhi},
		)
	}

	return 2 * float64(matched) / float64(total)
}

// longestMatch finds the longest run shared by a[alo:ahi] and b[blo:bhi],
// returning its start in each string and its length. Of equally long runs
// the earliest in a (then b) wins, keeping the ratio deterministic.
func longestMatch(a, b []rune, alo, ahi, blo, bhi int) (besti, bestj, bestsize int) {
	b2j := make(map[rune][]int)
	for j := blo; j < bhi; j++ {
		b2j[b[j]] = append(b2j[b[j]], j)
	}

	besti, bestj = alo, blo
	j2len := make(map[int]int)
	for i := alo; i < ahi; i++ {
		newj2len := make(map[int]int)
		for _, j := range b2j[a[i]] {
			k := j2len[j-1] + 1
			newj2len[j] = k
			if k > bestsize {
				besti, bestj, bestsize = i-k+1, j-k+1, k
			}
		}
		j2len = newj2len
	}

	return besti, bestj, bestsize
}
