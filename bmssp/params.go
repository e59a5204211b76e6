package bmssp

import "math"

// Params derives the recursion's branching parameters from n:
// k = max(2, floor(L^(1/3))), t = max(1, floor(L^(2/3))),
// l = ceil(L/t), where L = log2(n).
func Params(n int) (k, t, l int) {
	L := math.Log2(float64(n))

	k = int(math.Floor(math.Pow(L, 1.0/3.0)))
	if k < 2 {
		k = 2
	}

	t = int(math.Floor(math.Pow(L, 2.0/3.0)))
	if t < 1 {
		t = 1
	}

	l = int(math.Ceil(L / float64(t)))

	return k, t, l
}

// blockCapacity is M at recursion level `level`: 2^(t*(level-1)).
func blockCapacity(t, level int) int {
	exp := t * (level - 1)
	if exp < 0 {
		exp = 0
	}

	return 1 << uint(exp)
}
