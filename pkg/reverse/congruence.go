package reverse

// extGCD returns g = gcd(a, b) and Bezout coefficients x, y such that
// a*x + b*y = g. a and b must be non-negative.
func extGCD(a, b int64) (g, x, y int64) {
	if b == 0 {
		return a, 1, 0
	}
	g, x1, y1 := extGCD(b, a%b)
	return g, y1, x1 - (a/b)*y1
}

// mod returns a mod m in [0, m), matching mathematical (not truncated)
// modular reduction for negative a.
func mod(a, m int64) int64 {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}

// solveLinearCongruence finds the smallest non-negative x0 and the period
// p such that a*x ≡ b (mod m) holds exactly for x in {x0, x0+p, x0+2p, ...}.
// ok is false when no solution exists (gcd(a,m) does not divide b).
func solveLinearCongruence(a, b, m int64) (x0, period int64, ok bool) {
	a = mod(a, m)
	g, x, _ := extGCD(a, m)
	if g == 0 {
		return 0, 0, b == 0
	}
	if b%g != 0 {
		return 0, 0, false
	}
	period = m / g
	x0 = mod(x*(b/g), period)
	return x0, period, true
}
