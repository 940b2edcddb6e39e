// pkg/hexmap/utils.go
package hexmap

import "silicogenesis/pkg/utils"

// offsetToAxial converts odd-row offset coordinates to axial (q, r).
// Rows shifted right map to q = i - floor(j/2).
func offsetToAxial(i, j int) (q, r int) {
	q = i - (j-(j&1))/2
	r = j
	return
}

// axialDistance is the cube distance between two axial coordinates.
func axialDistance(q1, r1, q2, r2 int) int {
	dq := q1 - q2
	dr := r1 - r2
	return (utils.Abs(dq) + utils.Abs(dr) + utils.Abs(dq+dr)) / 2
}

func nearlyEqual(a, b float64) bool {
	d := a - b
	return d < 0.001 && d > -0.001
}
