package solve

import "gonum.org/v1/gonum/mat"

// realify embeds the complex m×n matrix A into the real 2m×2n matrix
// [[Re(A), −Im(A)], [Im(A), Re(A)]]. The embedding is an isometry that
// commutes with matrix-vector products, so solving the realified system
// is equivalent to solving the complex one.
// Complexity: O(m·n) time and memory.
func realify(a *mat.CDense) *mat.Dense {
	m, n := a.Dims()
	r := mat.NewDense(2*m, 2*n, nil)
	var re, im float64
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			v := a.At(i, j)
			re, im = real(v), imag(v)
			r.Set(i, j, re)
			r.Set(i, n+j, -im)
			r.Set(m+i, j, im)
			r.Set(m+i, n+j, re)
		}
	}
	return r
}

// realifyVec embeds the complex vector b into the real vector [Re(b); Im(b)].
func realifyVec(b []complex128) *mat.VecDense {
	m := len(b)
	v := mat.NewVecDense(2*m, nil)
	for i, z := range b {
		v.SetVec(i, real(z))
		v.SetVec(m+i, imag(z))
	}
	return v
}

// complexify reverses realifyVec: the first n entries of w are the real
// parts of the solution, the last n the imaginary parts.
func complexify(w *mat.VecDense, n int) []complex128 {
	z := make([]complex128, n)
	for i := 0; i < n; i++ {
		z[i] = complex(w.AtVec(i), w.AtVec(n+i))
	}
	return z
}
