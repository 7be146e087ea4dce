// Package lvlcone lowers disciplined-convex atoms into conic form: an
// affine objective plus equality, semidefinite and exponential cone
// constraints that a standard conic solver can consume.
//
// 🚀 What is inside?
//
//	matrix/ — dense kernel: Det, LogDet, Jacobi eigenvalues for PSD checks
//	linop/  — affine expression tree, constraints, block indexing, evaluation
//	atom/   — atom contract; LogDet, Log and Transpose with their reductions
//	canon/  — recursive canonicalization, batch reduction, stats, YAML
//
// The headline reduction rewrites log det(A) for an n×n A as
//
//	maximize    Σᵢ log(D[i,i])
//	subject to  D diagonal, diag(D) = diag(Z), Z upper triangular,
//	            [[D, Z], [Zᵀ, A]] ⪰ 0, A ⪰ 0
//
// which has the same optimum as log det(A) for symmetric positive-definite
// A. Nothing here solves the problem; it only describes it.
//
//	go get github.com/katalvlaran/lvlcone
package lvlcone
