// Package matrix wraps the sparse LU solver behind the 1-based indexing
// convention of modified nodal analysis.
package matrix

import (
	"fmt"

	"github.com/edp1096/sparse"
)

// System is a real or complex linear system with accumulate-style stamping.
// Index 0 is the ground reference; stamps and loads touching it are dropped,
// so callers stamp two-terminal elements without special-casing ground.
type System struct {
	Size int

	mat       *sparse.Matrix
	rhs       []float64
	rhsImag   []float64
	sol       []float64
	solImag   []float64
	isComplex bool
	factored  bool
}

// NewSystem allocates a size x size system. Complex systems use separated
// real and imaginary vectors throughout.
func NewSystem(size int, isComplex bool) (*System, error) {
	config := &sparse.Configuration{
		Real:                    true,
		Complex:                 isComplex,
		SeparatedComplexVectors: true,
		Expandable:              true,
		Translate:               false,
		ModifiedNodal:           true,
		TiesMultiplier:          5,
		PrinterWidth:            140,
	}

	mat, err := sparse.Create(int64(size), config)
	if err != nil {
		return nil, fmt.Errorf("creating %dx%d sparse system: %v", size, size, err)
	}

	return &System{
		Size:      size,
		mat:       mat,
		rhs:       make([]float64, size+1),
		rhsImag:   make([]float64, size+1),
		isComplex: isComplex,
	}, nil
}

func (s *System) inBounds(idx ...int) bool {
	for _, i := range idx {
		if i < 1 || i > s.Size {
			return false
		}
	}
	return true
}

// Add accumulates value at (i, j) and invalidates any factorization.
func (s *System) Add(i, j int, value float64) {
	if !s.inBounds(i, j) {
		return
	}
	s.mat.GetElement(int64(i), int64(j)).Real += value
	s.factored = false
}

// AddComplex accumulates re+j*im at (i, j) and invalidates any factorization.
func (s *System) AddComplex(i, j int, re, im float64) {
	if !s.inBounds(i, j) {
		return
	}
	e := s.mat.GetElement(int64(i), int64(j))
	e.Real += re
	e.Imag += im
	s.factored = false
}

// AddRHS accumulates value into the right-hand side at row i.
func (s *System) AddRHS(i int, value float64) {
	if !s.inBounds(i) {
		return
	}
	s.rhs[i] += value
}

// AddComplexRHS accumulates re+j*im into the right-hand side at row i.
func (s *System) AddComplexRHS(i int, re, im float64) {
	if !s.inBounds(i) {
		return
	}
	s.rhs[i] += re
	s.rhsImag[i] += im
}

// Clear zeroes the matrix values and both right-hand sides while keeping
// the allocated structure, ready for restamping.
func (s *System) Clear() {
	s.mat.Clear()
	s.factored = false
	s.ClearRHS()
}

// ClearRHS zeroes the right-hand sides only. The matrix values and their
// factorization stay intact, so fixed-topology loops can reload sources
// without refactoring.
func (s *System) ClearRHS() {
	for i := range s.rhs {
		s.rhs[i] = 0
	}
	for i := range s.rhsImag {
		s.rhsImag[i] = 0
	}
}

// Solve factors the stamped matrix if needed and solves it against the
// loaded right-hand side. Solutions stay valid until the next Solve.
func (s *System) Solve() error {
	if !s.factored {
		if err := s.mat.Factor(); err != nil {
			return fmt.Errorf("matrix factorization failed: %v", err)
		}
		s.factored = true
	}

	var err error
	if s.isComplex {
		s.sol, s.solImag, err = s.mat.SolveComplex(s.rhs, s.rhsImag)
	} else {
		s.sol, err = s.mat.Solve(s.rhs)
	}
	if err != nil {
		return fmt.Errorf("matrix solve failed: %v", err)
	}
	return nil
}

// At returns the real solution at row i, 0 for the ground index.
func (s *System) At(i int) float64 {
	if !s.inBounds(i) || s.sol == nil {
		return 0
	}
	return s.sol[i]
}

// ComplexAt returns the complex solution at row i, 0 for the ground index.
func (s *System) ComplexAt(i int) complex128 {
	if !s.inBounds(i) || s.sol == nil {
		return 0
	}
	if !s.isComplex {
		return complex(s.sol[i], 0)
	}
	return complex(s.sol[i], s.solImag[i])
}

// Destroy releases the underlying sparse matrix.
func (s *System) Destroy() {
	if s.mat != nil {
		s.mat.Destroy()
		s.mat = nil
	}
}
