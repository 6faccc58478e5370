package core

import "golang.org/x/exp/constraints"

// Pt is a 2-D lattice coordinate. Y grows downwards.
type Pt[T constraints.Signed] struct {
	X, Y T
}

// Point is the coordinate type used by the puzzles.
type Point = Pt[int]

// Add returns the component-wise sum of p and q.
func (p Pt[T]) Add(q Pt[T]) Pt[T] {
	return Pt[T]{X: p.X + q.X, Y: p.Y + q.Y}
}

// Down returns the cell directly below p.
func (p Pt[T]) Down() Pt[T] { return Pt[T]{X: p.X, Y: p.Y + 1} }

// DownLeft returns the cell diagonally below and to the left of p.
func (p Pt[T]) DownLeft() Pt[T] { return Pt[T]{X: p.X - 1, Y: p.Y + 1} }

// DownRight returns the cell diagonally below and to the right of p.
func (p Pt[T]) DownRight() Pt[T] { return Pt[T]{X: p.X + 1, Y: p.Y + 1} }
