package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract a steppable simulation must implement to
// be shown by the viewers.
type Sim interface {
	Name() string
	Size() Size
	Reset()
	Step()
	Cells() []uint8
	// Done reports whether further calls to Step can change the cells.
	Done() bool
}
