package io

// Contains the minimal data needed to render a single animation frame, i.e. the tree level to cut and the frame slot
// it must be stored in
type WorkUnit struct {
	Depth   int
	Index   int
	Borders bool
}
