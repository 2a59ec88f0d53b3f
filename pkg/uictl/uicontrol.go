package uictl

import "golang.org/x/exp/constraints"

type Number interface {
	constraints.Integer | constraints.Float
}

// Levels is a control that can read multiple levels.
type Levels[N Number] interface {
	Read() []N
}

// Static is a fixed set of levels.
type Static[N Number] []N

func (s Static[N]) Read() []N {
	return s
}
