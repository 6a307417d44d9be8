/*
Package rect provides a plain rectangle value with computed measures.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package rect

import (
	"fmt"

	"github.com/npillmayer/tyse/core/dimen"
)

// Rect is a rectangle given by its width and height, measured in
// device units.
type Rect struct {
	Width  dimen.DU
	Height dimen.DU
}

// New creates a rectangle of w × h.
func New(w, h dimen.DU) Rect {
	return Rect{Width: w, Height: h}
}

// Square creates a rectangle with sides of equal length.
func Square(side dimen.DU) Rect {
	return New(side, side)
}

// Perimeter is the circumference of r.
func (r Rect) Perimeter() dimen.DU {
	return 2 * (r.Width + r.Height)
}

// Area is the surface of r, in square points.
func (r Rect) Area() float64 {
	w := float64(r.Width) / float64(dimen.PT)
	h := float64(r.Height) / float64(dimen.PT)
	return w * h
}

// IsSquare is true if both sides of r are of equal length.
func (r Rect) IsSquare() bool {
	return r.Width == r.Height
}

func (r Rect) String() string {
	return fmt.Sprintf("%v × %v", r.Width, r.Height)
}
