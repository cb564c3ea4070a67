// Package geometry provides closed-form surface areas for the toroidal
// shells used in the first-wall area calculation.
//
// Both models describe a poloidal cross-section revolved about the machine
// vertical axis. The D-shell joins a straight vertical inboard face to a
// half-ellipse outboard arc; the E-shell uses two elliptical sections that
// share a vertical centreline.
//
// Inputs are not validated: zero or negative radii produce non-physical
// areas that are passed through to the caller unchanged.
package geometry

import "math"

// DShellArea returns the inboard, outboard and total surface area of a
// D-shaped shell.
//
// r1 is the major radius of the straight inboard face, r2 the horizontal
// span from that face to the outboard extremity, and halfHeight the
// half-height of the straight section (and vertical semi-axis of the
// outboard arc).
func DShellArea(r1, r2, halfHeight float64) (inboard, outboard, total float64) {
	// Straight inboard face is a cylinder of radius r1.
	inboard = 4.0 * halfHeight * math.Pi * r1

	// Outboard arc is a half-ellipse with semi-axes r2 and halfHeight.
	elong := halfHeight / r2
	outboard = 2.0 * math.Pi * elong * (math.Pi*r1*r2 + 2.0*r2*r2)

	return inboard, outboard, inboard + outboard
}

// EShellArea returns the inboard, outboard and total surface area of a
// shell built from two elliptical sections.
//
// rShell is the major radius of the common vertical centreline, rMini and
// rMino the horizontal semi-axes of the inboard and outboard sections, and
// halfHeight the shared vertical semi-axis.
func EShellArea(rShell, rMini, rMino, halfHeight float64) (inboard, outboard, total float64) {
	// Inboard section curves toward the machine axis.
	elong := halfHeight / rMini
	inboard = 2.0 * math.Pi * elong * (math.Pi*rShell*rMini - 2.0*rMini*rMini)

	// Outboard section curves away from the machine axis.
	elong = halfHeight / rMino
	outboard = 2.0 * math.Pi * elong * (math.Pi*rShell*rMino + 2.0*rMino*rMino)

	return inboard, outboard, inboard + outboard
}
