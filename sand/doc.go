// Package sand implements a falling-sand simulation on a fixed grid.
//
// A grain is an occupied cell. Each frame the scheduler polls input, paints
// the pointer stroke, runs gravity and repaints a Surface. Platform code only
// has to provide an InputSource and a Surface.
package sand
