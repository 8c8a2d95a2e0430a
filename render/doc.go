// Package render draws a finished spline fit: the scattered input samples
// and the fitted curve sampled densely across the data domain, saved as a
// PNG via gonum/plot.
//
// It is a convenience layer over the fitting result — nothing in the
// numeric pipeline depends on it.
package render
