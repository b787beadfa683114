// Package shape turns series of pixel points into gg paths: polylines,
// smooth monotone curves, filled areas and stacked bands.
package shape
