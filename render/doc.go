// Package render writes search results for people to look at: ASCII and
// PNG overlays of grid searches, node-link path reports and comparison
// tables.
//
// Overlay legend (ASCII / PNG):
//
//	#  blocked        dark grey
//	.  free           white
//	o  visited        light blue
//	*  on the path    yellow
//	S  start          green
//	E  end            red
//
// Renderers only read their inputs; a nil result draws the bare grid.
package render
