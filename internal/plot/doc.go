// Package plot describes figures as data and renders them.
//
// A [Figure] is a stack of [Panel]s, each holding [Series] of x/y samples
// drawn as a line, a dashed line or a scatter. Renderers turn a figure into
// bytes: [CSVRenderer] for the raw samples and [PNGRenderer] for an image
// drawn with gonum/plot.
package plot
