// Package render holds the shared layout configuration consumed by the
// exporters in its subpackages.
//
// Two exporters consume an [org.Graph]:
//
//   - dot: deterministic Graphviz DOT text, suitable for diffing and for
//     third-party graph editors
//   - raster: a PNG image, with vertex placement delegated to the Graphviz
//     layout engine
//
// Both apply the same attribute-to-visual mapping from the styles subpackage
// and the same [Config] parameters, so the text and image forms of a chart
// always agree.
package render
