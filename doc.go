// Package splinker implements the model beneath a gradient palette editor: gradients
// that map between a plane and HSV colors, editable control-point paths that become
// smooth curves, and the layers and palettes that combine the two.
//
// The package does no drawing and handles no input. Renderers consume
// [Path.PathElements] or [Path.Interpolate] and rasterize gradients through
// [Gradient.ColorAt]; input handlers mutate paths through [Path.AddPoint],
// [Path.EditPoint], [Path.RemovePoint] and [Path.InsertConvex] and learn about changes
// through [Path.Subscribe].
//
// # Gradients
//
// A [Gradient] maps a bounded region of the plane to colors and back. The
// [WheelGradient] spreads hue and saturation over a disk at a fixed value, the
// [SquareGradient] spreads value and saturation over a square at a fixed hue. The
// inverse mapping, [Gradient.PointAt], only succeeds for colors the gradient can show.
//
// # Paths and point editors
//
// A [Path] owns its control points and a [PointEditor] that gives them meaning. The
// [CatmullRomEditor] draws a Catmull-Rom spline through any number of points, open or
// closed, as a sequence of cubic Béziers. The [CircleEditor] uses two points, a center
// and a point on the circle. Converting a path to another editor resamples the old curve
// and fits the new editor's points to it.
//
// On closed paths, [InsertConvex] adds a point so that a convex control polygon stays
// convex.
//
// # Persistence
//
// [PathRecord], [GradientRecord], [LayerRecord] and [PaletteRecord] hold the model as
// plain data that marshals to JSON. Editors and gradients are identified by stable
// names, see [EditorNames] and [GradientKinds].
//
// # Coordinates
//
// Coordinates are abstract. Angles increase from the positive x axis towards positive
// y, which is clockwise on screens with y pointing down.
package splinker
