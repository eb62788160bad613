// Package polyline models editable 2D paths built from a mix of segment
// kinds, and samples them into dense point sequences for drawing and hit
// testing.
//
// # Paths and segments
//
// A [Path] is an ordered list of [Segment] values. Each segment ends at its
// Point; it starts where the previous segment ended. Segment 0 is the pen
// origin. Segment points are stored relative to [Path.Start], so moving a
// path only touches Start.
//
// The supported segment kinds are:
//
//   - straight lines and pen moves
//   - quadratic and cubic Béziers
//   - rational B-splines (NURBS) and uniform B-splines, spread over a run of
//     one header segment followed by continuation segments
//   - parabolas, described by their height and the offset of their apex
//   - arc-lines, circular arcs through both end points
//   - 3-point elliptical arcs, through a control point
//   - quarter ellipses, whose center is a corner of the box spanned by the
//     end points
//
// Segment kinds differ in how many of the generic Controls, Weight, Param and
// QuadrantHint fields they use. See the constructors such as [ParabolaTo] and
// [QuarterTo].
//
// # Closed paths
//
// A closed path's last segment ends on the pen origin. Closed paths are drawn
// inset by half their thickness, so the stroke stays inside the frame.
// [Path.RecomputeFrame] maintains the derived Frame, Inside,
// NormalizedExtent and Offset fields; every mutating method calls it.
//
// # Handles
//
// Parabolas, arc-lines, quarter ellipses and 3-point arcs expose a drag handle
// via [Path.HandlePoint]. [Path.SetHandlePoint] solves the segment's
// parameters from a new handle position. Scaling and mirroring move handles
// and solve again, so these curves keep their character under non-uniform
// transforms.
//
// # Logging
//
// The package logs through [log/slog]. Nothing is logged until [SetLogger]
// installs a logger.
package polyline
