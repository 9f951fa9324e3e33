// Package vessel synthesizes two-dimensional vascular geometries and renders
// them into grayscale raster images.
//
// # Overview
//
// A Canvas owns a tree of tube-shaped Segments. Each segment has a smooth
// centerline between two endpoints with prescribed tangent directions, and a
// width profile that can taper linearly and carry localized narrowings
// (stenoses). Segments connect at Ends, branch sockets declared on a parent
// segment's terminus, so bifurcations continue smoothly in direction.
//
// # Quick Start
//
//	c, _ := vessel.New(400, 160)
//
//	root, _ := c.AddVessel(vessel.Pt(0, 80), vessel.Pt(80, 80), 16)
//	end := root.AddEnd(0)
//	child, _ := root.AppendVessel(end, vessel.Pt(400, 80), 16)
//	child.AddNarrowing(0.5, 0.4, 0.3)
//
//	bm := c.Image()
//	bm.SavePNG("vessel.png")
//
// # Model
//
// The engine is build-then-query: AddVessel, AppendVessel, TaperTo and
// AddNarrowing grow and shape the tree; Image and ProbePoint are read-only
// queries. Image recomputes the full buffer from the current geometry on
// every call, so two calls on an unchanged tree return identical bytes.
//
// # Coordinate System
//
// Uses standard raster coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in degrees, 0 is right, positive turns toward +Y
//
// Probe parameters and narrowing supports are fractions of arc length in
// [0, 1], measured from a segment's start.
package vessel
