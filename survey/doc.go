// Package survey defines the data model for cave survey reduction.
//
// A survey is an ordered list of shots: directed measurements between named
// stations carrying slope distance, compass azimuth and inclination. This
// package contains:
//
//   - Shot, Origin: immutable reduction inputs
//   - Point3, BBox: coordinate value types
//   - Edge, Residual, Meta, Result: reduction outputs
//   - Boundary validation and normalization for incoming shots
//
// All output types include JSON struct tags for serialization.
package survey
