// Package shower implements a toy parton shower.
//
// A shower starts from a single momentum vector and recursively splits it
// into pairs, with the energy fraction, opening angle, and azimuth of each
// splitting drawn from simple rejection-sampled distributions:
//
//   - [Sampler]: seedable source of splitting kinematics
//   - [Split]: the momentum-splitting kinematics
//   - [Builder]: grows a complete binary [Parton] tree of fixed depth
//   - [Segments]: flattens a tree into drawable 3D line segments
//
// The splitting projection is deliberately simplified (the z component of
// a daughter is m*sin(phi), not a spherical decomposition) and makes no
// claim to physical accuracy.
package shower
