// Package microgrid provides voxelized microstructure geometry and
// perceptually uniform colormaps for crystal-plasticity grid solvers.
//
// The module is a set of deterministic, library-style numeric transforms
// over dense arrays. It is organized in four packages:
//
//   - colorspace: bidirectional color-space conversion kernels
//     (RGB, HSV, HSL, CIE XYZ, CIE Lab, Msh)
//   - colormap: ordered RGB color sequences built by perceptual
//     interpolation in Msh space, field shading, and export to
//     visualization formats
//   - grid: the voxel geometry core, tessellation and implicit-surface
//     factories plus structure-preserving transforms, each returning a
//     new value with a provenance comment appended
//   - mesh: the unstructured quad mesh produced by grain-boundary
//     extraction
//
// All types are value objects: transforms never mutate their receiver,
// and no shared mutable state exists. The tessellation factories are the
// only computationally heavy step; they distribute work over a
// configurable worker pool without changing the mathematical result.
package microgrid
