// Package grid implements the voxelized microstructure geometry used as
// input for crystal-plasticity grid solvers.
//
// A Grid is a dense 3D array of material indices plus physical metadata:
// the extent of the box, the coordinates of its lower corner, and an
// ordered provenance log. The material array is stored flat in
// x-fastest (column-major) order.
//
// Grids are value objects. Factories (tessellations, implicit minimal
// surfaces, tables, volume data) create them, and every transform
// (Mirror, Flip, Scale, Rotate, Canvas, Clean, AddPrimitive, Substitute,
// Sort, Renumber, VicinityOffset) consumes one Grid and returns a new
// one with a provenance comment appended; receivers are never mutated.
// Transforms that change the cell count recompute the physical size so
// the per-cell spacing stays constant.
//
// The tessellation factories are the only computationally heavy step;
// they evaluate cells concurrently on a worker pool sized through
// TessellationOptions and report progress through an optional hook
// without affecting the result.
package grid
