// Package colormap builds and manipulates ordered RGB color sequences
// for rendering scalar fields.
//
// Colormaps are constructed between two bound colors with FromRange,
// which interpolates in Msh space for perceptual uniformity, or from a
// set of predefined ranges with FromPredefined. A Colormap is immutable;
// Reversed and Concat return new instances.
//
// Shade renders a 2D scalar field into an RGBA raster, and the Save*
// methods export the color sequence for third-party visualization tools
// (Paraview JSON, plain RGB tables, GOM Aramis, gmsh).
//
// References:
//
//	K. Moreland, Proceedings of the 5th International Symposium on
//	Advances in Visual Computing, 2009
//	https://doi.org/10.1007/978-3-642-10520-3_9
package colormap
