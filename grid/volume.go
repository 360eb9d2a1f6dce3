package grid

import (
	"fmt"
	"strings"

	"github.com/grainforge/microgrid/internal/provenance"
)

// Volume is the exchange representation used by structured-grid file
// collaborators: material indices with shape metadata and an
// axis-aligned bounding box instead of size and origin.
type Volume struct {
	Material []int32
	Cells    [3]int
	BoxMin   [3]float64
	BoxMax   [3]float64
	Comments []string
}

// FromVolume builds a grid from an exchanged volume, taking BoxMin as
// origin and the box extent as size.
func FromVolume(v Volume) (*Grid, error) {
	size := [3]float64{
		v.BoxMax[0] - v.BoxMin[0],
		v.BoxMax[1] - v.BoxMin[1],
		v.BoxMax[2] - v.BoxMin[2],
	}
	return New(v.Material, v.Cells, size, v.BoxMin, v.Comments)
}

// AsVolume converts the grid to the exchange representation.
func (g *Grid) AsVolume() Volume {
	return Volume{
		Material: g.Material(),
		Cells:    g.cells,
		BoxMin:   g.origin,
		BoxMax: [3]float64{
			g.origin[0] + g.size[0],
			g.origin[1] + g.size[1],
			g.origin[2] + g.size[2],
		},
		Comments: g.Comments(),
	}
}

// VolumeSource provides read access to an HDF5-style dataset
// hierarchy. Paths are slash-separated without a leading slash. Dims
// returns dataset dimensions slowest-varying first, the C storage
// order of HDF5.
type VolumeSource interface {
	// Walk visits every dataset path until fn returns true.
	Walk(fn func(path string) bool)
	Dims(path string) ([]int, error)
	ReadInts(path string) ([]int32, error)
	ReadFloats(path string) ([]float64, error)
}

// VolumeDataOptions controls FromVolumeData. With FeatureIDs set, the
// named per-cell dataset maps cells to grain-wise data and is used
// directly as material index. Otherwise material indices are derived
// cell-wise from unique (orientation, phase) combinations, read from
// the EulerAngles and Phases datasets (defaults "EulerAngles" and
// "Phases"). BaseGroup and CellData name the geometry and cell-data
// groups and are auto-detected when empty.
type VolumeDataOptions struct {
	FeatureIDs  string
	CellData    string
	Phases      string
	EulerAngles string
	BaseGroup   string
}

const simplGeometry = "_SIMPL_GEOMETRY"

// FromVolumeData imports a microstructure from volumetric simulation
// data following the SIMPL naming convention: a base group holding
// _SIMPL_GEOMETRY/{DIMENSIONS,SPACING,ORIGIN} next to a group of
// per-cell datasets.
func FromVolumeData(src VolumeSource, opts VolumeDataOptions) (*Grid, error) {
	base := opts.BaseGroup
	if base == "" {
		var err error
		base, err = baseGroup(src)
		if err != nil {
			return nil, err
		}
	}

	dims, err := src.ReadInts(base + "/" + simplGeometry + "/DIMENSIONS")
	if err != nil {
		return nil, err
	}
	spacing, err := src.ReadFloats(base + "/" + simplGeometry + "/SPACING")
	if err != nil {
		return nil, err
	}
	orig, err := src.ReadFloats(base + "/" + simplGeometry + "/ORIGIN")
	if err != nil {
		return nil, err
	}
	if len(dims) != 3 || len(spacing) != 3 || len(orig) != 3 {
		return nil, fmt.Errorf("%w: geometry datasets in %s are not 3D", ErrShape, base)
	}
	var cells [3]int
	var size, origin [3]float64
	for a := 0; a < 3; a++ {
		cells[a] = int(dims[a])
		size[a] = spacing[a] * float64(dims[a])
		origin[a] = orig[a]
	}

	cellData := opts.CellData
	if cellData == "" {
		cellData, err = cellDataGroup(src, base, cells)
		if err != nil {
			return nil, err
		}
	}

	var material []int32
	if opts.FeatureIDs != "" {
		material, err = src.ReadInts(base + "/" + cellData + "/" + opts.FeatureIDs)
		if err != nil {
			return nil, err
		}
	} else {
		phasesName := opts.Phases
		if phasesName == "" {
			phasesName = "Phases"
		}
		eulerName := opts.EulerAngles
		if eulerName == "" {
			eulerName = "EulerAngles"
		}
		phases, err := src.ReadInts(base + "/" + cellData + "/" + phasesName)
		if err != nil {
			return nil, err
		}
		eulers, err := src.ReadFloats(base + "/" + cellData + "/" + eulerName)
		if err != nil {
			return nil, err
		}
		n := len(phases)
		if len(eulers) != 3*n {
			return nil, fmt.Errorf("%w: %d Euler angle values for %d phase entries", ErrShape, len(eulers), n)
		}
		rows := make([][]float64, n)
		for i := range rows {
			rows[i] = []float64{eulers[3*i], eulers[3*i+1], eulers[3*i+2], float64(phases[i])}
		}
		material = denseIDs(rows)
	}

	if len(material) != cells[0]*cells[1]*cells[2] {
		return nil, fmt.Errorf("%w: %d material entries for %v cells", ErrShape, len(material), cells)
	}
	return &Grid{
		material: material,
		cells:    cells,
		size:     size,
		origin:   origin,
		comments: []string{provenance.Stamp("Grid", "FromVolumeData")},
	}, nil
}

// baseGroup locates the group holding _SIMPL_GEOMETRY/SPACING.
func baseGroup(src VolumeSource) (string, error) {
	var base string
	src.Walk(func(path string) bool {
		marker := simplGeometry + "/SPACING"
		if i := strings.Index(path, marker); i >= 0 {
			base = strings.TrimSuffix(path[:i], "/")
			return true
		}
		return false
	})
	if base == "" {
		return "", fmt.Errorf("%w: no group with %s/SPACING found", ErrShape, simplGeometry)
	}
	return base, nil
}

// cellDataGroup locates the group under base whose datasets are shaped
// like the cell grid, dimensions reversed to match C storage order.
func cellDataGroup(src VolumeSource, base string, cells [3]int) (string, error) {
	want := []int{cells[2], cells[1], cells[0]}
	var group string
	src.Walk(func(path string) bool {
		rel, ok := strings.CutPrefix(path, base+"/")
		if !ok || strings.HasPrefix(rel, simplGeometry) {
			return false
		}
		dims, err := src.Dims(path)
		if err != nil || len(dims) < 3 {
			return false
		}
		for a := 0; a < 3; a++ {
			if dims[a] != want[a] {
				return false
			}
		}
		group = rel[:strings.IndexByte(rel+"/", '/')]
		return true
	})
	if group == "" {
		return "", fmt.Errorf("%w: no cell data group matching %v cells under %s", ErrShape, cells, base)
	}
	return group, nil
}
