package drawing

import (
	"github.com/tue-alga/cartocrow-sub002/pattern"
)

// DilatedPatternDrawing is the computed arrangement of a partition's
// dilated patterns: every bounded face's origins, every half-edge's
// originating pattern, and the relations computed for every pair of
// patterns whose dilations share a face.
type DilatedPatternDrawing struct {
	dilated   []Dilated
	arr       *arrangement
	faces     []face
	relations []Relation

	gs  pattern.Settings
	cds Settings
}

// New builds a DilatedPatternDrawing from a partition (§4.F steps 1-5).
func New(part []pattern.Pattern, gs pattern.Settings, cds Settings) *DilatedPatternDrawing {
	dilated := dilatePatterns(part, gs)
	arr := buildArrangement(dilated)
	faces := buildFaces(arr, dilated)

	d := &DilatedPatternDrawing{dilated: dilated, arr: arr, faces: faces, gs: gs, cds: cds}
	d.relations = d.computeRelations()
	return d
}

func (d *DilatedPatternDrawing) computeRelations() []Relation {
	var relations []Relation
	for i := 0; i < len(d.dilated); i++ {
		for j := i + 1; j < len(d.dilated); j++ {
			comps := d.IntersectionComponentsPair(i, j)
			for _, c := range comps {
				relations = append(relations, computePreference(i, j, c))
			}
		}
	}
	return relations
}

// Faces returns the bounded faces of the arrangement.
func (d *DilatedPatternDrawing) Faces() []face { return d.faces }

// Dilated returns every pattern's dilated boundary, indexed by partition
// position.
func (d *DilatedPatternDrawing) Dilated() []Dilated { return d.dilated }

// Relations returns every computed pairwise relation.
func (d *DilatedPatternDrawing) Relations() []Relation { return d.relations }
