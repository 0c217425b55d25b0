package phydb

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/phydb-rc/rcnet/geom"
	"github.com/phydb-rc/rcnet/wire"
)

// WireInput is the JSON-friendly shape of one routed rectangle, standing
// in for the narrow LEF/DEF-derived contract a real driver program would
// produce (NetName, SegmentNumber, LayerName, Rect, P1, P2,
// predecessors). SegmentNumber is not read back from the fixture: the
// store assigns it as the net-relative insertion index, since
// segment_number is always "assigned in the order the segment was
// added". HorizontalPredecessors/VerticalPredecessors are indices into
// the same net's earlier fixture entries.
type WireInput struct {
	NetName                string      `json:"net"`
	LayerName               string     `json:"layer"`
	Rect                    RectInput  `json:"rect"`
	P1                      PointInput `json:"p1"`
	P2                      PointInput `json:"p2"`
	HorizontalPredecessors  []int      `json:"horizontal_predecessors,omitempty"`
	VerticalPredecessors    []int      `json:"vertical_predecessors,omitempty"`
}

// PointInput is the JSON shape of a geom.Point2D.
type PointInput struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// RectInput is the JSON shape of a geom.Rect2D, given as its two
// corners.
type RectInput struct {
	LLX float64 `json:"llx"`
	LLY float64 `json:"lly"`
	URX float64 `json:"urx"`
	URY float64 `json:"ury"`
}

func (p PointInput) point() geom.Point2D { return geom.Point2D{X: p.X, Y: p.Y} }

func (r RectInput) rect() geom.Rect2D {
	return geom.NewRect2D(geom.Point2D{X: r.LLX, Y: r.LLY}, geom.Point2D{X: r.URX, Y: r.URY})
}

// LoadFixture reads a JSON array of WireInput from path. It is the
// driver's substitute for a real LEF/DEF lexer; this module does not
// parse LEF/DEF text itself.
//
// Complexity: O(n) in the size of the file.
func LoadFixture(path string) ([]WireInput, error) {
	if path == "" {
		return nil, ErrEmptyInputPath
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("phydb: reading fixture %q: %w", path, err)
	}
	var inputs []WireInput
	if err := json.Unmarshal(data, &inputs); err != nil {
		return nil, fmt.Errorf("phydb: parsing fixture %q: %w", path, err)
	}
	return inputs, nil
}

// Ingest feeds every WireInput to AddWireSegment in order, resolving each
// entry's predecessor indices against the net-relative insertion order
// already established earlier in inputs.
//
// Complexity: O(n) amortized in len(inputs).
func (db *DB) Ingest(inputs []WireInput) error {
	for _, in := range inputs {
		hPreds := make([]wire.SegmentRef, 0, len(in.HorizontalPredecessors))
		for _, idx := range in.HorizontalPredecessors {
			hPreds = append(hPreds, wire.SegmentRef{Net: in.NetName, Index: idx})
		}
		vPreds := make([]wire.SegmentRef, 0, len(in.VerticalPredecessors))
		for _, idx := range in.VerticalPredecessors {
			vPreds = append(vPreds, wire.SegmentRef{Net: in.NetName, Index: idx})
		}
		if _, err := db.AddWireSegment(in.NetName, in.LayerName, in.Rect.rect(), in.P1.point(), in.P2.point(), hPreds, vPreds); err != nil {
			return fmt.Errorf("phydb: ingesting %s layer %s: %w", in.NetName, in.LayerName, err)
		}
	}
	return nil
}
