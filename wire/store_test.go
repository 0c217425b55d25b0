package wire

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/phydb-rc/rcnet/geom"
)

func rectAt(llx, lly, urx, ury float64) geom.Rect2D {
	return geom.NewRect2D(geom.Point2D{X: llx, Y: lly}, geom.Point2D{X: urx, Y: ury})
}

func TestStoreAddAssignsInsertionOrderSegmentNumbers(t *testing.T) {
	s := NewStore()

	ref0, err := s.Add("A", "M1", rectAt(0, 0, 50, 10), geom.Point2D{X: 0, Y: 5}, geom.Point2D{X: 50, Y: 5}, nil, nil)
	require.NoError(t, err)
	require.Equal(t, 0, ref0.Index)

	ref1, err := s.Add("A", "M1", rectAt(50, 0, 100, 10), geom.Point2D{X: 50, Y: 5}, geom.Point2D{X: 100, Y: 5}, []SegmentRef{ref0}, nil)
	require.NoError(t, err)
	require.Equal(t, 1, ref1.Index)

	segs := s.Segments("A")
	require.Len(t, segs, 2)
	require.Equal(t, []SegmentRef{ref0}, segs[1].HorizontalConnections)
}

func TestStoreAddRejectsInvalidInput(t *testing.T) {
	s := NewStore()

	_, err := s.Add("", "M1", rectAt(0, 0, 1, 1), geom.Point2D{}, geom.Point2D{}, nil, nil)
	require.ErrorIs(t, err, ErrEmptyNetName)

	_, err = s.Add("A", "M1", rectAt(0, 0, 1, 1), geom.Point2D{X: 0, Y: 0}, geom.Point2D{X: 1, Y: 1}, nil, nil)
	require.ErrorIs(t, err, ErrMalformedSegment)

	_, err = s.Add("A", "via1", rectAt(0, 0, 0, 10), geom.Point2D{X: 0, Y: 5}, geom.Point2D{X: 0, Y: 5}, nil, nil)
	require.ErrorIs(t, err, ErrDegenerateVia)

	future := SegmentRef{Net: "A", Index: 5}
	_, err = s.Add("A", "M1", rectAt(0, 0, 10, 10), geom.Point2D{X: 0, Y: 5}, geom.Point2D{X: 10, Y: 5}, []SegmentRef{future}, nil)
	require.ErrorIs(t, err, ErrBadPredecessor)
}

func TestStoreGetAndNotFound(t *testing.T) {
	s := NewStore()
	ref, err := s.Add("A", "M1", rectAt(0, 0, 10, 10), geom.Point2D{X: 0, Y: 5}, geom.Point2D{X: 10, Y: 5}, nil, nil)
	require.NoError(t, err)

	seg, err := s.Get(ref)
	require.NoError(t, err)
	require.Equal(t, "A", seg.NetName())
	require.Equal(t, 0, seg.SegmentNumber())
	require.False(t, seg.IsVia())

	_, err = s.Get(SegmentRef{Net: "A", Index: 99})
	require.ErrorIs(t, err, ErrSegmentNotFound)
}

func TestStoreNetsSortedAndResistorRefBookkeeping(t *testing.T) {
	s := NewStore()
	_, _ = s.Add("B", "M1", rectAt(0, 0, 10, 10), geom.Point2D{X: 0, Y: 5}, geom.Point2D{X: 10, Y: 5}, nil, nil)
	ref, _ := s.Add("A", "M1", rectAt(0, 0, 10, 10), geom.Point2D{X: 0, Y: 5}, geom.Point2D{X: 10, Y: 5}, nil, nil)

	require.Equal(t, []string{"A", "B"}, s.Nets())

	require.NoError(t, s.AddResistorRef(ref, 7))
	require.NoError(t, s.AddResistorRef(ref, 8))
	seg, err := s.Get(ref)
	require.NoError(t, err)
	require.Equal(t, []int{7, 8}, seg.ResistorIDs)

	require.NoError(t, s.RemoveResistorRef(ref, 7))
	seg, _ = s.Get(ref)
	require.Equal(t, []int{8}, seg.ResistorIDs)

	require.NoError(t, s.UpdateRect(ref, rectAt(0, 0, 20, 10)))
	seg, _ = s.Get(ref)
	require.Equal(t, 20.0, seg.Rect.Width())
}
