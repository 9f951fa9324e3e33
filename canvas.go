package vessel

import "fmt"

// coincidentEps is the distance below which two endpoints are considered
// coincident, which makes a segment degenerate.
const coincidentEps = 1e-9

// Canvas owns a raster area of fixed pixel dimensions and the tree of
// vessel segments drawn onto it.
//
// The canvas is the sole owner of every segment created through it; there is
// no removal operation, the tree only grows. Canvas is not safe for
// concurrent mutation; callers must serialize access externally.
type Canvas struct {
	width    int
	height   int
	segments []*Segment
}

// New creates an empty canvas with the given pixel dimensions.
// Returns ErrInvalidDimensions unless both are positive.
func New(width, height int) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d (both must be > 0)",
			ErrInvalidDimensions, width, height)
	}
	return &Canvas{width: width, height: height}, nil
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.height }

// NumSegments returns the number of segments in the tree.
func (c *Canvas) NumSegments() int { return len(c.segments) }

// SegmentOption configures optional parameters of a new segment.
type SegmentOption func(*segmentOptions)

// segmentOptions holds optional configuration for segment creation.
type segmentOptions struct {
	startAngle *float64
	endAngle   *float64
}

// WithStartAngle overrides the tangent direction at the segment's start,
// in degrees. Without it the start tangent points along the straight line
// between the endpoints. AppendVessel ignores this option because a child's
// start direction always comes from its End.
func WithStartAngle(degrees float64) SegmentOption {
	return func(o *segmentOptions) {
		o.startAngle = &degrees
	}
}

// WithEndAngle overrides the tangent direction at the segment's end,
// in degrees. Without it the end tangent points along the straight line
// between the endpoints.
func WithEndAngle(degrees float64) SegmentOption {
	return func(o *segmentOptions) {
		o.endAngle = &degrees
	}
}

// AddVessel creates a new root segment from from to to with uniform width
// (equal start and end width until TaperTo is called).
//
// Tangent angles default to the straight-line direction between the
// endpoints; override either one with WithStartAngle / WithEndAngle.
// Fails with ErrInvalidGeometry on coincident endpoints or a non-positive
// width, leaving the canvas unchanged.
func (c *Canvas) AddVessel(from, to Point, width float64, opts ...SegmentOption) (*Segment, error) {
	if from.Approx(to, coincidentEps) {
		return nil, fmt.Errorf("%w: coincident endpoints (%g, %g)", ErrInvalidGeometry, from.X, from.Y)
	}
	if width <= 0 {
		return nil, fmt.Errorf("%w: width %g must be positive", ErrInvalidGeometry, width)
	}

	var o segmentOptions
	for _, opt := range opts {
		opt(&o)
	}
	chord := to.Sub(from).Atan2()
	startAngle, endAngle := chord, chord
	if o.startAngle != nil {
		startAngle = *o.startAngle
	}
	if o.endAngle != nil {
		endAngle = *o.endAngle
	}

	s := newSegment(c, from, to, startAngle, endAngle, width, width)
	c.segments = append(c.segments, s)
	return s, nil
}
