package vessel

import "fmt"

// Segment is one tube of vessel geometry: a smooth centerline between two
// endpoints with prescribed tangent directions, and a width profile along
// its arc length.
//
// Segments are created through Canvas.AddVessel or Segment.AppendVessel and
// are owned by their canvas for its whole lifetime; callers hold the returned
// pointer as a handle. Tapering and narrowing mutate only the width profile,
// never the endpoint positions or directions, so Ends declared on a segment
// stay valid across later width changes.
type Segment struct {
	canvas     *Canvas
	curve      CubicBez
	arc        *arcTable
	startAngle float64 // degrees
	endAngle   float64 // degrees
	profile    widthProfile
	ends       []*End
}

// End is a branch socket on a segment's terminus: a position, an outward
// angle, and the angular offset relative to the segment's terminal tangent
// at which it was declared. Each End can anchor exactly one child segment.
type End struct {
	seg      *Segment
	pos      Point
	angle    float64 // degrees
	offset   float64 // degrees, relative to the parent's terminal tangent
	consumed bool
}

// Position returns the socket position (the parent segment's endpoint).
func (e *End) Position() Point { return e.pos }

// Angle returns the outward direction of the socket in degrees.
func (e *End) Angle() float64 { return e.angle }

// Offset returns the angular offset the socket was declared with.
func (e *End) Offset() float64 { return e.offset }

// Consumed returns true once a child segment has been attached here.
func (e *End) Consumed() bool { return e.consumed }

// newSegment assumes the caller already validated its inputs.
func newSegment(c *Canvas, from, to Point, startDeg, endDeg, startWidth, endWidth float64) *Segment {
	curve := NewHermite(from, to, startDeg, endDeg)
	return &Segment{
		canvas:     c,
		curve:      curve,
		arc:        newArcTable(curve),
		startAngle: startDeg,
		endAngle:   endDeg,
		profile:    widthProfile{startWidth: startWidth, endWidth: endWidth},
	}
}

// StartPoint returns the segment's start point.
func (s *Segment) StartPoint() Point { return s.curve.Start() }

// EndPoint returns the segment's end point.
func (s *Segment) EndPoint() Point { return s.curve.End() }

// StartWidth returns the baseline width at the segment's start.
func (s *Segment) StartWidth() float64 { return s.profile.startWidth }

// EndWidth returns the baseline width at the segment's end.
func (s *Segment) EndWidth() float64 { return s.profile.endWidth }

// Length returns the segment's arc length in pixels.
func (s *Segment) Length() float64 { return s.arc.Length() }

// AddEnd declares a branch socket at the segment's terminus. The socket's
// outward angle is the terminal tangent direction plus offsetDeg (0 means
// straight continuation; positive fans toward +Y). Any number of ends may be
// declared on one segment, which is how a terminus bifurcates into two or
// more children.
func (s *Segment) AddEnd(offsetDeg float64) *End {
	e := &End{
		seg:    s,
		pos:    s.curve.End(),
		angle:  s.curve.Tangent(1).Atan2() + offsetDeg,
		offset: offsetDeg,
	}
	s.ends = append(s.ends, e)
	return e
}

// AppendVessel attaches a child segment at a previously declared End.
//
// The child starts at the End's position in the End's direction, so the join
// is C1-continuous. Its start width equals the parent's width at the terminus
// (continuity across the join) and width becomes the child's end width. The
// end angle defaults to the straight-line direction from the End to pos;
// override it with WithEndAngle.
//
// Each End anchors at most one child: attaching to a consumed End fails with
// ErrInvalidGeometry, leaving the tree unchanged.
func (s *Segment) AppendVessel(end *End, pos Point, width float64, opts ...SegmentOption) (*Segment, error) {
	if end == nil {
		return nil, fmt.Errorf("%w: nil end", ErrInvalidGeometry)
	}
	if end.seg != s {
		return nil, fmt.Errorf("%w: end belongs to a different segment", ErrInvalidGeometry)
	}
	if end.consumed {
		return nil, fmt.Errorf("%w: end already has a child vessel", ErrInvalidGeometry)
	}
	if width <= 0 {
		return nil, fmt.Errorf("%w: width %g must be positive", ErrInvalidGeometry, width)
	}
	if pos.Approx(end.pos, coincidentEps) {
		return nil, fmt.Errorf("%w: child endpoint coincides with end position (%g, %g)",
			ErrInvalidGeometry, pos.X, pos.Y)
	}

	var o segmentOptions
	for _, opt := range opts {
		opt(&o)
	}
	endAngle := pos.Sub(end.pos).Atan2()
	if o.endAngle != nil {
		endAngle = *o.endAngle
	}

	child := newSegment(s.canvas, end.pos, pos, end.angle, endAngle, s.profile.Eval(1), width)
	s.canvas.segments = append(s.canvas.segments, child)
	end.consumed = true
	return child, nil
}

// TaperTo sets the segment's end width, making the baseline width profile a
// linear interpolation from the start width to endWidth over the full arc
// length. Calling TaperTo again replaces the previous value (last call wins).
// Tapering never moves the endpoint or its direction.
func (s *Segment) TaperTo(endWidth float64) error {
	if endWidth <= 0 {
		return fmt.Errorf("%w: taper width %g must be positive", ErrInvalidGeometry, endWidth)
	}
	s.profile.endWidth = endWidth
	return nil
}

// AddNarrowing adds a localized stenosis to the width profile.
//
// loc is the center and length the extent of the affected region, both as
// fractions of arc length; the support is clamped to stay within the segment.
// scale in [0, 1] is the minimum width factor, reached at loc, with a smooth
// transition to no effect at the support boundary. Repeated narrowings
// multiply, so overlapping modifiers compound rather than conflict.
func (s *Segment) AddNarrowing(loc, length, scale float64) error {
	return s.profile.addNarrowing(loc, length, scale)
}

// ProbePoint returns the centerline coordinate at arc-length fraction t in
// [0, 1]: t=0 is the start point and t=1 the end point. Probe coordinates
// land on the rendered lumen because rendering flattens the same centerline.
func (s *Segment) ProbePoint(t float64) (Point, error) {
	if t < 0 || t > 1 {
		return Point{}, fmt.Errorf("%w: probe position %g outside [0, 1]", ErrOutOfRange, t)
	}
	return s.arc.PointAt(t), nil
}

// WidthAt returns the local width at arc-length fraction t in [0, 1],
// including taper and all narrowings.
func (s *Segment) WidthAt(t float64) (float64, error) {
	if t < 0 || t > 1 {
		return 0, fmt.Errorf("%w: width position %g outside [0, 1]", ErrOutOfRange, t)
	}
	return s.profile.Eval(t), nil
}
