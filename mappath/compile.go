package mappath

// Segment is one element of a line definition,
// either a Straight or a SmoothJoint.
type Segment interface {
	isSegment()
}

// Straight is a literal line segment.
type Straight struct {
	From, To Point
}

// SmoothJoint replaces the corner between the previous and the next
// Straight segments by a quadratic curve. It carries no geometry of its own.
type SmoothJoint struct{}

func (Straight) isSegment()    {}
func (SmoothJoint) isSegment() {}

// LineDef is an ordered sequence of segments describing one drawable line.
type LineDef []Segment

// straightAt returns the segment at index i if it is a Straight.
func (line LineDef) straightAt(i int) (Straight, bool) {
	if i < 0 || i >= len(line) {
		return Straight{}, false
	}
	s, ok := line[i].(Straight)
	return s, ok
}

// smoothJoint returns the quadratic curve replacing the joint at index i.
func (line LineDef) smoothJoint(i int) (QuadTo, JointIssueKind) {
	prev, okPrev := line.straightAt(i - 1)
	next, okNext := line.straightAt(i + 1)
	if !okPrev || !okNext {
		return QuadTo{}, JointMissingNeighbour
	}
	corner, ok := Intersect(prev.From, prev.To, next.From, next.To)
	if !ok {
		return QuadTo{}, JointNoIntersection
	}
	// the curve rejoins at the start of the next segment
	return QuadTo{corner, next.From}, jointOK
}

// Compile converts a line definition into a path made of
// one MoveTo followed by LineTo and QuadTo operations.
// Smoothing joints which can't be resolved are skipped.
func Compile(line LineDef) Path {
	start := Point{}
	if first, ok := line.straightAt(0); ok {
		start = first.From
	}
	out := Path{MoveTo(start)}

	for i, seg := range line {
		switch seg := seg.(type) {
		case Straight:
			out.Line(seg.To)
		case SmoothJoint:
			if q, kind := line.smoothJoint(i); kind == jointOK {
				out.QuadBezier(q[0], q[1])
			}
		}
	}
	return out
}

// JointIssueKind explains why a smoothing joint was skipped.
type JointIssueKind uint8

const (
	jointOK JointIssueKind = iota
	// JointMissingNeighbour : the joint is not surrounded by two Straight segments
	JointMissingNeighbour
	// JointNoIntersection : the surrounding segments are parallel or degenerate
	JointNoIntersection
)

func (k JointIssueKind) String() string {
	switch k {
	case JointMissingNeighbour:
		return "missing straight neighbour"
	case JointNoIntersection:
		return "no intersection"
	default:
		return "<unknown JointIssueKind>"
	}
}

// JointIssue locates a smoothing joint skipped by Compile.
type JointIssue struct {
	Index int
	Kind  JointIssueKind
}

// JointIssues lists the smoothing joints of line which Compile ignores.
// It does not change the compiled output.
func JointIssues(line LineDef) []JointIssue {
	var issues []JointIssue
	for i, seg := range line {
		if _, ok := seg.(SmoothJoint); !ok {
			continue
		}
		if _, kind := line.smoothJoint(i); kind != jointOK {
			issues = append(issues, JointIssue{Index: i, Kind: kind})
		}
	}
	return issues
}
