package phys

// TraceKind labels an engine decision worth surfacing.
type TraceKind uint8

const (
	TraceStepUp TraceKind = iota
	TraceSnapDown
	TraceWallX
	TraceWallY
	TraceUnstick
	TraceSeparationBlocked
)

var traceNames = [...]string{
	"step-up",
	"snap-down",
	"wall-x",
	"wall-y",
	"unstick",
	"separation-blocked",
}

func (k TraceKind) String() string {
	if int(k) < len(traceNames) {
		return traceNames[k]
	}
	return "unknown"
}

// TraceEvent records where a decision left the body plus a kind-specific
// magnitude: climb height, snap distance, attempted delta, or nudge
// direction.
type TraceEvent struct {
	Kind TraceKind
	X, Y float64
	Arg  float64
}

// TraceFunc receives trace events from the movers. Tracing is explicit
// and opt-in; a nil TraceFunc disables it.
type TraceFunc func(TraceEvent)

func trace(tr TraceFunc, k TraceKind, x, y, arg float64) {
	if tr != nil {
		tr(TraceEvent{Kind: k, X: x, Y: y, Arg: arg})
	}
}
