package sim

// StationState is the derived scheduler state of a station.
type StationState int

const (
	StationIdle StationState = iota
	StationStalled
	StationBusy
)

func (s StationState) String() string {
	switch s {
	case StationStalled:
		return "stalled"
	case StationBusy:
		return "busy"
	default:
		return "idle"
	}
}

// Station is one barista. Service and stall timers are uninterruptible.
type Station struct {
	Busy      bool
	Remaining float64     // seconds of service left while Busy
	Batch     []*Customer // customers being served, in pickup order
	Stall     float64     // seconds of bandwidth stall left; > 0 means stalled

	// Pos is written by layout.PlaceStations and read only to aim cosmetic tokens,
	// cups and the pantry runner. It is not simulation state.
	Pos Point
}

// State reports the scheduler state. A stall takes precedence: a station can
// stall while a batch is in service, and its service timer does not advance
// until the stall ends.
func (st *Station) State() StationState {
	switch {
	case st.Stall > 0:
		return StationStalled
	case st.Busy:
		return StationBusy
	default:
		return StationIdle
	}
}

func newStation() *Station {
	return &Station{}
}
