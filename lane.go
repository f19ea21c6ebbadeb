package mlqueue

// Lane identifies one of the FIFO sequences held by a [Queue]. Lanes are
// served strictly in the order High, Medium, Low.
type Lane struct {
	lane
}

// MediumScoreThreshold is the priority score at which an entity that is not
// otherwise eligible for the Medium lane is promoted into it.
const MediumScoreThreshold = 3.0

// Lanes may be used to reference a [Lane] value by name.
var Lanes = laneContainer{
	High:   Lane{laneHigh},
	Medium: Lane{laneMedium},
	Low:    Lane{laneLow},
}

// All returns all lanes in service order.
func (c laneContainer) All() []Lane {
	return []Lane{c.High, c.Medium, c.Low}
}

// Classify returns the lane an [Entity] belongs to given its current state.
// It is a pure function and is evaluated again every time an entity is
// inserted into a queue.
//
// Loan requests and money deposits are always Medium, whereas any other
// non-High entity only reaches Medium once its score crosses
// [MediumScoreThreshold].
func Classify(e Entity) Lane {
	switch e.category {
	case Categories.VIP, Categories.EmergencyCase:
		return Lanes.High
	}
	if e.emergency {
		return Lanes.High
	}

	switch e.category {
	case Categories.LoanRequest, Categories.MoneyDeposit:
		return Lanes.Medium
	}
	if e.score >= MediumScoreThreshold {
		return Lanes.Medium
	}
	return Lanes.Low
}

type lane int

// The numeric value doubles as the index into Queue.lanes.
const (
	laneHigh lane = iota
	laneMedium
	laneLow

	laneCount = 3
)

var strLaneMap = map[lane]string{
	laneHigh:   "High",
	laneMedium: "Medium",
	laneLow:    "Low",
}

func (l lane) String() string {
	return strLaneMap[l]
}

type laneContainer struct {
	High   Lane
	Medium Lane
	Low    Lane
}
