package availability

import "time"

// SlotTime is one candidate slot as a pair of absolute instants.
type SlotTime struct {
	Start time.Time
	End   time.Time
}

// Generator expands a working window on a date into candidate slot times.
type Generator struct {
	zones ZoneResolver
}

func NewGenerator(zones ZoneResolver) *Generator {
	return &Generator{zones: zones}
}

// Generate emits slots of slotDuration starting at the window start,
// advancing the cursor by slotDuration plus breakDuration. A slot whose end
// lands exactly on the window end is included; trailing time shorter than a
// full slot is dropped. Results are ascending by start instant, normalized
// to UTC via the resolved zone.
//
// Window divisibility by slotDuration is a request-level precondition
// validated once in NewAvailability, not re-checked per date.
func (g *Generator) Generate(
	date Date,
	window TimeWindow,
	slotDuration SlotDuration,
	breakDuration BreakDuration,
	timezone string,
) ([]SlotTime, error) {
	loc, err := g.zones.Resolve(timezone)
	if err != nil {
		return nil, err
	}

	var slots []SlotTime
	for cursor := window.Start(); ; cursor = cursor.AddMinutes(slotDuration.Minutes() + breakDuration.Minutes()) {
		slotEnd := cursor.AddMinutes(slotDuration.Minutes())
		if slotEnd.After(window.End()) {
			break
		}
		slots = append(slots, SlotTime{
			Start: ToAbsolute(date, cursor, loc),
			End:   ToAbsolute(date, slotEnd, loc),
		})
	}
	return slots, nil
}
