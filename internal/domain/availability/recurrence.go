package availability

// RecurrenceRule describes whether and how an availability repeats.
type RecurrenceRule struct {
	recurring bool
	pattern   RecurrencePattern
	endDate   Date
}

func NewRecurrenceRule(recurring bool, pattern RecurrencePattern, endDate Date) (RecurrenceRule, error) {
	if !recurring {
		return RecurrenceRule{recurring: false, pattern: PatternNone}, nil
	}
	switch pattern {
	case PatternDaily, PatternWeekly, PatternMonthly:
	default:
		return RecurrenceRule{}, ErrInvalidRecurrencePattern
	}
	return RecurrenceRule{recurring: true, pattern: pattern, endDate: endDate}, nil
}

func (r RecurrenceRule) IsRecurring() bool {
	return r.recurring
}

func (r RecurrenceRule) Pattern() RecurrencePattern {
	return r.pattern
}

func (r RecurrenceRule) EndDate() Date {
	return r.endDate
}

// EffectiveEnd is the last date the rule can cover. A recurring rule without
// an end date degenerates to the start date alone.
func (r RecurrenceRule) EffectiveEnd(start Date) Date {
	if !r.recurring || r.endDate.IsZero() {
		return start
	}
	return r.endDate
}

// Expand produces the ascending sequence of dates the availability applies
// to, from start through the effective end inclusive. An end date before the
// start yields an empty sequence rather than an error.
func (r RecurrenceRule) Expand(start Date) []Date {
	if !r.recurring {
		return []Date{start}
	}

	end := r.EffectiveEnd(start)
	var dates []Date
	for current := start; !current.After(end); {
		dates = append(dates, current)
		switch r.pattern {
		case PatternDaily:
			current = current.AddDays(1)
		case PatternWeekly:
			current = current.AddDays(7)
		case PatternMonthly:
			current = current.AddMonths(1)
		default:
			return dates
		}
	}
	return dates
}
