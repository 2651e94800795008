package availability

import "strings"

// RecurrencePattern is the repetition rule applied to an availability's date.
type RecurrencePattern string

const (
	PatternNone    RecurrencePattern = "none"
	PatternDaily   RecurrencePattern = "daily"
	PatternWeekly  RecurrencePattern = "weekly"
	PatternMonthly RecurrencePattern = "monthly"
)

func NewRecurrencePattern(s string) (RecurrencePattern, error) {
	switch RecurrencePattern(strings.ToLower(s)) {
	case PatternDaily:
		return PatternDaily, nil
	case PatternWeekly:
		return PatternWeekly, nil
	case PatternMonthly:
		return PatternMonthly, nil
	case PatternNone, "":
		return PatternNone, nil
	default:
		return "", ErrInvalidRecurrencePattern
	}
}

func (p RecurrencePattern) String() string {
	return string(p)
}

type AppointmentType string

const (
	TypeConsultation AppointmentType = "consultation"
	TypeFollowUp     AppointmentType = "follow_up"
	TypeEmergency    AppointmentType = "emergency"
	TypeTelemedicine AppointmentType = "telemedicine"
)

func NewAppointmentType(s string) (AppointmentType, error) {
	switch AppointmentType(strings.ToLower(s)) {
	case TypeConsultation, TypeFollowUp, TypeEmergency, TypeTelemedicine:
		return AppointmentType(strings.ToLower(s)), nil
	case "":
		return TypeConsultation, nil
	default:
		return "", ErrInvalidAppointmentType
	}
}

func (t AppointmentType) String() string {
	return string(t)
}
