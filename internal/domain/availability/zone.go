package availability

import "time"

// ZoneResolver turns an IANA zone name into a location. It is injected so
// tests can substitute fixed zones and so the zone database is an explicit
// capability rather than an ambient one.
type ZoneResolver interface {
	Resolve(name string) (*time.Location, error)
}

type SystemZoneResolver struct{}

func NewSystemZoneResolver() ZoneResolver {
	return &SystemZoneResolver{}
}

func (SystemZoneResolver) Resolve(name string) (*time.Location, error) {
	if name == "" {
		return nil, ErrInvalidTimezone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, ErrInvalidTimezone
	}
	return loc, nil
}

// ToAbsolute normalizes a local wall-clock time on a date to a UTC instant.
// Equal inputs always produce equal instants; there is no fallback to UTC
// when the zone differs.
func ToAbsolute(date Date, localTime TimeOfDay, loc *time.Location) time.Time {
	return time.Date(date.Year, date.Month, date.Day, localTime.Hour(), localTime.Minute(), 0, 0, loc).UTC()
}
