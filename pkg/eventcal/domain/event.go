package domain

// Event is a scheduled occurrence with a time span, an optional venue,
// and a set of enrolled people kept in the enrollment relation.
//
// Dates are ISO calendar dates (YYYY-MM-DD) and times are HH:MM clock
// times; both are stored as strings, matching the wire and storage
// representation.
type Event struct {
	ID          int64
	Name        string
	StartDate   string
	StartTime   string
	EndDate     string
	EndTime     string
	Description string
	VenueID     *int64
}

// NewEvent builds a validated event. Fields are assigned in declaration
// order, so the end-time ordering check runs against the final start
// fields.
func NewEvent(name, startDate, startTime, endDate, endTime, description string) (*Event, error) {
	e := &Event{}
	if err := e.SetName(name); err != nil {
		return nil, err
	}
	if err := e.SetStartDate(startDate); err != nil {
		return nil, err
	}
	if err := e.SetStartTime(startTime); err != nil {
		return nil, err
	}
	if err := e.SetEndDate(endDate); err != nil {
		return nil, err
	}
	if err := e.SetEndTime(endTime); err != nil {
		return nil, err
	}
	e.SetDescription(description)
	return e, nil
}

// SetName validates and assigns the event name.
func (e *Event) SetName(s string) error {
	if err := validateNonEmpty("name", s); err != nil {
		return err
	}
	e.Name = s
	return nil
}

// SetStartDate validates and assigns the start date.
func (e *Event) SetStartDate(s string) error {
	if err := validateDate("start_date", s); err != nil {
		return err
	}
	e.StartDate = s
	return nil
}

// SetStartTime validates and assigns the start time.
func (e *Event) SetStartTime(s string) error {
	if err := validateClock("start_time", s); err != nil {
		return err
	}
	e.StartTime = s
	return nil
}

// SetEndDate validates and assigns the end date.
func (e *Event) SetEndDate(s string) error {
	if err := validateDate("end_date", s); err != nil {
		return err
	}
	e.EndDate = s
	return nil
}

// SetEndTime validates and assigns the end time.
//
// Beyond the clock-time check, the combined end instant (current end
// date plus the proposed end time) must not precede the combined start
// instant as the start fields stand right now. Mutating the start
// fields afterwards is not re-checked; validity depends on assignment
// order, which callers control.
func (e *Event) SetEndTime(s string) error {
	if err := validateClock("end_time", s); err != nil {
		return err
	}
	start, err := combineInstant(e.StartDate, e.StartTime)
	if err != nil {
		return &ValidationError{Field: "end_time", Message: "start date and time must be set first"}
	}
	end, err := combineInstant(e.EndDate, s)
	if err != nil {
		return &ValidationError{Field: "end_time", Message: "end date must be set first"}
	}
	if start.After(end) {
		return &ValidationError{Field: "end_time", Message: "start must not be later than end"}
	}
	e.EndTime = s
	return nil
}

// SetDescription assigns the description. An empty description is valid.
func (e *Event) SetDescription(s string) {
	e.Description = s
}
