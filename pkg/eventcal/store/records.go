package store

// Result records are the flat shapes the query operations return. They
// carry only the three wire value kinds: integers, strings, and null.

// EventRecord is a flattened event row. VenueName is the linked venue's
// name, or nil when no venue is assigned; the venue's id and address
// are never exposed here.
type EventRecord struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	StartDate   string  `json:"start_date"`
	StartTime   string  `json:"start_time"`
	EndDate     string  `json:"end_date"`
	EndTime     string  `json:"end_time"`
	Description string  `json:"description"`
	VenueName   *string `json:"venue_name"`
}

// Flat returns the record as a flat field map.
func (r EventRecord) Flat() map[string]any {
	m := map[string]any{
		"id":          r.ID,
		"name":        r.Name,
		"start_date":  r.StartDate,
		"start_time":  r.StartTime,
		"end_date":    r.EndDate,
		"end_time":    r.EndTime,
		"description": r.Description,
		"venue_name":  nil,
	}
	if r.VenueName != nil {
		m["venue_name"] = *r.VenueName
	}
	return m
}

// VenueRecord is a flattened venue row.
type VenueRecord struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Address *string `json:"address"`
}

// Flat returns the record as a flat field map.
func (r VenueRecord) Flat() map[string]any {
	m := map[string]any{
		"id":      r.ID,
		"name":    r.Name,
		"address": nil,
	}
	if r.Address != nil {
		m["address"] = *r.Address
	}
	return m
}

// PersonRecord is a flattened person row.
type PersonRecord struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Flat returns the record as a flat field map.
func (r PersonRecord) Flat() map[string]any {
	return map[string]any{
		"id":    r.ID,
		"name":  r.Name,
		"email": r.Email,
	}
}
