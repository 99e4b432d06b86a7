package domain

// Venue is a named location an event may take place at. Its lifetime is
// independent of any event referencing it.
type Venue struct {
	ID      int64
	Name    string
	Address *string
}

// NewVenue builds a validated venue. A nil address means no address;
// an explicitly supplied empty address is rejected.
func NewVenue(name string, address *string) (*Venue, error) {
	v := &Venue{}
	if err := v.SetName(name); err != nil {
		return nil, err
	}
	if err := v.SetAddress(address); err != nil {
		return nil, err
	}
	return v, nil
}

// SetName validates and assigns the venue name.
func (v *Venue) SetName(s string) error {
	if err := validateNonEmpty("name", s); err != nil {
		return err
	}
	v.Name = s
	return nil
}

// SetAddress validates and assigns the address. nil clears it.
func (v *Venue) SetAddress(s *string) error {
	if s != nil {
		if err := validateNonEmpty("address", *s); err != nil {
			return err
		}
	}
	v.Address = s
	return nil
}
