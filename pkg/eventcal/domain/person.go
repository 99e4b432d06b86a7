package domain

// Person is an individual identified by name and email who may enroll
// in events. Email uniqueness is assumed by convention; lookups by
// email expect exactly one match.
type Person struct {
	ID    int64
	Name  string
	Email string
}

// NewPerson builds a validated person.
func NewPerson(name, email string) (*Person, error) {
	p := &Person{}
	if err := p.SetName(name); err != nil {
		return nil, err
	}
	if err := p.SetEmail(email); err != nil {
		return nil, err
	}
	return p, nil
}

// SetName validates and assigns the person's name.
func (p *Person) SetName(s string) error {
	if err := validateNonEmpty("name", s); err != nil {
		return err
	}
	p.Name = s
	return nil
}

// SetEmail validates and assigns the email address.
func (p *Person) SetEmail(s string) error {
	if err := validateEmail("email", s); err != nil {
		return err
	}
	p.Email = s
	return nil
}
