package domain

// Trainer represents a coach or therapist attached to one center.
// Specialties are free-form labels ("Yoga", "Physio", ...).
type Trainer struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	CenterID    string   `json:"centerId"`
	Specialties []string `json:"specialties"`
	Phone       string   `json:"phone"`
}

func (t Trainer) Validate() error {
	if t.ID == "" {
		return ErrEmptyID
	}
	if t.Name == "" {
		return ErrEmptyName
	}
	if t.CenterID == "" {
		return ErrEmptyReference
	}
	return nil
}
