package domain

// Metrics holds the latest recorded vitals for a client. WeightKg is
// overwritten by the most recent progress log entry; it is not an average.
type Metrics struct {
	WeightKg float64 `json:"weightKg"`
	BP       string  `json:"bp"`
	Sugar    float64 `json:"sugar"`
}

// Medicine is a prescribed medicine line on a client's record.
type Medicine struct {
	Name string `json:"name"`
	Dose string `json:"dose"`
}

// ProgressLog is one dated progress note with the weight measured that day.
type ProgressLog struct {
	Date     string  `json:"date"`
	Note     string  `json:"note"`
	WeightKg float64 `json:"weightKg"`
}

// Client represents a registered client of the chain. Trainers and Plans are
// id lists referencing the trainer and plan collections; both may contain ids
// that no longer resolve (plan deletion does not cascade) and readers must
// treat those as "unknown" rather than as an error.
type Client struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	CenterID  string        `json:"centerId"`
	Age       int           `json:"age"`
	Phone     string        `json:"phone"`
	Metrics   Metrics       `json:"metrics"`
	Trainers  []string      `json:"trainers"`
	Plans     []string      `json:"plans"`
	Medicines []Medicine    `json:"medicines"`
	Progress  []ProgressLog `json:"progress"`
}

// Validate checks structural validity. The list fields must be present (an
// empty list, not nil) so that a stored client always round-trips through
// JSON with the same shape.
func (c Client) Validate() error {
	if c.ID == "" {
		return ErrEmptyID
	}
	if c.Name == "" {
		return ErrEmptyName
	}
	if c.CenterID == "" {
		return ErrEmptyReference
	}
	if c.Age <= 0 {
		return ErrInvalidAge
	}
	if c.Trainers == nil || c.Plans == nil || c.Medicines == nil || c.Progress == nil {
		return ErrMissingCollections
	}
	return nil
}

func (l ProgressLog) Validate() error {
	if l.Date == "" {
		return ErrEmptyDate
	}
	if l.WeightKg <= 0 {
		return ErrInvalidWeight
	}
	return nil
}
