package domain

// PlanType classifies a plan template.
type PlanType string

const (
	PlanCombined PlanType = "combined"
	PlanYoga     PlanType = "yoga"
	PlanDiet     PlanType = "diet"
	PlanMedical  PlanType = "medical"
	PlanPhysio   PlanType = "physio"
)

func (t PlanType) Valid() bool {
	switch t {
	case PlanCombined, PlanYoga, PlanDiet, PlanMedical, PlanPhysio:
		return true
	}
	return false
}

// Plan is a reusable care-plan template. Clients reference plans by id only;
// deleting a plan leaves those references dangling on purpose.
type Plan struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Type          PlanType `json:"type"`
	Yoga          string   `json:"yoga,omitempty"`
	Diet          string   `json:"diet,omitempty"`
	StartDate     string   `json:"startDate"`
	DurationWeeks int      `json:"durationWeeks"`
	Price         float64  `json:"price"`
	Discount      float64  `json:"discount,omitempty"` // percentage, 0-100
}

func (p Plan) Validate() error {
	if p.ID == "" {
		return ErrEmptyID
	}
	if p.Title == "" {
		return ErrEmptyName
	}
	if !p.Type.Valid() {
		return ErrInvalidEnum
	}
	if p.DurationWeeks <= 0 {
		return ErrInvalidDuration
	}
	if p.Price < 0 {
		return ErrInvalidAmount
	}
	if p.Discount < 0 || p.Discount > 100 {
		return ErrInvalidDiscount
	}
	return nil
}

// EffectivePrice is the price after discount. It is computed at display and
// invoicing time, never stored.
func (p Plan) EffectivePrice() float64 {
	return p.Price * (1 - p.Discount/100)
}
