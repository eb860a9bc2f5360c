package domain

// AppointmentType classifies a booking.
type AppointmentType string

const (
	AppointmentInitial     AppointmentType = "Initial"
	AppointmentFollowUp    AppointmentType = "Follow-up"
	AppointmentYogaClass   AppointmentType = "Yoga Class"
	AppointmentTeleconsult AppointmentType = "Teleconsult"
)

func (t AppointmentType) Valid() bool {
	switch t {
	case AppointmentInitial, AppointmentFollowUp, AppointmentYogaClass, AppointmentTeleconsult:
		return true
	}
	return false
}

// Appointment is a booked session. Start and End are local ISO timestamps
// ("2006-01-02T15:04:05"); string comparison orders them correctly, which is
// all the schedule views and the exact-start conflict check need.
type Appointment struct {
	ID        string          `json:"id"`
	CenterID  string          `json:"centerId"`
	TrainerID string          `json:"trainerId"`
	ClientID  string          `json:"clientId"`
	Start     string          `json:"start"`
	End       string          `json:"end"`
	Type      AppointmentType `json:"type"`
	Notes     string          `json:"notes"`
}

func (a Appointment) Validate() error {
	if a.ID == "" {
		return ErrEmptyID
	}
	if a.CenterID == "" || a.TrainerID == "" || a.ClientID == "" {
		return ErrEmptyReference
	}
	if a.Start == "" || a.End == "" {
		return ErrEmptyDate
	}
	if !a.Type.Valid() {
		return ErrInvalidEnum
	}
	return nil
}
