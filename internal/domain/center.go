package domain

// Center represents one physical clinic location. Trainers, clients and
// appointments all point back at a center by id.
type Center struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

func (c Center) Validate() error {
	if c.ID == "" {
		return ErrEmptyID
	}
	if c.Name == "" {
		return ErrEmptyName
	}
	return nil
}
