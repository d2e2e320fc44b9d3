package domain

// Hall зал, сдаваемый в аренду
type Hall struct {
	ID        int64
	Name      string
	Capacity  int // Количество посадочных мест
	IsActive  bool
	SortOrder int
}

// FitsGuests возвращает true, если гости помещаются в зал.
// Нулевая вместимость означает, что ограничение не задано
func (h *Hall) FitsGuests(guests int) bool {
	return h.Capacity <= 0 || guests <= h.Capacity
}
