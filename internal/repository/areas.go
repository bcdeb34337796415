package repository

import (
	"github.com/grh-water/water-console/internal/model"
)

// AreaRepository handles organizational area storage
type AreaRepository struct {
	areas  []model.Area
	nextID int
}

// NewAreaRepository creates an area repository seeded with the known
// areas.
func NewAreaRepository() *AreaRepository {
	return &AreaRepository{
		areas: []model.Area{
			{ID: 1, Name: "Operaciones", No: "001", Code: "OP01", Sort: 1, PushAddress: "Calle 123", Note: "Área principal", Time: "08:00-17:00"},
			{ID: 2, Name: "Calidad", No: "002", Code: "QA02", Sort: 2, PushAddress: "Calle 456", Note: "Revisión diaria", Time: "09:00-18:00"},
			{ID: 3, Name: "Mantenimiento", No: "003", Code: "MT03", Sort: 3, PushAddress: "Calle 789", Note: "Turno A", Time: "07:00-15:00"},
		},
		nextID: 4,
	}
}

// List returns a copy of all areas.
func (r *AreaRepository) List() []model.Area {
	out := make([]model.Area, len(r.areas))
	copy(out, r.areas)
	return out
}

// Create stores a new area and assigns its id.
func (r *AreaRepository) Create(draft model.Area) model.Area {
	draft.ID = r.nextID
	r.nextID++
	r.areas = append(r.areas, draft)
	return draft
}

// Update replaces the area with the given id.
func (r *AreaRepository) Update(id int, draft model.Area) (model.Area, bool) {
	for i, area := range r.areas {
		if area.ID == id {
			draft.ID = id
			r.areas[i] = draft
			return draft, true
		}
	}
	return model.Area{}, false
}

// Delete removes the area with the given id.
func (r *AreaRepository) Delete(id int) bool {
	for i, area := range r.areas {
		if area.ID == id {
			r.areas = append(r.areas[:i], r.areas[i+1:]...)
			return true
		}
	}
	return false
}
