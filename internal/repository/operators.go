package repository

import (
	"github.com/grh-water/water-console/internal/model"
)

// OperatorRepository handles the operator tree. Operators hang off area
// nodes; all tree walks are recursive because areas nest.
type OperatorRepository struct {
	areas  []*model.OperatorArea
	nextID int
}

// NewOperatorRepository creates an operator repository seeded with the
// organizational tree.
func NewOperatorRepository() *OperatorRepository {
	return &OperatorRepository{
		areas: []*model.OperatorArea{
			{
				ID:   1,
				Name: "GRH",
				Operators: []model.Operator{
					{ID: 1, LoginName: "admin.grh", IsSuperAdmin: true, IsDisabled: false, UserName: "Admin GRH", CellPhone: "664-555-0101", CreatedAt: "2025-12-17"},
				},
				Children: []*model.OperatorArea{
					{
						ID:   2,
						Name: "CESPT",
						Operators: []model.Operator{
							{ID: 2, LoginName: "op.cespt", IsSuperAdmin: false, IsDisabled: false, UserName: "Operador CESPT", CellPhone: "664-555-0102", CreatedAt: "2025-12-16"},
							{ID: 3, LoginName: "op.cespt2", IsSuperAdmin: false, IsDisabled: true, UserName: "Operador CESPT 2", CellPhone: "664-555-0103", CreatedAt: "2025-12-15"},
						},
					},
				},
			},
		},
		nextID: 4,
	}
}

// Areas returns the root nodes of the tree.
func (r *OperatorRepository) Areas() []*model.OperatorArea {
	return r.areas
}

// FindArea returns the area node with the given id.
func (r *OperatorRepository) FindArea(id int) (*model.OperatorArea, bool) {
	return findArea(r.areas, id)
}

func findArea(list []*model.OperatorArea, id int) (*model.OperatorArea, bool) {
	for _, area := range list {
		if area.ID == id {
			return area, true
		}
		if found, ok := findArea(area.Children, id); ok {
			return found, true
		}
	}
	return nil, false
}

// Create stores a new operator under the given area and assigns its id.
func (r *OperatorRepository) Create(areaID int, draft model.Operator) (model.Operator, bool) {
	area, ok := r.FindArea(areaID)
	if !ok {
		return model.Operator{}, false
	}
	draft.ID = r.nextID
	r.nextID++
	area.Operators = append(area.Operators, draft)
	return draft, true
}

// Update replaces the operator with the given id under the given area.
func (r *OperatorRepository) Update(areaID, operatorID int, draft model.Operator) (model.Operator, bool) {
	area, ok := r.FindArea(areaID)
	if !ok {
		return model.Operator{}, false
	}
	for i, op := range area.Operators {
		if op.ID == operatorID {
			draft.ID = operatorID
			area.Operators[i] = draft
			return draft, true
		}
	}
	return model.Operator{}, false
}

// Delete removes the operator with the given id from the given area.
func (r *OperatorRepository) Delete(areaID, operatorID int) bool {
	area, ok := r.FindArea(areaID)
	if !ok {
		return false
	}
	for i, op := range area.Operators {
		if op.ID == operatorID {
			area.Operators = append(area.Operators[:i], area.Operators[i+1:]...)
			return true
		}
	}
	return false
}
