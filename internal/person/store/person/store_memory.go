package person

import (
	"context"
	"slices"
	"strings"

	"people/internal/person/models"
	id "people/pkg/domain"
	"people/pkg/platform/sentinel"
)

// InMemory keeps people in insertion order in a plain slice. Lookups are linear
// scans with first-match semantics.
//
// It is not synchronized: a single caller is assumed. Finders hand out the
// pointers the store owns, so a caller mutating a returned *models.Person
// mutates stored state directly.
type InMemory struct {
	people []*models.Person
}

func NewInMemory() *InMemory {
	return &InMemory{people: make([]*models.Person, 0)}
}

// Add appends p. Duplicate national IDs are accepted.
func (s *InMemory) Add(_ context.Context, p *models.Person) error {
	s.people = append(s.people, p)
	return nil
}

// Update copies Name, Weight and Height from p onto the first stored person
// with the same NationalID. Unknown IDs are ignored.
func (s *InMemory) Update(_ context.Context, p *models.Person) error {
	existing := s.find(p.NationalID)
	if existing < 0 {
		return nil
	}
	stored := s.people[existing]
	stored.Name = p.Name
	stored.Weight = p.Weight
	stored.Height = p.Height
	return nil
}

// Remove deletes the first person with the given ID. Unknown IDs are ignored.
func (s *InMemory) Remove(_ context.Context, nationalID id.NationalID) error {
	i := s.find(nationalID)
	if i < 0 {
		return nil
	}
	copy(s.people[i:], s.people[i+1:])
	s.people[len(s.people)-1] = nil
	s.people = s.people[:len(s.people)-1]
	return nil
}

func (s *InMemory) FindByID(_ context.Context, nationalID id.NationalID) (*models.Person, error) {
	i := s.find(nationalID)
	if i < 0 {
		return nil, sentinel.ErrNotFound
	}
	return s.people[i], nil
}

// FindAll returns every stored person in insertion order. The slice is fresh
// but its elements are the stored pointers.
func (s *InMemory) FindAll(_ context.Context) ([]*models.Person, error) {
	return slices.Clone(s.people), nil
}

// FindByBMIRange returns people whose BMI lies in [minBMI, maxBMI].
func (s *InMemory) FindByBMIRange(_ context.Context, minBMI, maxBMI float64) ([]*models.Person, error) {
	return s.filter(func(p *models.Person) bool {
		bmi := p.BMI()
		return bmi >= minBMI && bmi <= maxBMI
	}), nil
}

// FindByNameContains matches substr case-sensitively anywhere in the name.
func (s *InMemory) FindByNameContains(_ context.Context, substr string) ([]*models.Person, error) {
	return s.filter(func(p *models.Person) bool {
		return strings.Contains(p.Name, substr)
	}), nil
}

func (s *InMemory) Count(_ context.Context) (int, error) {
	return len(s.people), nil
}

func (s *InMemory) find(nationalID id.NationalID) int {
	for i, p := range s.people {
		if p.NationalID == nationalID {
			return i
		}
	}
	return -1
}

func (s *InMemory) filter(match func(*models.Person) bool) []*models.Person {
	out := make([]*models.Person, 0)
	for _, p := range s.people {
		if match(p) {
			out = append(out, p)
		}
	}
	return out
}
