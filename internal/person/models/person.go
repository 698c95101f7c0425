package models

import (
	id "people/pkg/domain"
)

// Person is a stored person record.
//
// Invariants:
//   - NationalID is the lookup key and is never rewritten by a store update
//   - At most one Person per NationalID is expected, but stores do not reject duplicates
//
// BMI is derived from Weight and Height on every call and never stored, so
// changes to either field are visible to the next query immediately.
type Person struct {
	Name       string        `json:"name"`
	NationalID id.NationalID `json:"national_id"`
	Weight     float64       `json:"weight"` // kilograms
	Height     float64       `json:"height"` // meters
}

// BMI returns Weight / Height².
// A zero Height yields +Inf (or NaN when Weight is also zero); callers get the
// raw float result.
func (p *Person) BMI() float64 {
	return p.Weight / (p.Height * p.Height)
}

// NewPerson builds a Person from its attributes without validation.
func NewPerson(name string, nationalID id.NationalID, weight, height float64) *Person {
	return &Person{
		Name:       name,
		NationalID: nationalID,
		Weight:     weight,
		Height:     height,
	}
}
