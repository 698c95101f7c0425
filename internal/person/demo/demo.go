// Package demo runs the fixed walkthrough of the person service: populate,
// list, filter by BMI and by name, update one record, remove another.
package demo

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"people/internal/person/models"
	id "people/pkg/domain"
)

// People is the slice of the person service the walkthrough drives.
type People interface {
	AddPerson(ctx context.Context, p *models.Person) error
	UpdatePerson(ctx context.Context, p *models.Person) error
	RemovePerson(ctx context.Context, nationalID id.NationalID) error
	FindPersonByID(ctx context.Context, nationalID id.NationalID) (*models.Person, error)
	FindAllPeople(ctx context.Context) ([]*models.Person, error)
	FindPeopleByBMIRange(ctx context.Context, minBMI, maxBMI float64) ([]*models.Person, error)
	FindPeopleByName(ctx context.Context, substr string) ([]*models.Person, error)
}

const (
	healthyBMIMin = 18
	healthyBMIMax = 24

	updateID   id.NationalID = "12345678900"
	updateName               = "Humberto"
	newWeight                = 75
	removeID   id.NationalID = "98765432100"
	removeName               = "Maria"
)

func seed() []*models.Person {
	return []*models.Person{
		models.NewPerson("Humberto", "12345678900", 70, 1.75),
		models.NewPerson("Maria", "98765432100", 60, 1.65),
		models.NewPerson("João", "45612378900", 85, 1.80),
	}
}

// Run executes the walkthrough against svc and writes a human-readable report
// to w.
func Run(ctx context.Context, svc People, w io.Writer) error {
	r := &report{w: w}

	for _, p := range seed() {
		if err := svc.AddPerson(ctx, p); err != nil {
			return fmt.Errorf("add %s: %w", p.NationalID, err)
		}
	}

	all, err := svc.FindAllPeople(ctx)
	if err != nil {
		return fmt.Errorf("list people: %w", err)
	}
	r.line("All people:")
	r.withBMI(all)

	healthy, err := svc.FindPeopleByBMIRange(ctx, healthyBMIMin, healthyBMIMax)
	if err != nil {
		return fmt.Errorf("filter by bmi: %w", err)
	}
	r.line("\nPeople with BMI between %d and %d:", healthyBMIMin, healthyBMIMax)
	r.withBMI(healthy)

	named, err := svc.FindPeopleByName(ctx, updateName)
	if err != nil {
		return fmt.Errorf("filter by name: %w", err)
	}
	r.line("\nPeople named '%s':", updateName)
	for _, p := range named {
		r.line("Name: %s, ID: %s", p.Name, p.NationalID)
	}

	target, err := svc.FindPersonByID(ctx, updateID)
	if err != nil {
		return fmt.Errorf("find %s: %w", updateID, err)
	}
	target.Weight = newWeight
	if err := svc.UpdatePerson(ctx, target); err != nil {
		return fmt.Errorf("update %s: %w", updateID, err)
	}
	updated, err := svc.FindPersonByID(ctx, updateID)
	if err != nil {
		return fmt.Errorf("reload %s: %w", updateID, err)
	}
	r.line("\nUpdated data for %s:", updateName)
	r.line("Name: %s, Weight: %s, BMI: %.2f", updated.Name, strconv.FormatFloat(updated.Weight, 'f', -1, 64), updated.BMI())

	if err := svc.RemovePerson(ctx, removeID); err != nil {
		return fmt.Errorf("remove %s: %w", removeID, err)
	}
	r.line("\n%s was removed.", removeName)

	return r.err
}

// report remembers the first write error so Run can return it once.
type report struct {
	w   io.Writer
	err error
}

func (r *report) line(format string, args ...any) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintf(r.w, format+"\n", args...)
}

func (r *report) withBMI(people []*models.Person) {
	for _, p := range people {
		r.line("Name: %s, ID: %s, BMI: %.2f", p.Name, p.NationalID, p.BMI())
	}
}
