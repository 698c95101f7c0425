package service

import (
	"context"
	"errors"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"people/internal/person/metrics"
	"people/internal/person/models"
	id "people/pkg/domain"
	"people/pkg/platform/sentinel"
)

// PersonStore is the storage seam behind the service. Any implementation can
// be swapped in without touching callers of Service.
type PersonStore interface {
	Add(ctx context.Context, p *models.Person) error
	Update(ctx context.Context, p *models.Person) error
	Remove(ctx context.Context, nationalID id.NationalID) error
	FindByID(ctx context.Context, nationalID id.NationalID) (*models.Person, error)
	FindAll(ctx context.Context) ([]*models.Person, error)
	FindByBMIRange(ctx context.Context, minBMI, maxBMI float64) ([]*models.Person, error)
	FindByNameContains(ctx context.Context, substr string) ([]*models.Person, error)
	Count(ctx context.Context) (int, error)
}

// Service forwards every call to its PersonStore unchanged. Inputs, results
// and errors pass through as-is; logging, metrics and spans are side channels.
type Service struct {
	people  PersonStore
	logger  *slog.Logger
	metrics *metrics.Metrics
	tracer  trace.Tracer
}

// Option configures optional Service collaborators.
type Option func(s *Service)

// WithLogger enables debug logging of every store call.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithMetrics enables operation counters and the stored-people gauge.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithTracer replaces the default otel.Tracer("people/service").
func WithTracer(t trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = t
	}
}

// New constructs a Service.
func New(people PersonStore, opts ...Option) *Service {
	s := &Service{people: people, tracer: otel.Tracer("people/service")}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddPerson stores p. A nil p is handed to the store as-is.
func (s *Service) AddPerson(ctx context.Context, p *models.Person) error {
	nationalID := personAttribute(p)
	ctx, span := s.tracer.Start(ctx, "person.add", trace.WithAttributes(nationalID))
	defer span.End()

	err := s.people.Add(ctx, p)
	s.record(ctx, "add", "national_id", nationalID.Value.AsString())
	s.refreshStored(ctx)
	return err
}

// UpdatePerson persists Name, Weight and Height for the person's NationalID.
// An unknown ID is a no-op. A nil p is handed to the store as-is.
func (s *Service) UpdatePerson(ctx context.Context, p *models.Person) error {
	nationalID := personAttribute(p)
	ctx, span := s.tracer.Start(ctx, "person.update", trace.WithAttributes(nationalID))
	defer span.End()

	err := s.people.Update(ctx, p)
	s.record(ctx, "update", "national_id", nationalID.Value.AsString())
	return err
}

// RemovePerson deletes the person with the given ID. An unknown ID is a no-op.
func (s *Service) RemovePerson(ctx context.Context, nationalID id.NationalID) error {
	ctx, span := s.tracer.Start(ctx, "person.remove", trace.WithAttributes(attribute.String("national_id", nationalID.String())))
	defer span.End()

	err := s.people.Remove(ctx, nationalID)
	s.record(ctx, "remove", "national_id", nationalID)
	s.refreshStored(ctx)
	return err
}

// FindPersonByID returns the stored person or sentinel.ErrNotFound.
func (s *Service) FindPersonByID(ctx context.Context, nationalID id.NationalID) (*models.Person, error) {
	ctx, span := s.tracer.Start(ctx, "person.find_by_id", trace.WithAttributes(attribute.String("national_id", nationalID.String())))
	defer span.End()

	p, err := s.people.FindByID(ctx, nationalID)
	s.record(ctx, "find_by_id", "national_id", nationalID)
	if errors.Is(err, sentinel.ErrNotFound) && s.metrics != nil {
		s.metrics.IncrementLookupMiss()
	}
	return p, err
}

func (s *Service) FindAllPeople(ctx context.Context) ([]*models.Person, error) {
	ctx, span := s.tracer.Start(ctx, "person.find_all")
	defer span.End()

	people, err := s.people.FindAll(ctx)
	s.record(ctx, "find_all", "count", len(people))
	return people, err
}

func (s *Service) FindPeopleByBMIRange(ctx context.Context, minBMI, maxBMI float64) ([]*models.Person, error) {
	ctx, span := s.tracer.Start(ctx, "person.find_by_bmi_range", trace.WithAttributes(
		attribute.Float64("bmi_min", minBMI),
		attribute.Float64("bmi_max", maxBMI),
	))
	defer span.End()

	people, err := s.people.FindByBMIRange(ctx, minBMI, maxBMI)
	s.record(ctx, "find_by_bmi_range", "bmi_min", minBMI, "bmi_max", maxBMI, "count", len(people))
	return people, err
}

func (s *Service) FindPeopleByName(ctx context.Context, substr string) ([]*models.Person, error) {
	ctx, span := s.tracer.Start(ctx, "person.find_by_name")
	defer span.End()

	people, err := s.people.FindByNameContains(ctx, substr)
	s.record(ctx, "find_by_name", "query", substr, "count", len(people))
	return people, err
}

// personAttribute tags a span or log entry with p's national ID, or an empty
// ID when p is nil.
func personAttribute(p *models.Person) attribute.KeyValue {
	if p == nil {
		return attribute.String("national_id", "")
	}
	return attribute.String("national_id", p.NationalID.String())
}

func (s *Service) record(ctx context.Context, operation string, attributes ...any) {
	if s.logger != nil {
		args := append([]any{"operation", operation}, attributes...)
		s.logger.DebugContext(ctx, "person store call", args...)
	}
	if s.metrics != nil {
		s.metrics.IncrementOperation(operation)
	}
}

func (s *Service) refreshStored(ctx context.Context) {
	if s.metrics == nil {
		return
	}
	n, err := s.people.Count(ctx)
	if err != nil {
		return
	}
	s.metrics.SetStored(n)
}
