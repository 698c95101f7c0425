package service

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks PersonStore

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/mock/gomock"

	"people/internal/person/metrics"
	"people/internal/person/models"
	"people/internal/person/service/mocks"
	personstore "people/internal/person/store/person"
	id "people/pkg/domain"
	"people/pkg/platform/sentinel"
)

type ServiceSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockStore *mocks.MockPersonStore
	service   *Service
}

func (s *ServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockStore = mocks.NewMockPersonStore(s.ctrl)
	s.service = New(s.mockStore)
}

func (s *ServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

// TestForwarding verifies every operation reaches the store with identical
// arguments and returns the store's result untouched.
func (s *ServiceSuite) TestForwarding() {
	ctx := context.Background()
	humberto := models.NewPerson("Humberto", "12345678900", 70, 1.75)
	maria := models.NewPerson("Maria", "98765432100", 60, 1.65)
	people := []*models.Person{humberto, maria}

	s.Run("add", func() {
		s.mockStore.EXPECT().Add(gomock.Any(), humberto).Return(nil)
		s.Require().NoError(s.service.AddPerson(ctx, humberto))
	})

	s.Run("update", func() {
		s.mockStore.EXPECT().Update(gomock.Any(), maria).Return(nil)
		s.Require().NoError(s.service.UpdatePerson(ctx, maria))
	})

	s.Run("remove", func() {
		s.mockStore.EXPECT().Remove(gomock.Any(), id.NationalID("98765432100")).Return(nil)
		s.Require().NoError(s.service.RemovePerson(ctx, "98765432100"))
	})

	s.Run("find by id returns the same pointer", func() {
		s.mockStore.EXPECT().FindByID(gomock.Any(), id.NationalID("12345678900")).Return(humberto, nil)
		got, err := s.service.FindPersonByID(ctx, "12345678900")
		s.Require().NoError(err)
		s.Same(humberto, got)
	})

	s.Run("find by id passes not found through", func() {
		s.mockStore.EXPECT().FindByID(gomock.Any(), id.NationalID("0")).Return(nil, sentinel.ErrNotFound)
		got, err := s.service.FindPersonByID(ctx, "0")
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
		s.Nil(got)
	})

	s.Run("find all", func() {
		s.mockStore.EXPECT().FindAll(gomock.Any()).Return(people, nil)
		got, err := s.service.FindAllPeople(ctx)
		s.Require().NoError(err)
		s.Equal(people, got)
	})

	s.Run("find by bmi range", func() {
		s.mockStore.EXPECT().FindByBMIRange(gomock.Any(), 18.0, 24.0).Return(people, nil)
		got, err := s.service.FindPeopleByBMIRange(ctx, 18, 24)
		s.Require().NoError(err)
		s.Equal(people, got)
	})

	s.Run("find by name", func() {
		s.mockStore.EXPECT().FindByNameContains(gomock.Any(), "Humberto").Return([]*models.Person{humberto}, nil)
		got, err := s.service.FindPeopleByName(ctx, "Humberto")
		s.Require().NoError(err)
		s.Equal([]*models.Person{humberto}, got)
	})

	s.Run("nil person is forwarded without panicking", func() {
		s.mockStore.EXPECT().Add(gomock.Any(), gomock.Nil()).Return(nil)
		s.mockStore.EXPECT().Update(gomock.Any(), gomock.Nil()).Return(nil)
		s.NotPanics(func() {
			s.Require().NoError(s.service.AddPerson(ctx, nil))
			s.Require().NoError(s.service.UpdatePerson(ctx, nil))
		})
	})

	s.Run("store errors pass through", func() {
		s.mockStore.EXPECT().Add(gomock.Any(), maria).Return(assert.AnError)
		s.Require().ErrorIs(s.service.AddPerson(ctx, maria), assert.AnError)
	})
}

func TestService_Observability(t *testing.T) {
	ctx := context.Background()
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	svc := New(personstore.NewInMemory(), WithMetrics(m), WithLogger(logger))

	assert.NoError(t, svc.AddPerson(ctx, models.NewPerson("Humberto", "12345678900", 70, 1.75)))
	assert.NoError(t, svc.AddPerson(ctx, models.NewPerson("Maria", "98765432100", 60, 1.65)))
	assert.NoError(t, svc.RemovePerson(ctx, "98765432100"))
	_, err := svc.FindPersonByID(ctx, "98765432100")
	assert.ErrorIs(t, err, sentinel.ErrNotFound)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Operations.WithLabelValues("add")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Operations.WithLabelValues("remove")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.LookupMisses))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Stored))
	assert.Contains(t, logs.String(), "operation=find_by_id")
}

func TestService_Tracing(t *testing.T) {
	ctx := context.Background()
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = tp.Shutdown(ctx) })

	svc := New(personstore.NewInMemory(), WithTracer(tp.Tracer("people/service")))

	require.NoError(t, svc.AddPerson(ctx, models.NewPerson("Humberto", "12345678900", 70, 1.75)))
	_, err := svc.FindPersonByID(ctx, "12345678900")
	require.NoError(t, err)
	_, err = svc.FindPeopleByBMIRange(ctx, 18, 24)
	require.NoError(t, err)

	ended := recorder.Ended()
	require.Len(t, ended, 3)

	names := make([]string, 0, len(ended))
	for _, span := range ended {
		names = append(names, span.Name())
	}
	assert.Equal(t, []string{"person.add", "person.find_by_id", "person.find_by_bmi_range"}, names)

	assert.Contains(t, ended[0].Attributes(), attribute.String("national_id", "12345678900"))
	assert.Contains(t, ended[1].Attributes(), attribute.String("national_id", "12345678900"))
	assert.Contains(t, ended[2].Attributes(), attribute.Float64("bmi_min", 18))
	assert.Contains(t, ended[2].Attributes(), attribute.Float64("bmi_max", 24))
}
