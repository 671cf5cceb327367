package usecase

import (
	"context"
	"testing"

	"transfer-booking/internal/data/entity"
	"transfer-booking/internal/data/repository"
	"transfer-booking/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newRouteFixture(t *testing.T) (RouteService, *fakeRouteRepo, *fakeOptionRepo) {
	t.Helper()

	routes := &fakeRouteRepo{}
	options := &fakeOptionRepo{options: map[uuid.UUID][]*entity.VehicleOption{}}

	repo := &repository.Repository{
		Route:         routes,
		VehicleOption: options,
		RouteFAQ:      &fakeFAQRepo{faqs: map[uuid.UUID][]*entity.RouteFAQ{}},
		Activity:      &fakeActivityRepo{},
	}

	return NewRouteService(repo, zap.NewNop()), routes, options
}

type fakeFAQRepo struct {
	faqs map[uuid.UUID][]*entity.RouteFAQ
}

func (f *fakeFAQRepo) CreateBatch(ctx context.Context, faqs []*entity.RouteFAQ) error {
	for _, faq := range faqs {
		f.faqs[faq.RouteID] = append(f.faqs[faq.RouteID], faq)
	}
	return nil
}

func (f *fakeFAQRepo) FindByRouteID(ctx context.Context, routeID uuid.UUID) ([]*entity.RouteFAQ, error) {
	return f.faqs[routeID], nil
}

func (f *fakeFAQRepo) DeleteByRouteID(ctx context.Context, routeID uuid.UUID) error {
	delete(f.faqs, routeID)
	return nil
}

func validRouteRequest() *request.RouteRequest {
	return &request.RouteRequest{
		Slug:         "airport-ayia-napa",
		FromLocation: "Larnaca Airport",
		ToLocation:   "Ayia Napa",
		Active:       true,
		VehicleOptions: []request.VehicleOptionRequest{
			{VehicleClass: "sedan", FixedPrice: "€55", MaxPassengers: 4},
			{VehicleClass: "vclass", FixedPrice: "€90", MaxPassengers: 8},
		},
		FAQs: []request.RouteFAQRequest{
			{Question: "How long is the drive?", Answer: "About 40 minutes."},
		},
	}
}

func TestGetRouteList(t *testing.T) {
	service, routes, _ := newRouteFixture(t)
	ctx := context.Background()

	routes.routes = []*entity.Route{
		{Base: entity.Base{ID: uuid.New()}, Slug: "a-b", FromLocation: "A", ToLocation: "B", Active: true},
		{Base: entity.Base{ID: uuid.New()}, Slug: "c-d", FromLocation: "C", ToLocation: "D", Active: false},
	}

	items, err := service.GetRouteList(ctx)
	require.NoError(t, err)

	// Inactive routes stay out of the funnel selector.
	require.Len(t, items, 1)
	assert.Equal(t, "a-b", items[0].ID)
	assert.Equal(t, "A → B", items[0].Title)
}

func TestCreateRoute(t *testing.T) {
	service, _, _ := newRouteFixture(t)
	ctx := context.Background()

	route, err := service.CreateRoute(ctx, validRouteRequest())
	require.NoError(t, err)

	assert.Equal(t, "airport-ayia-napa", route.Slug)
	assert.Equal(t, "Larnaca Airport → Ayia Napa", route.Title)
	require.Len(t, route.VehicleOptions, 2)
	assert.Equal(t, "€55", route.VehicleOptions[0].FixedPrice)
	require.Len(t, route.FAQs, 1)
}

func TestCreateRouteDuplicateSlug(t *testing.T) {
	service, _, _ := newRouteFixture(t)
	ctx := context.Background()

	_, err := service.CreateRoute(ctx, validRouteRequest())
	require.NoError(t, err)

	_, err = service.CreateRoute(ctx, validRouteRequest())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestCreateRouteBadPrice(t *testing.T) {
	service, _, _ := newRouteFixture(t)

	req := validRouteRequest()
	req.VehicleOptions[0].FixedPrice = "contact us"

	_, err := service.CreateRoute(context.Background(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestGetRouteBySlugHidesInactive(t *testing.T) {
	service, routes, _ := newRouteFixture(t)
	ctx := context.Background()

	routes.routes = []*entity.Route{
		{Base: entity.Base{ID: uuid.New()}, Slug: "a-b", FromLocation: "A", ToLocation: "B", Active: false},
	}

	_, err := service.GetRouteBySlug(ctx, "a-b")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
