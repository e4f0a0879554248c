package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dataiq/storefront/internal/models"
)

type fakeCartProvider struct {
	carts map[string]models.Cart
}

func newFakeCartProvider() *fakeCartProvider {
	return &fakeCartProvider{carts: make(map[string]models.Cart)}
}

func (f *fakeCartProvider) Cart(_ context.Context, visitorUID string) (models.Cart, error) {
	return f.carts[visitorUID], nil
}

func (f *fakeCartProvider) Clear(_ context.Context, visitorUID string) error {
	f.carts[visitorUID] = models.Cart{}
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestProcessEmptyCart(t *testing.T) {
	svc := NewCheckoutService(newFakeCartProvider(), discardLogger(), 0, nil)

	order, err := svc.Process(context.Background(), "visitor-1", models.ContactDetails{})
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, ErrEmptyCart))
}

func TestProcessBuildsOrderAndClearsCart(t *testing.T) {
	carts := newFakeCartProvider()
	carts.carts["visitor-1"] = models.Cart{
		{ProductID: "a", SelectedPlan: models.PlanBasic, Price: 100, Quantity: 2},
		{ProductID: "b", SelectedPlan: models.PlanPremium, Price: 50, Quantity: 1},
	}

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := NewCheckoutService(carts, discardLogger(), 0, func() time.Time { return now })

	contact := models.ContactDetails{FullName: "Dana Reeve", Email: "dana@example.com", Company: "Acme"}
	order, err := svc.Process(context.Background(), "visitor-1", contact)
	require.NoError(t, err)
	require.NotNil(t, order)

	assert.NotEmpty(t, order.ID)
	assert.Len(t, order.Items, 2)
	assert.Equal(t, 250.0, order.TotalPrice)
	assert.Equal(t, 3, order.TotalCount)
	assert.Equal(t, contact, order.Contact)
	assert.Equal(t, now, order.CreatedAt)

	assert.Empty(t, carts.carts["visitor-1"])
}

func TestProcessGeneratesUniqueOrderIDs(t *testing.T) {
	carts := newFakeCartProvider()
	svc := NewCheckoutService(carts, discardLogger(), 0, nil)

	carts.carts["visitor-1"] = models.Cart{{ProductID: "a", SelectedPlan: models.PlanBasic, Price: 1, Quantity: 1}}
	first, err := svc.Process(context.Background(), "visitor-1", models.ContactDetails{})
	require.NoError(t, err)

	carts.carts["visitor-1"] = models.Cart{{ProductID: "a", SelectedPlan: models.PlanBasic, Price: 1, Quantity: 1}}
	second, err := svc.Process(context.Background(), "visitor-1", models.ContactDetails{})
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestProcessCanceledContextKeepsCart(t *testing.T) {
	carts := newFakeCartProvider()
	carts.carts["visitor-1"] = models.Cart{
		{ProductID: "a", SelectedPlan: models.PlanBasic, Price: 100, Quantity: 1},
	}
	svc := NewCheckoutService(carts, discardLogger(), time.Minute, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	order, err := svc.Process(ctx, "visitor-1", models.ContactDetails{})
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Len(t, carts.carts["visitor-1"], 1)
}
