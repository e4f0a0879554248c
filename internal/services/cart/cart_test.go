package services

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dataiq/storefront/internal/catalog"
	"github.com/dataiq/storefront/internal/models"
)

type fakeStateStore struct {
	data map[string][]byte
}

func newFakeStateStore() *fakeStateStore {
	return &fakeStateStore{data: make(map[string][]byte)}
}

func (f *fakeStateStore) key(visitorUID, entry string) string { return entry + ":" + visitorUID }

func (f *fakeStateStore) Get(_ context.Context, visitorUID, entry string, result any) (bool, error) {
	raw, ok := f.data[f.key(visitorUID, entry)]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, result); err != nil {
		return false, nil
	}
	return true, nil
}

func (f *fakeStateStore) Set(_ context.Context, visitorUID, entry string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.data[f.key(visitorUID, entry)] = raw
	return nil
}

func (f *fakeStateStore) Invalidate(_ context.Context, visitorUID, entry string) error {
	delete(f.data, f.key(visitorUID, entry))
	return nil
}

func setupCartService(t *testing.T) *CartService {
	cat, err := catalog.Load()
	require.NoError(t, err)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewCartService(newFakeStateStore(), cat, logger)
}

func TestCartEmptyByDefault(t *testing.T) {
	svc := setupCartService(t)

	cart, err := svc.Cart(context.Background(), "visitor-1")
	require.NoError(t, err)
	assert.Empty(t, cart)
}

func TestAddFillsNameAndPriceFromCatalog(t *testing.T) {
	svc := setupCartService(t)

	cart, err := svc.Add(context.Background(), "visitor-1", "email-b2b-verified", models.PlanBasic, 1)
	require.NoError(t, err)
	require.Len(t, cart, 1)

	product, ok := svc.catalog.Product("email-b2b-verified")
	require.True(t, ok)
	assert.Equal(t, product.Name, cart[0].ProductName)
	assert.Equal(t, product.Prices.Basic, cart[0].Price)
	assert.Equal(t, 1, cart[0].Quantity)
}

func TestAddMergesSameProductAndPlan(t *testing.T) {
	svc := setupCartService(t)

	_, err := svc.Add(context.Background(), "visitor-1", "email-b2b-verified", models.PlanBasic, 1)
	require.NoError(t, err)
	cart, err := svc.Add(context.Background(), "visitor-1", "email-b2b-verified", models.PlanBasic, 2)
	require.NoError(t, err)

	require.Len(t, cart, 1)
	assert.Equal(t, 3, cart[0].Quantity)
}

func TestAddSameProductDifferentPlan(t *testing.T) {
	svc := setupCartService(t)

	_, err := svc.Add(context.Background(), "visitor-1", "email-b2b-verified", models.PlanBasic, 1)
	require.NoError(t, err)
	cart, err := svc.Add(context.Background(), "visitor-1", "email-b2b-verified", models.PlanPremium, 1)
	require.NoError(t, err)

	require.Len(t, cart, 2)
	assert.NotEqual(t, cart[0].Price, cart[1].Price)
}

func TestAddUnknownProduct(t *testing.T) {
	svc := setupCartService(t)

	_, err := svc.Add(context.Background(), "visitor-1", "no-such-product", models.PlanBasic, 1)
	assert.True(t, errors.Is(err, ErrUnknownProduct))
}

func TestRemoveSinglePlan(t *testing.T) {
	svc := setupCartService(t)

	_, err := svc.Add(context.Background(), "visitor-1", "email-b2b-verified", models.PlanBasic, 1)
	require.NoError(t, err)
	_, err = svc.Add(context.Background(), "visitor-1", "email-b2b-verified", models.PlanPremium, 1)
	require.NoError(t, err)

	premium := models.PlanPremium
	cart, err := svc.Remove(context.Background(), "visitor-1", "email-b2b-verified", &premium)
	require.NoError(t, err)
	require.Len(t, cart, 1)
	assert.Equal(t, models.PlanBasic, cart[0].SelectedPlan)
}

func TestRemoveAllPlans(t *testing.T) {
	svc := setupCartService(t)

	_, err := svc.Add(context.Background(), "visitor-1", "email-b2b-verified", models.PlanBasic, 1)
	require.NoError(t, err)
	_, err = svc.Add(context.Background(), "visitor-1", "email-b2b-verified", models.PlanPremium, 1)
	require.NoError(t, err)

	cart, err := svc.Remove(context.Background(), "visitor-1", "email-b2b-verified", nil)
	require.NoError(t, err)
	assert.Empty(t, cart)
}

func TestClearIsIdempotent(t *testing.T) {
	svc := setupCartService(t)

	_, err := svc.Add(context.Background(), "visitor-1", "email-b2b-verified", models.PlanBasic, 1)
	require.NoError(t, err)

	require.NoError(t, svc.Clear(context.Background(), "visitor-1"))
	require.NoError(t, svc.Clear(context.Background(), "visitor-1"))

	cart, err := svc.Cart(context.Background(), "visitor-1")
	require.NoError(t, err)
	assert.Empty(t, cart)
}

func TestCartsAreIsolatedPerVisitor(t *testing.T) {
	svc := setupCartService(t)

	_, err := svc.Add(context.Background(), "visitor-1", "email-b2b-verified", models.PlanBasic, 1)
	require.NoError(t, err)

	cart, err := svc.Cart(context.Background(), "visitor-2")
	require.NoError(t, err)
	assert.Empty(t, cart)
}
