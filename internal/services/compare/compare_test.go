package services

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dataiq/storefront/internal/catalog"
)

func setupCompareService(t *testing.T) *CompareService {
	cat, err := catalog.Load()
	require.NoError(t, err)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewCompareService(cat, logger)
}

func TestCompareAdd(t *testing.T) {
	svc := setupCompareService(t)

	assert.True(t, svc.Add("visitor-1", "email-b2b-verified"))
	assert.True(t, svc.IsInCompare("visitor-1", "email-b2b-verified"))
	assert.Len(t, svc.List("visitor-1"), 1)
}

func TestCompareAddDuplicate(t *testing.T) {
	svc := setupCompareService(t)

	require.True(t, svc.Add("visitor-1", "email-b2b-verified"))
	assert.False(t, svc.Add("visitor-1", "email-b2b-verified"))
	assert.Len(t, svc.List("visitor-1"), 1)
}

func TestCompareAddUnknownProduct(t *testing.T) {
	svc := setupCompareService(t)

	assert.False(t, svc.Add("visitor-1", "no-such-product"))
	assert.Empty(t, svc.List("visitor-1"))
}

func TestCompareCapacity(t *testing.T) {
	svc := setupCompareService(t)

	require.True(t, svc.Add("visitor-1", "email-b2b-verified"))
	require.True(t, svc.Add("visitor-1", "postal-uk-business"))
	require.True(t, svc.Add("visitor-1", "healthcare-hcp"))
	assert.True(t, svc.IsMaxed("visitor-1"))

	// Четвертый продукт не помещается, список не меняется
	assert.False(t, svc.Add("visitor-1", "poi-locations"))
	assert.Len(t, svc.List("visitor-1"), 3)
}

func TestCompareRemoveFreesSlot(t *testing.T) {
	svc := setupCompareService(t)

	require.True(t, svc.Add("visitor-1", "email-b2b-verified"))
	require.True(t, svc.Add("visitor-1", "postal-uk-business"))
	require.True(t, svc.Add("visitor-1", "healthcare-hcp"))

	svc.Remove("visitor-1", "postal-uk-business")
	assert.False(t, svc.IsMaxed("visitor-1"))
	assert.True(t, svc.Add("visitor-1", "poi-locations"))
}

func TestCompareListKeepsInsertionOrder(t *testing.T) {
	svc := setupCompareService(t)

	require.True(t, svc.Add("visitor-1", "healthcare-hcp"))
	require.True(t, svc.Add("visitor-1", "email-b2b-verified"))

	list := svc.List("visitor-1")
	require.Len(t, list, 2)
	assert.Equal(t, "healthcare-hcp", list[0].ID)
	assert.Equal(t, "email-b2b-verified", list[1].ID)
}

func TestCompareClear(t *testing.T) {
	svc := setupCompareService(t)

	require.True(t, svc.Add("visitor-1", "email-b2b-verified"))
	svc.Clear("visitor-1")
	assert.Empty(t, svc.List("visitor-1"))
	assert.False(t, svc.IsInCompare("visitor-1", "email-b2b-verified"))
}

func TestCompareListsAreIsolatedPerVisitor(t *testing.T) {
	svc := setupCompareService(t)

	require.True(t, svc.Add("visitor-1", "email-b2b-verified"))
	assert.Empty(t, svc.List("visitor-2"))
	assert.True(t, svc.Add("visitor-2", "email-b2b-verified"))
}
