package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dataiq/storefront/internal/models"
)

type fakeStateStore struct {
	data map[string][]byte
}

func newFakeStateStore() *fakeStateStore {
	return &fakeStateStore{data: make(map[string][]byte)}
}

func (f *fakeStateStore) Get(_ context.Context, visitorUID, entry string, result any) (bool, error) {
	raw, ok := f.data[entry+":"+visitorUID]
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
	f.data[entry+":"+visitorUID] = raw
	return nil
}

func TestPrefsDefaults(t *testing.T) {
	svc := NewPrefsService(newFakeStateStore())

	prefs, err := svc.Prefs(context.Background(), "visitor-1")
	require.NoError(t, err)
	assert.Equal(t, "dark", prefs.Theme)
	assert.False(t, prefs.OnboardingDone)
}

func TestPrefsSaveAndLoad(t *testing.T) {
	svc := NewPrefsService(newFakeStateStore())

	saved := models.Prefs{Theme: "light", OnboardingDone: true}
	require.NoError(t, svc.Save(context.Background(), "visitor-1", saved))

	loaded, err := svc.Prefs(context.Background(), "visitor-1")
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}

func TestPrefsAreIsolatedPerVisitor(t *testing.T) {
	svc := NewPrefsService(newFakeStateStore())

	require.NoError(t, svc.Save(context.Background(), "visitor-1", models.Prefs{Theme: "light"}))

	other, err := svc.Prefs(context.Background(), "visitor-2")
	require.NoError(t, err)
	assert.Equal(t, models.DefaultPrefs(), other)
}
