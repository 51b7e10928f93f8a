package usecase

import (
	"context"
	"testing"

	"medicit-backend/internal/delivery/dto"
	"medicit-backend/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeModuleCache struct {
	modules     []entity.Module
	warm        bool
	sets        int
	invalidated int
}

func (f *fakeModuleCache) Get(ctx context.Context) ([]entity.Module, bool) {
	return f.modules, f.warm
}
func (f *fakeModuleCache) Set(ctx context.Context, modules []entity.Module) {
	f.modules = modules
	f.warm = true
	f.sets++
}
func (f *fakeModuleCache) Invalidate(ctx context.Context) {
	f.modules = nil
	f.warm = false
	f.invalidated++
}

func TestModuleGetAll_ColdCacheFallsBackToStoreAndWarmsIt(t *testing.T) {
	moduleRepo := &fakeModuleRepo{modules: map[int]*entity.Module{
		10: {ID: 10, Name: "citas"},
	}}
	cache := &fakeModuleCache{}
	uc := NewModuleUsecase(nil, testLogger(), moduleRepo, cache)

	modules, err := uc.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, modules, 1)
	assert.Equal(t, 1, cache.sets)

	// Second read is served from the cache.
	modules, err = uc.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, modules, 1)
	assert.Equal(t, 1, cache.sets)
}

func TestModuleWrites_InvalidateCache(t *testing.T) {
	moduleRepo := &fakeModuleRepo{modules: map[int]*entity.Module{
		10: {ID: 10, Name: "citas"},
	}}
	cache := &fakeModuleCache{warm: true}
	uc := NewModuleUsecase(nil, testLogger(), moduleRepo, cache)

	_, err := uc.Create(context.Background(), &dto.ModuleRequest{Name: "expedientes", Description: "Expedientes clinicos"})
	require.NoError(t, err)
	assert.Equal(t, 1, cache.invalidated)

	_, err = uc.Update(context.Background(), 10, &dto.ModuleRequest{Name: "citas", Description: "Citas medicas"})
	require.NoError(t, err)
	assert.Equal(t, 2, cache.invalidated)

	require.NoError(t, uc.Delete(context.Background(), 10))
	assert.Equal(t, 3, cache.invalidated)
}

func TestModuleGetByID_NotFound(t *testing.T) {
	uc := NewModuleUsecase(nil, testLogger(), &fakeModuleRepo{modules: map[int]*entity.Module{}}, &fakeModuleCache{})

	_, err := uc.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrModuleNotFound)
}
