package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dumber-addons/internal/application/usecase"
	"github.com/bnema/dumber-addons/internal/domain/entity"
	"github.com/bnema/dumber-addons/internal/domain/repository"
	repomocks "github.com/bnema/dumber-addons/internal/domain/repository/mocks"
)

func TestManageAddonsUseCase_SetAllowedInPrivateBrowsing(t *testing.T) {
	t.Run("reports updated addon on success", func(t *testing.T) {
		repo := repomocks.NewMockAddonRepository(t)
		addon := entity.Addon{ID: "a@example.com", Name: "A"}
		repo.EXPECT().SetAllowedInPrivateBrowsing(mock.Anything, addon, true).Return(nil).Once()

		uc := usecase.NewManageAddonsUseCase(repo)

		var got *entity.Addon
		uc.SetAllowedInPrivateBrowsing(context.Background(), addon, true,
			func(a entity.Addon) { got = &a },
			func(err error) { t.Fatalf("unexpected error: %v", err) },
		)

		require.NotNil(t, got)
		assert.True(t, got.AllowedInPrivateBrowsing)
		assert.Equal(t, "a@example.com", got.ID)
	})

	t.Run("reports error on failure", func(t *testing.T) {
		repo := repomocks.NewMockAddonRepository(t)
		boom := errors.New("disk full")
		repo.EXPECT().SetAllowedInPrivateBrowsing(mock.Anything, mock.Anything, true).Return(boom).Once()

		uc := usecase.NewManageAddonsUseCase(repo)

		var gotErr error
		uc.SetAllowedInPrivateBrowsing(context.Background(), entity.Addon{ID: "a"}, true,
			func(entity.Addon) { t.Fatal("onSuccess must not be called") },
			func(err error) { gotErr = err },
		)

		assert.ErrorIs(t, gotErr, boom)
	})

	t.Run("nil callbacks are allowed", func(t *testing.T) {
		repo := repomocks.NewMockAddonRepository(t)
		repo.EXPECT().SetAllowedInPrivateBrowsing(mock.Anything, mock.Anything, false).Return(nil).Once()

		uc := usecase.NewManageAddonsUseCase(repo)
		assert.NotPanics(t, func() {
			uc.SetAllowedInPrivateBrowsing(context.Background(), entity.Addon{ID: "a"}, false, nil, nil)
		})
	})
}

func TestManageAddonsUseCase_FetchMetadata(t *testing.T) {
	t.Run("returns stored metadata", func(t *testing.T) {
		repo := repomocks.NewMockAddonRepository(t)
		repo.EXPECT().Get(mock.Anything, "a").Return(&repository.AddonRecord{
			ID:       "a",
			Metadata: entity.AddonMetadata{Summary: "does things", Author: "Jo"},
		}, nil).Once()

		uc := usecase.NewManageAddonsUseCase(repo)

		var got entity.AddonMetadata
		calls := 0
		uc.FetchMetadata(context.Background(), entity.Addon{ID: "a"}, func(m entity.AddonMetadata) {
			calls++
			got = m
		})

		assert.Equal(t, 1, calls)
		assert.Equal(t, "a", got.AddonID)
		assert.Equal(t, "does things", got.Summary)
		assert.Equal(t, "Jo", got.Author)
	})

	t.Run("skips callback when not found", func(t *testing.T) {
		repo := repomocks.NewMockAddonRepository(t)
		repo.EXPECT().Get(mock.Anything, "a").Return(nil, repository.ErrAddonNotFound).Once()

		uc := usecase.NewManageAddonsUseCase(repo)
		uc.FetchMetadata(context.Background(), entity.Addon{ID: "a"}, func(entity.AddonMetadata) {
			t.Fatal("onSuccess must not be called")
		})
	})

	t.Run("skips callback on repository error", func(t *testing.T) {
		repo := repomocks.NewMockAddonRepository(t)
		repo.EXPECT().Get(mock.Anything, "a").Return(nil, errors.New("locked")).Once()

		uc := usecase.NewManageAddonsUseCase(repo)
		uc.FetchMetadata(context.Background(), entity.Addon{ID: "a"}, func(entity.AddonMetadata) {
			t.Fatal("onSuccess must not be called")
		})
	})
}

func TestManageAddonsUseCase_RecordInstalled(t *testing.T) {
	t.Run("creates new record", func(t *testing.T) {
		repo := repomocks.NewMockAddonRepository(t)
		repo.EXPECT().Get(mock.Anything, "a").Return(nil, repository.ErrAddonNotFound).Once()
		repo.EXPECT().Save(mock.Anything, mock.MatchedBy(func(r *repository.AddonRecord) bool {
			return r.ID == "a" && r.Name == "A" && r.Metadata.AddonID == "a" &&
				r.Metadata.Summary == "sum" && !r.AllowedInPrivateBrowsing
		})).Return(nil).Once()

		uc := usecase.NewManageAddonsUseCase(repo)
		err := uc.RecordInstalled(context.Background(),
			entity.Addon{ID: "a", Name: "A"},
			entity.AddonMetadata{Summary: "sum"},
		)
		require.NoError(t, err)
	})

	t.Run("keeps existing private browsing flag", func(t *testing.T) {
		repo := repomocks.NewMockAddonRepository(t)
		repo.EXPECT().Get(mock.Anything, "a").Return(&repository.AddonRecord{
			ID: "a", AllowedInPrivateBrowsing: true,
		}, nil).Once()
		repo.EXPECT().Save(mock.Anything, mock.MatchedBy(func(r *repository.AddonRecord) bool {
			return r.AllowedInPrivateBrowsing
		})).Return(nil).Once()

		uc := usecase.NewManageAddonsUseCase(repo)
		require.NoError(t, uc.RecordInstalled(context.Background(), entity.Addon{ID: "a"}, entity.AddonMetadata{}))
	})

	t.Run("propagates lookup errors", func(t *testing.T) {
		repo := repomocks.NewMockAddonRepository(t)
		repo.EXPECT().Get(mock.Anything, "a").Return(nil, errors.New("locked")).Once()

		uc := usecase.NewManageAddonsUseCase(repo)
		err := uc.RecordInstalled(context.Background(), entity.Addon{ID: "a"}, entity.AddonMetadata{})
		assert.Error(t, err)
	})
}

func TestManageAddonsUseCase_ListAllowedInPrivateBrowsing(t *testing.T) {
	repo := repomocks.NewMockAddonRepository(t)
	repo.EXPECT().ListAllowedInPrivateBrowsing(mock.Anything).Return([]*repository.AddonRecord{
		{ID: "a", Name: "A", Version: "1", AllowedInPrivateBrowsing: true},
		{ID: "b", Name: "B", Version: "2", AllowedInPrivateBrowsing: true},
	}, nil).Once()

	uc := usecase.NewManageAddonsUseCase(repo)
	addons, err := uc.ListAllowedInPrivateBrowsing(context.Background())

	require.NoError(t, err)
	require.Len(t, addons, 2)
	assert.Equal(t, "A", addons[0].Name)
	assert.True(t, addons[1].AllowedInPrivateBrowsing)
	assert.True(t, addons[1].Installed)
}
