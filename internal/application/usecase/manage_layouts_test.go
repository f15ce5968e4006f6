package usecase_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/splitview/internal/application/usecase"
	"github.com/bnema/splitview/internal/domain/entity"
	"github.com/bnema/splitview/internal/domain/repository"
	repomocks "github.com/bnema/splitview/internal/domain/repository/mocks"
)

func TestManageLayouts_List(t *testing.T) {
	layoutRepo := repomocks.NewMockLayoutRepository(t)
	want := []repository.LayoutSummary{{WindowID: "main", Version: 1, PaneCount: 2, UpdatedAt: time.Now()}}
	layoutRepo.EXPECT().ListLayouts(mock.Anything).Return(want, nil)

	got, err := usecase.NewManageLayoutsUseCase(layoutRepo).List(testContext())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestManageLayouts_GetMissing(t *testing.T) {
	layoutRepo := repomocks.NewMockLayoutRepository(t)
	layoutRepo.EXPECT().GetLayout(mock.Anything, entity.WindowID("gone")).Return(nil, nil)

	_, err := usecase.NewManageLayoutsUseCase(layoutRepo).Get(testContext(), "gone")
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestManageLayouts_Delete(t *testing.T) {
	layoutRepo := repomocks.NewMockLayoutRepository(t)
	layoutRepo.EXPECT().GetLayout(mock.Anything, entity.WindowID("main")).
		Return(&entity.LayoutSnapshot{WindowID: "main"}, nil)
	layoutRepo.EXPECT().DeleteLayout(mock.Anything, entity.WindowID("main")).Return(nil)

	require.NoError(t, usecase.NewManageLayoutsUseCase(layoutRepo).Delete(testContext(), "main"))
}

func TestManageLayouts_DeleteMissingSkipsRepository(t *testing.T) {
	layoutRepo := repomocks.NewMockLayoutRepository(t)
	layoutRepo.EXPECT().GetLayout(mock.Anything, entity.WindowID("gone")).Return(nil, nil)

	err := usecase.NewManageLayoutsUseCase(layoutRepo).Delete(testContext(), "gone")
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestManageLayouts_RepositoryErrorsWrapped(t *testing.T) {
	layoutRepo := repomocks.NewMockLayoutRepository(t)
	dbErr := errors.New("database is locked")
	layoutRepo.EXPECT().ListLayouts(mock.Anything).Return(nil, dbErr)

	_, err := usecase.NewManageLayoutsUseCase(layoutRepo).List(testContext())
	assert.ErrorIs(t, err, dbErr)
}
