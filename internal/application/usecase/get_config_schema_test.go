package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/splitview/internal/application/port/mocks"
	"github.com/bnema/splitview/internal/application/usecase"
	"github.com/bnema/splitview/internal/domain/entity"
)

func schemaKeys() []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "layout.zone_margin",
			Type:        "float64",
			Default:     "0.25",
			Description: "Edge band width as a fraction of the pane's shorter side",
			Range:       "0.01-0.5",
			Section:     "Layout",
		},
		{
			Key:         "layout.collapse_policy",
			Type:        "string",
			Default:     "proportional",
			Description: "How survivors absorb a closed pane's space",
			Values:      []string{"proportional", "equal"},
			Section:     "Layout",
		},
		{
			Key:         "logging.level",
			Type:        "string",
			Default:     "info",
			Description: "Log verbosity level",
			Values:      []string{"trace", "debug", "info", "warn", "error"},
			Section:     "Logging",
		},
	}
}

func TestGetConfigSchemaUseCase_Execute(t *testing.T) {
	t.Run("returns schema keys from provider", func(t *testing.T) {
		provider := mocks.NewMockConfigSchemaProvider(t)
		provider.EXPECT().GetSchema().Return(schemaKeys())

		result, err := usecase.NewGetConfigSchemaUseCase(provider).
			Execute(context.Background(), usecase.GetConfigSchemaInput{})

		require.NoError(t, err)
		require.Len(t, result.Keys, 3)
		assert.Equal(t, "layout.zone_margin", result.Keys[0].Key)
		assert.Equal(t, "0.01-0.5", result.Keys[0].Range)
		assert.Equal(t, []string{"proportional", "equal"}, result.Keys[1].Values)
	})

	t.Run("filters by section", func(t *testing.T) {
		provider := mocks.NewMockConfigSchemaProvider(t)
		provider.EXPECT().GetSchema().Return(schemaKeys())

		result, err := usecase.NewGetConfigSchemaUseCase(provider).
			Execute(context.Background(), usecase.GetConfigSchemaInput{Section: "logging"})

		require.NoError(t, err)
		require.Len(t, result.Keys, 1)
		assert.Equal(t, "logging.level", result.Keys[0].Key)
	})

	t.Run("returns empty slice when no keys", func(t *testing.T) {
		provider := mocks.NewMockConfigSchemaProvider(t)
		provider.EXPECT().GetSchema().Return([]entity.ConfigKeyInfo{})

		result, err := usecase.NewGetConfigSchemaUseCase(provider).
			Execute(context.Background(), usecase.GetConfigSchemaInput{})

		require.NoError(t, err)
		assert.Empty(t, result.Keys)
	})
}
