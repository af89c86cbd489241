package queries_test

import (
	"testing"

	"logistics/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetCarrierStatsQuery_Valid(t *testing.T) {
	require.NoError(t, queries.NewGetCarrierStatsQuery().Validate())
}

func TestGetCarrierStatsQuery_NotConstructedViaConstructor(t *testing.T) {
	err := queries.GetCarrierStatsQuery{}.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetCarrierStatsQueryIsNotConstructed)
}
