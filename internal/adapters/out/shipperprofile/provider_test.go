package shipperprofile_test

import (
	"context"
	"testing"

	"logistics/internal/adapters/out/shipperprofile"
	"logistics/internal/core/domain/model/shipper"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStaticProvider(t *testing.T) {
	profile := shipper.Profile{
		Name:       "株式会社サンプル物流",
		Phone:      "03-1111-2222",
		ZipCode:    "135-0061",
		Prefecture: "東京都",
		City:       "江東区",
		Address:    "豊洲3-3-3",
	}

	provider, err := shipperprofile.NewStaticProvider(profile)
	require.NoError(t, err)

	got, err := provider.Get(t.Context())
	require.NoError(t, err)
	assert.Equal(t, profile, got)
}

func TestNewStaticProvider_IncompleteProfile(t *testing.T) {
	_, err := shipperprofile.NewStaticProvider(shipper.Profile{Name: "株式会社サンプル物流"})

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), "shipperPhone")
}

func TestStaticProvider_CancelledContext(t *testing.T) {
	provider, err := shipperprofile.NewStaticProvider(shipper.Profile{
		Name: "倉庫", Phone: "0120000000", ZipCode: "1000001", Prefecture: "東京都", City: "千代田区", Address: "1-1",
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err = provider.Get(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
