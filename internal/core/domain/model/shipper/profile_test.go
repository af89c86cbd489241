package shipper_test

import (
	"testing"

	"logistics/internal/core/domain/model/shipper"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProfile(t *testing.T) {
	p, err := shipper.NewProfile(" 株式会社サンプル ", "03-1234-5678", "100-0001", "東京都", "千代田区", "千代田1-1")

	require.NoError(t, err)
	assert.Equal(t, "株式会社サンプル", p.Name)

	_, err = shipper.NewProfile("", "", "100-0001", "東京都", "千代田区", "")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), "shipperName")
	assert.Contains(t, err.Error(), "shipperPhone")
	assert.Contains(t, err.Error(), "shipperAddress")
	assert.NotContains(t, err.Error(), "shipperCity")
}
