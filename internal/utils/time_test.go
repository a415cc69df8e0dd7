package util_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	util "github.com/saulo-duarte/vicinato-api/internal/utils"
)

func TestTodayUsesApplicationZone(t *testing.T) {
	require.NoError(t, util.SetLocation("America/Sao_Paulo"))

	// 01:30 UTC on Jan 2nd is still Jan 1st in São Paulo (UTC-3).
	now := time.Date(2025, 1, 2, 1, 30, 0, 0, time.UTC)
	assert.Equal(t, "2025-01-01", util.Today(now).String())

	later := time.Date(2025, 1, 2, 3, 30, 0, 0, time.UTC)
	assert.Equal(t, "2025-01-02", util.Today(later).String())
}

func TestDateComparison(t *testing.T) {
	today := util.MustParseDate("2025-03-10")

	assert.True(t, util.MustParseDate("2025-03-11").After(today))
	assert.False(t, util.MustParseDate("2025-03-10").After(today))
	assert.True(t, util.MustParseDate("2025-03-09").Before(today))
	assert.True(t, today.AddDays(7).Equal(util.MustParseDate("2025-03-17")))
}

func TestDateJSON(t *testing.T) {
	var payload struct {
		Date util.Date `json:"date"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"date":"2999-01-01"}`), &payload))
	assert.Equal(t, "2999-01-01", payload.Date.String())

	out, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"2999-01-01"}`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`{"date":"01/01/2999"}`), &payload))
}

func TestDateScan(t *testing.T) {
	var d util.Date

	require.NoError(t, d.Scan("2025-05-04"))
	assert.Equal(t, "2025-05-04", d.String())

	require.NoError(t, d.Scan([]byte("2025-05-05T00:00:00Z")))
	assert.Equal(t, "2025-05-05", d.String())

	require.NoError(t, d.Scan(time.Date(2025, 5, 6, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2025-05-06", d.String())

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())

	assert.Error(t, d.Scan(42))

	v, err := util.MustParseDate("2025-05-07").Value()
	require.NoError(t, err)
	assert.Equal(t, "2025-05-07", v)
}
