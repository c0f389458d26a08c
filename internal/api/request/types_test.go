package request

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerIDAcceptsStringAndInteger(t *testing.T) {
	var req FightRequest

	require.NoError(t, json.Unmarshal([]byte(`{"telegram_id":"test_user","hit":"head"}`), &req))
	assert.Equal(t, PlayerID("test_user"), req.TelegramID)

	require.NoError(t, json.Unmarshal([]byte(`{"telegram_id":123456789}`), &req))
	assert.Equal(t, PlayerID("123456789"), req.TelegramID)
}

func TestPlayerIDNullLeavesEmpty(t *testing.T) {
	var req FightRequest
	require.NoError(t, json.Unmarshal([]byte(`{"telegram_id":null}`), &req))
	assert.Equal(t, PlayerID(""), req.TelegramID)
}

func TestPlayerIDRejectsOtherTypes(t *testing.T) {
	for _, body := range []string{
		`{"telegram_id":1.5}`,
		`{"telegram_id":true}`,
		`{"telegram_id":{"id":1}}`,
	} {
		var req FightRequest
		assert.Error(t, json.Unmarshal([]byte(body), &req), body)
	}
}

func TestAllocationKeptRaw(t *testing.T) {
	var req CreateProfileRequest
	require.NoError(t, json.Unmarshal([]byte(`{"extra_points":{"hp":1,"power":-2}}`), &req))
	assert.Equal(t, 1.0, req.ExtraPoints["hp"])
	assert.Equal(t, -2.0, req.ExtraPoints["power"])

	var missing CreateProfileRequest
	require.NoError(t, json.Unmarshal([]byte(`{"telegram_id":"u1"}`), &missing))
	assert.Nil(t, missing.ExtraPoints)
}
