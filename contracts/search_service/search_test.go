package search_service

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soedr/google-flights-api/pkg/qpx"
)

func TestSearchRequest_Decode(t *testing.T) {
	payload := `{
		"origin": "LHR",
		"destination": "JFK",
		"date": 1481673600000,
		"max_price": "GBP900",
		"adult_count": 2,
		"permitted_carrier": ["BA"],
		"refundable": false
	}`

	var req SearchRequest
	require.NoError(t, json.Unmarshal([]byte(payload), &req))

	q := SearchRequestToQuery(&req)
	assert.Equal(t, "LHR", q.Origin)
	assert.Equal(t, "JFK", q.Destination)
	assert.Equal(t, qpx.DateMillis(1481673600000), q.Date)
	assert.Equal(t, "GBP900", q.MaxPrice)
	assert.Equal(t, 2, *q.AdultCount)
	assert.Equal(t, []string{"BA"}, q.PermittedCarrier)
	require.NotNil(t, q.Refundable)
	assert.False(t, *q.Refundable)
	assert.Nil(t, q.Solutions)
}
