package hxattr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordResponse(t *testing.T) {
	t.Parallel()

	resp := Response{}.
		Trigger(Simple("reload"), Detailed("item:saved", map[string]int{"id": 3})).
		TriggerAfterSwap(Simple("swapped")).
		TriggerAfterSettle(Simple("url:sync")).
		Redirect("/done").
		Location(NewLocation("/next"))

	result, err := RecordResponse(resp)
	require.NoError(t, err)

	assert.Equal(t, []string{"reload", "item:saved"}, result.TriggeredEvents)
	assert.Equal(t, []string{"swapped"}, result.AfterSwapEvents)
	assert.Equal(t, []string{"url:sync"}, result.AfterSettleEvents)
	assert.True(t, result.HasEvent("item:saved"))
	assert.False(t, result.HasEvent("item"))
	assert.True(t, result.WasRedirected())
	assert.Equal(t, "/done", result.RedirectURL)
	assert.Equal(t, "/next", result.LocationHeader)
	assert.True(t, result.HasHeader(HeaderRedirect, "/done"))
	assert.Equal(t, "/next", result.GetHeader(HeaderLocation))
}

func TestRecordResponseEmpty(t *testing.T) {
	t.Parallel()

	result, err := RecordResponse(Response{})
	require.NoError(t, err)

	assert.Empty(t, result.TriggeredEvents)
	assert.False(t, result.WasRedirected())
}

func TestRecordResponseError(t *testing.T) {
	t.Parallel()

	_, err := RecordResponse(Response{}.Trigger(Detailed("bad", make(chan int))))
	assert.Error(t, err)
}
