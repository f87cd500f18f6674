package browser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// slowEvaluator simulates a page script that takes a while to return.
type slowEvaluator struct {
	delay time.Duration
}

func (s *slowEvaluator) Evaluate(expression string, arg ...interface{}) (interface{}, error) {
	time.Sleep(s.delay)
	return "late", nil
}

func TestEvaluateWithTimeoutReturnsInTime(t *testing.T) {
	page := &fakeEvaluator{results: []interface{}{map[string]interface{}{"answer": float64(42)}}}

	raw, err := evaluateWithTimeout(page, "() => ({answer: 42})", 500)
	require.NoError(t, err)
	assert.NotNil(t, raw)
	assert.Equal(t, 1, page.calls)
}

func TestEvaluateWithTimeoutExpires(t *testing.T) {
	page := &slowEvaluator{delay: 200 * time.Millisecond}

	_, err := evaluateWithTimeout(page, "() => 1", 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timed out after 10ms")
}

func TestEvaluateWithoutTimeoutWaits(t *testing.T) {
	page := &slowEvaluator{delay: 20 * time.Millisecond}

	raw, err := evaluateWithTimeout(page, "() => 1", 0)
	require.NoError(t, err)
	assert.Equal(t, "late", raw)
}
