package views

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatUSD(t *testing.T) {
	assert.Equal(t, "$0", FormatUSD(0))
	assert.Equal(t, "$999", FormatUSD(999.99))
	assert.Equal(t, "$1,000", FormatUSD(1000))
	assert.Equal(t, "$12,345", FormatUSD(12345.67))
	assert.Equal(t, "$1,234,567", FormatUSD(1234567))
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "62.5%", FormatPrice(0.625))
	assert.Equal(t, "0.0%", FormatPrice(0))
	assert.Equal(t, "100.0%", FormatPrice(1))
}

func TestTimeAgo(t *testing.T) {
	now := time.Unix(100_000, 0)

	assert.Equal(t, "45s ago", TimeAgo(now.Unix()-45, now))
	assert.Equal(t, "12m ago", TimeAgo(now.Unix()-12*60, now))
	assert.Equal(t, "3h ago", TimeAgo(now.Unix()-3*3600-10, now))
	assert.Equal(t, "2d ago", TimeAgo(now.Unix()-2*86400-10, now))
	assert.Equal(t, "0s ago", TimeAgo(now.Unix()+99, now), "future timestamps clamp to zero")
}

func TestFormatHours(t *testing.T) {
	assert.Equal(t, "5.5h", FormatHours(5.5))
	assert.Equal(t, "0.1h", FormatHours(0.1))
}
