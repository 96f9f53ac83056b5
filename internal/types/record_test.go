package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRecord_FirstLocation(t *testing.T) {
	rec := &Record{Locations: []string{"Mumbai", "Delhi"}}
	assert.Equal(t, "Mumbai", rec.FirstLocation())

	assert.Empty(t, (&Record{}).FirstLocation())
}

func TestRecord_Expired(t *testing.T) {
	now := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)

	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	assert.True(t, (&Record{ExpiresAt: &past}).Expired(now))
	assert.False(t, (&Record{ExpiresAt: &future}).Expired(now))
	assert.False(t, (&Record{}).Expired(now))
}
