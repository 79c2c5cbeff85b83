package time

import (
	"context"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-mcp-bridge/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
)

func TestInitCurrentTimeProvider_Initialize(t *testing.T) {
	tests := map[string]struct {
		location  string
		expectErr bool
	}{
		"local": {location: "Local"},
		"utc":   {location: "UTC"},
		"bogus": {location: "Nowhere/Atlantis", expectErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			i := &InitCurrentTimeProvider{Location: tt.location}

			_, err := i.Initialize(context.Background())
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)

			_, err = depend.Resolve[domain.CurrentTimeProvider]()
			assert.NoError(t, err)
		})
	}
}

func TestCurrentTimeProvider_Now(t *testing.T) {
	p := NewCurrentTimeProvider(nil)
	assert.WithinDuration(t, time.Now(), p.Now(), time.Second)

	utc := NewCurrentTimeProvider(time.UTC)
	assert.Equal(t, time.UTC, utc.Now().Location())
}
