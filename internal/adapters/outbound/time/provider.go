package time

import (
	"context"
	"time"

	"github.com/cleitonmarx/symbiont-mcp-bridge/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
)

// CurrentTimeProvider is an implementation of domain.CurrentTimeProvider using the local wall clock.
// The chat prompt and tool execution timings read the time through it.
type CurrentTimeProvider struct {
	location *time.Location
}

// NewCurrentTimeProvider creates a provider reporting times in the given location.
// A nil location means time.Local.
func NewCurrentTimeProvider(location *time.Location) CurrentTimeProvider {
	return CurrentTimeProvider{location: location}
}

// Now returns the current time.
func (ts CurrentTimeProvider) Now() time.Time {
	if ts.location == nil {
		return time.Now()
	}
	return time.Now().In(ts.location)
}

// InitCurrentTimeProvider initializes the CurrentTimeProvider and registers it in the dependency container.
type InitCurrentTimeProvider struct {
	Location string `config:"TZ" default:"Local"`
}

// Initialize registers the CurrentTimeProvider in the dependency container.
func (its InitCurrentTimeProvider) Initialize(ctx context.Context) (context.Context, error) {
	location, err := time.LoadLocation(its.Location)
	if err != nil {
		return ctx, err
	}
	depend.Register[domain.CurrentTimeProvider](NewCurrentTimeProvider(location))
	return ctx, nil
}
