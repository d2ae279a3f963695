package contract

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/tjo-photometry/colorcurve/schema"
)

// MockSeriesLoader is a mock implementation of SeriesLoader for testing.
type MockSeriesLoader struct {
	mock.Mock
}

var _ SeriesLoader = &MockSeriesLoader{} // Compile-time check

// LoadSeries implements the SeriesLoader interface.
func (m *MockSeriesLoader) LoadSeries(ctx context.Context, path string, band schema.Band) (schema.Series, error) {
	args := m.Called(ctx, path, band)
	series, _ := args.Get(0).(schema.Series)
	return series, args.Error(1)
}
