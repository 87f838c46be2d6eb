package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/2beens/gymenergy/internal/middleware"
	"github.com/2beens/gymenergy/internal/telemetry/metrics"

	"github.com/go-redis/redis_rate/v9"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestRateLimit(t *testing.T) {
	testCases := []struct {
		name               string
		result             *redis_rate.Result
		err                error
		expectedStatusCode int
		expectNext         bool
		expectLimited      float64
	}{
		{
			name:               "Allowed",
			result:             &redis_rate.Result{Allowed: 1, Remaining: 9},
			expectedStatusCode: http.StatusOK,
			expectNext:         true,
		},
		{
			name:               "Limited",
			result:             &redis_rate.Result{Allowed: 0, RetryAfter: 3 * time.Second},
			expectedStatusCode: http.StatusTooManyRequests,
			expectLimited:      1,
		},
		{
			name:               "LimiterError",
			err:                errors.New("redis down"),
			expectedStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			limiter := NewMockRequestRateLimiter(ctrl)
			metricsManager := metrics.NewTestManager()

			limiter.EXPECT().
				Allow(gomock.Any(), "gymstats:83.12.53.65", redis_rate.PerMinute(10)).
				Return(tc.result, tc.err)

			nextCalled := false
			next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
				nextCalled = true
			})

			req := httptest.NewRequest("POST", "/gymstats/sets", nil)
			req.RemoteAddr = "83.12.53.65:2145"
			rr := httptest.NewRecorder()
			middleware.RateLimit(limiter, metricsManager, "gymstats", 10)(next).ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatusCode, rr.Code)
			assert.Equal(t, tc.expectNext, nextCalled)
			assert.Equal(t, tc.expectLimited, testutil.ToFloat64(metricsManager.CounterRateLimitedRequests))
		})
	}
}

func TestRateLimit_SkipsPreflight(t *testing.T) {
	ctrl := gomock.NewController(t)
	// no Allow call expected
	limiter := NewMockRequestRateLimiter(ctrl)

	nextCalled := false
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		nextCalled = true
	})

	rr := httptest.NewRecorder()
	middleware.RateLimit(limiter, nil, "gymstats", 10)(next).ServeHTTP(rr, httptest.NewRequest("OPTIONS", "/gymstats/sets", nil))
	assert.True(t, nextCalled)
}
