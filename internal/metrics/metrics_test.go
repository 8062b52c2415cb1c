package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveSave(t *testing.T) {
	initialFailures := testutil.ToFloat64(StoreSaveFailures.WithLabelValues("vehicles"))

	ObserveSave("vehicles", 0.002, nil)
	assert.Equal(t, initialFailures, testutil.ToFloat64(StoreSaveFailures.WithLabelValues("vehicles")),
		"successful save should not count as failure")

	ObserveSave("vehicles", 0.002, errors.New("disk full"))
	assert.Equal(t, initialFailures+1, testutil.ToFloat64(StoreSaveFailures.WithLabelValues("vehicles")),
		"failed save should increment failures")

	count := testutil.CollectAndCount(StoreSaveDuration)
	assert.GreaterOrEqual(t, count, 1, "StoreSaveDuration should have observations")
}

func TestSetRecordCount(t *testing.T) {
	SetRecordCount("dealers", 3)
	assert.Equal(t, float64(3), testutil.ToFloat64(StoreRecords.WithLabelValues("dealers")))

	SetRecordCount("dealers", 2)
	assert.Equal(t, float64(2), testutil.ToFloat64(StoreRecords.WithLabelValues("dealers")))
}

func TestObserveUploads(t *testing.T) {
	initialAccepted := testutil.ToFloat64(UploadsTotal.WithLabelValues(ResultAccepted))
	initialRejected := testutil.ToFloat64(UploadsTotal.WithLabelValues(ResultRejected))

	ObserveUploads(ResultAccepted, 3)
	ObserveUploads(ResultRejected, 0)

	assert.Equal(t, initialAccepted+3, testutil.ToFloat64(UploadsTotal.WithLabelValues(ResultAccepted)))
	assert.Equal(t, initialRejected, testutil.ToFloat64(UploadsTotal.WithLabelValues(ResultRejected)),
		"zero count should not change the counter")
}

func TestObserveLogin(t *testing.T) {
	initialSuccess := testutil.ToFloat64(AdminLoginsTotal.WithLabelValues(ResultSuccess))
	initialFailure := testutil.ToFloat64(AdminLoginsTotal.WithLabelValues(ResultFailure))

	ObserveLogin(true)
	ObserveLogin(false)
	ObserveLogin(false)

	assert.Equal(t, initialSuccess+1, testutil.ToFloat64(AdminLoginsTotal.WithLabelValues(ResultSuccess)))
	assert.Equal(t, initialFailure+2, testutil.ToFloat64(AdminLoginsTotal.WithLabelValues(ResultFailure)))
}

func TestHTTPMetricsExist(t *testing.T) {
	assert.NotNil(t, HTTPRequestsTotal)
	assert.NotNil(t, HTTPRequestDuration)
	assert.NotNil(t, HTTPRequestsInFlight)

	initialRequests := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/api/cars", "200"))
	HTTPRequestsTotal.WithLabelValues("GET", "/api/cars", "200").Inc()
	newRequests := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/api/cars", "200"))
	assert.Equal(t, initialRequests+1, newRequests)
}

func TestRateLimitedCounter(t *testing.T) {
	initial := testutil.ToFloat64(RateLimitedTotal.WithLabelValues("login"))
	RateLimitedTotal.WithLabelValues("login").Inc()
	assert.Equal(t, initial+1, testutil.ToFloat64(RateLimitedTotal.WithLabelValues("login")))
}

func TestHTTPRequestsInFlightGauge(t *testing.T) {
	initial := testutil.ToFloat64(HTTPRequestsInFlight)

	HTTPRequestsInFlight.Inc()
	HTTPRequestsInFlight.Inc()
	assert.Equal(t, initial+2, testutil.ToFloat64(HTTPRequestsInFlight), "In-flight should be initial+2")

	HTTPRequestsInFlight.Dec()
	HTTPRequestsInFlight.Dec()
	assert.Equal(t, initial, testutil.ToFloat64(HTTPRequestsInFlight), "In-flight should return to initial")
}

func TestTimerObserveDuration(t *testing.T) {
	timer := NewTimer()

	time.Sleep(20 * time.Millisecond)

	testHistogram := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "test_timer_duration_histogram",
		Help:    "Test histogram for timer duration",
		Buckets: []float64{.01, .05, .1, .5, 1},
	})
	prometheus.MustRegister(testHistogram)
	defer prometheus.Unregister(testHistogram)

	timer.ObserveDuration(testHistogram)

	count := testutil.CollectAndCount(testHistogram)
	assert.Equal(t, 1, count, "Histogram should have exactly one observation")
	assert.GreaterOrEqual(t, timer.Seconds(), 0.02)
}

func TestPoolStatsCollectorStartStop(t *testing.T) {
	mockProvider := &mockPoolStatsProvider{
		totalConns:    10,
		idleConns:     5,
		acquiredConns: 5,
	}

	collector := NewPoolStatsCollectorWithProvider(mockProvider)
	collector.Start(10 * time.Millisecond)

	time.Sleep(30 * time.Millisecond)

	assert.Equal(t, float64(10), testutil.ToFloat64(DBConnectionPoolSize.WithLabelValues("total")))
	assert.Equal(t, float64(5), testutil.ToFloat64(DBConnectionPoolSize.WithLabelValues("idle")))
	assert.Equal(t, float64(5), testutil.ToFloat64(DBConnectionPoolSize.WithLabelValues("in_use")))

	collector.Stop()
}

// mockPoolStats implements PoolStats for testing
type mockPoolStats struct {
	total    int32
	idle     int32
	acquired int32
}

func (m *mockPoolStats) TotalConns() int32    { return m.total }
func (m *mockPoolStats) IdleConns() int32     { return m.idle }
func (m *mockPoolStats) AcquiredConns() int32 { return m.acquired }

// mockPoolStatsProvider implements PoolStatsProvider for testing
type mockPoolStatsProvider struct {
	totalConns    int32
	idleConns     int32
	acquiredConns int32
}

func (m *mockPoolStatsProvider) Stat() PoolStats {
	return &mockPoolStats{
		total:    m.totalConns,
		idle:     m.idleConns,
		acquired: m.acquiredConns,
	}
}
