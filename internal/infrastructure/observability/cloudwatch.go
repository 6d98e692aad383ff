package observability

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
	"go.uber.org/zap"
)

// CloudWatchAPI is the subset of *cloudwatch.Client used here.
type CloudWatchAPI interface {
	PutMetricData(ctx context.Context, params *cloudwatch.PutMetricDataInput, optFns ...func(*cloudwatch.Options)) (*cloudwatch.PutMetricDataOutput, error)
}

type dependencyStats struct {
	calls  int
	errors int
	sum    float64
	min    float64
	max    float64
}

// CloudWatchMetrics pushes counters from the stream worker, where nothing scrapes /metrics.
// Dependency timings are buffered and sent with the next batch's counts.
type CloudWatchMetrics struct {
	client    CloudWatchAPI
	namespace string
	function  string
	logger    *zap.Logger
	now       func() time.Time

	mu   sync.Mutex
	deps map[string]*dependencyStats
}

func NewCloudWatchMetrics(client CloudWatchAPI, namespace, function string, logger *zap.Logger) *CloudWatchMetrics {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CloudWatchMetrics{
		client:    client,
		namespace: namespace,
		function:  function,
		logger:    logger,
		now:       time.Now,
		deps:      map[string]*dependencyStats{},
	}
}

// RecordDependencyCall buffers one outbound call until the next PutCounts.
func (m *CloudWatchMetrics) RecordDependencyCall(dependency string, d time.Duration, err error) {
	if m == nil {
		return
	}
	ms := float64(d) / float64(time.Millisecond)
	m.mu.Lock()
	defer m.mu.Unlock()
	st, ok := m.deps[dependency]
	if !ok {
		st = &dependencyStats{min: ms, max: ms}
		m.deps[dependency] = st
	}
	st.calls++
	if err != nil {
		st.errors++
	}
	st.sum += ms
	st.min = min(st.min, ms)
	st.max = max(st.max, ms)
}

// PutCounts publishes each non-zero count as one datum, plus the buffered dependency
// statistics. Failures are logged, not returned: losing a metric must never fail a batch.
func (m *CloudWatchMetrics) PutCounts(ctx context.Context, counts map[string]int) {
	if m == nil || m.client == nil {
		return
	}
	ts := m.now()
	function := types.Dimension{Name: aws.String("FunctionName"), Value: aws.String(m.function)}
	data := make([]types.MetricDatum, 0, len(counts))
	for name, n := range counts {
		if n == 0 {
			continue
		}
		data = append(data, types.MetricDatum{
			MetricName: aws.String(name),
			Value:      aws.Float64(float64(n)),
			Unit:       types.StandardUnitCount,
			Timestamp:  aws.Time(ts),
			Dimensions: []types.Dimension{function},
		})
	}
	data = append(data, m.drainDependencies(ts, function)...)
	if len(data) == 0 {
		return
	}
	if _, err := m.client.PutMetricData(ctx, &cloudwatch.PutMetricDataInput{
		Namespace:  aws.String(m.namespace),
		MetricData: data,
	}); err != nil {
		m.logger.Warn("cloudwatch put failed", zap.String("namespace", m.namespace), zap.Error(err))
	}
}

func (m *CloudWatchMetrics) drainDependencies(ts time.Time, function types.Dimension) []types.MetricDatum {
	m.mu.Lock()
	deps := m.deps
	m.deps = map[string]*dependencyStats{}
	m.mu.Unlock()

	names := make([]string, 0, len(deps))
	for name := range deps {
		names = append(names, name)
	}
	sort.Strings(names)

	data := make([]types.MetricDatum, 0, 3*len(names))
	for _, name := range names {
		st := deps[name]
		dims := []types.Dimension{function, {Name: aws.String("Dependency"), Value: aws.String(name)}}
		data = append(data,
			types.MetricDatum{
				MetricName: aws.String("DependencyCalls"),
				Value:      aws.Float64(float64(st.calls)),
				Unit:       types.StandardUnitCount,
				Timestamp:  aws.Time(ts),
				Dimensions: dims,
			},
			types.MetricDatum{
				MetricName: aws.String("DependencyErrors"),
				Value:      aws.Float64(float64(st.errors)),
				Unit:       types.StandardUnitCount,
				Timestamp:  aws.Time(ts),
				Dimensions: dims,
			},
			types.MetricDatum{
				MetricName: aws.String("DependencyLatency"),
				StatisticValues: &types.StatisticSet{
					SampleCount: aws.Float64(float64(st.calls)),
					Sum:         aws.Float64(st.sum),
					Minimum:     aws.Float64(st.min),
					Maximum:     aws.Float64(st.max),
				},
				Unit:       types.StandardUnitMilliseconds,
				Timestamp:  aws.Time(ts),
				Dimensions: dims,
			},
		)
	}
	return data
}
