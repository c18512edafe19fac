package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns every Prometheus collector of the portal.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	constLabels      map[string]string
	registry         prometheus.Registerer

	// HTTP
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Portal activity
	catalogRecords     *prometheus.GaugeVec
	filterQueries      *prometheus.CounterVec
	filterResults      *prometheus.HistogramVec
	filterEmptyResults *prometheus.CounterVec
	teamCodeChecks     *prometheus.CounterVec
	heroRotations      prometheus.Counter
	heroIndex          prometheus.Gauge
	wizardTransitions  *prometheus.CounterVec
	registrations      *prometheus.CounterVec
	submissions        *prometheus.CounterVec
	duplicateForms     *prometheus.CounterVec
	validationFailures *prometheus.CounterVec

	// Outbox queue
	queueSize              prometheus.Gauge
	queueCapacity          prometheus.Gauge
	queueUtilization       prometheus.Gauge
	queueEnqueued          prometheus.Counter
	queueDequeued          prometheus.Counter
	queueEnqueueErrors     prometheus.Counter
	queueProcessingLatency prometheus.Histogram

	// Outbox workers
	workerActiveCount       prometheus.Gauge
	workerProcessingLatency prometheus.Histogram
	workerErrors            prometheus.Counter
	outboxDeliveries        *prometheus.CounterVec
	outboxSize              prometheus.Gauge

	errorsByComponent *prometheus.CounterVec

	// System
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
}

var globalManager *Manager //nolint:gochecknoglobals // singleton used by the package-level recorders

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // registry served on /healthz

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a manager and registers its collectors.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "spithack",
		subsystem:        "portal",
		histogramBuckets: prometheus.DefBuckets,
		constLabels:      map[string]string{},
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) counterOpts(name, help string) prometheus.CounterOpts {
	return prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem, Name: name, Help: help, ConstLabels: m.constLabels,
	}
}

func (m *Manager) gaugeOpts(name, help string) prometheus.GaugeOpts {
	return prometheus.GaugeOpts{
		Namespace: m.namespace, Subsystem: m.subsystem, Name: name, Help: help, ConstLabels: m.constLabels,
	}
}

func (m *Manager) histogramOpts(name, help string, buckets []float64) prometheus.HistogramOpts {
	return prometheus.HistogramOpts{
		Namespace: m.namespace, Subsystem: m.subsystem, Name: name, Help: help, ConstLabels: m.constLabels, Buckets: buckets,
	}
}

func (m *Manager) initializeMetrics() { //nolint:funlen // one place for every collector
	auto := promauto.With(m.registry)

	m.httpRequests = auto.NewCounterVec(
		m.counterOpts("http_requests_total", "Total number of HTTP requests by endpoint and method"),
		[]string{"endpoint", "method", "status_code"},
	)
	m.httpRequestDuration = auto.NewHistogramVec(
		m.histogramOpts("http_request_duration_milliseconds", "HTTP request duration in milliseconds", m.histogramBuckets),
		[]string{"endpoint", "method", "status_code"},
	)

	m.catalogRecords = auto.NewGaugeVec(
		m.gaugeOpts("catalog_records", "Number of records loaded from fixtures"),
		[]string{"kind"},
	)
	m.filterQueries = auto.NewCounterVec(
		m.counterOpts("filter_queries_total", "Filter evaluations by list"),
		[]string{"list", "filtered"},
	)
	m.filterResults = auto.NewHistogramVec(
		m.histogramOpts("filter_result_size", "Number of records returned by a filter", []float64{0, 1, 2, 3, 4, 5, 10, 25}),
		[]string{"list"},
	)
	m.filterEmptyResults = auto.NewCounterVec(
		m.counterOpts("filter_empty_results_total", "Filters that produced the empty state"),
		[]string{"list"},
	)
	m.teamCodeChecks = auto.NewCounterVec(
		m.counterOpts("team_code_verifications_total", "Team code verifications by outcome"),
		[]string{"valid"},
	)
	m.heroRotations = auto.NewCounter(m.counterOpts("hero_rotations_total", "Landing page background rotations"))
	m.heroIndex = auto.NewGauge(m.gaugeOpts("hero_index", "Index of the current landing page background"))
	m.wizardTransitions = auto.NewCounterVec(
		m.counterOpts("wizard_transitions_total", "Registration wizard actions by outcome"),
		[]string{"action", "outcome"},
	)
	m.registrations = auto.NewCounterVec(
		m.counterOpts("registrations_total", "Registrations by kind and outcome"),
		[]string{"kind", "outcome"},
	)
	m.submissions = auto.NewCounterVec(
		m.counterOpts("submissions_total", "Project submissions by type and outcome"),
		[]string{"type", "outcome"},
	)
	m.duplicateForms = auto.NewCounterVec(
		m.counterOpts("forms_duplicate_total", "Form posts acknowledged as duplicates"),
		[]string{"form"},
	)
	m.validationFailures = auto.NewCounterVec(
		m.counterOpts("validation_failures_total", "Form posts rejected by field validation"),
		[]string{"form"},
	)

	m.queueSize = auto.NewGauge(m.gaugeOpts("queue_size", "Current size of the outbox queue"))
	m.queueCapacity = auto.NewGauge(m.gaugeOpts("queue_capacity", "Maximum capacity of the outbox queue"))
	m.queueUtilization = auto.NewGauge(m.gaugeOpts("queue_utilization_ratio", "Outbox queue utilization ratio (0-1)"))
	m.queueEnqueued = auto.NewCounter(m.counterOpts("queue_enqueued_total", "Total number of forms enqueued"))
	m.queueDequeued = auto.NewCounter(m.counterOpts("queue_dequeued_total", "Total number of forms dequeued"))
	m.queueEnqueueErrors = auto.NewCounter(m.counterOpts("queue_enqueue_errors_total", "Total number of rejected enqueues"))
	m.queueProcessingLatency = auto.NewHistogram(
		m.histogramOpts("queue_processing_latency_milliseconds", "Enqueue latency in milliseconds", m.histogramBuckets),
	)

	m.workerActiveCount = auto.NewGauge(m.gaugeOpts("worker_active_count", "Number of outbox workers"))
	m.workerProcessingLatency = auto.NewHistogram(
		m.histogramOpts("worker_processing_latency_milliseconds", "Outbox delivery latency in milliseconds", m.histogramBuckets),
	)
	m.workerErrors = auto.NewCounter(m.counterOpts("worker_errors_total", "Outbox delivery failures"))
	m.outboxDeliveries = auto.NewCounterVec(
		m.counterOpts("outbox_deliveries_total", "Forms delivered to the outbox"),
		[]string{"kind"},
	)
	m.outboxSize = auto.NewGauge(m.gaugeOpts("outbox_size", "Number of forms held in the outbox"))

	m.errorsByComponent = auto.NewCounterVec(
		m.counterOpts("errors_by_component_total", "Errors by component and type"),
		[]string{"component", "error_type"},
	)

	m.systemMemoryUsage = auto.NewGauge(m.gaugeOpts("system_memory_usage_bytes", "System memory usage in bytes"))
	m.systemGoroutineCount = auto.NewGauge(m.gaugeOpts("system_goroutine_count", "Number of goroutines"))
}

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(duration)
}

// UpdateCatalogRecords sets the number of loaded records of a kind.
func UpdateCatalogRecords(kind string, count int) {
	globalManager.catalogRecords.WithLabelValues(kind).Set(float64(count))
}

// RecordFilter records one filter evaluation over list.
func RecordFilter(list string, filtered bool, results int) {
	globalManager.filterQueries.WithLabelValues(list, strconv.FormatBool(filtered)).Inc()
	globalManager.filterResults.WithLabelValues(list).Observe(float64(results))
	if results == 0 {
		globalManager.filterEmptyResults.WithLabelValues(list).Inc()
	}
}

// RecordTeamCodeVerification counts a team code check.
func RecordTeamCodeVerification(valid bool) {
	globalManager.teamCodeChecks.WithLabelValues(strconv.FormatBool(valid)).Inc()
}

// RecordHeroRotation counts a background rotation and exposes the new index.
func RecordHeroRotation(index int) {
	globalManager.heroRotations.Inc()
	globalManager.heroIndex.Set(float64(index))
}

// RecordWizardTransition counts a wizard action.
func RecordWizardTransition(action, outcome string) {
	globalManager.wizardTransitions.WithLabelValues(action, outcome).Inc()
}

// RecordRegistration counts a registration post.
func RecordRegistration(kind, outcome string) {
	globalManager.registrations.WithLabelValues(kind, outcome).Inc()
}

// RecordSubmission counts a project submission post.
func RecordSubmission(submissionType, outcome string) {
	globalManager.submissions.WithLabelValues(submissionType, outcome).Inc()
}

// RecordDuplicateForm counts a post acknowledged without enqueueing.
func RecordDuplicateForm(form string) {
	globalManager.duplicateForms.WithLabelValues(form).Inc()
}

// RecordValidationFailure counts a post rejected by field validation.
func RecordValidationFailure(form string) {
	globalManager.validationFailures.WithLabelValues(form).Inc()
}

// UpdateQueueSize sets the current queue size.
func UpdateQueueSize(size int) {
	globalManager.queueSize.Set(float64(size))
}

// UpdateQueueCapacity sets the maximum queue capacity.
func UpdateQueueCapacity(capacity int) {
	globalManager.queueCapacity.Set(float64(capacity))
}

// UpdateQueueUtilization sets the queue utilization ratio.
func UpdateQueueUtilization(utilization float64) {
	globalManager.queueUtilization.Set(utilization)
}

// RecordQueueEnqueue increments the enqueue counter.
func RecordQueueEnqueue() {
	globalManager.queueEnqueued.Inc()
}

// RecordQueueDequeue increments the dequeue counter.
func RecordQueueDequeue() {
	globalManager.queueDequeued.Inc()
}

// RecordQueueEnqueueError increments the enqueue error counter.
func RecordQueueEnqueueError() {
	globalManager.queueEnqueueErrors.Inc()
}

// RecordQueueProcessingLatency records enqueue latency.
func RecordQueueProcessingLatency(latencyMs float64) {
	globalManager.queueProcessingLatency.Observe(latencyMs)
}

// UpdateWorkerActiveCount sets the number of workers.
func UpdateWorkerActiveCount(count int) {
	globalManager.workerActiveCount.Set(float64(count))
}

// RecordWorkerProcessingLatency records delivery latency.
func RecordWorkerProcessingLatency(latencyMs float64) {
	globalManager.workerProcessingLatency.Observe(latencyMs)
}

// RecordWorkerError increments the worker error counter.
func RecordWorkerError() {
	globalManager.workerErrors.Inc()
}

// RecordOutboxDelivery counts a delivered form and updates the outbox size.
func RecordOutboxDelivery(kind string, size int) {
	globalManager.outboxDeliveries.WithLabelValues(kind).Inc()
	globalManager.outboxSize.Set(float64(size))
}

// RecordErrorByComponent records an error with component and type labels.
func RecordErrorByComponent(component, errorType string) {
	globalManager.errorsByComponent.WithLabelValues(component, errorType).Inc()
}

// UpdateSystemMemoryUsage sets the system memory usage in bytes.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the number of goroutines.
func UpdateSystemGoroutineCount(count int) {
	globalManager.systemGoroutineCount.Set(float64(count))
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
