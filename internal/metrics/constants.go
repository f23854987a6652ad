package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Shop metric names
const (
	MetricNamePurchases     = "shop_purchases_total"
	MetricNameItemsBought   = "shop_items_bought_total"
	MetricNameSilverSpent   = "shop_silver_spent_total"
	MetricNameSales         = "shop_sales_total"
	MetricNameSilverEarned  = "shop_silver_earned_total"
	MetricNameDeliveries    = "shop_deliveries_total"
	MetricNameRestocks      = "display_restocks_total"
	MetricNameStockDrift    = "shop_stock_drift_lines_total"
	MetricNameVerbs         = "verbs_executed_total"
	MetricNameTickDuration  = "world_tick_duration_seconds"
	MetricNameActiveStreams = "player_streams_active"
)

// ============================================================================
// Metric Help Text
// ============================================================================

const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

const (
	HelpTextPurchases     = "Total number of completed purchases"
	HelpTextItemsBought   = "Total number of items bought from shops"
	HelpTextSilverSpent   = "Total silver spent in shops"
	HelpTextSales         = "Total number of items sold to shops"
	HelpTextSilverEarned  = "Total silver paid out by shops"
	HelpTextDeliveries    = "Total number of purchased items delivered, by method"
	HelpTextRestocks      = "Total number of display case restocks, by pool"
	HelpTextStockDrift    = "Total number of controller stock lines changed by drift"
	HelpTextVerbs         = "Total number of player verbs executed"
	HelpTextTickDuration  = "World tick duration in seconds"
	HelpTextActiveStreams = "Current number of connected player streams"
)

// ============================================================================
// Metric Label Names
// ============================================================================

const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelType   = "type"
	LabelSource = "source"
	LabelPool   = "pool"
	LabelVerb   = "verb"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets range from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// TickLatencyBuckets range from 100µs to 1s
var TickLatencyBuckets = []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1}

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgPayloadDecodeFailed = "Failed to decode event payload"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
)
