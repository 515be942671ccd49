package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

type counter struct {
	name  string
	help  string
	value atomic.Uint64
}

var (
	resumeUploads        = &counter{name: "resume_upload_total", help: "Resumes processed by the upload pipeline"}
	resumeUploadFailures = &counter{name: "resume_upload_failed_total", help: "Uploads rejected or aborted"}
	classifierFallbacks  = &counter{name: "skill_classifier_fallback_total", help: "Skill classifications served by the keyword fallback"}
	questionsFallbacks   = &counter{name: "question_generator_fallback_total", help: "Question sets served by the fixed fallback"}
	eventPublishFailures = &counter{name: "event_publish_failed_total", help: "Domain events that failed to publish"}
	panicsRecovered      = &counter{name: "http_panics_recovered_total", help: "Handler panics turned into 500 responses"}

	// Render order.
	counters = []*counter{
		resumeUploads,
		resumeUploadFailures,
		classifierFallbacks,
		questionsFallbacks,
		eventPublishFailures,
		panicsRecovered,
	}

	pipelineDuration = newHistogram("resume_pipeline_duration_ms", "Upload pipeline duration in milliseconds",
		[]float64{50, 100, 250, 500, 1000, 2500, 5000, 10000, 30000, 60000})
)

// IncResumeUpload counts a resume that completed the upload pipeline.
func IncResumeUpload() { resumeUploads.value.Add(1) }

// IncResumeUploadFailed counts an upload rejected or aborted by the pipeline.
func IncResumeUploadFailed() { resumeUploadFailures.value.Add(1) }

func IncClassifierFallback() { classifierFallbacks.value.Add(1) }

func IncQuestionsFallback() { questionsFallbacks.value.Add(1) }

func IncEventPublishFailed() { eventPublishFailures.value.Add(1) }

func IncPanicRecovered() { panicsRecovered.value.Add(1) }

// ObservePipelineDurationMs records an upload pipeline duration. Negative
// values are clamped to zero.
func ObservePipelineDurationMs(value float64) {
	pipelineDuration.Observe(max(value, 0))
}

// Handler serves the Prometheus text exposition.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Data(http.StatusOK, "text/plain; version=0.0.4; charset=utf-8", Render())
	}
}

// Render returns every metric in Prometheus text format.
func Render() []byte {
	var buf bytes.Buffer
	for _, c := range counters {
		fmt.Fprintf(&buf, "# HELP %s %s\n# TYPE %s counter\n%s %d\n", c.name, c.help, c.name, c.name, c.value.Load())
	}
	pipelineDuration.writeTo(&buf)
	return buf.Bytes()
}

type histogram struct {
	name string
	help string

	mu     sync.Mutex
	bounds []float64
	counts []uint64 // cumulative per bound
	sum    float64
	total  uint64
}

func newHistogram(name, help string, bounds []float64) *histogram {
	return &histogram{name: name, help: help, bounds: bounds, counts: make([]uint64, len(bounds))}
}

func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.total++
	h.sum += value
	for i, bound := range h.bounds {
		if value <= bound {
			h.counts[i]++
		}
	}
}

func (h *histogram) writeTo(buf *bytes.Buffer) {
	h.mu.Lock()
	counts := append([]uint64(nil), h.counts...)
	sum, total := h.sum, h.total
	h.mu.Unlock()

	fmt.Fprintf(buf, "# HELP %s %s\n# TYPE %s histogram\n", h.name, h.help, h.name)
	for i, bound := range h.bounds {
		fmt.Fprintf(buf, "%s_bucket{le=%q} %d\n", h.name, formatFloat(bound), counts[i])
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", h.name, total)
	fmt.Fprintf(buf, "%s_sum %s\n%s_count %d\n", h.name, formatFloat(sum), h.name, total)
}

func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
