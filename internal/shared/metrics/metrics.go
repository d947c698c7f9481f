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

var (
	resumeUploadsTotal     atomic.Uint64
	resumeDownloadsTotal   atomic.Uint64
	resumeActivationsTotal atomic.Uint64
	resumeDeletesTotal     atomic.Uint64

	// Payload sizes in bytes; the admin UI caps uploads around 5MB.
	resumePayloadBytes = newHistogram([]float64{16 << 10, 64 << 10, 256 << 10, 1 << 20, 2 << 20, 5 << 20, 10 << 20})
)

// IncResumeUploaded increments the upload counter.
func IncResumeUploaded() {
	resumeUploadsTotal.Add(1)
}

// IncResumeDownloaded increments the download counter.
func IncResumeDownloaded() {
	resumeDownloadsTotal.Add(1)
}

// IncResumeActivated increments the activation counter.
func IncResumeActivated() {
	resumeActivationsTotal.Add(1)
}

// IncResumeDeleted increments the delete counter.
func IncResumeDeleted() {
	resumeDeletesTotal.Add(1)
}

// ObserveResumePayloadBytes records the decoded size of an uploaded resume.
func ObserveResumePayloadBytes(value float64) {
	if value < 0 {
		value = 0
	}
	resumePayloadBytes.Observe(value)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "resume_uploads_total", "Total resumes uploaded", resumeUploadsTotal.Load())
	writeCounter(&buf, "resume_downloads_total", "Total resume downloads served", resumeDownloadsTotal.Load())
	writeCounter(&buf, "resume_activations_total", "Total resume activations", resumeActivationsTotal.Load())
	writeCounter(&buf, "resume_deletes_total", "Total resumes deleted", resumeDeletesTotal.Load())
	writeHistogram(&buf, "resume_payload_bytes", "Decoded resume payload size in bytes", resumePayloadBytes.Snapshot())
	return buf.String()
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	// counts holds per-bucket tallies; the writer accumulates.
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
			break
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	var cumulative uint64
	for i, bound := range snap.buckets {
		cumulative += snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", name, formatFloat(bound), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, formatFloat(snap.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}
