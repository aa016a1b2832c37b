// Package quickchart renders report series as QuickChart image URLs.
// Charts are drawn by the QuickChart service at fetch time; this adapter only
// builds the URL
package quickchart

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"

	perr "incstats/internal/platform/errors"
	"incstats/internal/services/report/domain"
)

// DefaultBaseURL is the public QuickChart endpoint
const DefaultBaseURL = "https://quickchart.io/chart"

const (
	defaultWidth  = 800
	defaultHeight = 400
)

// Renderer implements report/domain.ChartRenderer
type Renderer struct {
	base   string
	width  int
	height int
}

// Option configures the Renderer
type Option func(*Renderer)

// WithBaseURL points the renderer at a self-hosted QuickChart instance
func WithBaseURL(base string) Option {
	return func(r *Renderer) { r.base = base }
}

// WithSize overrides the rendered image dimensions
func WithSize(w, h int) Option {
	return func(r *Renderer) { r.width, r.height = w, h }
}

// New constructs a Renderer
func New(opts ...Option) *Renderer {
	r := &Renderer{base: DefaultBaseURL, width: defaultWidth, height: defaultHeight}
	for _, o := range opts {
		o(r)
	}
	return r
}

// chartConfig mirrors the Chart.js config QuickChart consumes
type chartConfig struct {
	Type    string       `json:"type"`
	Data    chartData    `json:"data"`
	Options chartOptions `json:"options"`
}

type chartData struct {
	Labels   []string       `json:"labels"`
	Datasets []chartDataset `json:"datasets"`
}

type chartDataset struct {
	Label string  `json:"label"`
	Data  []int64 `json:"data"`
}

type chartOptions struct {
	Scales chartScales `json:"scales"`
}

type chartScales struct {
	Y chartAxis `json:"y"`
}

type chartAxis struct {
	BeginAtZero bool `json:"beginAtZero"`
}

// Render implements domain.ChartRenderer
func (r *Renderer) Render(_ context.Context, s domain.Series, kind domain.Kind) (string, error) {
	cfg := chartConfig{
		Type: string(kind),
		Data: chartData{
			Labels:   s.Labels,
			Datasets: []chartDataset{{Label: s.Title, Data: s.Values}},
		},
		Options: chartOptions{Scales: chartScales{Y: chartAxis{BeginAtZero: true}}},
	}

	raw, err := json.Marshal(cfg)
	if err != nil {
		return "", perr.Wrap(err, perr.ErrorCodeUnknown, "marshal chart config")
	}

	q := url.Values{}
	q.Set("c", string(raw))
	q.Set("w", strconv.Itoa(r.width))
	q.Set("h", strconv.Itoa(r.height))
	return r.base + "?" + q.Encode(), nil
}
