package dockwm

import (
	"embed"
	"encoding/json"
	"os"
	"path"
	"path/filepath"
)

//go:embed themes/metrics/*.json
var embeddedMetrics embed.FS

// Metrics supplies the fixed scalar constants consumed by layout math.
// Everything here is in screen pixels except ZoneEdgeFraction and
// RootDockRatio, which are fractions.
type Metrics struct {
	// ChromeHeight is the title-bar height of floating windows and the
	// drag-bar height of floating groups.
	ChromeHeight float32
	// TabHeight is the strip reserved at the top of every leaf.
	TabHeight float32
	// TabWidth is the fixed width of a single tab, clipped to the strip.
	TabWidth float32
	// SplitterWidth is the gap between a split's children.
	SplitterWidth float32
	// ZoneEdgeFraction is the share of a leaf claimed by each edge zone.
	ZoneEdgeFraction float32
	// ZoneGap shrinks every zone so adjacent zones never touch.
	ZoneGap float32
	// CornerRadius is passed through to the renderer for chrome shapes.
	CornerRadius float32
	// MinWindowSize is the minimum width and height of windows and groups.
	MinWindowSize float32
	// RootDockMargin is how close to a layout's outer edge the pointer
	// must be for an edge drop to split the whole root.
	RootDockMargin float32
	// RootDockRatio is the share given to the new child of a root split.
	RootDockRatio float32
}

var defaultMetrics = Metrics{
	ChromeHeight:     24,
	TabHeight:        22,
	TabWidth:         128,
	SplitterWidth:    6,
	ZoneEdgeFraction: 0.25,
	ZoneGap:          4,
	CornerRadius:     4,
	MinWindowSize:    64,
	RootDockMargin:   30,
	RootDockRatio:    0.25,
}

var currentMetrics = &defaultMetrics

// LoadMetrics reads a metrics JSON file from the themes directory and makes
// it current. A local file next to the executable wins over the embedded
// copy so a table can be tweaked without rebuilding.
func LoadMetrics(name string) error {
	file := filepath.Join("themes", "metrics", name+".json")
	data, err := os.ReadFile(file)
	if err != nil {
		data, err = embeddedMetrics.ReadFile(path.Join("themes", "metrics", name+".json"))
		if err != nil {
			return err
		}
	}
	m := defaultMetrics
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	currentMetrics = &m
	return nil
}

// CurrentMetrics returns the active metrics table.
func CurrentMetrics() *Metrics { return currentMetrics }

// SetMetrics replaces the active metrics table.
func SetMetrics(m *Metrics) {
	if m != nil {
		currentMetrics = m
	}
}
