package export

import (
	"encoding/json"

	"github.com/janekbaraniewski/priceanatomy/internal/core"
	"github.com/janekbaraniewski/priceanatomy/internal/geometry"
	"github.com/janekbaraniewski/priceanatomy/internal/palette"
	"github.com/samber/lo"
)

// JSONOption configures [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	minVisible float64
}

// WithJSONMinVisible overrides the minimum segment width in percent.
func WithJSONMinVisible(p float64) JSONOption { return func(r *jsonRenderer) { r.minVisible = p } }

type jsonOutput struct {
	ID           core.ItemID   `json:"id"`
	Name         string        `json:"name"`
	Stencil      string        `json:"stencil,omitempty"`
	Total        string        `json:"total"`
	TotalDisplay string        `json:"total_display"`
	Unit         string        `json:"unit"`
	Degenerate   bool          `json:"degenerate,omitempty"`
	SumWidth     float64       `json:"sum_width"`
	Segments     []jsonSegment `json:"segments"`
}

type jsonSegment struct {
	ID            core.LayerID `json:"id"`
	Label         string       `json:"label"`
	Description   string       `json:"description,omitempty"`
	Amount        string       `json:"amount"`
	RunningTotal  string       `json:"running_total"`
	AmountDisplay string       `json:"amount_display"`
	RawPercent    float64      `json:"raw_percent"`
	WidthPercent  float64      `json:"width_percent"`
	OffsetPercent float64      `json:"offset_percent"`
	Clamped       bool         `json:"clamped,omitempty"`
	Color         string       `json:"color"`
	ColorMapped   bool         `json:"color_mapped"`
}

// RenderJSON writes the computed strip for item as an indented document.
// Amounts are exact decimal strings; *_display fields are in millions.
func RenderJSON(item core.Item, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{minVisible: geometry.DefaultMinVisiblePercent}
	for _, opt := range opts {
		opt(&r)
	}

	res := geometry.ComputeWidths(item.Layers, r.minVisible)
	running := item.RunningTotals()
	out := jsonOutput{
		ID:           item.ID,
		Name:         item.DisplayName(),
		Stencil:      item.Stencil,
		Total:        item.Total().String(),
		TotalDisplay: core.FormatMillions(item.Total(), core.DetailPlaces),
		Unit:         core.CurrencyUnit,
		Degenerate:   res.Degenerate,
		SumWidth:     res.SumWidth(),
		Segments: lo.Map(res.Segments, func(seg geometry.Segment, i int) jsonSegment {
			l := item.Layers[i]
			_, mapped := palette.Lookup(l.ColorToken)
			return jsonSegment{
				ID:            seg.LayerID,
				Label:         l.Label,
				Description:   l.Description,
				Amount:        l.Amount.String(),
				RunningTotal:  running[i].String(),
				AmountDisplay: core.FormatMillions(l.Amount, core.DetailPlaces),
				RawPercent:    seg.RawPercent,
				WidthPercent:  seg.WidthPercent,
				OffsetPercent: seg.OffsetPercent,
				Clamped:       seg.Clamped,
				Color:         palette.Hex(l.ColorToken),
				ColorMapped:   mapped,
			}
		}),
	}
	return json.MarshalIndent(out, "", "  ")
}
