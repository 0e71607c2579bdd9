package stats

import "github.com/fieldtrack/fieldsales-backend-go/internal/pkg/dates"

// Bucket is a heatmap color level. Future days always render BucketFuture
// so a day with data can never look active before it happens.
type Bucket string

const (
	BucketFuture Bucket = "future"
	BucketEmpty  Bucket = "empty"
	BucketLow    Bucket = "low"    // ratio <= 0.25
	BucketMedium Bucket = "medium" // ratio <= 0.50
	BucketHigh   Bucket = "high"   // ratio <= 0.75
	BucketMax    Bucket = "max"    // ratio > 0.75
)

// GridCell is one positional cell of the heatmap. Placeholder cells pad the
// month layout to full weeks and carry no date.
type GridCell struct {
	Date        dates.Date `json:"date,omitempty"`
	Bucket      Bucket     `json:"bucket,omitempty"`
	IsToday     bool       `json:"is_today,omitempty"`
	IsFuture    bool       `json:"is_future,omitempty"`
	IsInRange   bool       `json:"is_in_range,omitempty"`
	Placeholder bool       `json:"placeholder,omitempty"`
}

// Grid is the positional heatmap layout. For the month view Cells includes
// leading and trailing placeholders; MonthLabel is empty when neither blank
// region earned the label.
type Grid struct {
	Cells          []GridCell `json:"cells"`
	MonthLabel     string     `json:"month_label,omitempty"`
	LabelAtStart   bool       `json:"label_at_start,omitempty"`
	LeadingBlanks  int        `json:"leading_blanks,omitempty"`
	TrailingBlanks int        `json:"trailing_blanks,omitempty"`
}

type HeatmapResponse struct {
	View HeatmapView `json:"view"`
	Grid Grid        `json:"grid"`
}
