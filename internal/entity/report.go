package entity

import "time"

// ReportRow is one metric family laid out for display.
type ReportRow struct {
	Label    string
	Now      string
	Week     string
	WoWDelta string
	Global   string
}

// ReportSection is the display-ready report of one merchant.
type ReportSection struct {
	MerchantID    int64
	MerchantLabel string
	Rows          []ReportRow
}

// RunResult summarises one report run.
type RunResult struct {
	RunDate   time.Time
	Windows   Windows
	Merchants int
	// NoData is set when the aggregation returned no rows and nothing was
	// delivered.
	NoData     bool
	Artifacts  []Artifact
	Deliveries []DeliveryResult
}
