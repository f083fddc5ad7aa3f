package entity

import (
	"path/filepath"
	"time"
)

const (
	ContentTypePDF = "application/pdf"
	ContentTypeCSV = "text/csv"
)

// Artifact is a file produced by a report run.
type Artifact struct {
	Path        string
	ContentType string
	// URL is set once the artifact has been uploaded to the bucket.
	URL string
}

// Name is the base file name of the artifact.
func (a Artifact) Name() string {
	return filepath.Base(a.Path)
}

// Location is the URL when uploaded, the local path otherwise.
func (a Artifact) Location() string {
	if a.URL != "" {
		return a.URL
	}
	return a.Path
}

// Delivery is what delivery channels receive at the end of a run.
type Delivery struct {
	RunDate    time.Time
	Recipients []string
	Subject    string
	Body       string
	Artifacts  []Artifact
}

// DeliveryResult is the outcome of one delivery channel.
type DeliveryResult struct {
	Channel string
	Err     error
}
