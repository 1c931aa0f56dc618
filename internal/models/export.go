// ABOUTME: Export document format for backing up and restoring read-state
// ABOUTME: JSON envelope with version, export timestamp, and article records

package models

import "time"

// ExportVersion identifies the current export document format.
const ExportVersion = "1.0"

// ExportDocument is the JSON backup envelope. Import accepts any
// object carrying an articles array; the remaining fields are
// informational.
type ExportDocument struct {
	Version       string     `json:"version"`
	ExportDate    time.Time  `json:"exportDate"`
	TotalArticles int        `json:"totalArticles"`
	Articles      []*Article `json:"articles"`
}

// NewExportDocument wraps the given articles in an export envelope
// stamped with the current time.
func NewExportDocument(articles []*Article, now time.Time) *ExportDocument {
	return &ExportDocument{
		Version:       ExportVersion,
		ExportDate:    now,
		TotalArticles: len(articles),
		Articles:      articles,
	}
}
