package monitor

import "time"

type Status struct {
	Storage   bool           `json:"storage"`
	BlobBytes int            `json:"blob_bytes"`
	Records   map[string]int `json:"records"`
	LastCheck time.Time      `json:"last_check"`
}
