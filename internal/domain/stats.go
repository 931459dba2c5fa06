package domain

import "time"

type Hit struct {
	App       string    `json:"app"`
	URI       string    `json:"uri"`
	IP        string    `json:"ip"`
	Timestamp time.Time `json:"timestamp"`
}

type ViewStats struct {
	App  string `json:"app"`
	URI  string `json:"uri"`
	Hits int    `json:"hits"`
}

type ViewStatsParams struct {
	Start  time.Time
	End    time.Time
	URIs   []string
	Unique bool
}
