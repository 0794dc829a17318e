package analytics

// Timeline is an engagement timeline: views bucketed over the
// normalized duration of playback.
type Timeline struct {
	AccountID string  `json:"account_id,omitempty"`
	Timeline  []int64 `json:"timeline"`
}

// TimelineWithDuration is a video engagement timeline together with
// the video's duration.
type TimelineWithDuration struct {
	Timeline
	Duration int64 `json:"duration,omitempty"`
}

// Report is the response of the /data reporting endpoint.
type Report struct {
	ItemCount int              `json:"item_count"`
	Items     []map[string]any `json:"items"`
	Summary   map[string]any   `json:"summary,omitempty"`
}

// DateRange reports the span of data available for a dimension.
type DateRange struct {
	ReconciledFrom string `json:"reconciled_from,omitempty"`
	ReconciledTo   string `json:"reconciled_to,omitempty"`
	RealtimeFrom   string `json:"realtime_from,omitempty"`
	RealtimeTo     string `json:"realtime_to,omitempty"`
}

// VideoEngagement pairs a video ID with its engagement timeline, used
// by the concurrent batch helper.
type VideoEngagement struct {
	VideoID    string
	Engagement *TimelineWithDuration
}
