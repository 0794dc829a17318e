package ingest

// Master points at the video source for an ingest request.
type Master struct {
	URL               *string      `json:"url,omitempty"`
	UseArchivedMaster *bool        `json:"use_archived_master,omitempty"`
	LateBindingType   *string      `json:"late_binding_type,omitempty"`
	AudioTracks       []AudioTrack `json:"audio_tracks,omitempty"`
}

// AudioTrack describes muxed-in audio on the master.
type AudioTrack struct {
	Language *string `json:"language,omitempty"`
	Variant  *string `json:"variant,omitempty"`
}

// Image is a poster or thumbnail asset to ingest.
type Image struct {
	URL          string   `json:"url"`
	VariantLabel *string  `json:"variant,omitempty"`
	Language     *string  `json:"language,omitempty"`
	Height       *int     `json:"height,omitempty"`
	Width        *int     `json:"width,omitempty"`
	Labels       []string `json:"labels,omitempty"`
}

// TextTrack is a captions/subtitles asset to ingest.
type TextTrack struct {
	URL      string  `json:"url"`
	SrcLang  *string `json:"srclang,omitempty"`
	Kind     *string `json:"kind,omitempty"`
	Label    *string `json:"label,omitempty"`
	Default  *bool   `json:"default,omitempty"`
	Status   *string `json:"status,omitempty"`
	Embedded *bool   `json:"embed_closed_caption,omitempty"`
}

// IngestRequest is the Dynamic Ingest POST body. Only populated
// fields are transmitted; an all-default request sends an empty
// object.
type IngestRequest struct {
	Master                        *Master     `json:"master,omitempty"`
	Profile                       *string     `json:"profile,omitempty"`
	Priority                      *string     `json:"priority,omitempty"`
	ForensicWatermarking          *bool       `json:"forensic_watermarking,omitempty"`
	ForensicWatermarkingStubMode  *bool       `json:"forensic_watermarking_stub_mode,omitempty"`
	Images                        []Image     `json:"images,omitempty"`
	TextTracks                    []TextTrack `json:"text_tracks,omitempty"`
	CaptureImages                 *bool       `json:"capture-images,omitempty"`
	Callbacks                     []string    `json:"callbacks,omitempty"`
}

// IngestResponse carries the job ID for a submitted ingest request.
type IngestResponse struct {
	ID string `json:"id"`
}

// S3URLs is the response of the temporary upload URL endpoint.
type S3URLs struct {
	Bucket          string `json:"bucket"`
	ObjectKey       string `json:"object_key"`
	AccessKeyID     string `json:"access_key_id"`
	SecretAccessKey string `json:"secret_access_key"`
	SessionToken    string `json:"session_token"`
	SignedURL       string `json:"SignedUrl"`
	APIRequestURL   string `json:"ApiRequestUrl"`
}
