package cms

// Video is a Brightcove video record as returned by the CMS API.
type Video struct {
	ID              string            `json:"id"`
	AccountID       string            `json:"account_id,omitempty"`
	Name            string            `json:"name,omitempty"`
	Description     string            `json:"description,omitempty"`
	LongDescription string            `json:"long_description,omitempty"`
	ReferenceID     string            `json:"reference_id,omitempty"`
	State           string            `json:"state,omitempty"`
	Tags            []string          `json:"tags,omitempty"`
	CustomFields    map[string]string `json:"custom_fields,omitempty"`
	Duration        int64             `json:"duration,omitempty"`
	Economics       string            `json:"economics,omitempty"`
	CreatedAt       string            `json:"created_at,omitempty"`
	UpdatedAt       string            `json:"updated_at,omitempty"`
	PublishedAt     string            `json:"published_at,omitempty"`
}

// CreateVideoRequest is the body for creating a video. Only populated
// fields are transmitted.
type CreateVideoRequest struct {
	Name            string            `json:"name"`
	Description     *string           `json:"description,omitempty"`
	LongDescription *string           `json:"long_description,omitempty"`
	ReferenceID     *string           `json:"reference_id,omitempty"`
	State           *string           `json:"state,omitempty"`
	Tags            []string          `json:"tags,omitempty"`
	CustomFields    map[string]string `json:"custom_fields,omitempty"`
	Economics       *string           `json:"economics,omitempty"`
}

// UpdateVideoRequest is the body for a metadata update. Identical
// shape to CreateVideoRequest except every field is optional.
type UpdateVideoRequest struct {
	Name            *string           `json:"name,omitempty"`
	Description     *string           `json:"description,omitempty"`
	LongDescription *string           `json:"long_description,omitempty"`
	ReferenceID     *string           `json:"reference_id,omitempty"`
	State           *string           `json:"state,omitempty"`
	Tags            []string          `json:"tags,omitempty"`
	CustomFields    map[string]string `json:"custom_fields,omitempty"`
	Economics       *string           `json:"economics,omitempty"`
}

// VideoCount is the response of the counts endpoint.
type VideoCount struct {
	Count int `json:"count"`
}

// CustomField describes one account-level custom field definition.
type CustomField struct {
	ID          string   `json:"id"`
	DisplayName string   `json:"display_name,omitempty"`
	Description string   `json:"description,omitempty"`
	Type        string   `json:"type,omitempty"`
	Required    bool     `json:"required,omitempty"`
	EnumValues  []string `json:"enum_values,omitempty"`
}

// CustomFields is the account custom-field listing.
type CustomFields struct {
	MaxCustomFields int           `json:"max_custom_fields,omitempty"`
	CustomFields    []CustomField `json:"custom_fields"`
}

// VideoVariant is a language variant of a video's metadata.
type VideoVariant struct {
	Language        string            `json:"language"`
	Name            string            `json:"name,omitempty"`
	Description     string            `json:"description,omitempty"`
	LongDescription string            `json:"long_description,omitempty"`
	CustomFields    map[string]string `json:"custom_fields,omitempty"`
}

// AudioTrack is one audio track attached to a video.
type AudioTrack struct {
	ID       string `json:"id"`
	Language string `json:"language,omitempty"`
	Variant  string `json:"variant,omitempty"`
	Duration int64  `json:"duration,omitempty"`
}

// IngestJobStatus reports the state of one ingest job for a video.
type IngestJobStatus struct {
	ID          string `json:"id"`
	State       string `json:"state,omitempty"`
	AccountID   string `json:"account_id,omitempty"`
	VideoID     string `json:"video_id,omitempty"`
	ErrorCode   string `json:"error_code,omitempty"`
	SubmittedAt string `json:"submitted_at,omitempty"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}

// Channel is a media-sharing channel.
type Channel struct {
	Name      string `json:"name"`
	Type      string `json:"type,omitempty"`
	AccountID string `json:"account_id,omitempty"`
}

// ChannelAffiliate is an affiliate account membership in a channel.
type ChannelAffiliate struct {
	AccountID  string `json:"account_id"`
	Status     string `json:"status,omitempty"`
	ContractID string `json:"contract_id,omitempty"`
}

// Contract is a media-sharing contract within a channel.
type Contract struct {
	ID            string `json:"id"`
	AccountID     string `json:"account_id,omitempty"`
	ChannelName   string `json:"channel_name,omitempty"`
	Status        string `json:"status,omitempty"`
	DateCreated   string `json:"date_created,omitempty"`
	LastModified  string `json:"last_modified,omitempty"`
	AutoAccept    bool   `json:"auto_accept,omitempty"`
	ApprovedByCRM bool   `json:"approved_by_crm,omitempty"`
}
