package profiles

// DigitalMaster configures archival of the source master.
type DigitalMaster struct {
	Rendition  string `json:"rendition"`
	Distribute bool   `json:"distribute"`
}

// DynamicOriginImage is one image size produced by dynamic delivery.
type DynamicOriginImage struct {
	Label  string `json:"label"`
	Height int    `json:"height"`
	Width  int    `json:"width"`
}

// DynamicOrigin configures dynamic-delivery renditions and images.
type DynamicOrigin struct {
	Renditions []string             `json:"renditions"`
	Images     []DynamicOriginImage `json:"images"`
}

// IngestProfile is one transcoding profile.
type IngestProfile struct {
	ID                 string           `json:"id"`
	Version            int              `json:"version,omitempty"`
	Name               string           `json:"name"`
	DisplayName        string           `json:"display_name,omitempty"`
	Description        string           `json:"description,omitempty"`
	AccountID          int64            `json:"account_id,omitempty"`
	BrightcoveStandard bool             `json:"brightcove_standard,omitempty"`
	DateCreated        int64            `json:"date_created,omitempty"`
	DateLastModified   int64            `json:"date_last_modified,omitempty"`
	DigitalMaster      *DigitalMaster   `json:"digital_master,omitempty"`
	Renditions         []map[string]any `json:"renditions,omitempty"`
	Packages           []map[string]any `json:"packages,omitempty"`
	DynamicOrigin      *DynamicOrigin   `json:"dynamic_origin,omitempty"`
}

// CreateProfileRequest is the body for creating a profile. Only
// populated fields are transmitted.
type CreateProfileRequest struct {
	Name          string           `json:"name"`
	DisplayName   *string          `json:"display_name,omitempty"`
	Description   *string          `json:"description,omitempty"`
	AccountID     *int64           `json:"account_id,omitempty"`
	DigitalMaster *DigitalMaster   `json:"digital_master,omitempty"`
	Renditions    []map[string]any `json:"renditions,omitempty"`
	DynamicOrigin *DynamicOrigin   `json:"dynamic_origin,omitempty"`
}
