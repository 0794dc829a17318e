package cms

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog"

	"github.com/s0up4200/brightcove-go/api"
)

// MaxVideoIDs is the most video IDs one by-ID lookup accepts.
const MaxVideoIDs = 10

// Client wraps the Brightcove CMS API.
type Client struct {
	exec    *api.Executor
	baseURL string
	logger  zerolog.Logger
}

// NewClient creates a CMS client. baseURL is the account-scoped CMS
// root, e.g. https://cms.api.brightcove.com/v1/accounts/.
func NewClient(exec *api.Executor, baseURL string, logger zerolog.Logger) *Client {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &Client{exec: exec, baseURL: baseURL, logger: logger}
}

// GetVideos retrieves videos for an account. params supports the CMS
// query surface (q, sort, limit, offset) and may be nil.
func (c *Client) GetVideos(ctx context.Context, accountID string, params url.Values) ([]Video, error) {
	var videos []Video
	err := c.exec.Fetch(ctx, api.Request{
		Endpoint: c.baseURL + accountID + "/videos",
		Params:   params,
	}, &videos)
	if err != nil {
		return nil, err
	}
	c.logger.Debug().Int("count", len(videos)).Msg("Retrieved videos")
	return videos, nil
}

// GetVideosByIDs retrieves up to MaxVideoIDs videos in one call, the
// IDs joined by commas as the endpoint requires.
func (c *Client) GetVideosByIDs(ctx context.Context, accountID string, ids []string) ([]Video, error) {
	if len(ids) == 0 {
		return nil, fmt.Errorf("at least one video ID is required")
	}
	if len(ids) > MaxVideoIDs {
		return nil, fmt.Errorf("at most %d video IDs per request, got %d", MaxVideoIDs, len(ids))
	}
	var videos []Video
	err := c.exec.Fetch(ctx, api.Request{
		Endpoint: c.baseURL + accountID + "/videos/" + strings.Join(ids, ","),
	}, &videos)
	if err != nil {
		return nil, err
	}
	return videos, nil
}

// CreateVideo creates a video record.
func (c *Client) CreateVideo(ctx context.Context, accountID string, req CreateVideoRequest) (*Video, error) {
	var video Video
	err := c.exec.Fetch(ctx, api.Request{
		Endpoint: c.baseURL + accountID + "/videos",
		Method:   http.MethodPost,
		Body:     req,
	}, &video)
	if err != nil {
		return nil, err
	}
	c.logger.Debug().Str("video_id", video.ID).Msg("Created video")
	return &video, nil
}

// UpdateVideo patches a video's metadata.
func (c *Client) UpdateVideo(ctx context.Context, accountID, videoID string, req UpdateVideoRequest) (*Video, error) {
	var video Video
	err := c.exec.Fetch(ctx, api.Request{
		Endpoint: c.baseURL + accountID + "/videos/" + videoID,
		Method:   http.MethodPatch,
		Body:     req,
	}, &video)
	if err != nil {
		return nil, err
	}
	return &video, nil
}

// DeleteVideo removes a video record.
func (c *Client) DeleteVideo(ctx context.Context, accountID, videoID string) error {
	err := c.exec.Fetch(ctx, api.Request{
		Endpoint: c.baseURL + accountID + "/videos/" + videoID,
		Method:   http.MethodDelete,
	}, nil)
	if err != nil {
		return err
	}
	c.logger.Info().Str("video_id", videoID).Msg("Deleted video")
	return nil
}

// GetVideoCount returns the number of videos matching params.
func (c *Client) GetVideoCount(ctx context.Context, accountID string, params url.Values) (int, error) {
	var count VideoCount
	err := c.exec.Fetch(ctx, api.Request{
		Endpoint: c.baseURL + accountID + "/counts/videos",
		Params:   params,
	}, &count)
	if err != nil {
		return 0, err
	}
	return count.Count, nil
}

// GetCustomFields returns the account's custom video field definitions.
func (c *Client) GetCustomFields(ctx context.Context, accountID string) (*CustomFields, error) {
	var fields CustomFields
	err := c.exec.Fetch(ctx, api.Request{
		Endpoint: c.baseURL + accountID + "/video_fields/custom_fields",
	}, &fields)
	if err != nil {
		return nil, err
	}
	return &fields, nil
}

// GetVideoVariant returns one language variant of a video's metadata.
func (c *Client) GetVideoVariant(ctx context.Context, accountID, videoID, language string) (*VideoVariant, error) {
	var variant VideoVariant
	err := c.exec.Fetch(ctx, api.Request{
		Endpoint: c.baseURL + accountID + "/videos/" + videoID + "/variants/" + language,
	}, &variant)
	if err != nil {
		return nil, err
	}
	return &variant, nil
}

// GetAudioTrack returns one audio track of a video.
func (c *Client) GetAudioTrack(ctx context.Context, accountID, videoID, trackID string) (*AudioTrack, error) {
	var track AudioTrack
	err := c.exec.Fetch(ctx, api.Request{
		Endpoint: c.baseURL + accountID + "/videos/" + videoID + "/audio_tracks/" + trackID,
	}, &track)
	if err != nil {
		return nil, err
	}
	return &track, nil
}

// GetIngestJobStatus returns the status of one ingest job for a video.
func (c *Client) GetIngestJobStatus(ctx context.Context, accountID, videoID, jobID string) (*IngestJobStatus, error) {
	var status IngestJobStatus
	err := c.exec.Fetch(ctx, api.Request{
		Endpoint: c.baseURL + accountID + "/videos/" + videoID + "/ingest_jobs/" + jobID,
	}, &status)
	if err != nil {
		return nil, err
	}
	return &status, nil
}

// ListChannels lists the account's media-sharing channels.
func (c *Client) ListChannels(ctx context.Context, accountID string) ([]Channel, error) {
	var channels []Channel
	err := c.exec.Fetch(ctx, api.Request{
		Endpoint: c.baseURL + accountID + "/channels",
	}, &channels)
	if err != nil {
		return nil, err
	}
	return channels, nil
}

// GetChannel returns one channel's details.
func (c *Client) GetChannel(ctx context.Context, accountID, channelName string) (*Channel, error) {
	var channel Channel
	err := c.exec.Fetch(ctx, api.Request{
		Endpoint: c.baseURL + accountID + "/channels/" + channelName,
	}, &channel)
	if err != nil {
		return nil, err
	}
	return &channel, nil
}

// ListChannelAffiliates lists the affiliate members of a channel.
func (c *Client) ListChannelAffiliates(ctx context.Context, accountID, channelName string) ([]ChannelAffiliate, error) {
	var affiliates []ChannelAffiliate
	err := c.exec.Fetch(ctx, api.Request{
		Endpoint: c.baseURL + accountID + "/channels/" + channelName + "/members",
	}, &affiliates)
	if err != nil {
		return nil, err
	}
	return affiliates, nil
}

// ListContracts lists the contracts of a channel.
func (c *Client) ListContracts(ctx context.Context, accountID, channelName string) ([]Contract, error) {
	var contracts []Contract
	err := c.exec.Fetch(ctx, api.Request{
		Endpoint: c.baseURL + accountID + "/channels/" + channelName + "/contracts",
	}, &contracts)
	if err != nil {
		return nil, err
	}
	return contracts, nil
}

// GetContract returns one contract.
func (c *Client) GetContract(ctx context.Context, accountID, channelName, contractID string) (*Contract, error) {
	var contract Contract
	err := c.exec.Fetch(ctx, api.Request{
		Endpoint: c.baseURL + accountID + "/channels/" + channelName + "/contracts/" + contractID,
	}, &contract)
	if err != nil {
		return nil, err
	}
	return &contract, nil
}
