// Package vision turns a screenshot of a partnership email into a
// structured deal proposal via a vision-capable chat-completion API.
package vision

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"io"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/pierson-davis/on-brand-ios-sub000/config"
	"github.com/pierson-davis/on-brand-ios-sub000/internal/creds"
)

const (
	defaultEndpoint  = "https://api.openai.com/v1/chat/completions"
	defaultModel     = "gpt-4o"
	defaultMaxTokens = 2000
	defaultTimeout   = 60 * time.Second

	jpegQuality = 80

	// Low temperature to keep the extraction deterministic
	defaultTemperature = 0.1
)

var (
	ErrNotConfigured = errors.New("ai services not configured")
	ErrInvalidImage  = errors.New("invalid image provided")
	ErrEmptyResponse = errors.New("empty response from api")
)

type APIError struct {
	Code int
	Body string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Code, e.Body)
}

// Client is safe to reconstruct per use; it keeps no state across calls
// beyond the in-flight flag. Retries are the caller's responsibility.
type Client struct {
	endpoint    string
	model       string
	maxTokens   int
	temperature float64

	creds  *creds.Provider
	client *http.Client

	parsing int32
}

func NewClient(cfg *config.Config, cp *creds.Provider) *Client {
	c := &Client{
		endpoint:    cfg.AI.Endpoint,
		model:       cfg.AI.Model,
		maxTokens:   cfg.AI.MaxTokens,
		temperature: cfg.AI.Temperature,
		creds:       cp,
	}
	if c.endpoint == "" {
		c.endpoint = defaultEndpoint
	}
	if c.model == "" {
		c.model = defaultModel
	}
	if c.maxTokens == 0 {
		c.maxTokens = defaultMaxTokens
	}
	if c.temperature == 0 {
		c.temperature = defaultTemperature
	}

	// A hung request must not leave the parsing flag stuck; every call
	// gets a hard timeout on top of whatever deadline the context has.
	timeout := cfg.AI.Timeout * time.Second
	if timeout == 0 {
		timeout = defaultTimeout
	}
	c.client = &http.Client{Timeout: timeout}
	return c
}

func (c *Client) IsParsing() bool {
	return atomic.LoadInt32(&c.parsing) == 1
}

// ParseDealEmail sends one screenshot through the vision endpoint and
// decodes the model's JSON answer. It makes no network call unless the
// credential provider reports ready.
func (c *Client) ParseDealEmail(ctx context.Context, img image.Image) (*ParsedDealInfo, error) {
	key, ok := c.creds.Key()
	if !ok {
		return nil, fmt.Errorf("%w: status %s", ErrNotConfigured, c.creds.Status().DisplayName())
	}

	atomic.StoreInt32(&c.parsing, 1)
	defer atomic.StoreInt32(&c.parsing, 0)

	if img == nil {
		return nil, ErrInvalidImage
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, ErrInvalidImage
	}

	payload, err := json.Marshal(c.buildRequest(base64.StdEncoding.EncodeToString(buf.Bytes())))
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+key)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{Code: resp.StatusCode, Body: string(body)}
	}

	var vr visionResponse
	if err := json.Unmarshal(body, &vr); err != nil {
		return nil, err
	}
	if len(vr.Choices) == 0 || vr.Choices[0].Message.Content == "" {
		return nil, ErrEmptyResponse
	}

	return DecodeDealJSON(vr.Choices[0].Message.Content)
}

func (c *Client) buildRequest(base64Image string) *visionRequest {
	return &visionRequest{
		Model: c.model,
		Messages: []visionMessage{{
			Role: "user",
			Content: []visionContent{
				{Type: "text", Text: extractionPrompt},
				{Type: "image_url", ImageURL: &visionImageURL{
					URL: "data:image/jpeg;base64," + base64Image,
				}},
			},
		}},
		MaxTokens:   c.maxTokens,
		Temperature: c.temperature,
	}
}

const extractionPrompt = `Analyze this influencer partnership email and extract the following information in JSON format:

{
    "title": "Deal title or campaign name",
    "description": "Brief description of the deal",
    "brand": "Brand or company name",
    "campaign": "Campaign name if mentioned",
    "dueDate": "Due date in YYYY-MM-DD format",
    "compensation": "Payment amount or compensation details",
    "requirements": {
        "contentTypes": ["instagram_post", "instagram_story", "instagram_reel", "tiktok_video", "youtube_video", "twitter_post", "facebook_post", "linkedin_post"],
        "minCount": 1,
        "specificInstructions": "Any specific content requirements"
    },
    "tagging": {
        "accountsToTag": ["@brandhandle", "@companyhandle"],
        "locationsToTag": ["Location Name"]
    },
    "hashtags": {
        "requiredHashtags": ["#brand", "#campaign"],
        "optionalHashtags": ["#influencer", "#partnership"]
    },
    "links": {
        "url": "https://brand.com/campaign",
        "callToAction": "Visit our website",
        "placement": "bio_link"
    },
    "assets": {
        "assetType": "image_assets",
        "quantity": 1,
        "deliveryMethod": "email",
        "resolution": "high_resolution"
    }
}

Only return the JSON, no additional text. If information is not available, use null or empty arrays/strings.`

type visionRequest struct {
	Model       string          `json:"model"`
	Messages    []visionMessage `json:"messages"`
	MaxTokens   int             `json:"max_tokens"`
	Temperature float64         `json:"temperature"`
}

type visionMessage struct {
	Role    string          `json:"role"`
	Content []visionContent `json:"content"`
}

type visionContent struct {
	Type     string          `json:"type"`
	Text     string          `json:"text,omitempty"`
	ImageURL *visionImageURL `json:"image_url,omitempty"`
}

type visionImageURL struct {
	URL string `json:"url"`
}

type visionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}
