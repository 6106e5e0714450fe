package vision

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/pierson-davis/on-brand-ios-sub000/internal/common"
)

// ParsedDealInfo is the model's best-effort reading of a deal email. It is
// a one-way staging value: the caller reviews it and converts it into a
// Requirement; it is never persisted itself.
type ParsedDealInfo struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Brand       string `json:"brand"`

	Campaign     string `json:"campaign,omitempty"`
	DueDate      int64  `json:"dueDate,omitempty"`
	Compensation string `json:"compensation,omitempty"`

	Requirements *common.ContentRequirements `json:"requirements,omitempty"`
	Tagging      *common.TaggingRequirements `json:"tagging,omitempty"`
	Hashtags     *common.HashtagRequirements `json:"hashtags,omitempty"`
	Links        *common.LinkRequirements    `json:"links,omitempty"`
	Assets       *common.AssetRequirements   `json:"assets,omitempty"`
}

// parsedDealData is the loose intermediate shape. Every field is optional
// because the model's output is not guaranteed well-formed; the conversion
// below is the only place defaults get substituted.
type parsedDealData struct {
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	Brand        *string `json:"brand"`
	Campaign     *string `json:"campaign"`
	DueDate      *string `json:"dueDate"`
	Compensation *string `json:"compensation"`

	Requirements *struct {
		ContentTypes         []string `json:"contentTypes"`
		MinCount             *int     `json:"minCount"`
		SpecificInstructions *string  `json:"specificInstructions"`
	} `json:"requirements"`

	Tagging *struct {
		AccountsToTag  []string `json:"accountsToTag"`
		LocationsToTag []string `json:"locationsToTag"`
	} `json:"tagging"`

	Hashtags *struct {
		RequiredHashtags []string `json:"requiredHashtags"`
		OptionalHashtags []string `json:"optionalHashtags"`
	} `json:"hashtags"`

	Links *struct {
		URL          *string `json:"url"`
		CallToAction *string `json:"callToAction"`
		Placement    *string `json:"placement"`
	} `json:"links"`

	Assets *struct {
		AssetType      *string `json:"assetType"`
		Quantity       *int    `json:"quantity"`
		DeliveryMethod *string `json:"deliveryMethod"`
		Resolution     *string `json:"resolution"`
	} `json:"assets"`
}

// DecodeDealJSON strips markdown fences off the model's answer and decodes
// it. Malformed JSON is a hard error, never a partially filled result.
func DecodeDealJSON(content string) (*ParsedDealInfo, error) {
	clean := strings.ReplaceAll(content, "```json", "")
	clean = strings.ReplaceAll(clean, "```", "")
	clean = strings.TrimSpace(clean)

	var data parsedDealData
	if err := json.Unmarshal([]byte(clean), &data); err != nil {
		return nil, err
	}

	info := &ParsedDealInfo{
		Title:        orDefault(data.Title, "Untitled Deal"),
		Description:  orDefault(data.Description, ""),
		Brand:        orDefault(data.Brand, ""),
		Campaign:     orDefault(data.Campaign, ""),
		Compensation: orDefault(data.Compensation, ""),
	}

	if data.DueDate != nil {
		if t, err := time.Parse("2006-01-02", *data.DueDate); err == nil {
			info.DueDate = t.Unix()
		}
	}

	if req := data.Requirements; req != nil {
		info.Requirements = &common.ContentRequirements{
			ContentTypes:         req.ContentTypes,
			MinCount:             orZero(req.MinCount),
			SpecificInstructions: orDefault(req.SpecificInstructions, ""),
		}
	}
	if tag := data.Tagging; tag != nil {
		info.Tagging = &common.TaggingRequirements{
			AccountsToTag:  tag.AccountsToTag,
			LocationsToTag: tag.LocationsToTag,
		}
	}
	if h := data.Hashtags; h != nil {
		info.Hashtags = &common.HashtagRequirements{
			RequiredHashtags: h.RequiredHashtags,
			OptionalHashtags: h.OptionalHashtags,
		}
	}
	if l := data.Links; l != nil {
		info.Links = &common.LinkRequirements{
			URL:          orDefault(l.URL, ""),
			CallToAction: orDefault(l.CallToAction, ""),
			Placement:    orDefault(l.Placement, ""),
		}
	}
	if a := data.Assets; a != nil {
		quantity := orZero(a.Quantity)
		if quantity == 0 {
			quantity = 1
		}
		info.Assets = &common.AssetRequirements{
			AssetType:      orDefault(a.AssetType, ""),
			Quantity:       quantity,
			DeliveryMethod: orDefault(a.DeliveryMethod, ""),
			Resolution:     orDefault(a.Resolution, ""),
		}
	}

	return info, nil
}

// ToRequirement converts an accepted parse into a fresh pending
// Requirement. The type comes from the first recognized content type; a
// deal with none becomes a custom requirement.
func (p *ParsedDealInfo) ToRequirement() *common.Requirement {
	typ := common.CustomRequirement
	if p.Requirements != nil {
		for _, ct := range p.Requirements.ContentTypes {
			if t := common.RequirementType(ct); t.IsValid() {
				typ = t
				break
			}
		}
	}

	r := common.NewRequirement(typ, p.Title, p.Description, p.Brand)
	r.CampaignName = p.Campaign
	r.DueDate = p.DueDate
	r.ContentRequirements = p.Requirements
	r.TaggingRequirements = p.Tagging
	r.HashtagRequirements = p.Hashtags
	r.LinkRequirements = p.Links
	r.AssetRequirements = p.Assets
	if p.Compensation != "" {
		r.Notes = "Compensation: " + p.Compensation
	}
	return r
}

func orDefault(s *string, def string) string {
	if s == nil || *s == "" {
		return def
	}
	return *s
}

func orZero(n *int) int {
	if n == nil {
		return 0
	}
	return *n
}
