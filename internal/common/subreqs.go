package common

// The payloads below mirror the sections of a brand agreement. Each one is
// optional on a Requirement and independently present.

type ContentRequirements struct {
	ContentTypes         []string `json:"contentTypes,omitempty"`
	MinCount             int      `json:"minCount,omitempty"`
	MaxCount             int      `json:"maxCount,omitempty"`
	SpecificInstructions string   `json:"specificInstructions,omitempty"`
}

type TaggingRequirements struct {
	AccountsToTag  []string `json:"accountsToTag,omitempty"`
	LocationsToTag []string `json:"locationsToTag,omitempty"`
}

type LinkRequirements struct {
	URL          string `json:"url"`
	CallToAction string `json:"callToAction,omitempty"`
	Placement    string `json:"placement,omitempty"` // e.g. "bio_link", "story_link"
}

type HashtagRequirements struct {
	RequiredHashtags []string `json:"requiredHashtags,omitempty"`
	OptionalHashtags []string `json:"optionalHashtags,omitempty"`
}

type AssetRequirements struct {
	AssetType      string `json:"assetType,omitempty"`
	Quantity       int    `json:"quantity,omitempty"`
	DeliveryMethod string `json:"deliveryMethod,omitempty"`
	Resolution     string `json:"resolution,omitempty"`
}
