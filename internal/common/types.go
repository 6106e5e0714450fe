package common

import "strings"

// RequirementType covers the obligations seen in real influencer
// agreements, from content creation down to event attendance.
type RequirementType string

const (
	// Content creation
	InstagramPost  RequirementType = "instagram_post"
	InstagramStory RequirementType = "instagram_story"
	InstagramReel  RequirementType = "instagram_reel"
	TikTokVideo    RequirementType = "tiktok_video"
	YouTubeVideo   RequirementType = "youtube_video"
	TwitterPost    RequirementType = "twitter_post"
	FacebookPost   RequirementType = "facebook_post"
	LinkedInPost   RequirementType = "linkedin_post"

	// Asset delivery
	ImageAssets RequirementType = "image_assets"
	VideoAssets RequirementType = "video_assets"
	RawFootage  RequirementType = "raw_footage"

	// Promotional
	PromoCode     RequirementType = "promo_code"
	TrackingLink  RequirementType = "tracking_link"
	AffiliateLink RequirementType = "affiliate_link"

	// Engagement
	AccountTagging RequirementType = "account_tagging"
	HashtagUsage   RequirementType = "hashtag_usage"
	GeoTagging     RequirementType = "geo_tagging"
	LinkInclusion  RequirementType = "link_inclusion"

	// Compliance
	FTCDisclosure   RequirementType = "ftc_disclosure"
	BrandCompliance RequirementType = "brand_compliance"
	ContentApproval RequirementType = "content_approval"

	// Communication
	EmailCommunication RequirementType = "email_communication"
	PhoneCall          RequirementType = "phone_call"
	MeetingAttendance  RequirementType = "meeting_attendance"

	// Events
	EventAttendance RequirementType = "event_attendance"
	LiveStreaming   RequirementType = "live_streaming"
	BehindTheScenes RequirementType = "behind_the_scenes"

	CustomRequirement RequirementType = "custom"
)

var allTypes = map[RequirementType]bool{
	InstagramPost: true, InstagramStory: true, InstagramReel: true,
	TikTokVideo: true, YouTubeVideo: true, TwitterPost: true,
	FacebookPost: true, LinkedInPost: true, ImageAssets: true,
	VideoAssets: true, RawFootage: true, PromoCode: true,
	TrackingLink: true, AffiliateLink: true, AccountTagging: true,
	HashtagUsage: true, GeoTagging: true, LinkInclusion: true,
	FTCDisclosure: true, BrandCompliance: true, ContentApproval: true,
	EmailCommunication: true, PhoneCall: true, MeetingAttendance: true,
	EventAttendance: true, LiveStreaming: true, BehindTheScenes: true,
	CustomRequirement: true,
}

func (t RequirementType) IsValid() bool {
	return allTypes[t]
}

var typeDisplayNames = map[RequirementType]string{
	TikTokVideo:       "TikTok Video",
	YouTubeVideo:      "YouTube Video",
	LinkedInPost:      "LinkedIn Post",
	FTCDisclosure:     "FTC Disclosure",
	CustomRequirement: "Custom Requirement",
}

func (t RequirementType) DisplayName() string {
	if name, ok := typeDisplayNames[t]; ok {
		return name
	}
	words := strings.Split(string(t), "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

// CanAutoVerify reports whether completion of this type can be checked
// programmatically (tags, hashtags and links can be scraped; raw content
// and meetings cannot).
func (t RequirementType) CanAutoVerify() bool {
	switch t {
	case AccountTagging, HashtagUsage, GeoTagging, LinkInclusion,
		PromoCode, TrackingLink, AffiliateLink,
		FTCDisclosure, BrandCompliance:
		return true
	}
	return false
}

type RequirementStatus string

const (
	StatusPending    RequirementStatus = "pending"
	StatusInProgress RequirementStatus = "in_progress"
	StatusCompleted  RequirementStatus = "completed"
	StatusVerified   RequirementStatus = "verified"
)

var statusOrdinals = map[RequirementStatus]int{
	StatusPending:    0,
	StatusInProgress: 1,
	StatusCompleted:  2,
	StatusVerified:   3,
}

func (s RequirementStatus) IsValid() bool {
	_, ok := statusOrdinals[s]
	return ok
}

func (s RequirementStatus) Ordinal() int {
	return statusOrdinals[s]
}

func (s RequirementStatus) DisplayName() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusInProgress:
		return "In Progress"
	case StatusCompleted:
		return "Completed"
	case StatusVerified:
		return "Verified"
	}
	return string(s)
}

type RequirementPriority string

const (
	PriorityLow      RequirementPriority = "low"
	PriorityMedium   RequirementPriority = "medium"
	PriorityHigh     RequirementPriority = "high"
	PriorityCritical RequirementPriority = "critical"
)

var priorityOrdinals = map[RequirementPriority]int{
	PriorityLow:      0,
	PriorityMedium:   1,
	PriorityHigh:     2,
	PriorityCritical: 3,
}

func (p RequirementPriority) IsValid() bool {
	_, ok := priorityOrdinals[p]
	return ok
}

func (p RequirementPriority) Ordinal() int {
	return priorityOrdinals[p]
}

type VerificationMethod string

const (
	VerifyManual    VerificationMethod = "manual"
	VerifyAutomatic VerificationMethod = "automatic"
	VerifyHybrid    VerificationMethod = "hybrid"
)

type SocialPlatform string

const (
	Instagram SocialPlatform = "instagram"
	TikTok    SocialPlatform = "tiktok"
	YouTube   SocialPlatform = "youtube"
	Twitter   SocialPlatform = "twitter"
	Facebook  SocialPlatform = "facebook"
	LinkedIn  SocialPlatform = "linkedin"
	Snapchat  SocialPlatform = "snapchat"
	Pinterest SocialPlatform = "pinterest"
)
