package common

import (
	"time"

	"github.com/google/uuid"
)

// Requirement is a single trackable obligation within a brand partnership,
// e.g. "post an Instagram story by March 1". It is owned by the requirements
// manager once added and must only be mutated through it.
type Requirement struct {
	Id string `json:"id"`

	Type        RequirementType `json:"type"`
	Title       string          `json:"title"`
	Description string          `json:"description"`

	BrandName    string `json:"brandName"`
	CampaignName string `json:"campaignName,omitempty"`

	// Unix timestamps. A zero DueDate means no deadline.
	CreatedAt   int64 `json:"createdAt"`
	UpdatedAt   int64 `json:"updatedAt"`
	DueDate     int64 `json:"dueDate,omitempty"`
	CompletedAt int64 `json:"completedAt,omitempty"`

	Status      RequirementStatus   `json:"status"`
	Priority    RequirementPriority `json:"priority"`
	IsMandatory bool                `json:"isMandatory"`

	ContentRequirements *ContentRequirements `json:"contentRequirements,omitempty"`
	TaggingRequirements *TaggingRequirements `json:"taggingRequirements,omitempty"`
	LinkRequirements    *LinkRequirements    `json:"linkRequirements,omitempty"`
	HashtagRequirements *HashtagRequirements `json:"hashtagRequirements,omitempty"`
	AssetRequirements   *AssetRequirements   `json:"assetRequirements,omitempty"`

	// Only set once the requirement is verified
	VerifiedAt         int64              `json:"verifiedAt,omitempty"`
	VerifiedBy         string             `json:"verifiedBy,omitempty"`
	VerificationMethod VerificationMethod `json:"verificationMethod,omitempty"`

	Notes    string     `json:"notes,omitempty"`
	Comments []*Comment `json:"comments,omitempty"`
}

type Comment struct {
	Id          string `json:"id"`
	Text        string `json:"text"`
	Author      string `json:"author"`
	IsFromBrand bool   `json:"isFromBrand,omitempty"`
	CreatedAt   int64  `json:"createdAt"`
}

func NewRequirement(typ RequirementType, title, description, brand string) *Requirement {
	now := time.Now().Unix()
	return &Requirement{
		Id:          uuid.NewString(),
		Type:        typ,
		Title:       title,
		Description: description,
		BrandName:   brand,
		CreatedAt:   now,
		UpdatedAt:   now,
		Status:      StatusPending,
		Priority:    PriorityMedium,
		IsMandatory: true,
	}
}

func (r *Requirement) IsCompleted() bool {
	return r.Status == StatusCompleted || r.Status == StatusVerified
}

func (r *Requirement) IsVerified() bool {
	return r.Status == StatusVerified
}

func (r *Requirement) IsOverdue() bool {
	return r.DueDate != 0 && time.Now().Unix() > r.DueDate && !r.IsCompleted()
}

// DaysUntilDue is negative once the due date has passed and zero when the
// requirement has no deadline.
func (r *Requirement) DaysUntilDue() int {
	if r.DueDate == 0 {
		return 0
	}
	return int(time.Until(time.Unix(r.DueDate, 0)).Hours() / 24)
}

func (r *Requirement) CanAutoVerify() bool {
	return r.Type.CanAutoVerify()
}

// OnPlatform reports whether this requirement involves the given social
// platform. There is no platform field on the model, so this is inferred
// from the presence of a non-empty tagging/link/hashtag payload; the answer
// is the same for every platform. A known approximation.
func (r *Requirement) OnPlatform(_ SocialPlatform) bool {
	if t := r.TaggingRequirements; t != nil {
		return len(t.AccountsToTag) > 0
	}
	if l := r.LinkRequirements; l != nil {
		return l.URL != ""
	}
	if h := r.HashtagRequirements; h != nil {
		return len(h.RequiredHashtags) > 0 || len(h.OptionalHashtags) > 0
	}
	return false
}

func (r *Requirement) MarkCompleted() {
	now := time.Now().Unix()
	r.Status = StatusCompleted
	r.CompletedAt = now
	r.UpdatedAt = now
}

func (r *Requirement) MarkVerified(by string, method VerificationMethod) {
	now := time.Now().Unix()
	r.Status = StatusVerified
	if r.CompletedAt == 0 {
		r.CompletedAt = now
	}
	r.VerifiedAt = now
	r.VerifiedBy = by
	r.VerificationMethod = method
	r.UpdatedAt = now
}

func (r *Requirement) AddComment(text, author string, fromBrand bool) *Comment {
	cmt := &Comment{
		Id:          uuid.NewString(),
		Text:        text,
		Author:      author,
		IsFromBrand: fromBrand,
		CreatedAt:   time.Now().Unix(),
	}
	r.Comments = append(r.Comments, cmt)
	r.UpdatedAt = cmt.CreatedAt
	return cmt
}

func (r *Requirement) SetStatus(s RequirementStatus) {
	now := time.Now().Unix()
	r.Status = s
	if s == StatusCompleted || s == StatusVerified {
		if r.CompletedAt == 0 {
			r.CompletedAt = now
		}
	} else {
		r.CompletedAt = 0
	}
	r.UpdatedAt = now
}
