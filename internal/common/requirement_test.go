package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequirementDefaults(t *testing.T) {
	r := NewRequirement(InstagramPost, "Launch post", "One feed post", "Nike")
	require.NotEmpty(t, r.Id)
	assert.Equal(t, StatusPending, r.Status)
	assert.Equal(t, PriorityMedium, r.Priority)
	assert.True(t, r.IsMandatory)
	assert.Equal(t, r.CreatedAt, r.UpdatedAt)
	assert.False(t, r.IsCompleted())
	assert.False(t, r.IsOverdue())
}

func TestIsOverdue(t *testing.T) {
	r := NewRequirement(InstagramStory, "Story", "", "Nike")

	// no due date, never overdue
	assert.False(t, r.IsOverdue())

	r.DueDate = time.Now().Add(-24 * time.Hour).Unix()
	assert.True(t, r.IsOverdue())

	// completing an overdue item clears the overdue state
	r.MarkCompleted()
	assert.False(t, r.IsOverdue())

	r = NewRequirement(InstagramStory, "Story", "", "Nike")
	r.DueDate = time.Now().Add(24 * time.Hour).Unix()
	assert.False(t, r.IsOverdue())
}

func TestSetStatusCompletedAt(t *testing.T) {
	r := NewRequirement(TikTokVideo, "Video", "", "Adidas")

	r.SetStatus(StatusCompleted)
	require.NotZero(t, r.CompletedAt)
	first := r.CompletedAt

	// verified keeps the original completion time
	r.SetStatus(StatusVerified)
	assert.Equal(t, first, r.CompletedAt)

	// moving back to an incomplete state clears it
	r.SetStatus(StatusInProgress)
	assert.Zero(t, r.CompletedAt)
	assert.False(t, r.IsCompleted())
}

func TestMarkVerified(t *testing.T) {
	r := NewRequirement(AccountTagging, "Tag us", "", "Nike")
	require.True(t, r.CanAutoVerify())

	r.MarkVerified("ops", VerifyAutomatic)
	assert.Equal(t, StatusVerified, r.Status)
	assert.True(t, r.IsVerified())
	assert.NotZero(t, r.CompletedAt)
	assert.NotZero(t, r.VerifiedAt)
	assert.Equal(t, "ops", r.VerifiedBy)
	assert.Equal(t, VerifyAutomatic, r.VerificationMethod)
}

func TestOnPlatform(t *testing.T) {
	r := NewRequirement(InstagramPost, "Post", "", "Nike")
	assert.False(t, r.OnPlatform(Instagram))

	r.TaggingRequirements = &TaggingRequirements{AccountsToTag: []string{"@nike"}}
	assert.True(t, r.OnPlatform(Instagram))

	// tagging payload present but empty wins over a later link payload
	r.TaggingRequirements = &TaggingRequirements{}
	r.LinkRequirements = &LinkRequirements{URL: "https://nike.com"}
	assert.False(t, r.OnPlatform(Instagram))

	r.TaggingRequirements = nil
	assert.True(t, r.OnPlatform(TikTok))

	r.LinkRequirements = nil
	r.HashtagRequirements = &HashtagRequirements{OptionalHashtags: []string{"#justdoit"}}
	assert.True(t, r.OnPlatform(Instagram))
}

func TestAddComment(t *testing.T) {
	r := NewRequirement(InstagramPost, "Post", "", "Nike")
	cmt := r.AddComment("looks good", "brand-manager", true)
	require.Len(t, r.Comments, 1)
	assert.NotEmpty(t, cmt.Id)
	assert.True(t, cmt.IsFromBrand)
	assert.Equal(t, cmt.CreatedAt, r.UpdatedAt)
}

func TestTypeValidation(t *testing.T) {
	assert.True(t, InstagramReel.IsValid())
	assert.True(t, CustomRequirement.IsValid())
	assert.False(t, RequirementType("instagram").IsValid())

	assert.True(t, HashtagUsage.CanAutoVerify())
	assert.False(t, InstagramPost.CanAutoVerify())
	assert.False(t, MeetingAttendance.CanAutoVerify())
}

func TestTypeDisplayNames(t *testing.T) {
	assert.Equal(t, "Instagram Post", InstagramPost.DisplayName())
	assert.Equal(t, "Behind The Scenes", BehindTheScenes.DisplayName())
	assert.Equal(t, "TikTok Video", TikTokVideo.DisplayName())
	assert.Equal(t, "FTC Disclosure", FTCDisclosure.DisplayName())
	assert.Equal(t, "Custom Requirement", CustomRequirement.DisplayName())
}
