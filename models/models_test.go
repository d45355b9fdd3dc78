package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm/schema"
)

func TestParseSocialIcon(t *testing.T) {
	cases := map[string]SocialIcon{
		"github":    IconGithub,
		" LinkedIn": IconLinkedin,
		"twitter":   IconTwitter,
		"instagram": IconInstagram,
		"youtube":   IconYoutube,
		"globe":     IconGlobe,
		"mail":      IconMail,
		"link":      IconLink,
		"mastodon":  IconLink,
		"":          IconLink,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseSocialIcon(in), "input %q", in)
	}
}

func TestSocialIconLabelsAreExhaustive(t *testing.T) {
	seen := make(map[string]bool)
	for _, icon := range SocialIcons {
		label := icon.Label()
		assert.NotEmpty(t, label)
		assert.False(t, seen[label], "duplicate label %q", label)
		seen[label] = true
	}
	assert.Equal(t, "Other", SocialIcon("unknown").Label())
}

func TestSocialIconUnmarshal(t *testing.T) {
	var link SocialLink
	require.NoError(t, json.Unmarshal([]byte(`{"platform":"Site","url":"https://x.dev","icon":"Globe"}`), &link))
	assert.Equal(t, IconGlobe, link.Icon)

	require.NoError(t, json.Unmarshal([]byte(`{"icon":null}`), &link))
	assert.Equal(t, IconLink, link.Icon)
}

func TestProjectHasTag(t *testing.T) {
	p := Project{TechStackTags: []string{"React", "Go"}}
	assert.True(t, p.HasTag("React"))
	assert.False(t, p.HasTag("react"))
}

func TestExperienceCurrentDropsEndDate(t *testing.T) {
	end := datatypes.Date(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))
	e := Experience{IsCurrent: true, EndDate: &end}
	require.NoError(t, e.BeforeSave(nil))
	assert.Nil(t, e.EndDate)
}

func TestFindColumnMismatches(t *testing.T) {
	cols := modelColumns(&SocialLink{}, schema.NamingStrategy{})
	assert.ElementsMatch(t, []string{"id", "platform", "url", "icon", "display_order"}, cols)

	missing := findColumnMismatches([]string{"id", "platform", "legacy"}, cols)
	assert.Equal(t, []string{"legacy"}, missing)
}
