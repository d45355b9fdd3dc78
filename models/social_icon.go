package models

import (
	"encoding/json"
	"strings"
)

// SocialIcon is the closed set of icons a social link can show.
type SocialIcon string

const (
	IconGithub    SocialIcon = "github"
	IconLinkedin  SocialIcon = "linkedin"
	IconTwitter   SocialIcon = "twitter"
	IconInstagram SocialIcon = "instagram"
	IconYoutube   SocialIcon = "youtube"
	IconGlobe     SocialIcon = "globe"
	IconMail      SocialIcon = "mail"
	IconLink      SocialIcon = "link"
)

// SocialIcons lists every icon in the order the admin picker offers them.
var SocialIcons = []SocialIcon{
	IconGithub,
	IconLinkedin,
	IconTwitter,
	IconInstagram,
	IconYoutube,
	IconGlobe,
	IconMail,
	IconLink,
}

// ParseSocialIcon maps free text to a known icon. Anything unrecognised becomes IconLink.
func ParseSocialIcon(s string) SocialIcon {
	switch SocialIcon(strings.ToLower(strings.TrimSpace(s))) {
	case IconGithub:
		return IconGithub
	case IconLinkedin:
		return IconLinkedin
	case IconTwitter:
		return IconTwitter
	case IconInstagram:
		return IconInstagram
	case IconYoutube:
		return IconYoutube
	case IconGlobe:
		return IconGlobe
	case IconMail:
		return IconMail
	default:
		return IconLink
	}
}

// Label is the human name shown next to the icon in pickers.
func (i SocialIcon) Label() string {
	switch i {
	case IconGithub:
		return "GitHub"
	case IconLinkedin:
		return "LinkedIn"
	case IconTwitter:
		return "Twitter / X"
	case IconInstagram:
		return "Instagram"
	case IconYoutube:
		return "YouTube"
	case IconGlobe:
		return "Website"
	case IconMail:
		return "Email"
	default:
		return "Other"
	}
}

func (i *SocialIcon) UnmarshalJSON(data []byte) error {
	var raw *string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		*i = IconLink
		return nil
	}
	*i = ParseSocialIcon(*raw)
	return nil
}
