package pages

import (
	"context"
	"strings"

	"github.com/rpupo63/devfolio-backend/models"
	"golang.org/x/sync/errgroup"
)

var noProfile = EmptyState{
	Title:       "No profile yet",
	Description: "The profile hasn't been set up. If you're the admin, head to Settings to create one.",
}

type ProfileView struct {
	Name      string   `json:"name"`
	Initials  string   `json:"initials"`
	RoleTitle string   `json:"roleTitle,omitempty"`
	Bio       string   `json:"bio,omitempty"`
	AvatarURL *string  `json:"avatarUrl,omitempty"`
	TechStack []string `json:"techStack,omitempty"`
}

type SocialLinkView struct {
	Platform string            `json:"platform"`
	URL      string            `json:"url"`
	Icon     models.SocialIcon `json:"icon"`
	Label    string            `json:"label"`
}

// ProfilePage is the landing page. Sections with no rows are left out.
type ProfilePage struct {
	Empty          *EmptyState             `json:"empty,omitempty"`
	Profile        *ProfileView            `json:"profile,omitempty"`
	SocialLinks    []SocialLinkView        `json:"socialLinks,omitempty"`
	Experience     []*models.Experience    `json:"experience,omitempty"`
	Education      []*models.Education     `json:"education,omitempty"`
	Certifications []*models.Certification `json:"certifications,omitempty"`
}

func (b *Builder) ProfilePage(ctx context.Context) (ProfilePage, error) {
	var (
		profile        *models.Profile
		links          []*models.SocialLink
		experience     []*models.Experience
		education      []*models.Education
		certifications []*models.Certification
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { profile, err = b.profile.Get(gctx); return })
	g.Go(func() (err error) { links, err = b.socialLinks.List(gctx); return })
	g.Go(func() (err error) { experience, err = b.experience.List(gctx); return })
	g.Go(func() (err error) { education, err = b.education.List(gctx); return })
	g.Go(func() (err error) { certifications, err = b.certifications.List(gctx); return })
	if err := g.Wait(); err != nil {
		b.logger.Error().Err(err).Msg("failed to load profile page")
		return ProfilePage{}, err
	}

	if profile == nil {
		empty := noProfile
		return ProfilePage{Empty: &empty}, nil
	}

	page := ProfilePage{
		Profile:        newProfileView(profile),
		Experience:     experience,
		Education:      education,
		Certifications: certifications,
	}
	for _, l := range links {
		page.SocialLinks = append(page.SocialLinks, SocialLinkView{
			Platform: l.Platform,
			URL:      l.URL,
			Icon:     l.Icon,
			Label:    l.Icon.Label(),
		})
	}
	return page, nil
}

func newProfileView(p *models.Profile) *ProfileView {
	name := p.Name
	if name == "" {
		name = "Unnamed"
	}
	return &ProfileView{
		Name:      name,
		Initials:  initials(p.Name),
		RoleTitle: p.RoleTitle,
		Bio:       p.Bio,
		AvatarURL: p.AvatarURL,
		TechStack: p.TechStack,
	}
}

// initials is the avatar fallback text: the first two letters of the name, upper-cased.
func initials(name string) string {
	runes := []rune(strings.TrimSpace(name))
	if len(runes) == 0 {
		return "??"
	}
	if len(runes) > 2 {
		runes = runes[:2]
	}
	return strings.ToUpper(string(runes))
}
