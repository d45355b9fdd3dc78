package admin

import (
	"github.com/rpupo63/devfolio-backend/models"
	"gorm.io/datatypes"
)

// Form is implemented by every editor form. Normalize trims the text fields, Validate checks the
// required ones, and Apply writes the form onto a record.
type Form[T any] interface {
	Normalize()
	Validate() error
	Apply(row *T) error
}

// Bind normalizes, validates and applies form onto row.
func Bind[T any](form Form[T], row *T) error {
	form.Normalize()
	if err := form.Validate(); err != nil {
		return err
	}
	return form.Apply(row)
}

type ProfileForm struct {
	Name           string `json:"name"`
	RoleTitle      string `json:"role_title"`
	Bio            string `json:"bio"`
	TechStack      string `json:"tech_stack"`
	GithubUsername string `json:"github_username"`
}

func ProfileFormFrom(p *models.Profile) ProfileForm {
	if p == nil {
		return ProfileForm{}
	}
	return ProfileForm{
		Name:           p.Name,
		RoleTitle:      p.RoleTitle,
		Bio:            p.Bio,
		TechStack:      JoinTags(p.TechStack),
		GithubUsername: p.GithubUsername,
	}
}

func (f *ProfileForm) Normalize() {
	trimAll(&f.Name, &f.RoleTitle, &f.Bio, &f.TechStack, &f.GithubUsername)
}

func (f *ProfileForm) Validate() error { return validateForm(f) }

func (f *ProfileForm) Apply(p *models.Profile) error {
	p.Name = f.Name
	p.RoleTitle = f.RoleTitle
	p.Bio = f.Bio
	p.TechStack = datatypes.JSONSlice[string](ParseTags(f.TechStack))
	p.GithubUsername = f.GithubUsername
	return nil
}

type ProjectForm struct {
	Title         string `json:"title" validate:"required"`
	Description   string `json:"description"`
	TechStackTags string `json:"tech_stack_tags"`
	GithubURL     string `json:"github_url"`
	DemoURL       string `json:"demo_url"`
	ThumbnailURL  string `json:"thumbnail_url"`
	DisplayOrder  int    `json:"display_order"`
}

func ProjectFormFrom(p *models.Project) ProjectForm {
	return ProjectForm{
		Title:         p.Title,
		Description:   deref(p.Description),
		TechStackTags: JoinTags(p.TechStackTags),
		GithubURL:     deref(p.GithubURL),
		DemoURL:       deref(p.DemoURL),
		ThumbnailURL:  deref(p.ThumbnailURL),
		DisplayOrder:  p.DisplayOrder,
	}
}

func (f *ProjectForm) Normalize() {
	trimAll(&f.Title, &f.Description, &f.TechStackTags, &f.GithubURL, &f.DemoURL, &f.ThumbnailURL)
}

func (f *ProjectForm) Validate() error { return validateForm(f) }

func (f *ProjectForm) Apply(p *models.Project) error {
	p.Title = f.Title
	p.Description = optional(f.Description)
	p.TechStackTags = datatypes.JSONSlice[string](ParseTags(f.TechStackTags))
	p.GithubURL = optional(f.GithubURL)
	p.DemoURL = optional(f.DemoURL)
	p.ThumbnailURL = optional(f.ThumbnailURL)
	p.DisplayOrder = f.DisplayOrder
	return nil
}

type SocialLinkForm struct {
	Platform     string `json:"platform" validate:"required"`
	URL          string `json:"url" validate:"required"`
	Icon         string `json:"icon"`
	DisplayOrder int    `json:"display_order"`
}

func SocialLinkFormFrom(l *models.SocialLink) SocialLinkForm {
	return SocialLinkForm{
		Platform:     l.Platform,
		URL:          l.URL,
		Icon:         string(l.Icon),
		DisplayOrder: l.DisplayOrder,
	}
}

func (f *SocialLinkForm) Normalize() {
	trimAll(&f.Platform, &f.URL, &f.Icon)
}

func (f *SocialLinkForm) Validate() error { return validateForm(f) }

func (f *SocialLinkForm) Apply(l *models.SocialLink) error {
	l.Platform = f.Platform
	l.URL = f.URL
	l.Icon = models.ParseSocialIcon(f.Icon)
	l.DisplayOrder = f.DisplayOrder
	return nil
}

type ExperienceForm struct {
	Company      string `json:"company" validate:"required"`
	Position     string `json:"position" validate:"required"`
	Location     string `json:"location"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	IsCurrent    bool   `json:"is_current"`
	Description  string `json:"description"`
	DisplayOrder int    `json:"display_order"`
}

func ExperienceFormFrom(e *models.Experience) ExperienceForm {
	return ExperienceForm{
		Company:      e.Company,
		Position:     e.Position,
		Location:     deref(e.Location),
		StartDate:    formatDate(e.StartDate),
		EndDate:      formatDate(e.EndDate),
		IsCurrent:    e.IsCurrent,
		Description:  deref(e.Description),
		DisplayOrder: e.DisplayOrder,
	}
}

func (f *ExperienceForm) Normalize() {
	trimAll(&f.Company, &f.Position, &f.Location, &f.StartDate, &f.EndDate, &f.Description)
	if f.IsCurrent {
		f.EndDate = ""
	}
}

func (f *ExperienceForm) Validate() error { return validateForm(f) }

func (f *ExperienceForm) Apply(e *models.Experience) error {
	start, err := parseDate("start_date", f.StartDate)
	if err != nil {
		return err
	}
	end, err := parseDate("end_date", f.EndDate)
	if err != nil {
		return err
	}
	e.Company = f.Company
	e.Position = f.Position
	e.Location = optional(f.Location)
	e.StartDate = start
	e.EndDate = end
	e.IsCurrent = f.IsCurrent
	e.Description = optional(f.Description)
	e.DisplayOrder = f.DisplayOrder
	return nil
}

type EducationForm struct {
	Institution  string `json:"institution" validate:"required"`
	Degree       string `json:"degree" validate:"required"`
	FieldOfStudy string `json:"field_of_study"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	Description  string `json:"description"`
	DisplayOrder int    `json:"display_order"`
}

func EducationFormFrom(e *models.Education) EducationForm {
	return EducationForm{
		Institution:  e.Institution,
		Degree:       e.Degree,
		FieldOfStudy: deref(e.FieldOfStudy),
		StartDate:    formatDate(e.StartDate),
		EndDate:      formatDate(e.EndDate),
		Description:  deref(e.Description),
		DisplayOrder: e.DisplayOrder,
	}
}

func (f *EducationForm) Normalize() {
	trimAll(&f.Institution, &f.Degree, &f.FieldOfStudy, &f.StartDate, &f.EndDate, &f.Description)
}

func (f *EducationForm) Validate() error { return validateForm(f) }

func (f *EducationForm) Apply(e *models.Education) error {
	start, err := parseDate("start_date", f.StartDate)
	if err != nil {
		return err
	}
	end, err := parseDate("end_date", f.EndDate)
	if err != nil {
		return err
	}
	e.Institution = f.Institution
	e.Degree = f.Degree
	e.FieldOfStudy = optional(f.FieldOfStudy)
	e.StartDate = start
	e.EndDate = end
	e.Description = optional(f.Description)
	e.DisplayOrder = f.DisplayOrder
	return nil
}

type CertificationForm struct {
	Title         string `json:"title" validate:"required"`
	Issuer        string `json:"issuer" validate:"required"`
	IssueDate     string `json:"issue_date"`
	CredentialURL string `json:"credential_url"`
	ImageURL      string `json:"image_url"`
	DisplayOrder  int    `json:"display_order"`
}

func CertificationFormFrom(c *models.Certification) CertificationForm {
	return CertificationForm{
		Title:         c.Title,
		Issuer:        c.Issuer,
		IssueDate:     formatDate(c.IssueDate),
		CredentialURL: deref(c.CredentialURL),
		ImageURL:      deref(c.ImageURL),
		DisplayOrder:  c.DisplayOrder,
	}
}

func (f *CertificationForm) Normalize() {
	trimAll(&f.Title, &f.Issuer, &f.IssueDate, &f.CredentialURL, &f.ImageURL)
}

func (f *CertificationForm) Validate() error { return validateForm(f) }

func (f *CertificationForm) Apply(c *models.Certification) error {
	issued, err := parseDate("issue_date", f.IssueDate)
	if err != nil {
		return err
	}
	c.Title = f.Title
	c.Issuer = f.Issuer
	c.IssueDate = issued
	c.CredentialURL = optional(f.CredentialURL)
	c.ImageURL = optional(f.ImageURL)
	c.DisplayOrder = f.DisplayOrder
	return nil
}
