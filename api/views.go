package api

import (
	"time"

	"github.com/rpupo63/portfolio-cms-backend/database"
	"github.com/rpupo63/portfolio-cms-backend/models"
)

// Views present store rows in the public camelCase shape. Ids are strings and
// absent optional columns are omitted rather than null.

type projectView struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	LongDescription *string   `json:"longDescription,omitempty"`
	ImageURL        string    `json:"imageUrl"`
	ImageURLs       []string  `json:"imageUrls"`
	DemoURL         *string   `json:"demoUrl,omitempty"`
	GithubURL       *string   `json:"githubUrl,omitempty"`
	Category        string    `json:"category"`
	Featured        bool      `json:"featured"`
	Status          string    `json:"status"`
	StartDate       string    `json:"startDate"`
	EndDate         *string   `json:"endDate,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
	Tags            []string  `json:"tags"`
}

func newProjectView(p *models.Project) projectView {
	return projectView{
		ID:              formatID(p.ID),
		Title:           p.Title,
		Description:     p.Description,
		LongDescription: p.LongDescription,
		ImageURL:        valueOr(p.ImageURL, ""),
		ImageURLs:       p.Images(),
		DemoURL:         p.DemoURL,
		GithubURL:       p.GithubURL,
		Category:        p.Category,
		Featured:        bool(p.Featured),
		Status:          p.Status,
		StartDate:       p.StartDate,
		EndDate:         p.EndDate,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
		Tags:            p.TagNames(),
	}
}

type tagView struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func newTagView(t *models.Tag) tagView {
	return tagView{ID: formatID(t.ID), Name: t.Name, CreatedAt: t.CreatedAt, UpdatedAt: t.UpdatedAt}
}

type experienceView struct {
	ID           string    `json:"id"`
	Company      string    `json:"company"`
	Position     string    `json:"position"`
	Location     string    `json:"location"`
	Type         string    `json:"type"`
	StartDate    string    `json:"startDate"`
	EndDate      *string   `json:"endDate,omitempty"`
	Description  string    `json:"description"`
	Achievements []string  `json:"achievements"`
	Technologies []string  `json:"technologies"`
	CreatedAt    time.Time `json:"createdAt"`
}

func newExperienceView(e *models.Experience) experienceView {
	return experienceView{
		ID:           formatID(e.ID),
		Company:      e.Company,
		Position:     e.Position,
		Location:     e.Location,
		Type:         e.Type,
		StartDate:    e.StartDate,
		EndDate:      e.EndDate,
		Description:  e.Description,
		Achievements: e.AchievementList(),
		Technologies: e.TechnologyNames(),
		CreatedAt:    e.CreatedAt,
	}
}

type skillView struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Category          string    `json:"category"`
	Icon              *string   `json:"icon,omitempty"`
	YearsOfExperience int       `json:"yearsOfExperience"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

func newSkillView(s *models.Skill) skillView {
	return skillView{
		ID:                formatID(s.ID),
		Name:              s.Name,
		Category:          s.Category,
		Icon:              s.Icon,
		YearsOfExperience: s.YearsOfExperience,
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
	}
}

type galleryView struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	ImageURL    string    `json:"imageUrl"`
	SortOrder   int       `json:"sortOrder"`
	IsFeatured  bool      `json:"isFeatured"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func newGalleryView(g *models.Gallery) galleryView {
	return galleryView{
		ID:          formatID(g.ID),
		Title:       g.Title,
		Description: g.Description,
		ImageURL:    g.ImageURL,
		SortOrder:   g.SortOrder,
		IsFeatured:  bool(g.IsFeatured),
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
}

type certificateView struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Issuer        string    `json:"issuer"`
	IssueDate     string    `json:"issueDate"`
	CredentialURL *string   `json:"credentialUrl,omitempty"`
	ImageURL      *string   `json:"imageUrl,omitempty"`
	Description   *string   `json:"description,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func newCertificateView(c *models.Certificate) certificateView {
	return certificateView{
		ID:            formatID(c.ID),
		Title:         c.Title,
		Issuer:        c.Issuer,
		IssueDate:     c.IssueDate,
		CredentialURL: c.CredentialURL,
		ImageURL:      c.ImageURL,
		Description:   c.Description,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

type socialLinks struct {
	Github   *string `json:"github,omitempty"`
	Linkedin *string `json:"linkedin,omitempty"`
	Twitter  *string `json:"twitter,omitempty"`
	Website  *string `json:"website,omitempty"`
}

type profileView struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Tagline     string      `json:"tagline"`
	Bio         string      `json:"bio"`
	Email       string      `json:"email"`
	Phone       *string     `json:"phone,omitempty"`
	Location    string      `json:"location"`
	AvatarURL   *string     `json:"avatarUrl,omitempty"`
	ResumeURL   *string     `json:"resumeUrl,omitempty"`
	SocialLinks socialLinks `json:"socialLinks"`
}

// newProfileView renders an empty profile when p is nil.
func newProfileView(p *models.Profile) profileView {
	view := profileView{ID: formatID(models.ProfileID)}
	if p == nil {
		return view
	}
	view.Name = p.Name
	view.Tagline = p.Tagline
	view.Bio = p.Bio
	view.Email = p.Email
	view.Phone = p.Phone
	view.Location = p.Location
	view.AvatarURL = p.AvatarURL
	view.ResumeURL = p.ResumeURL
	view.SocialLinks = socialLinks{
		Github:   p.GithubURL,
		Linkedin: p.LinkedinURL,
		Twitter:  p.TwitterURL,
		Website:  p.WebsiteURL,
	}
	return view
}

type overviewView struct {
	TotalProjects     int64 `json:"totalProjects"`
	ActiveProjects    int64 `json:"activeProjects"`
	TotalExperiences  int64 `json:"totalExperiences"`
	TotalSkills       int64 `json:"totalSkills"`
	TotalGalleries    int64 `json:"totalGalleries"`
	TotalCertificates int64 `json:"totalCertificates"`
	TotalTags         int64 `json:"totalTags"`
}

func newOverviewView(o database.Overview) overviewView {
	return overviewView{
		TotalProjects:     o.TotalProjects,
		ActiveProjects:    o.ActiveProjects,
		TotalExperiences:  o.TotalExperiences,
		TotalSkills:       o.TotalSkills,
		TotalGalleries:    o.TotalGalleries,
		TotalCertificates: o.TotalCertificates,
		TotalTags:         o.TotalTags,
	}
}

func mapViews[M any, V any](rows []*M, view func(*M) V) []V {
	out := make([]V, 0, len(rows))
	for _, row := range rows {
		out = append(out, view(row))
	}
	return out
}
