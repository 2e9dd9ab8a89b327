package handler

import (
	"bytes"
	"time"

	"github.com/devfolio/internal/db"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	markdownEngine = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify),
		goldmark.WithRendererOptions(html.WithHardWraps(), html.WithXHTML()),
	)
	sanitizer = bluemonday.UGCPolicy()
)

const dateLayout = "2006-01-02"

// Payload structs define the fixed field allow-list exposed per entity
// kind. Stored fields absent here (PersonalInfo.ProfileImage, the active
// flags) deliberately never reach clients.

type personalInfoPayload struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Location string `json:"location"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
	Resume   string `json:"resume"`
}

type aboutPayload struct {
	ID         uint     `json:"id"`
	Summary    string   `json:"summary"`
	Vision     string   `json:"vision"`
	Highlights []string `json:"highlights"`
}

type socialLinkPayload struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	URL   string `json:"url"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
	Order int    `json:"order"`
}

type contactPayload struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type projectPayload struct {
	ID                  uint      `json:"id"`
	Title               string    `json:"title"`
	Description         string    `json:"description"`
	LongDescription     string    `json:"long_description"`
	LongDescriptionHTML string    `json:"long_description_html"`
	Image               string    `json:"image"`
	Technologies        []string  `json:"technologies"`
	Features            []string  `json:"features"`
	GithubURL           string    `json:"github_url"`
	LiveURL             string    `json:"live_url"`
	Status              string    `json:"status"`
	CreatedAt           time.Time `json:"created_at"`
	IsFeatured          bool      `json:"is_featured"`
}

type skillPayload struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Level    int    `json:"level"`
	Icon     string `json:"icon"`
}

type experiencePayload struct {
	ID           uint     `json:"id"`
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Location     string   `json:"location"`
	StartDate    string   `json:"start_date"`
	EndDate      *string  `json:"end_date"`
	IsCurrent    bool     `json:"is_current"`
	Description  []string `json:"description"`
	Technologies []string `json:"technologies"`
	Duration     string   `json:"duration"`
}

type certificationPayload struct {
	ID              uint   `json:"id"`
	Title           string `json:"title"`
	Issuer          string `json:"issuer"`
	DateIssued      string `json:"date_issued"`
	CredentialID    string `json:"credential_id"`
	Description     string `json:"description"`
	VerificationURL string `json:"verification_url"`
	Logo            string `json:"logo"`
}

type educationPayload struct {
	ID          uint     `json:"id"`
	Degree      string   `json:"degree"`
	Institution string   `json:"institution"`
	Location    string   `json:"location"`
	StartDate   string   `json:"start_date"`
	EndDate     *string  `json:"end_date"`
	IsCurrent   bool     `json:"is_current"`
	GPA         string   `json:"gpa"`
	Description string   `json:"description"`
	Coursework  []string `json:"coursework"`
	Duration    string   `json:"duration"`
}

func personalInfoToPayload(info *db.PersonalInfo) personalInfoPayload {
	return personalInfoPayload{
		ID:       info.ID,
		Name:     info.Name,
		Title:    info.Title,
		Subtitle: info.Subtitle,
		Location: info.Location,
		Email:    info.Email,
		Phone:    info.Phone,
		LinkedIn: info.LinkedIn,
		GitHub:   info.GitHub,
		Resume:   info.Resume,
	}
}

func aboutToPayload(about *db.About) aboutPayload {
	return aboutPayload{
		ID:         about.ID,
		Summary:    about.Summary,
		Vision:     about.Vision,
		Highlights: stringSlice(about.Highlights),
	}
}

func socialLinkToPayload(link db.SocialLink) socialLinkPayload {
	return socialLinkPayload{
		ID:    link.ID,
		Name:  link.Name,
		URL:   link.URL,
		Icon:  link.Icon,
		Color: link.Color,
		Order: link.Order,
	}
}

func contactToPayload(msg *db.ContactMessage) contactPayload {
	return contactPayload{
		ID:        msg.ID,
		Name:      msg.Name,
		Email:     msg.Email,
		Subject:   msg.Subject,
		Message:   msg.Message,
		CreatedAt: msg.CreatedAt,
	}
}

func projectToPayload(project db.Project) projectPayload {
	return projectPayload{
		ID:                  project.ID,
		Title:               project.Title,
		Description:         project.Description,
		LongDescription:     project.LongDescription,
		LongDescriptionHTML: renderMarkdown(project.LongDescription),
		Image:               project.Image,
		Technologies:        stringSlice(project.Technologies),
		Features:            stringSlice(project.Features),
		GithubURL:           project.GithubURL,
		LiveURL:             project.LiveURL,
		Status:              project.Status,
		CreatedAt:           project.CreatedAt,
		IsFeatured:          project.IsFeatured,
	}
}

func projectsToPayload(projects []db.Project) []projectPayload {
	payloads := make([]projectPayload, 0, len(projects))
	for _, project := range projects {
		payloads = append(payloads, projectToPayload(project))
	}
	return payloads
}

func skillToPayload(skill db.Skill) skillPayload {
	return skillPayload{
		ID:       skill.ID,
		Name:     skill.Name,
		Category: skill.Category,
		Level:    skill.Level,
		Icon:     skill.Icon,
	}
}

func experienceToPayload(item db.Experience) experiencePayload {
	return experiencePayload{
		ID:           item.ID,
		Title:        item.Title,
		Company:      item.Company,
		Location:     item.Location,
		StartDate:    item.StartDate.Format(dateLayout),
		EndDate:      formatOptionalDate(item.EndDate),
		IsCurrent:    item.IsCurrent,
		Description:  stringSlice(item.Description),
		Technologies: stringSlice(item.Technologies),
		Duration:     experienceDuration(item),
	}
}

func certificationToPayload(item db.Certification) certificationPayload {
	return certificationPayload{
		ID:              item.ID,
		Title:           item.Title,
		Issuer:          item.Issuer,
		DateIssued:      item.DateIssued.Format(dateLayout),
		CredentialID:    item.CredentialID,
		Description:     item.Description,
		VerificationURL: item.VerificationURL,
		Logo:            item.Logo,
	}
}

func educationToPayload(item db.Education) educationPayload {
	return educationPayload{
		ID:          item.ID,
		Degree:      item.Degree,
		Institution: item.Institution,
		Location:    item.Location,
		StartDate:   item.StartDate.Format(dateLayout),
		EndDate:     formatOptionalDate(item.EndDate),
		IsCurrent:   item.IsCurrent,
		GPA:         item.GPA,
		Description: item.Description,
		Coursework:  stringSlice(item.Coursework),
		Duration:    educationDuration(item),
	}
}

// experienceDuration renders the human readable range: "January 2006 -
// Present" for a current position, a month-to-month range with an end
// date, otherwise just the start month.
func experienceDuration(item db.Experience) string {
	start := item.StartDate.Format("January 2006")
	if item.IsCurrent {
		return start + " - Present"
	}
	if item.EndDate != nil {
		return start + " - " + item.EndDate.Format("January 2006")
	}
	return start
}

// educationDuration renders a year-only range, "Present" when current.
func educationDuration(item db.Education) string {
	start := item.StartDate.Format("2006")
	if item.IsCurrent {
		return start + " - Present"
	}
	if item.EndDate != nil {
		return start + " - " + item.EndDate.Format("2006")
	}
	return start
}

func formatOptionalDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format(dateLayout)
	return &formatted
}

// renderMarkdown converts markdown to sanitized HTML. Conversion failures
// fall back to an empty string rather than leaking raw input.
func renderMarkdown(source string) string {
	if source == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(source), &buf); err != nil {
		return ""
	}
	return sanitizer.Sanitize(buf.String())
}

// stringSlice 保证列表字段在 JSON 中渲染为 [] 而非 null
func stringSlice(list db.StringList) []string {
	if list == nil {
		return []string{}
	}
	return []string(list)
}
