package handler

import (
	"errors"
	"net/http"

	"github.com/devfolio/internal/service"
	"github.com/gin-gonic/gin"
)

// GetPersonalInfo returns the active personal info record. An empty store
// is a 404, never a 500.
func (a *API) GetPersonalInfo(c *gin.Context) {
	info, err := a.content.ActivePersonalInfo()
	if err != nil {
		if errors.Is(err, service.ErrPersonalInfoNotFound) {
			respondError(c, http.StatusNotFound, "Personal info not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to fetch personal info")
		return
	}
	c.JSON(http.StatusOK, personalInfoToPayload(info))
}

// GetAbout returns the active about section.
func (a *API) GetAbout(c *gin.Context) {
	about, err := a.content.ActiveAbout()
	if err != nil {
		if errors.Is(err, service.ErrAboutNotFound) {
			respondError(c, http.StatusNotFound, "About info not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to fetch about info")
		return
	}
	c.JSON(http.StatusOK, aboutToPayload(about))
}

// GetSocialLinks returns active social links in display order.
func (a *API) GetSocialLinks(c *gin.Context) {
	links, err := a.content.ListSocialLinks()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch social links")
		return
	}

	payloads := make([]socialLinkPayload, 0, len(links))
	for _, link := range links {
		payloads = append(payloads, socialLinkToPayload(link))
	}
	c.JSON(http.StatusOK, payloads)
}

// GetProjects returns projects newest first. The only client-supplied
// filter is the featured=true toggle.
func (a *API) GetProjects(c *gin.Context) {
	featuredOnly := c.Query("featured") == "true"

	projects, err := a.projects.List(featuredOnly)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch projects")
		return
	}
	c.JSON(http.StatusOK, projectsToPayload(projects))
}

// GetSkills returns every skill bucketed by category display name.
func (a *API) GetSkills(c *gin.Context) {
	grouped, err := a.skills.ListGrouped()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch skills")
		return
	}

	payload := make(map[string][]skillPayload, len(grouped))
	for label, skills := range grouped {
		bucket := make([]skillPayload, 0, len(skills))
		for _, skill := range skills {
			bucket = append(bucket, skillToPayload(skill))
		}
		payload[label] = bucket
	}
	c.JSON(http.StatusOK, payload)
}

// GetExperience returns work experience newest first.
func (a *API) GetExperience(c *gin.Context) {
	items, err := a.resume.ListExperience()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch experience")
		return
	}

	payloads := make([]experiencePayload, 0, len(items))
	for _, item := range items {
		payloads = append(payloads, experienceToPayload(item))
	}
	c.JSON(http.StatusOK, payloads)
}

// GetCertifications returns certifications by issue date descending.
func (a *API) GetCertifications(c *gin.Context) {
	items, err := a.resume.ListCertifications()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch certifications")
		return
	}

	payloads := make([]certificationPayload, 0, len(items))
	for _, item := range items {
		payloads = append(payloads, certificationToPayload(item))
	}
	c.JSON(http.StatusOK, payloads)
}

// GetEducation returns education records newest first.
func (a *API) GetEducation(c *gin.Context) {
	items, err := a.resume.ListEducation()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch education")
		return
	}

	payloads := make([]educationPayload, 0, len(items))
	for _, item := range items {
		payloads = append(payloads, educationToPayload(item))
	}
	c.JSON(http.StatusOK, payloads)
}

// GetPortfolioSummary returns the composite landing payload: up to six
// featured projects, section counts, and the most recent education and
// experience records (null when the store is empty).
func (a *API) GetPortfolioSummary(c *gin.Context) {
	featured, err := a.projects.Featured(6)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch portfolio summary")
		return
	}

	skillsCount, err := a.skills.Count()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch portfolio summary")
		return
	}

	experienceCount, err := a.resume.CountExperience()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch portfolio summary")
		return
	}

	certificationsCount, err := a.resume.CountCertifications()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch portfolio summary")
		return
	}

	firstEducation, err := a.resume.FirstEducation()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch portfolio summary")
		return
	}

	latestExperience, err := a.resume.LatestExperience()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch portfolio summary")
		return
	}

	var educationRecord interface{}
	if firstEducation != nil {
		educationRecord = educationToPayload(*firstEducation)
	}

	var experienceRecord interface{}
	if latestExperience != nil {
		experienceRecord = experienceToPayload(*latestExperience)
	}

	c.JSON(http.StatusOK, gin.H{
		"projects":             projectsToPayload(featured),
		"skills_count":         skillsCount,
		"experience_count":     experienceCount,
		"certifications_count": certificationsCount,
		"education":            educationRecord,
		"latest_experience":    experienceRecord,
	})
}

// HealthCheck 提供监控系统使用的健康检查端点。
func (a *API) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "Portfolio API is running!",
	})
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// SubmitContact validates and persists a contact form submission. The
// notification attempt happens inside the service and never changes the
// response once the record is stored.
func (a *API) SubmitContact(c *gin.Context) {
	var payload contactRequest
	if !bindJSON(c, &payload, "Invalid request body") {
		return
	}

	msg, err := a.contacts.Submit(service.ContactInput{
		Name:    payload.Name,
		Email:   payload.Email,
		Subject: payload.Subject,
		Message: payload.Message,
	})
	if err != nil {
		var fieldErrs service.FieldErrors
		if errors.As(err, &fieldErrs) {
			respondFieldErrors(c, fieldErrs)
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to submit message")
		return
	}

	c.JSON(http.StatusCreated, contactToPayload(msg))
}
