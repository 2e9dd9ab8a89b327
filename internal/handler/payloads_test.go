package handler

import (
	"strings"
	"testing"
	"time"

	"github.com/devfolio/internal/db"
)

func datePtr(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestExperienceDuration(t *testing.T) {
	cases := []struct {
		name string
		item db.Experience
		want string
	}{
		{
			name: "current position",
			item: db.Experience{StartDate: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC), IsCurrent: true},
			want: "May 2025 - Present",
		},
		{
			name: "closed range",
			item: db.Experience{StartDate: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC), EndDate: datePtr(2025, 6, 30)},
			want: "May 2025 - June 2025",
		},
		{
			name: "no end date",
			item: db.Experience{StartDate: time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC)},
			want: "November 2024",
		},
		{
			name: "current overrides end date",
			item: db.Experience{StartDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), EndDate: datePtr(2025, 3, 1), IsCurrent: true},
			want: "January 2025 - Present",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := experienceDuration(tc.item); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestEducationDuration(t *testing.T) {
	cases := []struct {
		name string
		item db.Education
		want string
	}{
		{
			name: "current study",
			item: db.Education{StartDate: time.Date(2022, 7, 1, 0, 0, 0, 0, time.UTC), IsCurrent: true},
			want: "2022 - Present",
		},
		{
			name: "finished degree",
			item: db.Education{StartDate: time.Date(2018, 7, 1, 0, 0, 0, 0, time.UTC), EndDate: datePtr(2022, 5, 31)},
			want: "2018 - 2022",
		},
		{
			name: "start year only",
			item: db.Education{StartDate: time.Date(2020, 9, 1, 0, 0, 0, 0, time.UTC)},
			want: "2020",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := educationDuration(tc.item); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestPersonalInfoPayloadAllowList(t *testing.T) {
	info := db.PersonalInfo{
		Name:         "Tester",
		Email:        "tester@example.com",
		ProfileImage: "/images/secret.jpg",
		IsActive:     true,
	}
	payload := personalInfoToPayload(&info)

	if payload.Name != "Tester" || payload.Email != "tester@example.com" {
		t.Fatalf("expected allow-listed fields to pass through")
	}
	// profile_image 与 is_active 不在结构体中，不可能被序列化
}

func TestRenderMarkdownSanitizes(t *testing.T) {
	html := renderMarkdown("**bold** <script>alert(1)</script>")
	if !strings.Contains(html, "<strong>bold</strong>") {
		t.Fatalf("expected markdown conversion, got %q", html)
	}
	if strings.Contains(html, "<script>") {
		t.Fatalf("expected script tags to be sanitized, got %q", html)
	}
}

func TestProjectPayloadEmptyLists(t *testing.T) {
	payload := projectToPayload(db.Project{Title: "Bare"})
	if payload.Technologies == nil || payload.Features == nil {
		t.Fatalf("expected empty slices instead of nil list fields")
	}
}
