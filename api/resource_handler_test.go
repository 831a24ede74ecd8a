package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTags(t *testing.T) {
	s := setupTestServer(t, nil, nil)
	token := s.login()

	rec := s.request(http.MethodPost, "/api/tags", tagPayload{Name: "  Go  "}, token)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	tag := decodeBody[tagView](t, rec)
	assert.Equal(t, "Go", tag.Name)

	rec = s.request(http.MethodPost, "/api/tags", tagPayload{Name: "Go"}, token)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = s.request(http.MethodPost, "/api/tags", tagPayload{Name: "   "}, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.request(http.MethodPost, "/api/tags", tagPayload{Name: "Rust"}, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	createProject(t, s, token, map[string]any{
		"title": "Portfolio", "description": "d", "startDate": "2024-01", "tags": []string{"Go"},
	})

	rec = s.request(http.MethodPut, "/api/tags/"+tag.ID, tagPayload{Name: "Golang"}, token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "Golang", decodeBody[tagView](t, rec).Name)

	rec = s.request(http.MethodGet, "/api/projects", nil, "")
	projects := decodeBody[[]projectView](t, rec)
	require.Len(t, projects, 1)
	assert.Equal(t, []string{"Golang"}, projects[0].Tags)

	rec = s.request(http.MethodDelete, "/api/tags/"+tag.ID, nil, token)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = s.request(http.MethodGet, "/api/projects", nil, "")
	assert.Empty(t, decodeBody[[]projectView](t, rec)[0].Tags)
	rec = s.request(http.MethodGet, "/api/tags", nil, "")
	assert.JSONEq(t, `[]`, rec.Body.String())

	assert.Equal(t, http.StatusNotFound, s.request(http.MethodDelete, "/api/tags/"+tag.ID, nil, token).Code)
}

func TestExperiences(t *testing.T) {
	s := setupTestServer(t, nil, nil)
	token := s.login()

	rec := s.request(http.MethodPost, "/api/experiences", map[string]any{"company": "Acme"}, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.request(http.MethodPost, "/api/experiences", map[string]any{
		"company":      "Acme",
		"position":     "Engineer",
		"location":     "Remote",
		"startDate":    "2022-03",
		"description":  "Built things",
		"technologies": []string{"TypeScript", "Go", "Postgres"},
	}, token)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	experience := decodeBody[experienceView](t, rec)
	assert.Equal(t, "full-time", experience.Type)
	assert.Equal(t, []string{}, experience.Achievements)
	assert.Equal(t, []string{"TypeScript", "Go", "Postgres"}, experience.Technologies)
	assert.Nil(t, experience.EndDate)

	// Updates stay open unless STRICT_AUTH is set.
	rec = s.request(http.MethodPut, "/api/experiences/"+experience.ID, map[string]any{
		"achievements": []string{"Shipped v1"},
		"technologies": []string{"Go"},
	}, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated := decodeBody[experienceView](t, rec)
	assert.Equal(t, "Acme", updated.Company)
	assert.Equal(t, []string{"Shipped v1"}, updated.Achievements)
	assert.Equal(t, []string{"Go"}, updated.Technologies)

	rec = s.request(http.MethodPut, "/api/experiences/"+experience.ID, map[string]any{"type": "gig"}, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.request(http.MethodGet, "/api/experiences", nil, "")
	assert.Len(t, decodeBody[[]experienceView](t, rec), 1)

	rec = s.request(http.MethodDelete, "/api/experiences/"+experience.ID, nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	rec = s.request(http.MethodGet, "/api/experiences", nil, "")
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestSkillsOpenUnlessStrict(t *testing.T) {
	body := map[string]any{"name": "Go", "category": "backend", "yearsOfExperience": 5}

	open := setupTestServer(t, nil, nil)
	rec := open.request(http.MethodPost, "/api/skills", body, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	skill := decodeBody[skillView](t, rec)
	assert.Equal(t, 5, skill.YearsOfExperience)

	rec = open.request(http.MethodPut, "/api/skills/"+skill.ID, map[string]any{"icon": "go.svg"}, "")
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decodeBody[skillView](t, rec)
	require.NotNil(t, updated.Icon)
	assert.Equal(t, "go.svg", *updated.Icon)
	assert.Equal(t, "backend", updated.Category)

	strict := setupTestServer(t, map[string]string{"STRICT_AUTH": "true"}, nil)
	assert.Equal(t, http.StatusUnauthorized, strict.request(http.MethodPost, "/api/skills", body, "").Code)
	assert.Equal(t, http.StatusUnauthorized, strict.request(http.MethodDelete, "/api/experiences/1", nil, "").Code)
	rec = strict.request(http.MethodPost, "/api/skills", body, strict.login())
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestSkillDefaults(t *testing.T) {
	s := setupTestServer(t, nil, nil)

	rec := s.request(http.MethodPost, "/api/skills", map[string]any{"name": "Figma"}, "")
	require.Equal(t, http.StatusCreated, rec.Code)
	skill := decodeBody[skillView](t, rec)
	assert.Equal(t, "other", skill.Category)
	assert.Equal(t, 1, skill.YearsOfExperience)

	rec = s.request(http.MethodPost, "/api/skills", map[string]any{"name": "Figma", "category": "art"}, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGalleries(t *testing.T) {
	s := setupTestServer(t, nil, nil)
	token := s.login()

	rec := s.request(http.MethodPost, "/api/galleries", map[string]any{"title": "Talk"}, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	for _, body := range []map[string]any{
		{"title": "Second", "imageUrl": "b.png", "sortOrder": 2},
		{"title": "First", "imageUrl": "a.png", "sortOrder": 1},
		{"title": "Featured", "imageUrl": "f.png", "sortOrder": 9, "isFeatured": true},
	} {
		rec = s.request(http.MethodPost, "/api/galleries", body, token)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}

	rec = s.request(http.MethodGet, "/api/galleries", nil, "")
	galleries := decodeBody[[]galleryView](t, rec)
	require.Len(t, galleries, 3)
	assert.Equal(t, []string{"Featured", "First", "Second"},
		[]string{galleries[0].Title, galleries[1].Title, galleries[2].Title})

	rec = s.request(http.MethodPut, "/api/galleries/"+galleries[2].ID, map[string]any{"isFeatured": true}, token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeBody[galleryView](t, rec).IsFeatured)

	rec = s.request(http.MethodDelete, "/api/galleries/"+galleries[0].ID, nil, token)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCertificates(t *testing.T) {
	s := setupTestServer(t, nil, nil)
	token := s.login()

	rec := s.request(http.MethodPost, "/api/certificates", map[string]any{"title": "CKA", "issuer": "CNCF"}, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.request(http.MethodPost, "/api/certificates", map[string]any{
		"title": "CKA", "issuer": "CNCF", "issueDate": "2023-05", "credentialUrl": "https://cred.example/1",
	}, token)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	certificate := decodeBody[certificateView](t, rec)

	rec = s.request(http.MethodPut, "/api/certificates/"+certificate.ID, map[string]any{"issuer": "Linux Foundation"}, token)
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decodeBody[certificateView](t, rec)
	assert.Equal(t, "Linux Foundation", updated.Issuer)
	assert.Equal(t, "CKA", updated.Title)
	require.NotNil(t, updated.CredentialURL)

	rec = s.request(http.MethodDelete, "/api/certificates/"+certificate.ID, nil, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	rec = s.request(http.MethodDelete, "/api/certificates/"+certificate.ID, nil, token)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProfile(t *testing.T) {
	s := setupTestServer(t, nil, nil)
	token := s.login()

	rec := s.request(http.MethodGet, "/api/profile", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	empty := decodeBody[profileView](t, rec)
	assert.Equal(t, "1", empty.ID)
	assert.Empty(t, empty.Name)

	rec = s.request(http.MethodPut, "/api/profile", map[string]any{"name": "Sam"}, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	full := map[string]any{
		"name":        "Sam Rivera",
		"tagline":     "Engineer",
		"bio":         "Builds web things",
		"email":       "sam@example.com",
		"location":    "Lisbon",
		"phone":       "+351 000",
		"socialLinks": map[string]string{"github": "https://github.com/sam"},
	}
	assert.Equal(t, http.StatusUnauthorized, s.request(http.MethodPut, "/api/profile", full, "").Code)

	rec = s.request(http.MethodPut, "/api/profile", full, token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = s.request(http.MethodGet, "/api/profile", nil, "")
	profile := decodeBody[profileView](t, rec)
	assert.Equal(t, "Sam Rivera", profile.Name)
	require.NotNil(t, profile.SocialLinks.Github)
	assert.Equal(t, "https://github.com/sam", *profile.SocialLinks.Github)
	assert.Nil(t, profile.SocialLinks.Twitter)

	delete(full, "phone")
	rec = s.request(http.MethodPut, "/api/profile", full, token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, decodeBody[profileView](t, rec).Phone)
}

func TestOverview(t *testing.T) {
	s := setupTestServer(t, nil, nil)
	token := s.login()

	createProject(t, s, token, map[string]any{
		"title": "Live", "description": "d", "startDate": "2024-01", "tags": []string{"Go"},
	})
	createProject(t, s, token, map[string]any{
		"title": "Done", "description": "d", "startDate": "2023-01", "status": "completed",
	})
	require.Equal(t, http.StatusCreated, s.request(http.MethodPost, "/api/skills", map[string]any{"name": "Go"}, "").Code)

	rec := s.request(http.MethodGet, "/api/overview", nil, "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, overviewView{
		TotalProjects:  2,
		ActiveProjects: 1,
		TotalSkills:    1,
		TotalTags:      1,
	}, decodeBody[overviewView](t, rec))
}

var resourceRoutes = []struct {
	name   string
	path   string
	create map[string]any
}{
	{"projects", "/api/projects", map[string]any{
		"title": "Portfolio", "description": "d", "startDate": "2024-01",
		"imageUrls": []string{"a.png", "b.png"}, "tags": []string{"Go"}, "featured": true,
	}},
	{"experiences", "/api/experiences", map[string]any{
		"company": "Acme", "position": "Engineer", "location": "Remote", "startDate": "2022-03",
		"description": "Built things", "achievements": []string{"Shipped"}, "technologies": []string{"Go", "SQL"},
	}},
	{"skills", "/api/skills", map[string]any{"name": "Go", "category": "backend", "icon": "go.svg", "yearsOfExperience": 4}},
	{"galleries", "/api/galleries", map[string]any{"title": "Talk", "imageUrl": "t.png", "sortOrder": 2, "isFeatured": true}},
	{"certificates", "/api/certificates", map[string]any{
		"title": "CKA", "issuer": "CNCF", "issueDate": "2023-05", "credentialUrl": "https://cred.example/1",
	}},
}

func TestListsStartEmpty(t *testing.T) {
	s := setupTestServer(t, nil, nil)

	paths := []string{"/api/tags"}
	for _, route := range resourceRoutes {
		paths = append(paths, route.path)
	}

	for _, path := range paths {
		rec := s.request(http.MethodGet, path, nil, "")
		require.Equal(t, http.StatusOK, rec.Code, path)
		assert.JSONEq(t, `[]`, rec.Body.String(), path)
	}
}

func parseTimestamp(t *testing.T, record map[string]any, key string) time.Time {
	t.Helper()

	raw, ok := record[key].(string)
	require.True(t, ok, "%s missing", key)
	ts, err := time.Parse(time.RFC3339Nano, raw)
	require.NoError(t, err)
	return ts
}

func TestEmptyUpdateOnlyTouchesUpdatedAt(t *testing.T) {
	for _, route := range resourceRoutes {
		t.Run(route.name, func(t *testing.T) {
			s := setupTestServer(t, nil, nil)
			token := s.login()

			rec := s.request(http.MethodPost, route.path, route.create, token)
			require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
			created := decodeBody[map[string]any](t, rec)
			id, ok := created["id"].(string)
			require.True(t, ok)

			time.Sleep(5 * time.Millisecond)

			rec = s.request(http.MethodPut, route.path+"/"+id, map[string]any{}, token)
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			updated := decodeBody[map[string]any](t, rec)

			assert.True(t, parseTimestamp(t, updated, "createdAt").Equal(parseTimestamp(t, created, "createdAt")))
			if _, hasUpdatedAt := created["updatedAt"]; hasUpdatedAt {
				assert.True(t, parseTimestamp(t, updated, "updatedAt").After(parseTimestamp(t, created, "updatedAt")))
			}

			for _, key := range []string{"createdAt", "updatedAt"} {
				delete(created, key)
				delete(updated, key)
			}
			assert.Equal(t, created, updated)

			rec = s.request(http.MethodGet, route.path, nil, "")
			listed := decodeBody[[]map[string]any](t, rec)
			require.Len(t, listed, 1)
			delete(listed[0], "createdAt")
			delete(listed[0], "updatedAt")
			assert.Equal(t, created, listed[0])
		})
	}
}
