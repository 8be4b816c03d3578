package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResumeHandler(t *testing.T, store *fakeStore) *ResumeHandler {
	t.Helper()
	h, err := NewResumeHandler(store, sessions.NewCookieStore([]byte("0123456789abcdef0123456789abcdef")))
	require.NoError(t, err)
	return h
}

func post(handler http.HandlerFunc, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rr := httptest.NewRecorder()
	handler(rr, req)
	return rr
}

func TestNewResumeHandlerRequiresDependencies(t *testing.T) {
	_, err := NewResumeHandler(nil, sessions.NewCookieStore([]byte("k")))
	assert.Error(t, err)
	_, err = NewResumeHandler(newFakeStore(), nil)
	assert.Error(t, err)
}

func TestSaveResume(t *testing.T) {
	store := newFakeStore()
	h := newResumeHandler(t, store)

	rr := post(h.SaveResume, "/api/resume", `{
		"firstName": "Jane", "lastName": "Doe", "address": "1 Main St",
		"jobTitle": "Engineer", "linkedinId": "janedoe",
		"experience": [{"company": "Acme"}], "education": [], "skills": ["go"]
	}`)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.JSONEq(t, `{"message":"Resume saved successfully!","resumeId":1}`, rr.Body.String())
	require.Len(t, store.resumes, 1)
	assert.Equal(t, "Jane", store.resumes[0].FirstName)
	assert.JSONEq(t, `["go"]`, string(store.resumes[0].Skills))
}

func TestSaveResumeStorageFailure(t *testing.T) {
	store := newFakeStore()
	store.err = errStorage
	h := newResumeHandler(t, store)

	rr := post(h.SaveResume, "/api/resume", `{"firstName": "Jane"}`)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"error":"Error saving resume data"}`, rr.Body.String())
}

func TestSaveResumeUserStartsSession(t *testing.T) {
	store := newFakeStore()
	h := newResumeHandler(t, store)

	rr := post(h.SaveResumeUser, "/api/resumebuilder", `{
		"firstName": "Jane", "lastName": "Doe", "phone": "123456789", "email": "jane@example.com"
	}`)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message":"User data saved successfully","userId":1}`, rr.Body.String())
	require.Len(t, store.resumeUsers, 1)
	assert.Equal(t, "jane@example.com", store.resumeUsers[0].Email)

	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, resumeSessionName, cookies[0].Name)
}

func TestSaveResumeUserStorageFailure(t *testing.T) {
	store := newFakeStore()
	store.err = errStorage
	h := newResumeHandler(t, store)

	rr := post(h.SaveResumeUser, "/api/resumebuilder", `{"firstName": "Jane"}`)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"error":"Error saving user data"}`, rr.Body.String())
	assert.Empty(t, rr.Result().Cookies())
}

func TestSaveExperienceUsesSessionUser(t *testing.T) {
	store := newFakeStore()
	h := newResumeHandler(t, store)

	builder := post(h.SaveResumeUser, "/api/resumebuilder", `{"firstName": "Jane"}`)
	require.Equal(t, http.StatusOK, builder.Code)

	rr := post(h.SaveExperience, "/api/experience",
		`{"company": "Acme", "position": "Engineer", "startDate": "2020-01-01", "isCurrent": true}`,
		builder.Result().Cookies()...)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message":"Experience data saved successfully","experienceId":2}`, rr.Body.String())
	require.Len(t, store.experiences, 1)
	require.NotNil(t, store.experiences[0].UserID)
	assert.EqualValues(t, 1, *store.experiences[0].UserID)
	assert.True(t, store.experiences[0].IsCurrent)
}

func TestSaveExperienceBodyUserWins(t *testing.T) {
	store := newFakeStore()
	h := newResumeHandler(t, store)

	builder := post(h.SaveResumeUser, "/api/resumebuilder", `{"firstName": "Jane"}`)
	rr := post(h.SaveExperience, "/api/experience", `{"userId": "42", "company": "Acme"}`, builder.Result().Cookies()...)

	assert.Equal(t, http.StatusOK, rr.Code)
	require.Len(t, store.experiences, 1)
	assert.EqualValues(t, 42, *store.experiences[0].UserID)
}

func TestSaveExperienceWithoutUser(t *testing.T) {
	store := newFakeStore()
	h := newResumeHandler(t, store)

	rr := post(h.SaveExperience, "/api/experience", `{"company": "Acme"}`)

	assert.Equal(t, http.StatusOK, rr.Code)
	require.Len(t, store.experiences, 1)
	assert.Nil(t, store.experiences[0].UserID)
}

func TestSaveExperienceErrors(t *testing.T) {
	store := newFakeStore()
	h := newResumeHandler(t, store)

	rr := post(h.SaveExperience, "/api/experience", `{"userId": "abc"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error":"Invalid request body"}`, rr.Body.String())

	store.err = errStorage
	rr = post(h.SaveExperience, "/api/experience", `{"company": "Acme"}`)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"error":"Error saving experience data"}`, rr.Body.String())
}
