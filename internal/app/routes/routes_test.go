package routes_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	inmemdb "github.com/yigit/learnify/internal/app/repositories/inmem"
	"github.com/yigit/learnify/internal/bootstrap"
	"github.com/yigit/learnify/internal/config"
	"github.com/yigit/learnify/internal/pkg/logger"
)

type api struct {
	t      *testing.T
	router *gin.Engine
	db     *inmemdb.DB
}

func newAPI(t *testing.T) *api {
	t.Helper()
	cfg := &config.Config{}
	cfg.Server.Mode = "test"
	cfg.JWT.Secret = "routes-secret"
	cfg.JWT.AccessTokenExpiration = "1h"
	cfg.JWT.Issuer = "learnify-test"
	cfg.Admin.Name = "Admin"
	cfg.Admin.Email = "admin@learnify.dev"
	cfg.Admin.Password = "admin-pass"

	db := inmemdb.NewDB()
	deps := bootstrap.BuildDependencies(cfg, inmemdb.NewRepositories(db), logger.Component("test"))
	require.NoError(t, bootstrap.SeedAdmin(context.Background(), cfg, deps))

	return &api{t: t, router: bootstrap.SetupRouter(cfg, deps), db: db}
}

func (a *api) do(method, path, token string, body any) *httptest.ResponseRecorder {
	a.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(a.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func message(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	return decode[map[string]any](t, w)["message"].(string)
}

func (a *api) login(email, password string) string {
	a.t.Helper()
	w := a.do(http.MethodPost, "/api/auth/login", "", map[string]string{"email": email, "password": password})
	require.Equal(a.t, http.StatusOK, w.Code, w.Body.String())
	return decode[map[string]any](a.t, w)["token"].(string)
}

func (a *api) register(kind, name string) (token string, id int64) {
	a.t.Helper()
	email := name + "@learnify.dev"
	w := a.do(http.MethodPost, "/api/auth/register/"+kind, "", map[string]string{"name": name, "email": email, "password": "pw-" + name})
	require.Equal(a.t, http.StatusCreated, w.Code, w.Body.String())

	resp := a.do(http.MethodPost, "/api/auth/login", "", map[string]string{"email": email, "password": "pw-" + name})
	require.Equal(a.t, http.StatusOK, resp.Code)
	body := decode[map[string]any](a.t, resp)
	return body["token"].(string), int64(body["userId"].(float64))
}

// approvedMentorWithCourse registers and approves a mentor who owns a course with the given chapters
func (a *api) approvedMentorWithCourse(name string, chapters int) (token string, courseID int64, chapterIDs []int64) {
	a.t.Helper()
	token, mentorID := a.register("mentor", name)
	admin := a.login("admin@learnify.dev", "admin-pass")
	w := a.do(http.MethodPatch, fmt.Sprintf("/api/admin/approve-mentor/%d", mentorID), admin, nil)
	require.Equal(a.t, http.StatusOK, w.Code, w.Body.String())

	w = a.do(http.MethodPost, "/api/courses", token, map[string]string{"title": name + " course", "description": "about " + name})
	require.Equal(a.t, http.StatusCreated, w.Code, w.Body.String())
	courseID = int64(decode[map[string]any](a.t, w)["course"].(map[string]any)["id"].(float64))

	for i := 1; i <= chapters; i++ {
		w = a.do(http.MethodPost, fmt.Sprintf("/api/courses/%d/chapters", courseID), token,
			map[string]string{"title": fmt.Sprintf("Chapter %d", i), "content": "..."})
		require.Equal(a.t, http.StatusCreated, w.Code, w.Body.String())
		chapterIDs = append(chapterIDs, int64(decode[map[string]any](a.t, w)["chapter"].(map[string]any)["id"].(float64)))
	}
	return token, courseID, chapterIDs
}

func TestHealthFallbackAndDocs(t *testing.T) {
	a := newAPI(t)

	w := a.do(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"OK"}`, w.Body.String())

	w = a.do(http.MethodGet, "/api/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "API route not found", message(t, w))

	w = a.do(http.MethodGet, "/swagger/doc.json", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Learnify API")
}

func TestAuthEndpoints(t *testing.T) {
	a := newAPI(t)

	w := a.do(http.MethodPost, "/api/auth/register/student", "", map[string]string{"name": "Ann"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Name, email and password required", message(t, w))

	token, id := a.register("student", "ann")

	w = a.do(http.MethodPost, "/api/auth/register/mentor", "", map[string]string{"name": "Ann", "email": "ann@learnify.dev", "password": "x"})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "User already exists", message(t, w))

	w = a.do(http.MethodPost, "/api/auth/login", "", map[string]string{"email": "ann@learnify.dev", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid credentials", message(t, w))

	w = a.do(http.MethodPost, "/api/auth/login", "", map[string]string{"email": "ann@learnify.dev"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Email and password required", message(t, w))

	w = a.do(http.MethodGet, "/api/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	me := decode[map[string]any](t, w)
	assert.Equal(t, float64(id), me["id"])
	assert.Equal(t, "STUDENT", me["role"])
	assert.NotContains(t, me, "password")

	w = a.do(http.MethodGet, "/api/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = a.do(http.MethodGet, "/api/admin/users", token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Forbidden", message(t, w))

	w = a.do(http.MethodGet, "/api/admin/users", a.login("admin@learnify.dev", "admin-pass"), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]map[string]any](t, w), 2)
}

func TestApproveMentor(t *testing.T) {
	a := newAPI(t)
	admin := a.login("admin@learnify.dev", "admin-pass")
	mentor, mentorID := a.register("mentor", "mia")
	_, studentID := a.register("student", "sam")

	w := a.do(http.MethodPost, "/api/courses", mentor, map[string]string{"title": "Go", "description": "Go basics"})
	require.Equal(t, http.StatusCreated, w.Code)
	courseID := int64(decode[map[string]any](t, w)["course"].(map[string]any)["id"].(float64))

	w = a.do(http.MethodPost, fmt.Sprintf("/api/courses/%d/chapters", courseID), mentor, map[string]string{"title": "One", "content": "..."})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Mentor not approved by admin", message(t, w))

	w = a.do(http.MethodPatch, fmt.Sprintf("/api/admin/approve-mentor/%d", studentID), admin, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Mentor not found", message(t, w))

	w = a.do(http.MethodPatch, fmt.Sprintf("/api/admin/approve-mentor/%d", mentorID), admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t,
		fmt.Sprintf(`{"message":"Mentor approved successfully","mentor":{"id":%d,"name":"mia","email":"mia@learnify.dev","approved":true}}`, mentorID),
		w.Body.String())

	w = a.do(http.MethodPost, fmt.Sprintf("/api/courses/%d/chapters", courseID), mentor, map[string]string{"title": "One", "content": "..."})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCatalog(t *testing.T) {
	a := newAPI(t)
	mentor, courseID, _ := a.approvedMentorWithCourse("max", 1)
	other, _, _ := a.approvedMentorWithCourse("oli", 0)
	student, _ := a.register("student", "sue")

	w := a.do(http.MethodGet, "/api/courses", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]map[string]any](t, w), 2)

	w = a.do(http.MethodGet, fmt.Sprintf("/api/courses/%d", courseID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "max course", decode[map[string]any](t, w)["title"])

	w = a.do(http.MethodGet, "/api/courses/abc", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid course ID", message(t, w))

	w = a.do(http.MethodGet, "/api/courses/99999", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Course not found", message(t, w))

	w = a.do(http.MethodPost, "/api/courses", student, map[string]string{"title": "x", "description": "y"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = a.do(http.MethodPost, "/api/courses", mentor, map[string]string{"title": "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Title and description required", message(t, w))

	w = a.do(http.MethodPost, "/api/courses", mentor, map[string]string{"title": "   ", "description": "y"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, []any{"Title is required"}, decode[map[string]any](t, w)["details"])

	w = a.do(http.MethodGet, "/api/my-courses", other, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]map[string]any](t, w), 1)

	w = a.do(http.MethodPost, fmt.Sprintf("/api/courses/%d/chapters", courseID), other, map[string]string{"title": "t", "content": "c"})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Not your course", message(t, w))

	w = a.do(http.MethodGet, fmt.Sprintf("/api/courses/%d/chapters", courseID), student, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Enroll in course to view chapters", message(t, w))

	w = a.do(http.MethodGet, fmt.Sprintf("/api/courses/%d/chapters", courseID), other, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = a.do(http.MethodDelete, fmt.Sprintf("/api/courses/%d", courseID), other, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "You are not allowed to delete this course", message(t, w))

	w = a.do(http.MethodDelete, fmt.Sprintf("/api/courses/%d", courseID), mentor, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Course deleted successfully", message(t, w))

	w = a.do(http.MethodGet, fmt.Sprintf("/api/courses/%d", courseID), "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLearningFlow(t *testing.T) {
	a := newAPI(t)
	mentor, courseID, chapters := a.approvedMentorWithCourse("mo", 2)
	student, studentID := a.register("student", "stu")
	course := fmt.Sprintf("/api/courses/%d", courseID)

	w := a.do(http.MethodPost, fmt.Sprintf("/api/chapters/%d/complete", chapters[0]), student, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Not enrolled in course", message(t, w))

	w = a.do(http.MethodPost, course+"/enroll", student, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Enrolled successfully", message(t, w))

	w = a.do(http.MethodPost, course+"/enroll", student, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Already enrolled", message(t, w))

	w = a.do(http.MethodPost, "/api/courses/99999/enroll", student, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = a.do(http.MethodGet, course+"/chapters", student, nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[[]map[string]any](t, w)
	require.Len(t, list, 2)
	assert.Equal(t, "Chapter 1", list[0]["title"])

	w = a.do(http.MethodGet, course+"/progress", student, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"progress":0,"completedChapterIds":[]}`, w.Body.String())

	w = a.do(http.MethodPost, fmt.Sprintf("/api/chapters/%d/complete", chapters[0]), student, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"message":"Chapter completed successfully"}`, w.Body.String())

	w = a.do(http.MethodGet, course+"/progress", student, nil)
	assert.JSONEq(t, fmt.Sprintf(`{"progress":50,"completedChapterIds":[%d]}`, chapters[0]), w.Body.String())

	w = a.do(http.MethodGet, "/api/certificates/my", student, nil)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = a.do(http.MethodPost, course+"/certificate", student, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Complete all chapters to get certificate", message(t, w))

	w = a.do(http.MethodGet, course+"/certificate/download", student, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Certificate not found", message(t, w))

	w = a.do(http.MethodPost, fmt.Sprintf("/api/chapters/%d/complete", chapters[1]), student, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = a.do(http.MethodPost, fmt.Sprintf("/api/chapters/%d/complete", chapters[1]), student, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Already completed", message(t, w))

	w = a.do(http.MethodGet, "/api/certificates/my", student, nil)
	require.Equal(t, http.StatusOK, w.Code)
	certs := decode[[]map[string]any](t, w)
	require.Len(t, certs, 1)
	assert.NotEmpty(t, certs[0]["certificateNo"])
	assert.Equal(t, float64(studentID), certs[0]["studentId"])
	assert.Equal(t, map[string]any{"id": float64(courseID), "title": "mo course"}, certs[0]["course"])

	w = a.do(http.MethodPost, course+"/certificate", student, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Certificate already generated", message(t, w))

	w = a.do(http.MethodGet, course+"/certificate/download", student, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, "inline; filename=certificate.pdf", w.Header().Get("Content-Disposition"))
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF-")))

	w = a.do(http.MethodGet, "/api/courses/enrolled", student, nil)
	require.Equal(t, http.StatusOK, w.Code)
	enrolled := decode[[]map[string]any](t, w)
	require.Len(t, enrolled, 1)
	assert.Equal(t, float64(100), enrolled[0]["progress"])
	assert.Equal(t, true, enrolled[0]["completed"])

	w = a.do(http.MethodGet, "/api/courses/enrolled", mentor, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = a.do(http.MethodDelete, fmt.Sprintf("/api/chapters/%d", chapters[0]), mentor, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Chapter deleted successfully", message(t, w))

	w = a.do(http.MethodDelete, fmt.Sprintf("/api/chapters/%d", chapters[0]), mentor, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Chapter not found", message(t, w))

	w = a.do(http.MethodDelete, course, mentor, nil)
	require.Equal(t, http.StatusOK, w.Code)

	counts := a.db.Counts()
	assert.Zero(t, counts.Chapters)
	assert.Zero(t, counts.Enrollments)
	assert.Zero(t, counts.Progress)
	assert.Zero(t, counts.Certificates)
}

func TestManualCertificate(t *testing.T) {
	a := newAPI(t)
	_, courseID, chapters := a.approvedMentorWithCourse("kai", 1)
	_, emptyID, _ := a.approvedMentorWithCourse("lea", 0)
	student, _ := a.register("student", "zed")

	w := a.do(http.MethodPost, fmt.Sprintf("/api/courses/%d/certificate", courseID), student, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Enroll in course first", message(t, w))

	require.Equal(t, http.StatusCreated, a.do(http.MethodPost, fmt.Sprintf("/api/courses/%d/enroll", emptyID), student, nil).Code)
	w = a.do(http.MethodPost, fmt.Sprintf("/api/courses/%d/certificate", emptyID), student, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Course has no chapters", message(t, w))

	w = a.do(http.MethodGet, fmt.Sprintf("/api/courses/%d/progress", emptyID), student, nil)
	assert.JSONEq(t, `{"progress":0,"completedChapterIds":[]}`, w.Body.String())

	require.Equal(t, http.StatusCreated, a.do(http.MethodPost, fmt.Sprintf("/api/courses/%d/enroll", courseID), student, nil).Code)
	require.Equal(t, http.StatusOK, a.do(http.MethodPost, fmt.Sprintf("/api/chapters/%d/complete", chapters[0]), student, nil).Code)

	// the completion above already issued it
	w = a.do(http.MethodPost, fmt.Sprintf("/api/courses/%d/certificate", courseID), student, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}
