package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"

	"portfolio_backend/internal/models"
	"portfolio_backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	loginSess   *models.Session
	loginErr    error
	logoutErr   error
	checkStatus models.AuthStatus
	checkErr    error
	ensureErr   error

	lastLoginUsername string
	lastLoginPassword string
	logoutTokens      []string
	checkTokens       []string
	loginCalls        int
}

func (m *mockAuth) Login(ctx context.Context, username, password string) (*models.Session, error) {
	m.loginCalls++
	m.lastLoginUsername = username
	m.lastLoginPassword = password
	return m.loginSess, m.loginErr
}

func (m *mockAuth) Logout(ctx context.Context, token string) error {
	m.logoutTokens = append(m.logoutTokens, token)
	return m.logoutErr
}

func (m *mockAuth) Check(ctx context.Context, token string) (models.AuthStatus, error) {
	m.checkTokens = append(m.checkTokens, token)
	return m.checkStatus, m.checkErr
}

func (m *mockAuth) EnsureAdmin(ctx context.Context, username, password string) error {
	return m.ensureErr
}

type mockArticles struct {
	listResp  []models.Article
	listErr   error
	createRes models.Article
	createErr error
	updateRes models.Article
	updateErr error
	deleteErr error

	lastFilter models.ArticleFilter
	lastCreate service.CreateArticleInput
	lastUpdate service.UpdateArticleInput
	lastDelete *int

	listCalls   int
	createCalls int
	updateCalls int
	deleteCalls int
}

func (m *mockArticles) List(ctx context.Context, f models.ArticleFilter) ([]models.Article, error) {
	m.listCalls++
	m.lastFilter = f
	return m.listResp, m.listErr
}

func (m *mockArticles) Create(ctx context.Context, in service.CreateArticleInput) (models.Article, error) {
	m.createCalls++
	m.lastCreate = in
	return m.createRes, m.createErr
}

func (m *mockArticles) Update(ctx context.Context, in service.UpdateArticleInput) (models.Article, error) {
	m.updateCalls++
	m.lastUpdate = in
	return m.updateRes, m.updateErr
}

func (m *mockArticles) Delete(ctx context.Context, id *int) error {
	m.deleteCalls++
	m.lastDelete = id
	return m.deleteErr
}

type mockContact struct {
	confirmation string
	err          error

	lastInput   service.ContactInput
	submitCalls int
}

func (m *mockContact) Submit(ctx context.Context, in service.ContactInput) (string, error) {
	m.submitCalls++
	m.lastInput = in
	return m.confirmation, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

// authedMock returns a mockAuth whose Check accepts any token as the given user.
func authedMock(username string) *mockAuth {
	return &mockAuth{
		checkStatus: models.AuthStatus{
			Authenticated: true,
			User:          &models.PublicUser{ID: 1, Username: username},
		},
	}
}

// doJSON performs a JSON request against the router. An empty cookie means
// no session cookie is sent.
func doJSON(r *gin.Engine, method, path, body, cookie string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: cookie})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
