package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/kingrain94/rent-dashboard/pkg/logger"
)

func newValidationRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	m := NewValidationMiddleware(logger.NewNop())

	router := gin.New()
	router.Use(
		m.ValidateRequestSize(64),
		m.ValidateContentType("application/json", "application/x-www-form-urlencoded"),
		m.SanitizeInput(),
	)
	router.Any("/echo", func(c *gin.Context) {
		c.String(http.StatusOK, c.Query("q")+c.PostForm("notes"))
	})
	return router
}

func TestSanitizeInput_StripsControlCharactersFromQuery(t *testing.T) {
	router := newValidationRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/echo?q=ma%00ria%07", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "maria", w.Body.String())
}

func TestSanitizeInput_KeepsNewlinesInFormNotes(t *testing.T) {
	router := newValidationRouter()

	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader("notes=gate%0Acode%001234"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded; charset=UTF-8")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "gate\ncode1234", w.Body.String())
}

func TestSanitizeInput_LeavesSessionCookieAlone(t *testing.T) {
	router := newValidationRouter()

	req := httptest.NewRequest(http.MethodGet, "/echo?q=maria", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "eyJhbGciOi--JIUzI1NiJ9"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "maria", w.Body.String())
	assert.Contains(t, req.Header.Get("Cookie"), "eyJhbGciOi--JIUzI1NiJ9")
}

func TestValidateContentType(t *testing.T) {
	router := newValidationRouter()

	form := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader("name=Ana"))
	form.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, form)
	assert.Equal(t, http.StatusOK, w.Code)

	xml := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader("<a/>"))
	xml.Header.Set("Content-Type", "application/xml")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, xml)
	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)

	missing := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader("{}"))
	w = httptest.NewRecorder()
	router.ServeHTTP(w, missing)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestValidateRequestSize(t *testing.T) {
	router := newValidationRouter()

	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(strings.Repeat("a", 65)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}
