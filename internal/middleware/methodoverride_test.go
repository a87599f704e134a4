package middleware

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestMethodOverride(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.PUT("/things/:id", func(c *gin.Context) {
		c.String(http.StatusOK, "updated %s name=%s", c.Param("id"), c.PostForm("name"))
	})

	form := url.Values{
		"_method": {"put"},
		"name":    {"widget"},
	}
	req := httptest.NewRequest(http.MethodPost, "/things/7", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := httptest.NewRecorder()
	MethodOverride(r).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "updated 7 name=widget", w.Body.String())
}

func TestMethodOverrideLeavesPlainRequestsAlone(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/things", func(c *gin.Context) {
		c.String(http.StatusOK, "created")
	})

	req := httptest.NewRequest(http.MethodPost, "/things", strings.NewReader("name=widget"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := httptest.NewRecorder()
	MethodOverride(r).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "created", w.Body.String())
}

func TestMethodOverrideIgnoresGet(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/things", func(c *gin.Context) {
		c.String(http.StatusOK, "listed")
	})

	req := httptest.NewRequest(http.MethodGet, "/things?_method=delete", nil)

	w := httptest.NewRecorder()
	MethodOverride(r).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "listed", w.Body.String())
}
