package handlers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"pairup/internal/auth"
	"pairup/internal/middleware"
	"pairup/internal/models"
	"pairup/internal/repository"
	"pairup/internal/services"
	"pairup/internal/session"
)

type testEnv struct {
	db     *gorm.DB
	router *gin.Engine
	group  models.Group
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Group{},
		&models.User{},
		&models.Assignment{},
		&models.Availability{},
		&models.Pairing{},
	))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	admins := models.Group{ID: models.AdminGroupID, Name: "admins"}
	require.NoError(t, db.Create(&admins).Error)
	group := models.Group{Name: "test group 1"}
	require.NoError(t, db.Create(&group).Error)

	hash, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.User{
		Username:     "admin",
		PasswordHash: string(hash),
		GroupID:      models.AdminGroupID,
	}).Error)

	userRepo := repository.NewUserRepository(db)
	groupRepo := repository.NewGroupRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	availabilityRepo := repository.NewAvailabilityRepository(db)
	pairingRepo := repository.NewPairingRepository(db)

	strategies := auth.NewRegistry()
	strategies.Register(auth.StrategyPassword, auth.NewPasswordStrategy(userRepo))

	sessionMgr := session.NewManager(userRepo)

	userService := services.NewUserService(userRepo, groupRepo)
	groupService := services.NewGroupService(groupRepo, assignmentRepo)
	scheduleService := services.NewScheduleService(availabilityRepo, pairingRepo, assignmentRepo, userRepo)

	r := gin.New()
	store := cookie.NewStore([]byte("secret"))
	r.Use(sessions.Sessions(session.CookieName, store))
	r.LoadHTMLGlob("../../web/templates/*.html")

	Register(r, Set{
		Pages:          NewPageHandler(sessionMgr),
		Auth:           NewAuthHandler(r, strategies, sessionMgr),
		Users:          NewUserHandler(userService, groupService, scheduleService, sessionMgr),
		Groups:         NewGroupHandler(groupService, sessionMgr),
		Availabilities: NewAvailabilityHandler(scheduleService, sessionMgr),
	}, middleware.RequireAuth(r, sessionMgr))

	return &testEnv{db: db, router: r, group: group}
}

// browser replays session cookies across requests, like a real client.
type browser struct {
	router  *gin.Engine
	cookies map[string]*http.Cookie
}

func newBrowser(router *gin.Engine) *browser {
	return &browser{router: router, cookies: make(map[string]*http.Cookie)}
}

func (b *browser) do(t *testing.T, method, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for _, ck := range b.cookies {
		req.AddCookie(ck)
	}

	w := httptest.NewRecorder()
	b.router.ServeHTTP(w, req)

	for _, ck := range w.Result().Cookies() {
		b.cookies[ck.Name] = ck
	}
	return w
}

func (b *browser) login(t *testing.T, username, password string) *httptest.ResponseRecorder {
	t.Helper()
	return b.do(t, http.MethodPost, "/auth/login", url.Values{
		"username": {username},
		"password": {password},
	})
}
