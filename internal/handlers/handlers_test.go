package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alimgiray/menuhub/internal/middleware"
	"github.com/alimgiray/menuhub/internal/models"
	"github.com/alimgiray/menuhub/internal/repositories"
	"github.com/alimgiray/menuhub/internal/services"
	"github.com/alimgiray/menuhub/migrations"
	"github.com/alimgiray/menuhub/pkg/config"
	"github.com/alimgiray/menuhub/pkg/database"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type fakeWorkers map[string]bool

func (f fakeWorkers) GetWorkerStatus() map[string]bool { return f }

type testServer struct {
	router       *gin.Engine
	merchants    *services.MerchantService
	openingHours *services.OpeningHourService
	userRepo     *repositories.UserRepository
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	require.NoError(t, config.Load())
	gin.SetMode(gin.TestMode)

	db, err := database.Open(database.MemoryPath)
	require.NoError(t, err)
	require.NoError(t, database.RunSQLScripts(db, migrations.FS))
	t.Cleanup(func() { db.Close() })

	merchantRepo := repositories.NewMerchantRepository(db)
	openingHourRepo := repositories.NewOpeningHourRepository(db)
	modeScheduleRepo := repositories.NewModeScheduleRepository(db)
	specialHourRepo := repositories.NewSpecialHourRepository(db)
	userRepo := repositories.NewUserRepository(db)

	merchantService := services.NewMerchantService(merchantRepo)
	openingHourService := services.NewOpeningHourService(openingHourRepo, merchantRepo)

	router := gin.New()
	router.Use(middleware.SessionMiddleware())
	SetupRoutes(router, Handlers{
		Status:   NewStatusHandler(services.NewStoreStatusService(merchantRepo, openingHourRepo, modeScheduleRepo, specialHourRepo)),
		Auth:     NewAuthHandler(services.NewUserService(userRepo, nil), services.NewOAuthService(config.AppConfig.OAuth)),
		Merchant: NewMerchantHandler(merchantService),
		Schedule: NewScheduleHandler(
			openingHourService,
			services.NewModeScheduleService(modeScheduleRepo, merchantRepo),
			services.NewSpecialHourService(specialHourRepo, merchantRepo),
			services.NewScheduleExportService(merchantRepo, openingHourRepo, modeScheduleRepo, specialHourRepo),
		),
		Admin:    NewAdminHandler(merchantService, fakeWorkers{"status-snapshot-1": true}),
		Health:   NewHealthHandler(db, nil),
		NotFound: NewNotFoundHandler(),
	}, RateLimit{PerSecond: 1000, Burst: 1000})

	return &testServer{
		router:       router,
		merchants:    merchantService,
		openingHours: openingHourService,
		userRepo:     userRepo,
	}
}

// seedWarung creates a Jakarta merchant open Monday 09:00-22:00
func (s *testServer) seedWarung(t *testing.T) *models.Merchant {
	t.Helper()
	merchant, err := s.merchants.CreateMerchant("WARUNG", "Warung", "Asia/Jakarta")
	require.NoError(t, err)

	open, closeAt := "09:00", "22:00"
	_, err = s.openingHours.ReplaceWeek(merchant.ID, []models.OpeningHour{
		{DayOfWeek: 1, OpenTime: &open, CloseTime: &closeAt},
	})
	require.NoError(t, err)
	return merchant
}

// sessionCookie signs a session for user the same way the login callback does
func sessionCookie(t *testing.T, user *models.User) *http.Cookie {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	require.NoError(t, middleware.SetSession(c, user))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	return cookies[0]
}

func ownerOf(merchantID string) *models.User {
	return &models.User{ID: uuid.New(), Email: "owner@example.com", Role: models.RoleMerchantOwner, MerchantID: &merchantID}
}

func superAdmin() *models.User {
	return &models.User{ID: uuid.New(), Email: "root@example.com", Role: models.RoleSuperAdmin}
}

func (s *testServer) do(t *testing.T, method, path string, body interface{}, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}
