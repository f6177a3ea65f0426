package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"restaurant_panel/internal/database"
	"restaurant_panel/internal/handlers"
	"restaurant_panel/internal/redis"
	"restaurant_panel/internal/repository"
	"restaurant_panel/internal/services"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const (
	testMockEmail    = "admin@orla33.com"
	testMockPassword = "orla33admin"
)

// memorySessionStore replaces the redis mirror in handler tests.
type memorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]*redis.AuthSession
}

func newMemorySessionStore() *memorySessionStore {
	return &memorySessionStore{sessions: make(map[string]*redis.AuthSession)}
}

func (s *memorySessionStore) SetAuthSession(token string, session *redis.AuthSession, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = session
	return nil
}

func (s *memorySessionStore) GetAuthSession(token string) (*redis.AuthSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[token]
	if !ok {
		return nil, redis.ErrNotFound
	}
	return session, nil
}

func (s *memorySessionStore) DeleteAuthSession(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}

// setupTestRouter wires the full route table over an in-memory SQLite
// database, mirroring the production wiring in cmd/server.
func setupTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "failed to open test database")
	require.NoError(t, database.AutoMigrate(db), "failed to migrate test database")

	logger := zap.NewNop()

	orderRepo := repository.NewOrderRepository(db)
	productRepo := repository.NewProductRepository(db)
	groupRepo := repository.NewGroupRepository(db)
	promotionRepo := repository.NewPromotionRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	orderService := services.NewOrderService(orderRepo, settingsRepo, nil, nil, logger)
	productService := services.NewProductService(productRepo)
	groupService := services.NewGroupService(groupRepo)
	promotionService := services.NewPromotionService(promotionRepo, productRepo, groupRepo)
	financeService := services.NewFinanceService(orderRepo, nil, time.Minute, logger)
	settingsService := services.NewSettingsService(settingsRepo)
	authService, err := services.NewAuthService(testMockEmail, testMockPassword, newMemorySessionStore(), time.Hour)
	require.NoError(t, err)

	authHandler := handlers.NewAuthHandler(authService, logger)
	boardHandler := handlers.NewBoardHandler(orderService, logger)
	productHandler := handlers.NewProductHandler(productService, logger)
	groupHandler := handlers.NewGroupHandler(groupService, productService, logger)
	promotionHandler := handlers.NewPromotionHandler(promotionService, logger)
	financeHandler := handlers.NewFinanceHandler(financeService, logger)
	settingsHandler := handlers.NewSettingsHandler(settingsService, logger)

	router := gin.New()
	router.Use(gin.Recovery())

	store := cookie.NewStore([]byte("test-secret"))
	store.Options(sessions.Options{Path: "/", MaxAge: 0, HttpOnly: true})
	router.Use(sessions.Sessions("painel_sess", store))

	router.POST("/auth/login", authHandler.Login)
	router.POST("/auth/logout", authHandler.Logout)
	router.GET("/auth/session", authHandler.Session)

	api := router.Group("/api")
	api.Use(handlers.RequireSession(authService))
	{
		api.GET("/pedidos", boardHandler.ListOrders)
		api.GET("/pedidos/quadro", boardHandler.GetBoard)
		api.POST("/pedidos", boardHandler.CreateOrder)
		api.PATCH("/pedidos/:id/avancar", boardHandler.AdvanceOrder)
		api.DELETE("/pedidos/:id", boardHandler.DeclineOrder)

		api.GET("/produtos", productHandler.ListProducts)
		api.POST("/produtos", productHandler.CreateProduct)
		api.PUT("/produtos/:id", productHandler.UpdateProduct)
		api.PATCH("/produtos/:id/grupo", productHandler.SetProductGroup)
		api.DELETE("/produtos/:id", productHandler.DeleteProduct)

		api.GET("/grupos", groupHandler.ListGroups)
		api.GET("/grupos/:id/produtos", groupHandler.ListGroupProducts)
		api.POST("/grupos", groupHandler.CreateGroup)
		api.PUT("/grupos/:id", groupHandler.UpdateGroup)
		api.DELETE("/grupos/:id", groupHandler.DeleteGroup)

		api.GET("/promocoes", promotionHandler.ListPromotions)
		api.POST("/promocoes", promotionHandler.CreatePromotion)
		api.PUT("/promocoes/:id", promotionHandler.UpdatePromotion)
		api.DELETE("/promocoes/:id", promotionHandler.DeletePromotion)

		api.GET("/financas/transacoes", financeHandler.ListTransactions)
		api.GET("/financas/relatorio", financeHandler.ExportReport)

		api.GET("/configuracoes", settingsHandler.GetSettings)
		api.PUT("/configuracoes", settingsHandler.SaveSettings)
	}

	return router, db
}

func jsonRequest(method, path string, body interface{}) *http.Request {
	var reqBody []byte
	if body != nil {
		reqBody, _ = json.Marshal(body)
	}
	req := httptest.NewRequest(method, path, bytes.NewBuffer(reqBody))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// login performs the mock sign-in and returns the session cookies to attach
// to subsequent requests.
func login(t *testing.T, router *gin.Engine) []*http.Cookie {
	t.Helper()

	recorder := httptest.NewRecorder()
	req := jsonRequest(http.MethodPost, "/auth/login", map[string]string{
		"email":    testMockEmail,
		"password": testMockPassword,
	})
	router.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code, "login failed: %s", recorder.Body.String())

	return recorder.Result().Cookies()
}

func authedRequest(t *testing.T, router *gin.Engine, cookies []*http.Cookie, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	recorder := httptest.NewRecorder()
	req := jsonRequest(method, path, body)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	router.ServeHTTP(recorder, req)
	return recorder
}
