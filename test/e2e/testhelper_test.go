package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/hbnb-backend/internal/adapter/handler"
	pgRepo "github.com/marcos-nsantos/hbnb-backend/internal/adapter/repository/postgres"
	"github.com/marcos-nsantos/hbnb-backend/internal/infrastructure/auth"
	"github.com/marcos-nsantos/hbnb-backend/internal/infrastructure/database"
	"github.com/marcos-nsantos/hbnb-backend/internal/infrastructure/middleware"
	"github.com/marcos-nsantos/hbnb-backend/internal/infrastructure/server"
	"github.com/marcos-nsantos/hbnb-backend/internal/usecase/amenity"
	authUC "github.com/marcos-nsantos/hbnb-backend/internal/usecase/auth"
	"github.com/marcos-nsantos/hbnb-backend/internal/usecase/place"
	"github.com/marcos-nsantos/hbnb-backend/internal/usecase/review"
	"github.com/marcos-nsantos/hbnb-backend/internal/usecase/user"
)

const (
	testDBUser     = "testuser"
	testDBPassword = "testpass"
	testDBName     = "testdb"
	testJWTSecret  = "test-secret-key-for-e2e-tests"
	apiBasePath    = "/api/v1"
)

type TestApp struct {
	Server     *httptest.Server
	Pool       *pgxpool.Pool
	Container  testcontainers.Container
	BaseURL    string
	httpClient *http.Client
}

func setupTestApp(t *testing.T) *TestApp {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping e2e test in short mode")
	}

	gin.SetMode(gin.TestMode)
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:18-alpine",
		postgres.WithDatabase(testDBName),
		postgres.WithUsername(testDBUser),
		postgres.WithPassword(testDBPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)

	migrationsPath := getMigrationsPath()
	err = database.RunMigrations(ctx, pool, migrationsPath)
	require.NoError(t, err)

	// Repositories
	userRepo := pgRepo.NewUserRepo(pool)
	amenityRepo := pgRepo.NewAmenityRepo(pool)
	placeRepo := pgRepo.NewPlaceRepo(pool)
	reviewRepo := pgRepo.NewReviewRepo(pool)
	refreshTokenRepo := pgRepo.NewRefreshTokenRepo(pool)

	// Infrastructure services
	jwtSvc := auth.NewJWTService(testJWTSecret, 15*time.Minute)
	passwordHasher := auth.NewPasswordHasher(4) // Lower cost for faster tests

	// Use cases
	authSvc := authUC.NewService(userRepo, refreshTokenRepo, jwtSvc, passwordHasher, 24*time.Hour)
	userSvc := user.NewService(userRepo, passwordHasher)
	amenitySvc := amenity.NewService(amenityRepo)
	placeSvc := place.NewService(placeRepo, userRepo, amenityRepo)
	reviewSvc := review.NewService(reviewRepo, placeRepo, userRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authSvc)
	userHandler := handler.NewUserHandler(userSvc)
	amenityHandler := handler.NewAmenityHandler(amenitySvc)
	placeHandler := handler.NewPlaceHandler(placeSvc)
	reviewHandler := handler.NewReviewHandler(reviewSvc)

	authMiddleware := middleware.NewAuthMiddleware(jwtSvc)

	logger, _ := zap.NewDevelopment()
	router := server.NewRouter(server.RouterConfig{
		AuthHandler:           authHandler,
		UserHandler:           userHandler,
		AmenityHandler:        amenityHandler,
		PlaceHandler:          placeHandler,
		ReviewHandler:         reviewHandler,
		AuthMiddleware:        authMiddleware,
		Logger:                logger,
		Environment:           "test",
		BootstrapAdminEnabled: true, // tests need a first admin
	})

	ts := httptest.NewServer(router.Engine())

	return &TestApp{
		Server:    ts,
		Pool:      pool,
		Container: pgContainer,
		BaseURL:   ts.URL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (app *TestApp) cleanup(t *testing.T) {
	t.Helper()

	app.Server.Close()
	app.Pool.Close()

	ctx := context.Background()
	if err := app.Container.Terminate(ctx); err != nil {
		t.Logf("failed to terminate container: %v", err)
	}
}

func (app *TestApp) request(method, path string, body any, headers map[string]string) (*http.Response, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	fullPath := apiBasePath + path
	req, err := http.NewRequest(method, app.BaseURL+fullPath, bodyReader)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return app.httpClient.Do(req)
}

func (app *TestApp) get(path string, headers map[string]string) (*http.Response, error) {
	return app.request(http.MethodGet, path, nil, headers)
}

func (app *TestApp) post(path string, body any, headers map[string]string) (*http.Response, error) {
	return app.request(http.MethodPost, path, body, headers)
}

func (app *TestApp) put(path string, body any, headers map[string]string) (*http.Response, error) {
	return app.request(http.MethodPut, path, body, headers)
}

func (app *TestApp) delete(path string, headers map[string]string) (*http.Response, error) {
	return app.request(http.MethodDelete, path, nil, headers)
}

func parseResponse(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	if dest != nil {
		err = json.Unmarshal(body, dest)
		require.NoError(t, err, "response body: %s", string(body))
	}
}

func authHeader(token string) map[string]string {
	return map[string]string{
		"Authorization": "Bearer " + token,
	}
}

// bootstrapAdmin creates an admin account and returns its access token.
func (app *TestApp) bootstrapAdmin(t *testing.T, email, password string) string {
	t.Helper()

	resp, err := app.post("/auth/bootstrap-admin", map[string]string{
		"email":    email,
		"password": password,
	}, nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	return app.login(t, email, password)
}

// login returns the access token for the given credentials.
func (app *TestApp) login(t *testing.T, email, password string) string {
	t.Helper()

	resp, err := app.post("/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var loginResp map[string]any
	parseResponse(t, resp, &loginResp)
	return loginResp["access_token"].(string)
}

// createUser registers a user through the admin-only endpoint and returns its id.
func (app *TestApp) createUser(t *testing.T, adminToken, firstName, lastName, email, password string) string {
	t.Helper()

	resp, err := app.post("/users", map[string]any{
		"first_name": firstName,
		"last_name":  lastName,
		"email":      email,
		"password":   password,
	}, authHeader(adminToken))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var userResp map[string]any
	parseResponse(t, resp, &userResp)
	return userResp["id"].(string)
}

// getMigrationsPath returns the absolute path to the migrations directory
func getMigrationsPath() string {
	_, filename, _, _ := runtime.Caller(0)
	testDir := filepath.Dir(filename)
	return filepath.Join(testDir, "..", "..", "migrations")
}
