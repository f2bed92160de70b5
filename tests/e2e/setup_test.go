//go:build e2e
// +build e2e

package e2e

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/docker/docker/client"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresDriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	adminUser = "admin"
	adminPass = "e2e-admin-pass"
)

// E2ETestSuite runs the service in a container against a real PostgreSQL
// instance and exercises the public HTTP surface.
type E2ETestSuite struct {
	suite.Suite
	ctx          context.Context
	pgContainer  *postgres.PostgresContainer
	db           *gorm.DB
	appContainer testcontainers.Container
	baseURL      string
	httpClient   *http.Client
}

// SetupSuite runs once before all tests
func (s *E2ETestSuite) SetupSuite() {
	s.ctx = context.Background()

	pgContainer, err := postgres.Run(s.ctx,
		"postgres:12-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(s.T(), err, "failed to start PostgreSQL container")
	s.pgContainer = pgContainer

	connStr, err := pgContainer.ConnectionString(s.ctx, "sslmode=disable")
	require.NoError(s.T(), err, "failed to get connection string")

	// Direct connection for test assertions only; the application
	// container applies the migrations on startup.
	db, err := gorm.Open(postgresDriver.Open(connStr), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(s.T(), err, "failed to connect to database")
	s.db = db

	// The app container needs the database's internal address, not the
	// host-mapped one.
	containerName, err := pgContainer.Name(s.ctx)
	require.NoError(s.T(), err, "failed to get PostgreSQL container name")

	dockerClient, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	require.NoError(s.T(), err, "failed to create Docker client")
	defer dockerClient.Close()

	containerNameClean := strings.TrimPrefix(containerName, "/")
	containerInfo, err := dockerClient.ContainerInspect(s.ctx, containerNameClean)
	require.NoError(s.T(), err, "failed to inspect PostgreSQL container")

	var dbHost string
	for _, network := range containerInfo.NetworkSettings.Networks {
		dbHost = network.IPAddress
		break
	}
	if dbHost == "" {
		dbHost = containerNameClean
	}

	appContainer, err := testcontainers.GenericContainer(s.ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "hackfest-api-e2e:test",
			ExposedPorts: []string{"8080/tcp"},
			Env: map[string]string{
				"DB_HOST":                dbHost,
				"DB_PORT":                "5432",
				"DB_USER":                "testuser",
				"DB_PASSWORD":            "testpass",
				"DB_NAME":                "testdb",
				"DB_SSLMODE":             "disable",
				"DB_TIMEZONE":            "UTC",
				"DB_RETRY_MAX_ATTEMPTS":  "5",
				"DB_RETRY_INITIAL_DELAY": "1s",
				"DB_RETRY_MAX_DELAY":     "30s",
				"DB_RETRY_MULTIPLIER":    "2.0",
				"SERVER_HOST":            "",
				"SERVER_PORT":            ":8080",
				"SERVER_READ_TIMEOUT":    "10s",
				"SERVER_WRITE_TIMEOUT":   "10s",
				"SERVER_IDLE_TIMEOUT":    "120s",
				"GIN_MODE":               "release",
				"LOG_LEVEL":              "info",
				"LOG_FORMAT":             "json",
				"LOG_OUTPUT":             "stdout",
				"MIGRATIONS_PATH":        "migrations",
				"ADMIN_USERNAME":         adminUser,
				"ADMIN_PASSWORD":         adminPass,
				"ADMIN_SESSION_SECRET":   "e2e-session-secret",
				"ADMIN_COOKIE_SECURE":    "false",
				// Generous limits so only the dedicated rate-limit
				// test trips the guard.
				"RATE_LIMIT_WINDOW":       "1h",
				"RATE_LIMIT_MAX_ATTEMPTS": "1000",
				"RATE_LIMIT_MIN_INTERVAL": "0s",
			},
			WaitingFor: wait.ForHTTP("/health").
				WithPort("8080/tcp").
				WithStartupTimeout(120 * time.Second).
				WithPollInterval(2 * time.Second),
		},
		Started: true,
	})
	require.NoError(s.T(), err, "failed to start application container")
	s.appContainer = appContainer

	host, err := appContainer.Host(s.ctx)
	require.NoError(s.T(), err, "failed to get container host")
	port, err := appContainer.MappedPort(s.ctx, "8080")
	require.NoError(s.T(), err, "failed to get container port")

	s.baseURL = fmt.Sprintf("http://%s:%s", host, port.Port())
	s.httpClient = &http.Client{Timeout: 30 * time.Second}

	s.waitForApp()
}

// TearDownSuite runs once after all tests
func (s *E2ETestSuite) TearDownSuite() {
	if s.appContainer != nil {
		_ = s.appContainer.Terminate(s.ctx)
	}
	if s.pgContainer != nil {
		_ = s.pgContainer.Terminate(s.ctx)
	}
}

// SetupTest runs before each test
func (s *E2ETestSuite) SetupTest() {
	s.db.Exec("TRUNCATE TABLE team_submissions CASCADE")
	s.db.Exec("TRUNCATE TABLE submission_access_keys CASCADE")
	s.db.Exec("TRUNCATE TABLE team_members CASCADE")
	s.db.Exec("TRUNCATE TABLE team_registrations CASCADE")
}

// waitForApp waits for the application to be ready
func (s *E2ETestSuite) waitForApp() {
	maxRetries := 30
	for i := 0; i < maxRetries; i++ {
		resp, err := s.httpClient.Get(s.baseURL + "/health")
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return
		}
		if resp != nil {
			resp.Body.Close()
		}
		time.Sleep(1 * time.Second)
	}
	s.T().Fatal("application did not become ready in time")
}

// doRequest performs an HTTP request with an optional JSON body.
func (s *E2ETestSuite) doRequest(method, path string, body interface{}) (*http.Response, []byte) {
	return s.doRequestAuth(method, path, body, false)
}

// doRequestAuth performs an HTTP request, optionally with admin Basic auth.
func (s *E2ETestSuite) doRequestAuth(method, path string, body interface{}, admin bool) (*http.Response, []byte) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(s.T(), err, "failed to marshal request body")
		reader = strings.NewReader(string(raw))
	}

	req, err := http.NewRequest(method, s.baseURL+path, reader)
	require.NoError(s.T(), err, "failed to create request")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if admin {
		req.SetBasicAuth(adminUser, adminPass)
	}

	resp, err := s.httpClient.Do(req)
	require.NoError(s.T(), err, "failed to perform request")

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(s.T(), err, "failed to read response body")
	resp.Body.Close()

	return resp, respBody
}

// parseErrorResponse parses the error envelope.
func (s *E2ETestSuite) parseErrorResponse(respBody []byte) (string, string) {
	var errResp struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	err := json.Unmarshal(respBody, &errResp)
	require.NoError(s.T(), err, "failed to unmarshal error response")
	return errResp.Error.Code, errResp.Error.Message
}

// registerTeam registers a valid team via the HTTP API.
func (s *E2ETestSuite) registerTeam(leadEmail string) {
	resp, respBody := s.doRequest("POST", "/registrations", map[string]interface{}{
		"team_name": "Team " + leadEmail,
		"team_size": 3,
		"campus":    "north",
		"batch":     "2026",
		"lead": map[string]string{
			"name":   "Lead",
			"email":  leadEmail,
			"gender": "female",
		},
		"members": []map[string]string{
			{"name": "Member One", "email": "m1+" + leadEmail, "gender": "male"},
			{"name": "Member Two", "email": "m2+" + leadEmail, "gender": "male"},
		},
	})
	require.Equal(s.T(), http.StatusCreated, resp.StatusCode, "registration failed: %s", string(respBody))
}

// generateCode mints an access code for a registered team via the admin API.
func (s *E2ETestSuite) generateCode(leadEmail string) string {
	resp, respBody := s.doRequestAuth("POST", "/final-submissions/codes", map[string]string{
		"lead_email": leadEmail,
	}, true)
	require.Equal(s.T(), http.StatusCreated, resp.StatusCode, "code generation failed: %s", string(respBody))

	var result struct {
		AccessCode string `json:"access_code"`
	}
	require.NoError(s.T(), json.Unmarshal(respBody, &result))
	require.NotEmpty(s.T(), result.AccessCode)
	return result.AccessCode
}

// getAppLogs retrieves application container logs for debugging.
func (s *E2ETestSuite) getAppLogs() string {
	if s.appContainer == nil {
		return ""
	}

	logs, err := s.appContainer.Logs(s.ctx)
	if err != nil {
		return fmt.Sprintf("Failed to get logs: %v", err)
	}
	defer logs.Close()

	logBytes, err := io.ReadAll(logs)
	if err != nil {
		return fmt.Sprintf("Failed to read logs: %v", err)
	}
	return string(logBytes)
}
