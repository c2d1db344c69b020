package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/weecompany/reservas-api/internal/audit"
	"github.com/weecompany/reservas-api/internal/config"
	resdomain "github.com/weecompany/reservas-api/internal/domain/reservation"
	userdomain "github.com/weecompany/reservas-api/internal/domain/user"
	"github.com/weecompany/reservas-api/internal/middleware"
	"github.com/weecompany/reservas-api/internal/models"
	"github.com/weecompany/reservas-api/internal/security"
	"github.com/weecompany/reservas-api/internal/token"
	ucauth "github.com/weecompany/reservas-api/internal/usecase/auth"
	ucres "github.com/weecompany/reservas-api/internal/usecase/reservation"
)

const (
	testSecret   = "test-secret"
	testIssuer   = "TestIssuer"
	testAudience = "TestAudience"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// --------- In-memory stores ---------

type memUserRepo struct {
	users  map[string]*models.User
	nextID uint
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*models.User), nextID: 1}
}

func (r *memUserRepo) Create(_ context.Context, u *models.User) error {
	u.ID = r.nextID
	r.nextID++
	clone := *u
	r.users[u.Email] = &clone
	return nil
}

func (r *memUserRepo) FindByID(_ context.Context, id uint) (*models.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			clone := *u
			return &clone, nil
		}
	}
	return nil, userdomain.ErrNotFound
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	if u, ok := r.users[email]; ok {
		clone := *u
		return &clone, nil
	}
	return nil, userdomain.ErrNotFound
}

func (r *memUserRepo) EmailTaken(_ context.Context, email string) (bool, error) {
	_, ok := r.users[email]
	return ok, nil
}

type memReservationRepo struct {
	rows   map[uint]*models.Reservation
	owners map[uint]*models.User
	nextID uint
}

func newMemReservationRepo() *memReservationRepo {
	return &memReservationRepo{
		rows:   make(map[uint]*models.Reservation),
		owners: make(map[uint]*models.User),
		nextID: 1,
	}
}

func (r *memReservationRepo) Create(_ context.Context, res *models.Reservation) error {
	res.ID = r.nextID
	r.nextID++
	clone := *res
	r.rows[res.ID] = &clone
	return nil
}

func (r *memReservationRepo) FindByID(_ context.Context, id uint) (*models.Reservation, error) {
	if res, ok := r.rows[id]; ok {
		clone := *res
		return &clone, nil
	}
	return nil, resdomain.ErrNotFound
}

func (r *memReservationRepo) FindAllWithOwners(context.Context) ([]models.Reservation, error) {
	out := make([]models.Reservation, 0, len(r.rows))
	for _, res := range r.rows {
		row := *res
		if owner, ok := r.owners[res.UserID]; ok {
			row.User = *owner
		}
		out = append(out, row)
	}
	return out, nil
}

func (r *memReservationRepo) FindByOwner(_ context.Context, ownerID uint) ([]models.Reservation, error) {
	out := []models.Reservation{}
	for _, res := range r.rows {
		if res.UserID == ownerID {
			out = append(out, *res)
		}
	}
	return out, nil
}

func (r *memReservationRepo) Update(_ context.Context, res *models.Reservation) error {
	if _, ok := r.rows[res.ID]; !ok {
		return resdomain.ErrNotFound
	}
	clone := *res
	r.rows[res.ID] = &clone
	return nil
}

func (r *memReservationRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.rows[id]; !ok {
		return resdomain.ErrNotFound
	}
	delete(r.rows, id)
	return nil
}

type discardWriter struct{}

func (discardWriter) Write(audit.Event) error { return nil }

// --------- Router ---------

type testEnv struct {
	router   *gin.Engine
	tokens   *token.Service
	users    *memUserRepo
	reservas *memReservationRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	users := newMemUserRepo()
	reservas := newMemReservationRepo()
	tokens := token.New(testSecret, testIssuer, testAudience)
	auditor := audit.NewDispatcher(discardWriter{}, zerolog.Nop())
	cfg := &config.Config{JWTSecret: testSecret, JWTIssuer: testIssuer, JWTAudience: testAudience}

	authHandler := NewAuthHandler(
		ucauth.NewRegisterUser(users, auditor),
		ucauth.NewLoginUser(users, tokens, auditor),
		nil,
		cfg,
	)
	meHandler := NewMeHandler(users)
	reservationHandler := NewReservationHandler(
		ucres.NewCreateReservation(reservas, auditor),
		ucres.NewUpdateReservation(reservas, auditor),
		ucres.NewDeleteReservation(reservas, auditor),
		ucres.NewListAllReservations(reservas),
		ucres.NewListOwnReservations(reservas),
	)

	r := gin.New()
	r.POST("/auth/registro", authHandler.Register)
	r.POST("/auth/login", authHandler.Login)

	secured := r.Group("/")
	secured.Use(middleware.AuthMiddleware(tokens))
	{
		secured.GET("/me", meHandler.GetMe)
		secured.GET("/reservas", reservationHandler.ListAll)
		secured.GET("/reservas/mis-reservas", reservationHandler.ListOwn)
		secured.POST("/reservas", reservationHandler.Create)
		secured.PUT("/reservas/:id", reservationHandler.Update)
		secured.DELETE("/reservas/:id", reservationHandler.Delete)
	}

	return &testEnv{router: r, tokens: tokens, users: users, reservas: reservas}
}

// seedUser inserts a user directly in the store and returns a bearer token.
func (e *testEnv) seedUser(t *testing.T, name, email, password, role string) (uint, string) {
	t.Helper()

	hash, err := security.HashPassword(password)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	u := &models.User{Name: name, Email: email, PasswordHash: hash, Role: role}
	if err := e.users.Create(context.Background(), u); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	e.reservas.owners[u.ID] = u

	tok, err := e.tokens.Issue(u.ID, u.Email, u.Role)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return u.ID, tok
}

func (e *testEnv) do(t *testing.T, method, path, bearer string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}
