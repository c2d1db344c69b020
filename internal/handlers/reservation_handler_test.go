package handlers

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/weecompany/reservas-api/internal/dto"
	"github.com/weecompany/reservas-api/internal/httpresp"
	"github.com/weecompany/reservas-api/internal/models"
)

func reservationBody(dt time.Time, partySize int) map[string]any {
	return map[string]any{
		"date_time":  dt.Format(time.RFC3339),
		"party_size": partySize,
	}
}

func TestCreateReservation_ForcesOwner(t *testing.T) {
	env := newTestEnv(t)
	id, tok := env.seedUser(t, "Ana", "ana@example.com", "secret1", "Client")

	// The body claims another owner; it must be ignored.
	body := reservationBody(time.Date(2026, 9, 15, 20, 0, 0, 0, time.UTC), 4)
	body["user_id"] = 999

	rec := env.do(t, http.MethodPost, "/reservas", tok, body)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}

	var msg map[string]string
	decodeJSON(t, rec, &msg)
	if msg["message"] != "Reserva creada correctamente." {
		t.Fatalf("unexpected confirmation: %q", msg["message"])
	}

	stored, err := env.reservas.FindByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("reservation not stored: %v", err)
	}
	if stored.UserID != id {
		t.Fatalf("owner should be %d from the token, got %d", id, stored.UserID)
	}
}

func TestCreateReservation_RequiresAuth(t *testing.T) {
	env := newTestEnv(t)

	body := reservationBody(time.Now(), 2)
	if rec := env.do(t, http.MethodPost, "/reservas", "", body); rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}
}

func TestListAll_AdminOnly(t *testing.T) {
	env := newTestEnv(t)
	clientID, clientTok := env.seedUser(t, "Ana", "ana@example.com", "secret1", "Client")
	_, adminTok := env.seedUser(t, "Root", "root@example.com", "secret1", "Admin")

	env.reservas.Create(context.Background(), &models.Reservation{
		UserID: clientID, DateTime: time.Now(), PartySize: 2,
	})

	if rec := env.do(t, http.MethodGet, "/reservas", clientTok, nil); rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for client, got %d", rec.Code)
	}

	rec := env.do(t, http.MethodGet, "/reservas", adminTok, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for admin, got %d", rec.Code)
	}

	var body httpresp.ListResponse[dto.ReservationListDTO]
	decodeJSON(t, rec, &body)
	if body.Total != 1 {
		t.Fatalf("expected 1 row, got %d", body.Total)
	}
	row := body.Data[0]
	if row.OwnerID != clientID || row.OwnerEmail != "ana@example.com" || row.OwnerName != "Ana" {
		t.Fatalf("owner data missing from admin listing: %+v", row)
	}
}

func TestListOwn_NeverLeaksOtherOwners(t *testing.T) {
	env := newTestEnv(t)
	aID, aTok := env.seedUser(t, "Ana", "ana@example.com", "secret1", "Client")
	bID, _ := env.seedUser(t, "Beto", "beto@example.com", "secret1", "Client")

	env.reservas.Create(context.Background(), &models.Reservation{UserID: aID, DateTime: time.Now(), PartySize: 2})
	env.reservas.Create(context.Background(), &models.Reservation{UserID: bID, DateTime: time.Now(), PartySize: 3})

	rec := env.do(t, http.MethodGet, "/reservas/mis-reservas", aTok, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body httpresp.ListResponse[models.Reservation]
	decodeJSON(t, rec, &body)
	if body.Total != 1 {
		t.Fatalf("expected exactly 1 own reservation, got %d", body.Total)
	}
	if body.Data[0].UserID != aID {
		t.Fatalf("listing leaked a reservation owned by %d", body.Data[0].UserID)
	}
}

func TestUpdateReservation_OwnershipMatrix(t *testing.T) {
	env := newTestEnv(t)
	aID, aTok := env.seedUser(t, "Ana", "ana@example.com", "secret1", "Client")
	_, bTok := env.seedUser(t, "Beto", "beto@example.com", "secret1", "Client")
	_, adminTok := env.seedUser(t, "Root", "root@example.com", "secret1", "Admin")

	env.reservas.Create(context.Background(), &models.Reservation{
		UserID: aID, DateTime: time.Now(), PartySize: 2,
	})

	body := reservationBody(time.Date(2026, 10, 1, 21, 0, 0, 0, time.UTC), 5)

	if rec := env.do(t, http.MethodPut, "/reservas/1", bTok, body); rec.Code != http.StatusForbidden {
		t.Fatalf("other client: expected 403, got %d", rec.Code)
	}
	if rec := env.do(t, http.MethodPut, "/reservas/1", aTok, body); rec.Code != http.StatusOK {
		t.Fatalf("owner: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	if rec := env.do(t, http.MethodPut, "/reservas/1", adminTok, body); rec.Code != http.StatusOK {
		t.Fatalf("admin: expected 200, got %d", rec.Code)
	}

	stored, _ := env.reservas.FindByID(context.Background(), 1)
	if stored.PartySize != 5 {
		t.Fatalf("update not applied, party size %d", stored.PartySize)
	}
}

func TestUpdateReservation_NotFound(t *testing.T) {
	env := newTestEnv(t)
	_, adminTok := env.seedUser(t, "Root", "root@example.com", "secret1", "Admin")

	body := reservationBody(time.Now(), 2)
	if rec := env.do(t, http.MethodPut, "/reservas/999", adminTok, body); rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 even for admin, got %d", rec.Code)
	}
}

func TestDeleteReservation_OwnershipMatrix(t *testing.T) {
	env := newTestEnv(t)
	aID, aTok := env.seedUser(t, "Ana", "ana@example.com", "secret1", "Client")
	_, bTok := env.seedUser(t, "Beto", "beto@example.com", "secret1", "Client")
	_, adminTok := env.seedUser(t, "Root", "root@example.com", "secret1", "Admin")

	for i := 0; i < 2; i++ {
		env.reservas.Create(context.Background(), &models.Reservation{
			UserID: aID, DateTime: time.Now(), PartySize: 2,
		})
	}

	if rec := env.do(t, http.MethodDelete, "/reservas/1", bTok, nil); rec.Code != http.StatusForbidden {
		t.Fatalf("other client: expected 403, got %d", rec.Code)
	}
	if rec := env.do(t, http.MethodDelete, "/reservas/1", adminTok, nil); rec.Code != http.StatusOK {
		t.Fatalf("admin: expected 200, got %d", rec.Code)
	}
	if rec := env.do(t, http.MethodDelete, "/reservas/2", aTok, nil); rec.Code != http.StatusOK {
		t.Fatalf("owner: expected 200, got %d", rec.Code)
	}

	// Both rows are physically gone.
	for _, id := range []uint{1, 2} {
		if _, err := env.reservas.FindByID(context.Background(), id); err == nil {
			t.Fatalf("reservation %d should be deleted", id)
		}
	}
}

func TestDeleteReservation_NotFound(t *testing.T) {
	env := newTestEnv(t)
	_, clientTok := env.seedUser(t, "Ana", "ana@example.com", "secret1", "Client")
	_, adminTok := env.seedUser(t, "Root", "root@example.com", "secret1", "Admin")

	for name, tok := range map[string]string{"client": clientTok, "admin": adminTok} {
		if rec := env.do(t, http.MethodDelete, "/reservas/404", tok, nil); rec.Code != http.StatusNotFound {
			t.Fatalf("%s: expected 404, got %d", name, rec.Code)
		}
	}
}

func TestReservation_InvalidID(t *testing.T) {
	env := newTestEnv(t)
	_, tok := env.seedUser(t, "Ana", "ana@example.com", "secret1", "Client")

	for _, path := range []string{"/reservas/abc", fmt.Sprintf("/reservas/%s", "-1")} {
		if rec := env.do(t, http.MethodDelete, path, tok, nil); rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", path, rec.Code)
		}
	}
}
