package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/havenstay/backend/internal/app"
	"github.com/havenstay/backend/internal/config"
	"github.com/havenstay/backend/internal/dtos"
	"github.com/havenstay/backend/internal/models"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	application, err := app.NewApp(config.TestConfig())
	require.NoError(t, err)
	t.Cleanup(application.Close)

	srv := httptest.NewServer(NewRouter(application))
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, srv *httptest.Server, method, path, token string, body any, out any) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, srv.URL+path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func login(t *testing.T, srv *httptest.Server, email string) (string, models.User) {
	t.Helper()
	var auth dtos.AuthResponse
	resp := doJSON(t, srv, http.MethodPost, AuthLogin, "", map[string]string{
		"email":    email,
		"password": config.DemoPassword,
	}, &auth)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotEmpty(t, auth.Token)
	return auth.Token, auth.User
}

// -----------------------------------------------------------------------------
// Health and auth surface
// -----------------------------------------------------------------------------

func TestHealthEndpointIsPublic(t *testing.T) {
	srv := newTestServer(t)

	var health dtos.HealthCheckResponse
	resp := doJSON(t, srv, http.MethodGet, Health, "", nil, &health)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "OK", health.Status)
}

func TestProtectedEndpointsRequireToken(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{Tasks, Properties, Bookings} {
		resp := doJSON(t, srv, http.MethodGet, path, "", nil, nil)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode, "path %s", path)
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	srv := newTestServer(t)

	resp := doJSON(t, srv, http.MethodPost, AuthLogin, "", map[string]string{
		"email":    "renter@mail.com",
		"password": "wrong-password",
	}, nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRegisterThenLoginRoundTrip(t *testing.T) {
	srv := newTestServer(t)

	var auth dtos.AuthResponse
	resp := doJSON(t, srv, http.MethodPost, AuthRegister, "", map[string]string{
		"name":     "New Renter",
		"email":    "new.renter@mail.com",
		"password": "s3cret-pass",
		"role":     "renter",
	}, &auth)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Equal(t, models.RoleRenter, auth.User.Role)
	require.Empty(t, auth.User.PasswordHash)

	var again dtos.AuthResponse
	resp = doJSON(t, srv, http.MethodPost, AuthLogin, "", map[string]string{
		"email":    "new.renter@mail.com",
		"password": "s3cret-pass",
	}, &again)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotEmpty(t, again.Token)
	require.Equal(t, auth.User.ID, again.User.ID)
}

// -----------------------------------------------------------------------------
// Task flow
// -----------------------------------------------------------------------------

func TestTaskLifecycleOverHTTP(t *testing.T) {
	srv := newTestServer(t)
	token, _ := login(t, srv, "renter@mail.com")

	// fresh identities start with the two starter tasks
	var list dtos.TaskListResponse
	resp := doJSON(t, srv, http.MethodGet, Tasks, token, nil, &list)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, list.Tasks, 2)

	var created models.Task
	resp = doJSON(t, srv, http.MethodPost, Tasks, token, map[string]string{
		"title":       "Book flights",
		"description": "Compare prices for the October trip",
	}, &created)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Equal(t, models.TaskStatusIncomplete, created.Status)

	var toggled models.Task
	resp = doJSON(t, srv, http.MethodPost, fmt.Sprintf("/api/v1/tasks/%s/toggle", created.ID), token, nil, &toggled)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, models.TaskStatusCompleted, toggled.Status)

	resp = doJSON(t, srv, http.MethodDelete, fmt.Sprintf("/api/v1/tasks/%s", created.ID), token, nil, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, srv, http.MethodGet, Tasks, token, nil, &list)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, list.Tasks, 2)
}

func TestTaskValidationErrorsOverHTTP(t *testing.T) {
	srv := newTestServer(t)
	token, _ := login(t, srv, "renter@mail.com")

	resp := doJSON(t, srv, http.MethodPost, Tasks, token, map[string]string{
		"title":       "ab",
		"description": "short",
	}, nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// -----------------------------------------------------------------------------
// Marketplace flow
// -----------------------------------------------------------------------------

func TestListingApprovalAndBookingFlow(t *testing.T) {
	srv := newTestServer(t)

	// owner lists a property
	ownerToken, _ := login(t, srv, "owner@mail.com")
	var listing models.Property
	resp := doJSON(t, srv, http.MethodPost, Properties, ownerToken, map[string]any{
		"title":       "Riverside cabin",
		"description": "Quiet cabin a short walk from the river",
		"price":       750,
		"location":    "Porto, Portugal",
		"bedrooms":    2,
		"bathrooms":   1,
		"area":        60,
		"type":        "house",
	}, &listing)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.False(t, listing.IsApproved)

	// the pending listing is invisible to search
	var search dtos.PropertyListResponse
	resp = doJSON(t, srv, http.MethodGet, PropertySearch+"?location=porto", ownerToken, nil, &search)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Empty(t, search.Properties)

	// a renter cannot list
	renterToken, renter := login(t, srv, "renter@mail.com")
	resp = doJSON(t, srv, http.MethodPost, Properties, renterToken, map[string]any{
		"title":       "Not my house",
		"description": "Renters have no listings of their own",
		"price":       100,
		"location":    "Nowhere",
		"area":        10,
		"type":        "studio",
	}, nil)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)

	// admin approves
	adminToken, _ := login(t, srv, "admin@mail.com")
	var approved models.Property
	resp = doJSON(t, srv, http.MethodPost, fmt.Sprintf("/api/v1/properties/%s/approve", listing.ID), adminToken, nil, &approved)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.True(t, approved.IsApproved)

	resp = doJSON(t, srv, http.MethodGet, PropertySearch+"?location=porto", adminToken, nil, &search)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, search.Properties, 1)

	// renter books the approved listing
	renterToken, renter = login(t, srv, "renter@mail.com")
	checkIn := time.Now().AddDate(0, 1, 0).UTC().Truncate(time.Second)
	var booking models.Booking
	resp = doJSON(t, srv, http.MethodPost, Bookings, renterToken, map[string]any{
		"propertyId":    listing.ID.String(),
		"propertyTitle": listing.Title,
		"renterName":    renter.Name,
		"renterEmail":   renter.Email,
		"checkIn":       checkIn,
		"checkOut":      checkIn.AddDate(0, 0, 4),
		"totalPrice":    3000,
		"message":       "Four nights by the river please",
	}, &booking)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Equal(t, models.BookingStatusPending, booking.Status)
	require.Equal(t, renter.ID, booking.RenterID)

	var mine dtos.BookingListResponse
	resp = doJSON(t, srv, http.MethodGet, Bookings, renterToken, nil, &mine)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, mine.Bookings, 1)

	// owner confirms the request
	ownerToken, _ = login(t, srv, "owner@mail.com")
	var confirmed models.Booking
	resp = doJSON(t, srv, http.MethodPost, fmt.Sprintf("/api/v1/bookings/%s/status", booking.ID), ownerToken, map[string]string{
		"status": "confirmed",
	}, &confirmed)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, models.BookingStatusConfirmed, confirmed.Status)

	resp = doJSON(t, srv, http.MethodPost, fmt.Sprintf("/api/v1/bookings/%s/status", booking.ID), ownerToken, map[string]string{
		"status": "pending",
	}, nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// -----------------------------------------------------------------------------
// Logout
// -----------------------------------------------------------------------------

func TestLogoutClearsServerSession(t *testing.T) {
	srv := newTestServer(t)
	token, _ := login(t, srv, "renter@mail.com")

	resp := doJSON(t, srv, http.MethodPost, AuthLogout, token, nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// the token still verifies, but the server-side session is gone so
	// the task collection reads empty
	var list dtos.TaskListResponse
	resp = doJSON(t, srv, http.MethodGet, Tasks, token, nil, &list)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Empty(t, list.Tasks)
}
