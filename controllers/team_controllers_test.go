package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"collab-server/models"
	"collab-server/repository"
	service "collab-server/services"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestApp wires the team endpoints against a MemStore. The auth
// middleware is replaced by one that trusts an X-User-ID header.
func newTestApp(t *testing.T) (*fiber.App, *repository.MemStore) {
	t.Helper()
	store := repository.NewMemStore()
	perms := service.NewPermissionService(store)
	teams := service.NewTeamService(store, perms)
	tc := NewTeamController(teams, perms)

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		// Clone: fasthttp reuses the header buffer across requests, and the
		// MemStore retains this string beyond the handler's lifetime.
		c.Locals("userID", strings.Clone(c.Get("X-User-ID")))
		return c.Next()
	})
	app.Post("/teams", tc.CreateTeam)
	app.Post("/teams/:teamId/members", tc.InviteMember)
	app.Delete("/teams/:teamId/members/:userId", tc.RemoveMember)
	app.Get("/teams/:teamId/role", tc.MyRole)
	return app, store
}

func seedUser(t *testing.T, store *repository.MemStore, name string) string {
	t.Helper()
	u, err := store.Users().CreateUser(context.Background(), models.User{
		Name:  name,
		Email: name + "@example.com",
	})
	require.NoError(t, err)
	return u.ID
}

func doJSON(t *testing.T, app *fiber.App, method, target, userID string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", userID)
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestCreateTeamEndpoint(t *testing.T) {
	app, store := newTestApp(t)
	creator := seedUser(t, store, "creator")

	resp := doJSON(t, app, "POST", "/teams", creator, fiber.Map{"name": "alpha"})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var team models.Team
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&team))
	assert.Equal(t, "alpha", team.Name)
	assert.Equal(t, creator, team.AdminID)
}

func TestCreateTeamInvalidJSON(t *testing.T) {
	app, store := newTestApp(t)
	creator := seedUser(t, store, "creator")

	req := httptest.NewRequest("POST", "/teams", bytes.NewBufferString("{broken"))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", creator)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestTeamEndpointErrorMapping(t *testing.T) {
	app, store := newTestApp(t)
	admin := seedUser(t, store, "admin")
	member := seedUser(t, store, "member")
	outsider := seedUser(t, store, "outsider")

	resp := doJSON(t, app, "POST", "/teams", admin, fiber.Map{"name": "alpha"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var team models.Team
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&team))

	membersURL := fmt.Sprintf("/teams/%s/members", team.ID)

	resp = doJSON(t, app, "POST", membersURL, admin, fiber.Map{"user_id": member})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	// Conflict: inviting an existing member.
	resp = doJSON(t, app, "POST", membersURL, admin, fiber.Map{"user_id": member})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	// Forbidden: a member cannot invite.
	resp = doJSON(t, app, "POST", membersURL, member, fiber.Map{"user_id": outsider})
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	// Not found: removing someone who is not a member.
	resp = doJSON(t, app, "DELETE", membersURL+"/"+outsider, admin, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestMyRoleEndpoint(t *testing.T) {
	app, store := newTestApp(t)
	admin := seedUser(t, store, "admin")
	outsider := seedUser(t, store, "outsider")

	resp := doJSON(t, app, "POST", "/teams", admin, fiber.Map{"name": "alpha"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var team models.Team
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&team))

	resp = doJSON(t, app, "GET", "/teams/"+team.ID+"/role", admin, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "admin", body["role"])

	resp = doJSON(t, app, "GET", "/teams/"+team.ID+"/role", outsider, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "outsider", body["role"])
}
