package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sort"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog"
	"github.com/terraincognita07/mealdiet/internal/db"
	"gorm.io/gorm"
)

func newMealsTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "mealdiet-api-test.db")
	database, err := db.OpenSQLite(databasePath, zerolog.Nop())
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close(database)
	})

	handler, err := NewHandler(database, zerolog.Nop(), false)
	if err != nil {
		t.Fatalf("init handler: %v", err)
	}

	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Use(recover.New())
	RegisterRoutes(app, handler)
	app.Use(handler.NotFound)
	return app, database
}

func sessionCookieHeader(sessionID string) string {
	return sessionCookieName + "=" + sessionID
}

func sendRequest(t *testing.T, app *fiber.App, method string, path string, cookie string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	switch value := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(value)
	default:
		encoded, err := json.Marshal(value)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		reader = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, path, reader)
	if body != nil {
		request.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	}
	if cookie != "" {
		request.Header.Set("Cookie", cookie)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	t.Cleanup(func() {
		_ = response.Body.Close()
	})
	return response
}

func expectStatus(t *testing.T, response *http.Response, want int) {
	t.Helper()
	if response.StatusCode != want {
		body, _ := io.ReadAll(response.Body)
		t.Fatalf("expected status %d, got %d (body=%s)", want, response.StatusCode, string(body))
	}
}

func decodeBody(t *testing.T, body io.Reader, out any) {
	t.Helper()

	raw, err := io.ReadAll(body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		t.Fatalf("decode response body %q: %v", string(raw), err)
	}
}

func responseCookie(cookies []*http.Cookie, name string) *http.Cookie {
	for _, cookie := range cookies {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

func mealPayloadMap(name string, inDiet bool) map[string]any {
	return map[string]any{
		"name":        name,
		"description": name + " description",
		"date_time":   "2024-01-01T08:00:00Z",
		"is_in_diet":  inDiet,
	}
}

// createMealForSession posts a meal with the given session cookie and returns
// the session id that ended up owning it.
func createMealForSession(t *testing.T, app *fiber.App, sessionID string, payload map[string]any) string {
	t.Helper()

	cookie := ""
	if sessionID != "" {
		cookie = sessionCookieHeader(sessionID)
	}
	response := sendRequest(t, app, http.MethodPost, "/meals", cookie, payload)
	expectStatus(t, response, http.StatusCreated)

	if sessionID != "" {
		return sessionID
	}
	issued := responseCookie(response.Cookies(), sessionCookieName)
	if issued == nil {
		t.Fatal("expected sessionId cookie on first create")
	}
	return issued.Value
}

func listMeals(t *testing.T, app *fiber.App, sessionID string) []mealResponse {
	t.Helper()

	response := sendRequest(t, app, http.MethodGet, "/meals", sessionCookieHeader(sessionID), nil)
	expectStatus(t, response, http.StatusOK)

	payload := mealsResponse{}
	decodeBody(t, response.Body, &payload)
	return payload.Meals
}

func sortedMealNames(meals []mealResponse) []string {
	names := make([]string, 0, len(meals))
	for _, meal := range meals {
		names = append(names, meal.Name)
	}
	sort.Strings(names)
	return names
}

func sortedMealIDs(meals []mealResponse) []string {
	ids := make([]string, 0, len(meals))
	for _, meal := range meals {
		ids = append(ids, meal.ID)
	}
	sort.Strings(ids)
	return ids
}
