package routes

import (
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestMentorRoutesRegistered(t *testing.T) {
	app := fiber.New()
	MentorRoutes(app)

	want := map[string]string{
		"POST /api/mentors/register": "",
		"POST /api/mentors/login":    "",
		"GET /api/mentors/profile":   "",
		"PUT /api/mentors/profile":   "",
		"GET /api/mentors/browse":    "",
	}

	registered := map[string]bool{}
	for _, route := range app.GetRoutes() {
		registered[route.Method+" "+route.Path] = true
	}

	for key := range want {
		if !registered[key] {
			t.Errorf("route %s not registered", key)
		}
	}
}
