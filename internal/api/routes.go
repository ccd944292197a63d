package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Get("/me", handler.AuthRequired, handler.Me)

	habits := api.Group("/habits", handler.AuthRequired)
	habits.Post("", handler.CreateHabit)
	habits.Get("", handler.ListHabits)
	habits.Post("/:id/checkin", handler.CheckInHabit)

	wellness := api.Group("/wellness", handler.AuthRequired)
	wellness.Post("/mood", handler.LogMood)
	wellness.Post("/stress", handler.LogStress)
	wellness.Post("/productivity", handler.LogProductivity)
	wellness.Get("/dashboard", handler.Dashboard)
	wellness.Get("/export/json", handler.ExportJSON)
	wellness.Get("/export/csv", handler.ExportCSV)

	social := api.Group("/social", handler.AuthRequired)
	social.Get("/users", handler.ListUsers)
	social.Post("/friends/:id", handler.AddFriend)
	social.Get("/friends", handler.ListFriends)

	// Challenge listing is public; creating and joining are not.
	challenges := api.Group("/challenges")
	challenges.Get("", handler.ListChallenges)
	challenges.Post("", handler.AuthRequired, handler.CreateChallenge)
	challenges.Post("/:id/join", handler.AuthRequired, handler.JoinChallenge)
}
