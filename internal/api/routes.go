package api

import "github.com/gofiber/fiber/v2"

const mealsPrefix = "/meals"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	registerMealRoutes(app, handler)
}

func registerMealRoutes(app *fiber.App, handler *Handler) {
	meals := app.Group(mealsPrefix)
	meals.Post("/", handler.CreateMeal)
	meals.Get("/", handler.SessionRequired, handler.ListMeals)
	meals.Get("/fetch", handler.SessionRequired, handler.FetchMeals)
	meals.Get("/summary", handler.SessionRequired, handler.SummarizeMeals)
	meals.Put("/:id", handler.UpdateMeal)
	meals.Delete("/:id", handler.DeleteMeal)
}
