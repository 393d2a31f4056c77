package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/recover", handler.RecoverPassword)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)
	auth.Get("/me", handler.AuthRequired, handler.Me)
	auth.Post("/change-password", handler.AuthRequired, handler.ChangePassword)
	auth.Post("/regenerate-recovery-code", handler.AuthRequired, handler.RegenerateRecoveryCode)

	steps := api.Group("/steps", handler.AuthRequired)
	steps.Get("", handler.ListSteps)
	steps.Post("", handler.CreateStep)
	steps.Put("/:id", handler.UpdateStep)
	steps.Delete("/:id", handler.DeleteStep)
	steps.Post("/reorder", handler.ReorderSteps)

	routine := api.Group("/routine", handler.AuthRequired)
	routine.Get("/today", handler.RoutineToday)
	routine.Post("/toggle", handler.ToggleStep)
	routine.Post("/skip", handler.SkipStep)
	routine.Post("/finish", handler.FinishRoutine)

	products := api.Group("/products", handler.AuthRequired)
	products.Get("", handler.ListProducts)
	products.Post("", handler.CreateProduct)
	products.Get("/conflicts", handler.ShelfConflicts)
	products.Put("/:id", handler.UpdateProduct)
	products.Delete("/:id", handler.DeleteProduct)
	products.Post("/:id/stop", handler.StopProduct)
	products.Post("/:id/restart", handler.RestartProduct)
	products.Get("/:id/conflicts", handler.ProductConflicts)

	api.Get("/catalog", handler.AuthRequired, handler.SearchCatalog)

	stats := api.Group("/stats", handler.AuthRequired)
	stats.Get("/overview", handler.StatsOverview)

	export := api.Group("/export", handler.AuthRequired)
	export.Get("/summary", handler.ExportSummary)
	export.Get("/csv", handler.ExportCSV)
	export.Get("/json", handler.ExportJSON)
}
