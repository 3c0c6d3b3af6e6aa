package routes

import (
	"net/http"

	"tripmate/auth"
	"tripmate/directions"
	"tripmate/middleware"
	"tripmate/places"
	"tripmate/planner"
	"tripmate/ratelim"
	"tripmate/trips"

	"github.com/julienschmidt/httprouter"
)

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/coverpic/*filepath", http.Dir("static/coverpic"))
}

func AddAuthRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/auth/register", rl.Limit(auth.Register))
	router.POST("/api/auth/login", rl.Limit(auth.Login))
	router.POST("/api/auth/token/refresh", rl.Limit(auth.Refresh))
	router.POST("/api/auth/logout", middleware.Authenticate(auth.Logout))
}

func AddTripRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/trips", middleware.OptionalAuth(trips.GetTrips))
	router.POST("/api/trips", rl.Limit(middleware.Authenticate(trips.CreateTrip)))
	router.GET("/api/trips/:id", middleware.OptionalAuth(trips.GetTrip))
	router.PUT("/api/trips/:id", rl.Limit(middleware.Authenticate(trips.UpdateTrip)))
	router.DELETE("/api/trips/:id", rl.Limit(middleware.Authenticate(trips.DeleteTrip)))

	router.POST("/api/trips/:id/days", middleware.Authenticate(trips.AddDay))
	router.POST("/api/trips/:id/days/:dayId/blocks", middleware.Authenticate(trips.AddBlock))
	router.PUT("/api/trips/:id/days/:dayId/blocks/:blockId", middleware.Authenticate(trips.UpdateBlock))
	router.DELETE("/api/trips/:id/days/:dayId/blocks/:blockId", middleware.Authenticate(trips.DeleteBlock))

	router.GET("/api/trips/:id/budget", middleware.OptionalAuth(trips.GetBudget))
	router.PUT("/api/trips/:id/budget", middleware.Authenticate(trips.UpdateBudget))

	router.POST("/api/trips/:id/plan/apply", rl.Limit(middleware.Authenticate(trips.ApplyPlan)))
	router.POST("/api/trips/:id/cover", rl.Limit(middleware.Authenticate(trips.UploadCover)))

	router.GET("/api/trips/:id/share/qr", trips.ShareQR)
	router.GET("/api/trips/:id/export/pdf", trips.ExportPDF)

	// Public share view, no auth. Knowing the slug is the authorization.
	router.GET("/api/share/:slug", trips.GetTripBySlug)
}

func AddPlaceRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/places/search", rl.Limit(places.SearchPlaces))
}

func AddDirectionsRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/directions", rl.Limit(directions.GetDirections))
}

func AddAiRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/ai/plan", rl.Limit(middleware.OptionalAuth(planner.GeneratePlan)))
}
