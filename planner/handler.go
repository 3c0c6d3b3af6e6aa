package planner

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"

	"tripmate/models"
	"tripmate/places"
	"tripmate/utils"

	"github.com/julienschmidt/httprouter"
)

// POST /api/ai/plan
func GeneratePlan(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	geminiKey := os.Getenv("GEMINI_API_KEY")
	if geminiKey == "" {
		utils.RespondWithError(w, http.StatusInternalServerError, "Gemini API key is not configured")
		return
	}
	mapsKey := os.Getenv("GOOGLE_MAPS_API_KEY")
	if mapsKey == "" {
		utils.RespondWithError(w, http.StatusInternalServerError, "Google Maps API key is not configured")
		return
	}

	var req models.PlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Request body is not valid JSON")
		return
	}
	if req.Destination == "" || req.StartDate == "" || req.EndDate == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "destination, startDate and endDate are required")
		return
	}

	text, err := generateText(r.Context(), geminiKey, buildPrompt(req))
	if err != nil {
		log.Println("gemini generation failed:", err)
		utils.RespondWithJSON(w, http.StatusBadGateway, utils.M{
			"error":   "AI generation call failed",
			"details": err.Error(),
		})
		return
	}
	if text == "" {
		utils.RespondWithError(w, http.StatusBadGateway, "AI response was empty, please retry shortly")
		return
	}

	cleaned := cleanJSONText(text)
	plan, err := parsePlan(cleaned)
	if err != nil {
		if errors.Is(err, ErrNoDays) {
			utils.RespondWithError(w, http.StatusBadGateway, "Generated plan contains no day entries")
			return
		}
		log.Println("gemini JSON parse failed:", err)
		utils.RespondWithJSON(w, http.StatusBadGateway, utils.M{
			"error":   "Could not parse the AI response as JSON",
			"raw":     text,
			"cleaned": cleaned,
		})
		return
	}

	pipeline := &Pipeline{Resolver: places.NewClient(mapsKey)}
	utils.RespondWithJSON(w, http.StatusOK, pipeline.BuildPlan(r.Context(), req, plan))
}
