package trips

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"tripmate/utils"

	"github.com/disintegration/imaging"
	"github.com/julienschmidt/httprouter"
)

const coverUploadDir = "./static/coverpic"

func ensureDirExists(dir string) error {
	return os.MkdirAll(dir, 0755)
}

// UploadCover accepts a multipart cover image for a trip, stores the
// original plus a 300px-wide thumbnail, and records the cover URL on the
// trip document.
func UploadCover(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	trip, degraded := repo.FetchTrip(ctx, ps.ByName("id"))
	if trip == nil {
		utils.RespondWithError(w, http.StatusNotFound, "Trip not found")
		return
	}
	if !requireOwner(w, trip, degraded, userID) {
		return
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}
	file, _, err := r.FormFile("cover")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "cover file is required")
		return
	}
	defer file.Close()

	img, err := imaging.Decode(file)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "File is not a decodable image")
		return
	}

	uniqueID := utils.GenerateRandomString(16)
	fileName := uniqueID + ".jpg"
	originalPath := filepath.Join(coverUploadDir, fileName)
	thumbDir := filepath.Join(coverUploadDir, "thumb")
	thumbnailPath := filepath.Join(thumbDir, fileName)

	if err := ensureDirExists(coverUploadDir); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create upload directory")
		return
	}
	if err := ensureDirExists(thumbDir); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create thumbnail directory")
		return
	}

	if err := imaging.Save(img, originalPath); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save cover image")
		return
	}
	thumb := imaging.Resize(img, 300, 0, imaging.Lanczos)
	if err := imaging.Save(thumb, thumbnailPath); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save thumbnail")
		return
	}

	trip.CoverURL = fmt.Sprintf("/coverpic/%s", fileName)
	updated := repo.UpdateTrip(ctx, *trip, userID)
	utils.RespondWithJSON(w, http.StatusOK, updated)
}
