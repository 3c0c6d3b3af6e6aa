package trips

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"tripmate/models"
	"tripmate/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
)

// shareURL builds the public link encoded into QR codes and printed on
// exports. APP_BASE_URL points at the frontend host.
func shareURL(trip *models.Trip) string {
	base := os.Getenv("APP_BASE_URL")
	if base == "" {
		base = "http://localhost:5173"
	}
	return fmt.Sprintf("%s/share/%s", base, trip.ShareSlug())
}

// ShareQR serves a PNG QR code pointing at the trip's public share page.
func ShareQR(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	trip, _ := repo.FetchTrip(ctx, ps.ByName("id"))
	if trip == nil {
		utils.RespondWithError(w, http.StatusNotFound, "Trip not found")
		return
	}

	png, err := qrcode.Encode(shareURL(trip), qrcode.Medium, 256)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate QR code")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

// ExportPDF renders the trip itinerary as a downloadable PDF with the share
// QR code in the corner.
func ExportPDF(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	trip, _ := repo.FetchTrip(ctx, ps.ByName("id"))
	if trip == nil {
		utils.RespondWithError(w, http.StatusNotFound, "Trip not found")
		return
	}

	qrPNG, err := qrcode.Encode(shareURL(trip), qrcode.Medium, 256)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate QR code")
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, trip.Title)
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("%s, %s to %s", trip.Destination, trip.StartDate, trip.EndDate))
	pdf.Ln(8)
	if trip.Summary != "" {
		pdf.MultiCell(140, 6, trip.Summary, "", "L", false)
		pdf.Ln(4)
	}

	imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", imageOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 160, 10, 35, 35, false, imageOpts, 0, "")

	for _, day := range trip.Days {
		pdf.Ln(4)
		pdf.SetFont("Arial", "B", 13)
		header := day.Date
		if day.Title != "" {
			header = fmt.Sprintf("%s  %s", day.Date, day.Title)
		}
		pdf.Cell(0, 8, header)
		pdf.Ln(8)

		pdf.SetFont("Arial", "", 11)
		for _, block := range day.Blocks {
			line := fmt.Sprintf("%s-%s  %s", block.StartTime, block.EndTime, block.Title)
			if block.Address != "" {
				line += "  (" + block.Address + ")"
			}
			pdf.Cell(0, 6, line)
			pdf.Ln(6)
		}
	}

	if trip.Budget != nil {
		pdf.Ln(6)
		pdf.SetFont("Arial", "B", 13)
		pdf.Cell(0, 8, "Budget")
		pdf.Ln(8)
		pdf.SetFont("Arial", "", 11)
		pdf.Cell(0, 6, fmt.Sprintf("Estimated total: %d", ComputeBudgetTotal(*trip)))
		pdf.Ln(6)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate PDF")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=trip-"+trip.ID+".pdf")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
