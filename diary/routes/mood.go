// diary/routes/mood.go
package routes

import (
	"net/http"

	"mooddiary/diary/controllers"
	"mooddiary/diary/types"
	"mooddiary/diary/utils/apperr"
	"mooddiary/diary/utils/dates"

	"github.com/go-chi/chi/v5"
)

func MoodRoutes(ctrl *controllers.MoodController) chi.Router {
	r := chi.NewRouter()

	// Get one day's record
	r.Get("/mood/{date}", handleJSON(func(r *http.Request) (any, error) {
		return ctrl.GetMood(r.Context(), chi.URLParam(r, "date"))
	}))

	// Save today's record; the server picks the date
	r.Post("/mood", handleJSON(func(r *http.Request) (any, error) {
		var req types.SaveMoodRequest
		if err := decodeJSON(r, &req); err != nil {
			return nil, err
		}
		date, err := ctrl.SaveMood(r.Context(), req)
		if err != nil {
			return nil, err
		}
		return types.SaveMoodResponse{Success: true, Message: "mood saved", Date: date}, nil
	}))

	// Month aggregate keyed by day
	r.Get("/moods/{year}/{month}", handleJSON(func(r *http.Request) (any, error) {
		year, month, err := dates.ParseYearMonth(chi.URLParam(r, "year"), chi.URLParam(r, "month"))
		if err != nil {
			return nil, apperr.NewValidation(err.Error())
		}
		return ctrl.GetMonth(r.Context(), year, month)
	}))

	// Delete one day's record
	r.Delete("/mood/{date}", handleJSON(func(r *http.Request) (any, error) {
		if err := ctrl.DeleteMood(r.Context(), chi.URLParam(r, "date")); err != nil {
			return nil, err
		}
		return types.StatusResponse{Success: true, Message: "mood deleted"}, nil
	}))

	return r
}
