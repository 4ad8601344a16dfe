package routes

import (
	"net/http"

	"mooddiary/diary/controllers"
	"mooddiary/diary/utils/apperr"
	"mooddiary/diary/utils/dates"

	"github.com/go-chi/chi/v5"
)

func CalendarRoutes(ctrl *controllers.CalendarController) chi.Router {
	r := chi.NewRouter()
	r.Get("/current", handleJSON(func(r *http.Request) (any, error) {
		return ctrl.Current(r.Context())
	}))
	r.Get("/{year}/{month}", handleJSON(func(r *http.Request) (any, error) {
		year, month, err := dates.ParseYearMonth(chi.URLParam(r, "year"), chi.URLParam(r, "month"))
		if err != nil {
			return nil, apperr.NewValidation(err.Error())
		}
		return ctrl.Month(r.Context(), year, month)
	}))
	return r
}
