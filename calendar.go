package calendar

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/xdoubleu/essentia/v2/pkg/logging"
	"github.com/xdoubleu/essentia/v2/pkg/parse"

	"github.com/humosaic/calendar/internal/models"
)

func (app *App) calendarRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /navigate/{direction}", app.navigateHandler)
	mux.HandleFunc("GET /api/grid", app.gridHandler)
	mux.HandleFunc("GET /api/events", app.listEventsHandler)
}

// navigateHandler runs one cursor transition and sends the browser back to
// the month view, which re-renders the full grid.
func (app *App) navigateHandler(w http.ResponseWriter, r *http.Request) {
	direction, err := parse.URLParam[string](r, "direction", nil)
	if err != nil {
		panic(err)
	}

	switch direction {
	case "prev":
		app.Services.Calendar.PrevMonth()
	case "next":
		app.Services.Calendar.NextMonth()
	case "today":
		app.Services.Calendar.GoToToday()
	default:
		http.NotFound(w, r)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// gridHandler returns the cursor month's grid as JSON, the same cells the
// HTML view renders.
func (app *App) gridHandler(w http.ResponseWriter, r *http.Request) {
	grid := app.Services.Calendar.MonthView(r.Context())
	app.writeJSON(w, http.StatusOK, grid)
}

// listEventsHandler returns events for ?date=YYYY-MM-DD, or for
// ?year=YYYY&month=1-12, defaulting to the cursor month.
func (app *App) listEventsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	if value := q.Get("date"); value != "" {
		date, err := models.ParseDate(value)
		if err != nil {
			http.Error(w, "invalid date", http.StatusBadRequest)
			return
		}

		app.writeJSON(
			w,
			http.StatusOK,
			app.Services.Events.GetByDate(r.Context(), date),
		)
		return
	}

	year, month := app.Services.Calendar.Current()
	if value := q.Get("year"); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			http.Error(w, "invalid year", http.StatusBadRequest)
			return
		}
		year = parsed
	}
	if value := q.Get("month"); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil || parsed < 1 || parsed > 12 {
			http.Error(w, "invalid month", http.StatusBadRequest)
			return
		}
		month = time.Month(parsed)
	}

	app.writeJSON(
		w,
		http.StatusOK,
		app.Services.Events.GetByMonth(r.Context(), year, month),
	)
}

func (app *App) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		app.logger.Error("failed to write JSON response", logging.ErrAttr(err))
	}
}
