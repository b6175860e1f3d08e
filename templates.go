package calendar

import (
	"errors"
	"net/http"

	"github.com/xdoubleu/essentia/v2/pkg/database"
	"github.com/xdoubleu/essentia/v2/pkg/parse"
	tpltools "github.com/xdoubleu/essentia/v2/pkg/tpl"

	"github.com/humosaic/calendar/internal/dtos"
	"github.com/humosaic/calendar/internal/models"
)

func (app *App) templateRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", app.monthViewHandler)
	mux.HandleFunc("GET /events/new", app.newEventHandler)
	mux.HandleFunc("GET /events/{id}/edit", app.editEventHandler)
}

type MonthViewData struct {
	Grid models.MonthGrid
}

type EventFormData struct {
	Heading string
	Action  string
	EventID string
	Form    dtos.EventForm
}

func (app *App) monthViewHandler(w http.ResponseWriter, r *http.Request) {
	grid := app.Services.Calendar.MonthView(r.Context())

	tpltools.RenderWithPanic(app.tpl, w, "index.html", MonthViewData{
		Grid: grid,
	})
}

func (app *App) newEventHandler(w http.ResponseWriter, r *http.Request) {
	//nolint:exhaustruct //other fields start empty
	form := dtos.EventForm{}

	// A day-cell click pre-selects that cell's date.
	if date := r.URL.Query().Get("date"); date != "" {
		if _, err := models.ParseDate(date); err == nil {
			form.Date = date
		}
	}

	tpltools.RenderWithPanic(app.tpl, w, "event_form.html", EventFormData{
		Heading: "Add Event",
		Action:  "/events",
		EventID: "",
		Form:    form,
	})
}

func (app *App) editEventHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parse.URLParam[string](r, "id", nil)
	if err != nil {
		panic(err)
	}

	event, err := app.Services.Events.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, database.ErrResourceNotFound) {
			http.NotFound(w, r)
			return
		}
		panic(err)
	}

	tpltools.RenderWithPanic(app.tpl, w, "event_form.html", EventFormData{
		Heading: "Edit Event",
		Action:  "/events/" + event.ID + "/edit",
		EventID: event.ID,
		Form:    dtos.EventFormFromEvent(*event),
	})
}
