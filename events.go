package calendar

import (
	"errors"
	"net/http"

	httptools "github.com/xdoubleu/essentia/v2/pkg/communication/httptools"
	"github.com/xdoubleu/essentia/v2/pkg/database"
	"github.com/xdoubleu/essentia/v2/pkg/parse"

	"github.com/humosaic/calendar/internal/dtos"
)

func (app *App) eventRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /events", app.createEventHandler)
	mux.HandleFunc("POST /events/{id}/edit", app.updateEventHandler)
	mux.HandleFunc("POST /events/{id}/delete", app.deleteEventHandler)
}

func (app *App) createEventHandler(w http.ResponseWriter, r *http.Request) {
	var form dtos.EventForm

	err := httptools.ReadForm(r, &form)
	if err != nil {
		httptools.RedirectWithError(w, r, "/events/new", err)
		return
	}

	if ok, errs := form.Validate(); !ok {
		httptools.FailedValidationResponse(w, r, errs)
		return
	}

	app.Services.Events.Create(r.Context(), &form)

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (app *App) updateEventHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parse.URLParam[string](r, "id", nil)
	if err != nil {
		panic(err)
	}

	var form dtos.EventForm

	err = httptools.ReadForm(r, &form)
	if err != nil {
		httptools.RedirectWithError(w, r, "/events/"+id+"/edit", err)
		return
	}

	if ok, errs := form.Validate(); !ok {
		httptools.FailedValidationResponse(w, r, errs)
		return
	}

	_, err = app.Services.Events.Update(r.Context(), id, &form)
	if err != nil {
		// An unknown id is reported, never raised.
		if errors.Is(err, database.ErrResourceNotFound) {
			http.NotFound(w, r)
			return
		}
		panic(err)
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (app *App) deleteEventHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parse.URLParam[string](r, "id", nil)
	if err != nil {
		panic(err)
	}

	if !app.Services.Events.Delete(r.Context(), id) {
		http.NotFound(w, r)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
