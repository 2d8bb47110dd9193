package wehttp

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/weegigs/wee-counter-go/presenter"
	"github.com/weegigs/wee-counter-go/we"
)

type HandlerOption func(service *httpService)

func Logger(log *zerolog.Logger) HandlerOption {
	return func(service *httpService) {
		service.log = log
	}
}

func Journal(journal *we.Journal) HandlerOption {
	return func(service *httpService) {
		service.journal = journal
	}
}

// NewHandler serves the presenter as JSON. Calls into the presenter are
// serialized.
func NewHandler(p *presenter.CounterPresenter, options ...HandlerOption) http.Handler {
	service := &httpService{presenter: p}
	for _, option := range options {
		option(service)
	}
	if service.log == nil {
		service.log = &log.Logger
	}

	r := chi.NewRouter()

	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Method("GET", "/counter", service.getCounter())
	r.Method("POST", "/counter", service.executeCommand())
	r.Method("GET", "/counter/events", service.getEvents())

	return WithTelemetry(r, "wee-counter-http")
}

type httpService struct {
	lk        sync.Mutex
	log       *zerolog.Logger
	presenter *presenter.CounterPresenter
	journal   *we.Journal
}

type commandRequest struct {
	Command we.CommandName  `json:"command"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (service *httpService) snapshot() presenter.Snapshot {
	service.lk.Lock()
	defer service.lk.Unlock()

	return service.presenter.Snapshot()
}

func (service *httpService) getCounter() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, service.snapshot())
	}
}

func (service *httpService) getEvents() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		events := []we.RecordedEvent{}
		if service.journal != nil {
			events = service.journal.Events()
		}

		render.JSON(w, r, events)
	}
}

func (service *httpService) executeCommand() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contentType := r.Header.Get("Content-type")
		mediaType, _, err := mime.ParseMediaType(contentType)
		if mediaType != "application/json" || err != nil {
			fail(w, r, http.StatusUnsupportedMediaType, "unsupported content type")
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			fail(w, r, http.StatusBadRequest, "invalid request body")
			return
		}

		var request commandRequest
		if err := json.UnmarshalContext(r.Context(), body, &request); err != nil || request.Command == "" {
			service.log.Info().Err(err).Msg("failed to unmarshal command")
			fail(w, r, http.StatusBadRequest, "invalid request body")
			return
		}

		command := we.RemoteCommand{CommandName: request.Command}
		if len(request.Payload) > 0 {
			command.Payload = we.Data{Encoding: we.JSONEncoding, Data: request.Payload}
		}

		snapshot, err := service.execute(r, command)
		if err != nil {
			var notFound we.CommandNotFoundError
			if errors.As(err, &notFound) {
				fail(w, r, http.StatusNotFound, notFound.Error())
				return
			}

			service.log.Info().Err(err).Str("command", string(request.Command)).Msg("failed to execute command")
			fail(w, r, http.StatusBadRequest, "failed to execute command")
			return
		}

		render.JSON(w, r, snapshot)
	}
}

func (service *httpService) execute(r *http.Request, command we.Command) (presenter.Snapshot, error) {
	service.lk.Lock()
	defer service.lk.Unlock()

	if err := service.presenter.Execute(r.Context(), command); err != nil {
		return presenter.Snapshot{}, err
	}

	return service.presenter.Snapshot(), nil
}

func fail(w http.ResponseWriter, r *http.Request, status int, message string) {
	render.Status(r, status)
	render.JSON(w, r, errorResponse{Error: message})
}
