package visualizer

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/lruviz/binder"
	"github.com/dmitrymomot/lruviz/handler"
	"github.com/dmitrymomot/lruviz/pkg/cache"
	"github.com/dmitrymomot/lruviz/pkg/session"
)

// Handle returns the module's router. Every POST follows the
// POST-redirect-GET pattern: the action runs, then the browser is sent back
// to the page with the outcome encoded in query parameters.
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	r.Get("/", handler.Wrap(s.renderPage,
		handler.WithBinder[handler.Context, pageRequest](binder.Query()),
	))
	r.Post("/init", handler.Wrap(s.handleInit,
		handler.WithBinder[handler.Context, initRequest](binder.Form()),
	))
	r.Post("/put", handler.Wrap(s.handlePut,
		handler.WithBinder[handler.Context, putRequest](binder.Form()),
	))
	r.Post("/get", handler.Wrap(s.handleGet,
		handler.WithBinder[handler.Context, getRequest](binder.Form()),
	))
	r.Post("/clear", handler.Wrap(s.handleClear))
	r.Post("/reset", handler.Wrap(s.handleReset))

	return r
}

// pageRequest carries the flash outcome of the previous action.
type pageRequest struct {
	Msg   string `query:"msg"`
	Key   *int   `query:"key"`
	Value *int   `query:"value"`
	Cap   *int   `query:"cap"`
}

type initRequest struct {
	Capacity int `form:"capacity"`
}

type putRequest struct {
	Key   int `form:"key"`
	Value int `form:"value"`
}

type getRequest struct {
	Key int `form:"key"`
}

// Flash is a one-shot feedback message rendered at the top of the page.
type Flash struct {
	Kind string // "success", "warning" or "info"
	Text string
}

// PageData is everything the page template needs.
type PageData struct {
	Flash        *Flash
	Initialized  bool
	Capacity     int
	Len          int
	UsagePercent int
	Entries      []cache.Entry[int, int]
	Highlight    bool
	HighlightKey int
	LastEvicted  *cache.Entry[int, int]
}

func (s *Service) renderPage(ctx handler.Context, req pageRequest) handler.Response {
	sess := session.MustFromContext(ctx)

	data := PageData{Flash: flashFor(req)}

	if state, ok := s.State(sess.ID); ok {
		data.Initialized = true
		data.Capacity = state.Capacity
		data.Len = state.Len
		data.Entries = state.Entries
		data.LastEvicted = state.LastEvicted
		if state.Capacity > 0 {
			data.UsagePercent = state.Len * 100 / state.Capacity
		}
		if req.Key != nil && (req.Msg == "stored" || req.Msg == "hit") {
			data.Highlight = true
			data.HighlightKey = *req.Key
		}
	}

	return handler.HTML(views, "page", data)
}

func (s *Service) handleInit(ctx handler.Context, req initRequest) handler.Response {
	sess := session.MustFromContext(ctx)

	if err := s.Init(sess.ID, req.Capacity); err != nil {
		if errors.Is(err, cache.ErrInvalidCapacity) {
			return redirectWith("invalid_capacity", nil)
		}
		return handler.JSONError(err)
	}

	return redirectWith("initialized", url.Values{"cap": {strconv.Itoa(req.Capacity)}})
}

func (s *Service) handlePut(ctx handler.Context, req putRequest) handler.Response {
	sess := session.MustFromContext(ctx)

	if err := s.Put(sess.ID, req.Key, req.Value); err != nil {
		return errorResponse(err)
	}

	return redirectWith("stored", url.Values{
		"key":   {strconv.Itoa(req.Key)},
		"value": {strconv.Itoa(req.Value)},
	})
}

func (s *Service) handleGet(ctx handler.Context, req getRequest) handler.Response {
	sess := session.MustFromContext(ctx)

	value, found, err := s.Get(sess.ID, req.Key)
	if err != nil {
		return errorResponse(err)
	}

	if !found {
		return redirectWith("miss", url.Values{"key": {strconv.Itoa(req.Key)}})
	}
	return redirectWith("hit", url.Values{
		"key":   {strconv.Itoa(req.Key)},
		"value": {strconv.Itoa(value)},
	})
}

func (s *Service) handleClear(ctx handler.Context, _ struct{}) handler.Response {
	sess := session.MustFromContext(ctx)

	if err := s.Clear(sess.ID); err != nil {
		return errorResponse(err)
	}
	return redirectWith("cleared", nil)
}

func (s *Service) handleReset(ctx handler.Context, _ struct{}) handler.Response {
	sess := session.MustFromContext(ctx)

	if err := s.Reset(sess.ID); err != nil {
		return errorResponse(err)
	}
	return redirectWith("reset", nil)
}

// errorResponse maps domain errors to a page redirect or a JSON error.
func errorResponse(err error) handler.Response {
	if errors.Is(err, ErrNotInitialized) {
		return redirectWith("not_initialized", nil)
	}
	return handler.JSONError(err)
}

// redirectWith sends the browser back to the page with the action outcome
// in the query string.
func redirectWith(msg string, params url.Values) handler.Response {
	q := url.Values{"msg": {msg}}
	for k, vs := range params {
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	return handler.Redirect("/?" + q.Encode())
}

// flashFor translates the outcome query parameters into a user message,
// mirroring the per-action feedback of the interactive UI.
func flashFor(req pageRequest) *Flash {
	switch req.Msg {
	case "initialized":
		if req.Cap != nil {
			return &Flash{Kind: "success", Text: fmt.Sprintf("Cache initialized with capacity = %d", *req.Cap)}
		}
		return &Flash{Kind: "success", Text: "Cache initialized"}
	case "invalid_capacity":
		return &Flash{Kind: "warning", Text: "Capacity must be a positive integer"}
	case "stored":
		if req.Key != nil && req.Value != nil {
			return &Flash{Kind: "success", Text: fmt.Sprintf("Put (%d, %d)", *req.Key, *req.Value)}
		}
		return &Flash{Kind: "success", Text: "Entry stored"}
	case "hit":
		if req.Value != nil {
			return &Flash{Kind: "success", Text: fmt.Sprintf("Value = %d", *req.Value)}
		}
		return &Flash{Kind: "success", Text: "Key found"}
	case "miss":
		return &Flash{Kind: "warning", Text: "Key not found"}
	case "cleared":
		return &Flash{Kind: "success", Text: "Cache cleared"}
	case "reset":
		return &Flash{Kind: "info", Text: "Cache reset"}
	case "not_initialized":
		return &Flash{Kind: "warning", Text: "Initialize the cache first"}
	}
	return nil
}
