package main

import "net/http"

func (app *application) routes() *http.ServeMux {
	mux := http.NewServeMux()

	var (
		base = func(next http.Handler) http.Handler {
			return app.recoverPanic(app.logAndTraceRequest(secureHeaders(next)))
		}
		session = func(next http.Handler) http.Handler {
			return base(noCache(app.sessionManager.LoadAndSave(next)))
		}
	)

	mux.Handle("POST /api/plan", session(http.HandlerFunc(app.planCreatePOST)))
	mux.Handle("GET /api/plan", session(http.HandlerFunc(app.planGET)))
	mux.Handle("GET /api/rest-activities", session(http.HandlerFunc(app.restActivityOptionsGET)))
	mux.Handle("GET /plan/document", session(http.HandlerFunc(app.planDocumentGET)))

	mux.Handle("GET /api/healthy", base(http.HandlerFunc(app.healthy)))

	return mux
}
