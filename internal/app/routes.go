package app

import (
	"github.com/gin-gonic/gin"

	"github.com/skillsenselab/accounts/internal/handler"
	"github.com/skillsenselab/accounts/internal/server/endpoint"
)

// Route is one entry in the route table. Protected routes pass through the
// bearer-token gate before reaching their handler.
type Route struct {
	Method    string
	Path      string
	Handler   gin.HandlerFunc
	Protected bool
}

// routes builds the full route table. Keeping the table in one place makes
// the protection status of every endpoint reviewable at a glance; a route is
// public only because this table says so.
func routes(authH *handler.AuthHandler, userH *handler.UserHandler) []Route {
	return []Route{
		{Method: "GET", Path: "/health", Handler: endpoint.Health()},
		{Method: "GET", Path: "/api/health", Handler: endpoint.Health()},

		{Method: "POST", Path: "/api/register", Handler: authH.Register},
		{Method: "POST", Path: "/api/login", Handler: authH.Login},

		{Method: "GET", Path: "/api/get-all-user", Handler: userH.List},
		{Method: "POST", Path: "/api/create-user", Handler: userH.Create},
		{Method: "GET", Path: "/api/get-user/:id", Handler: userH.Get, Protected: true},
		{Method: "PUT", Path: "/api/update-user/:id", Handler: userH.Update, Protected: true},
		{Method: "DELETE", Path: "/api/delete-user/:id", Handler: userH.Delete, Protected: true},
	}
}

// registerRoutes installs the route table on the engine, inserting the auth
// gate in front of every protected route.
func registerRoutes(engine *gin.Engine, table []Route, gate gin.HandlerFunc) {
	for _, r := range table {
		if r.Protected {
			engine.Handle(r.Method, r.Path, gate, r.Handler)
		} else {
			engine.Handle(r.Method, r.Path, r.Handler)
		}
	}
}
