// Package sleepertest serves canned Sleeper API responses for tests.
package sleepertest

import (
	"embed"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"

	"github.com/go-chi/chi/v5"
)

// LeagueID is the only league the fake server knows.
const LeagueID = "784604348960653312"

//go:embed sleeperdata
var sleeperdata embed.FS

type FakeSleeperServer struct {
	s        *httptest.Server
	requests atomic.Int32

	mu       sync.Mutex
	failures map[string]int
}

func NewFakeSleeperServer() *FakeSleeperServer {
	f := &FakeSleeperServer{failures: make(map[string]int)}

	r := chi.NewRouter()
	r.Use(f.countRequests)
	r.Route("/v1/league/{leagueID}", func(r chi.Router) {
		r.Get("/", f.handler("league", "league.json", "null"))
		r.Get("/rosters", f.handler("rosters", "rosters.json", "[]"))
		r.Get("/users", f.handler("users", "users.json", "[]"))
	})

	f.s = httptest.NewServer(r)
	return f
}

func (f *FakeSleeperServer) Close() {
	f.s.Close()
}

// URL is the API base including the /v1 prefix.
func (f *FakeSleeperServer) URL() string {
	return f.s.URL + "/v1"
}

func (f *FakeSleeperServer) Requests() int {
	return int(f.requests.Load())
}

// Fail makes the given endpoint ("league", "rosters" or "users") answer
// with status until Reset is called.
func (f *FakeSleeperServer) Fail(endpoint string, status int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures[endpoint] = status
}

func (f *FakeSleeperServer) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures = make(map[string]int)
}

func (f *FakeSleeperServer) countRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.requests.Add(1)
		next.ServeHTTP(w, r)
	})
}

func (f *FakeSleeperServer) handler(endpoint, file, unknown string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		status, failing := f.failures[endpoint]
		f.mu.Unlock()
		if failing {
			w.WriteHeader(status)
			w.Write([]byte(`{"error":"upstream unavailable"}`))
			return
		}

		if chi.URLParam(r, "leagueID") != LeagueID {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(unknown))
			return
		}
		serveFile(w, file)
	}
}

func serveFile(w http.ResponseWriter, name string) {
	b, err := sleeperdata.ReadFile(fmt.Sprintf("sleeperdata/%s", name))
	if err != nil {
		log.Printf("error reading sleeperdata/%s: %v", name, err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
