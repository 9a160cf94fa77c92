//nolint:errcheck,forbidigo,gosec // test utility allows simpler error handling and direct output
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// fixture example:
//
//	{"channels": [{"id": 42, "login": "chan42", "display_name": "Chan42",
//	  "title": "Speedruns", "live": false,
//	  "commands": [{"name": "!plan", "message": "Monday: chess"}]}]}
type (
	fixture struct {
		Channels []channel `json:"channels"`
	}

	channel struct {
		ID          int64     `json:"id"`
		Login       string    `json:"login"`
		DisplayName string    `json:"display_name"`
		Title       string    `json:"title"`
		Live        bool      `json:"live"`
		Commands    []command `json:"commands"`
	}

	command struct {
		Name    string `json:"name"`
		Message string `json:"message"`
	}
)

func main() {
	port := pflag.IntP("port", "p", 8080, "Port to listen on")
	pflag.Parse()

	args := pflag.Args()
	if len(args) < 1 {
		fmt.Println("Usage: testserver [options] <channels.json>")
		fmt.Println("\nOptions:")
		pflag.PrintDefaults()
		os.Exit(1)
	}

	path := args[0]
	if _, err := os.Stat(path); os.IsNotExist(err) {
		log.Fatalf("Fixture file does not exist: %s", path)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{"access_token": "test-token", "token_type": "bearer", "expires_in": 3600})
	})
	mux.HandleFunc("GET /helix/users", withFixture(path, func(w http.ResponseWriter, r *http.Request, f fixture) {
		data := []map[string]string{}
		if c, ok := f.find(r.URL.Query()); ok {
			data = append(data, map[string]string{"id": strconv.FormatInt(c.ID, 10), "login": c.Login, "display_name": c.DisplayName})
		}
		writeJSON(w, map[string]any{"data": data})
	}))
	mux.HandleFunc("GET /helix/channels", withFixture(path, func(w http.ResponseWriter, r *http.Request, f fixture) {
		data := []map[string]string{}
		if c, ok := f.byID(r.URL.Query().Get("broadcaster_id")); ok {
			data = append(data, map[string]string{"broadcaster_id": strconv.FormatInt(c.ID, 10), "title": c.Title})
		}
		writeJSON(w, map[string]any{"data": data})
	}))
	mux.HandleFunc("GET /helix/streams", withFixture(path, func(w http.ResponseWriter, r *http.Request, f fixture) {
		data := []map[string]string{}
		if c, ok := f.byID(r.URL.Query().Get("user_id")); ok && c.Live {
			data = append(data, map[string]string{"user_id": strconv.FormatInt(c.ID, 10), "type": "live"})
		}
		writeJSON(w, map[string]any{"data": data})
	}))
	mux.HandleFunc("GET /nightbot/channels/t/{login}", withFixture(path, func(w http.ResponseWriter, r *http.Request, f fixture) {
		c, ok := f.byLogin(r.PathValue("login"))
		if !ok || c.Commands == nil {
			w.WriteHeader(http.StatusNotFound)
			writeJSON(w, map[string]any{"message": "channel not found", "status": http.StatusNotFound})
			return
		}
		writeJSON(w, map[string]any{"channel": map[string]string{"_id": nightbotID(c), "name": c.Login}, "status": http.StatusOK})
	}))
	mux.HandleFunc("GET /nightbot/commands", withFixture(path, func(w http.ResponseWriter, r *http.Request, f fixture) {
		id := r.Header.Get("Nightbot-Channel")
		for _, c := range f.Channels {
			if nightbotID(c) == id {
				writeJSON(w, map[string]any{"_total": len(c.Commands), "commands": c.Commands, "status": http.StatusOK})
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
		writeJSON(w, map[string]any{"message": "channel not found", "status": http.StatusNotFound})
	}))

	addr := fmt.Sprintf(":%d", *port)
	log.Printf("Test server listening on %s", addr)
	log.Printf("TWITCH_API_URL=http://localhost%s/helix", addr)
	log.Printf("TWITCH_TOKEN_URL=http://localhost%s/oauth2/token", addr)
	log.Printf("NIGHTBOT_API_URL=http://localhost%s/nightbot", addr)
	log.Println("\nThe fixture is read on each request, so you can edit it while the server is running.")

	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func withFixture(path string, h func(w http.ResponseWriter, r *http.Request, f fixture)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		content, err := os.ReadFile(path)
		if err != nil {
			http.Error(w, fmt.Sprintf("Failed to read fixture: %v", err), http.StatusInternalServerError)
			log.Printf("Error reading %s: %v", path, err)
			return
		}

		var f fixture
		if err := json.Unmarshal(content, &f); err != nil {
			http.Error(w, fmt.Sprintf("Failed to parse fixture: %v", err), http.StatusInternalServerError)
			log.Printf("Error parsing %s: %v", path, err)
			return
		}

		log.Printf("%s %s", r.Method, r.URL)
		h(w, r, f)
	}
}

func (f fixture) find(query map[string][]string) (channel, bool) {
	if ids := query["id"]; len(ids) > 0 {
		return f.byID(ids[0])
	}
	if logins := query["login"]; len(logins) > 0 {
		return f.byLogin(logins[0])
	}
	return channel{}, false
}

func (f fixture) byID(id string) (channel, bool) {
	for _, c := range f.Channels {
		if strconv.FormatInt(c.ID, 10) == id {
			return c, true
		}
	}
	return channel{}, false
}

func (f fixture) byLogin(login string) (channel, bool) {
	for _, c := range f.Channels {
		if strings.EqualFold(c.Login, login) {
			return c, true
		}
	}
	return channel{}, false
}

func nightbotID(c channel) string {
	return "nb-" + strconv.FormatInt(c.ID, 10)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
