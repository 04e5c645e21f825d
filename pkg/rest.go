package wifictl

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/dogeorg/wifictl/pkg/conductor"
	"github.com/dogeorg/wifictl/pkg/version"
	"github.com/gorilla/securecookie"
	"github.com/rs/cors"
)

func RESTAPI(config ServerConfig, daemon *Daemon, ws *WSRelay) conductor.Service {
	a := api{
		mux:    http.NewServeMux(),
		config: config,
		daemon: daemon,
		ws:     ws,
		token:  config.APIToken,
	}

	routes := map[string]http.HandlerFunc{
		"GET /networks":    a.getNetworks,
		"POST /connect":    a.postConnect,
		"POST /disconnect": a.postDisconnect,
		"GET /status":      a.getStatus,
		"PUT /radio":       a.putRadio,
		"GET /interfaces":  a.getInterfaces,
		"GET /history":     a.getHistory,
		"GET /version":     a.getVersion,
		"/ws":              a.wsUpdates,
	}

	for p, h := range routes {
		a.mux.HandleFunc(p, h)
	}
	log.Printf("Serving %d API routes", len(routes))

	return a
}

// MintAPIToken generates the bearer token clients use against the REST
// surface. It is minted once and kept in the daemon state file unless
// the config pins one.
func MintAPIToken() string {
	return hex.EncodeToString(securecookie.GenerateRandomKey(32))
}

type api struct {
	mux    *http.ServeMux
	config ServerConfig
	daemon *Daemon
	ws     *WSRelay
	token  string
}

func bearerToken(r *http.Request) (string, bool) {
	parts := strings.Split(r.Header.Get("authorization"), " ")
	if len(parts) != 2 {
		return "", false
	}
	return parts[1], true
}

// websocket clients can't set headers, they pass ?token= instead
func queryToken(r *http.Request) (string, bool) {
	token := r.URL.Query().Get("token")
	return token, token != ""
}

func (t api) authed(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/version" {
			next.ServeHTTP(w, r)
			return
		}
		token, ok := bearerToken(r)
		if !ok {
			token, ok = queryToken(r)
		}
		if !ok || token != t.token {
			sendErrorResponse(w, http.StatusUnauthorized, "invalid or missing token")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (t api) getNetworks(w http.ResponseWriter, r *http.Request) {
	networks, err := t.daemon.Scan()
	if err != nil {
		log.Printf("Scan failed: %v", err)
		sendErrorResponse(w, http.StatusInternalServerError, "scan failed")
		return
	}
	sendResponse(w, map[string]any{
		"success":  true,
		"networks": networks,
	})
}

type connectRequest struct {
	SSID     string `json:"ssid"`
	Password string `json:"password"`
}

func (t api) postConnect(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		sendErrorResponse(w, http.StatusBadRequest, "could not read request body")
		return
	}
	defer r.Body.Close()

	var req connectRequest
	if err := json.Unmarshal(body, &req); err != nil {
		sendErrorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.SSID == "" {
		sendErrorResponse(w, http.StatusBadRequest, "ssid is required")
		return
	}

	result, err := t.daemon.Connect(r.Context(), req.SSID, req.Password)
	if err != nil {
		log.Printf("Connect to %q failed: %v", req.SSID, err)
		switch {
		case errors.Is(err, ErrRadioOff):
			sendErrorResponse(w, http.StatusServiceUnavailable, "wifi radio is disabled")
		case errors.Is(err, ErrAddProfile):
			sendErrorResponse(w, http.StatusInternalServerError, "could not register network profile")
		default:
			sendErrorResponse(w, http.StatusInternalServerError, "connect failed")
		}
		return
	}
	if !result.Connected {
		sendErrorResponse(w, http.StatusConflict, fmt.Sprintf("%s did not accept the connection", req.SSID))
		return
	}
	sendResponse(w, result)
}

func (t api) postDisconnect(w http.ResponseWriter, r *http.Request) {
	ok, err := t.daemon.Disconnect()
	if err != nil {
		log.Printf("Disconnect failed: %v", err)
		sendErrorResponse(w, http.StatusInternalServerError, "disconnect failed")
		return
	}
	if !ok {
		sendErrorResponse(w, http.StatusConflict, "disconnect was not accepted")
		return
	}
	sendResponse(w, map[string]bool{"success": true})
}

func (t api) getStatus(w http.ResponseWriter, r *http.Request) {
	sendResponse(w, t.daemon.Status())
}

type radioRequest struct {
	On bool `json:"on"`
}

func (t api) putRadio(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		sendErrorResponse(w, http.StatusBadRequest, "could not read request body")
		return
	}
	defer r.Body.Close()

	var req radioRequest
	if err := json.Unmarshal(body, &req); err != nil {
		sendErrorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := t.daemon.SetRadio(req.On); err != nil {
		log.Printf("Radio switch failed: %v", err)
		sendErrorResponse(w, http.StatusInternalServerError, "could not set radio state")
		return
	}
	sendResponse(w, map[string]bool{"success": true})
}

func (t api) getInterfaces(w http.ResponseWriter, r *http.Request) {
	interfaces, err := t.daemon.Interfaces()
	if err != nil {
		log.Printf("Interface listing failed: %v", err)
		sendErrorResponse(w, http.StatusInternalServerError, "could not list interfaces")
		return
	}
	sendResponse(w, map[string]any{
		"success":    true,
		"interfaces": interfaces,
	})
}

func (t api) getHistory(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	report, err := t.daemon.History(limit)
	if err != nil {
		log.Printf("History read failed: %v", err)
		sendErrorResponse(w, http.StatusInternalServerError, "could not read history")
		return
	}
	sendResponse(w, report)
}

func (t api) getVersion(w http.ResponseWriter, r *http.Request) {
	sendResponse(w, version.GetVersionInfo())
}

func (t api) wsUpdates(w http.ResponseWriter, r *http.Request) {
	t.ws.GetWSHandler(func() any {
		return Change{Type: "bootstrap", Update: t.daemon.Status()}
	}).ServeHTTP(w, r)
}

func (t api) Run(started, stopped chan bool, stop chan context.Context) error {
	go func() {
		handler := cors.AllowAll().Handler(t.authed(t.mux))
		addr := fmt.Sprintf("%s:%d", t.config.Bind, t.config.Port)
		srv := &http.Server{Addr: addr, Handler: handler}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Fatalf("HTTP server ListenAndServe: %v", err)
			}
		}()

		started <- true
		ctx := <-stop
		srv.Shutdown(ctx)
		stopped <- true
	}()
	return nil
}

func sendResponse(w http.ResponseWriter, payload any) {
	// marshal before touching the response so a failure can still go
	// out through the error path below
	b, err := json.Marshal(payload)
	if err != nil {
		sendErrorResponse(w, http.StatusInternalServerError, fmt.Sprintf("encoding response: %s", err.Error()))
		return
	}
	setJSONHeaders(w)
	w.Write(b)
}

func sendErrorResponse(w http.ResponseWriter, code int, message string) {
	log.Printf("api error %d: %s", code, message)
	// the envelope is built by hand so an encoding failure cannot
	// loop back into this function
	payload := fmt.Sprintf("{\"error\":{\"code\":%d,\"message\":%q}}", code, message)
	setJSONHeaders(w)
	w.WriteHeader(code)
	w.Write([]byte(payload))
}

func setJSONHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store") // browsers cache GET responses aggressively
}
