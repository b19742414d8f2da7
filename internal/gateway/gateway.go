package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/s448/event-horizon/internal/domain"
	"github.com/wb-go/wbf/logger"
	"github.com/wb-go/wbf/retry"
)

// Filter narrows a table operation to rows where Column equals Value. The
// remote query syntax stays inside this package.
type Filter struct {
	Column string
	Value  string
}

func Eq(column, value string) Filter {
	return Filter{Column: column, Value: value}
}

// Gateway is the single handle to the hosted backend: REST table access,
// auth endpoints and the realtime change feed. It is constructed once at
// startup and passed by reference to every component that needs it.
//
// A gateway with missing endpoint or anon key still constructs; every
// operation then fails with domain.ErrNotConfigured until the configuration
// is corrected. The diagnostic is logged once, not per call.
type Gateway struct {
	baseURL string
	anonKey string
	http    *http.Client
	log     logger.Logger

	configWarn sync.Once

	sessionMu sync.RWMutex
	session   *Session

	listenerMu sync.Mutex
	listeners  map[int]func(SessionEvent)
	listenerID int

	realtime *realtimeClient
}

func New(endpointURL, anonKey string, log logger.Logger) *Gateway {
	g := &Gateway{
		baseURL:   strings.TrimRight(endpointURL, "/"),
		anonKey:   anonKey,
		http:      &http.Client{},
		log:       log,
		listeners: make(map[int]func(SessionEvent)),
	}
	g.realtime = newRealtimeClient(
		websocketURL(g.baseURL, anonKey),
		retry.Strategy{Attempts: 0, Delay: time.Second, Backoff: 2},
		log,
	)
	return g
}

func (g *Gateway) configured() error {
	if g.baseURL != "" && g.anonKey != "" {
		return nil
	}
	g.configWarn.Do(func() {
		g.log.Error("remote store credentials missing, all operations will fail",
			logger.String("hint", "set REMOTE_STORE_URL and REMOTE_STORE_ANON_KEY"),
		)
	})
	return domain.ErrNotConfigured
}

// Select fetches all rows of table matching the filters. The result is the
// raw JSON array; row decoding belongs to the caller's translation layer.
func (g *Gateway) Select(ctx context.Context, table string, filters ...Filter) (json.RawMessage, error) {
	if err := g.configured(); err != nil {
		return nil, err
	}

	q := url.Values{"select": {"*"}}
	for _, f := range filters {
		q.Set(f.Column, "eq."+f.Value)
	}

	var rows json.RawMessage
	if err := g.do(ctx, http.MethodGet, "/rest/v1/"+table, q, nil, nil, &rows); err != nil {
		return nil, fmt.Errorf("select %s: %w", table, err)
	}

	return rows, nil
}

// Insert stores row and returns the server representation, so generated
// fields (id, timestamps) come back authoritative.
func (g *Gateway) Insert(ctx context.Context, table string, row any) (json.RawMessage, error) {
	if err := g.configured(); err != nil {
		return nil, err
	}

	var stored []json.RawMessage
	headers := map[string]string{"Prefer": "return=representation"}
	if err := g.do(ctx, http.MethodPost, "/rest/v1/"+table, nil, row, headers, &stored); err != nil {
		return nil, fmt.Errorf("insert into %s: %w", table, err)
	}
	if len(stored) == 0 {
		return nil, &domain.RemoteError{Message: "insert returned no representation"}
	}

	return stored[0], nil
}

func (g *Gateway) Update(ctx context.Context, table string, patch any, filters ...Filter) error {
	if err := g.configured(); err != nil {
		return err
	}

	q := url.Values{}
	for _, f := range filters {
		q.Set(f.Column, "eq."+f.Value)
	}

	if err := g.do(ctx, http.MethodPatch, "/rest/v1/"+table, q, patch, nil, nil); err != nil {
		return fmt.Errorf("update %s: %w", table, err)
	}

	return nil
}

func (g *Gateway) Delete(ctx context.Context, table string, filters ...Filter) error {
	if err := g.configured(); err != nil {
		return err
	}

	q := url.Values{}
	for _, f := range filters {
		q.Set(f.Column, "eq."+f.Value)
	}

	if err := g.do(ctx, http.MethodDelete, "/rest/v1/"+table, q, nil, nil, nil); err != nil {
		return fmt.Errorf("delete from %s: %w", table, err)
	}

	return nil
}

// Subscribe registers onChange for table change notifications, optionally
// narrowed by a row filter such as "userid=eq.<id>". The feed carries no
// payload detail: any notification means "re-fetch the snapshot".
func (g *Gateway) Subscribe(table, filter string, onChange func()) (func(), error) {
	if err := g.configured(); err != nil {
		return nil, err
	}
	return g.realtime.subscribe(table, filter, onChange), nil
}

// Close tears the realtime connection down. Table and auth operations stay
// usable; the gateway holds no other long-lived state.
func (g *Gateway) Close() {
	g.realtime.close()
}

func (g *Gateway) do(ctx context.Context, method, path string, query url.Values, body any, headers map[string]string, out any) error {
	u := g.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("apikey", g.anonKey)
	req.Header.Set("Authorization", "Bearer "+g.bearerToken())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := g.http.Do(req)
	if err != nil {
		return &domain.RemoteError{Message: err.Error()}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &domain.RemoteError{Message: err.Error()}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &domain.RemoteError{Message: remoteMessage(raw, resp.StatusCode)}
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}

	return nil
}

// bearerToken prefers the signed-in session's access token and falls back to
// the anon key, mirroring how the hosted backend scopes row access.
func (g *Gateway) bearerToken() string {
	g.sessionMu.RLock()
	defer g.sessionMu.RUnlock()

	if g.session != nil {
		return g.session.AccessToken
	}
	return g.anonKey
}

func remoteMessage(raw []byte, status int) string {
	var body struct {
		Message     string `json:"message"`
		Msg         string `json:"msg"`
		Description string `json:"error_description"`
	}
	if err := json.Unmarshal(raw, &body); err == nil {
		for _, m := range []string{body.Message, body.Msg, body.Description} {
			if m != "" {
				return m
			}
		}
	}
	return fmt.Sprintf("unexpected status %d", status)
}

func websocketURL(baseURL, anonKey string) string {
	if baseURL == "" {
		return ""
	}
	ws := strings.Replace(baseURL, "http", "ws", 1)
	return ws + "/realtime/v1/websocket?apikey=" + url.QueryEscape(anonKey) + "&vsn=1.0.0"
}
