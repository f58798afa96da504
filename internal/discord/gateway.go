package discord

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	json "github.com/goccy/go-json"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	// Default gateway endpoint when none is discovered
	defaultGatewayURL = "wss://gateway.discord.gg"

	// Gateway protocol version and encoding
	gatewayQuery = "?v=10&encoding=json"

	// Delay between session attempts
	defaultReconnectDelay = 2 * time.Second

	// Timeout for the websocket handshake
	handshakeTimeout = 10 * time.Second
)

// Gateway opcodes.
const (
	opDispatch       = 0
	opHeartbeat      = 1
	opIdentify       = 2
	opResume         = 6
	opReconnect      = 7
	opInvalidSession = 9
	opHello          = 10
	opHeartbeatACK   = 11
)

var (
	errReconnect      = errors.New("gateway requested reconnect")
	errInvalidSession = errors.New("gateway invalidated session")
	errZombie         = errors.New("heartbeat not acknowledged")
)

// CloseError is a gateway close the client must not retry after, such as a
// bad token or disallowed intents.
type CloseError struct {
	Code int
	Text string
}

func (e *CloseError) Error() string {
	return fmt.Sprintf("gateway closed with %d: %s", e.Code, e.Text)
}

// fatalCloseCodes are close codes after which reconnecting cannot succeed.
var fatalCloseCodes = map[int]bool{
	4004: true, // authentication failed
	4010: true, // invalid shard
	4011: true, // sharding required
	4012: true, // invalid API version
	4013: true, // invalid intents
	4014: true, // disallowed intents
}

// InteractionHandler is called for every INTERACTION_CREATE event. Each call
// runs on its own goroutine.
type InteractionHandler func(ctx context.Context, in *Interaction)

type gatewayPayload struct {
	Op int             `json:"op"`
	D  json.RawMessage `json:"d,omitempty"`
	S  *int64          `json:"s,omitempty"`
	T  string          `json:"t,omitempty"`
}

type outgoingPayload struct {
	Op int `json:"op"`
	D  any `json:"d"`
}

type identifyData struct {
	Token      string             `json:"token"`
	Intents    int                `json:"intents"`
	Properties identifyProperties `json:"properties"`
}

type identifyProperties struct {
	OS      string `json:"os"`
	Browser string `json:"browser"`
	Device  string `json:"device"`
}

type resumeData struct {
	Token     string `json:"token"`
	SessionID string `json:"session_id"`
	Seq       int64  `json:"seq"`
}

type helloData struct {
	HeartbeatInterval int64 `json:"heartbeat_interval"`
}

type readyData struct {
	SessionID        string `json:"session_id"`
	ResumeGatewayURL string `json:"resume_gateway_url"`
	User             *User  `json:"user,omitempty"`
}

// Gateway keeps a websocket session to Discord open and feeds interactions
// to a handler. It reconnects and resumes until its context is cancelled.
type Gateway struct {
	token          string
	url            string
	intents        int
	reconnectDelay time.Duration
	handler        InteractionHandler
	logger         *zap.Logger
	dialer         *websocket.Dialer

	// Session state, owned by the goroutine running Run.
	sessionID string
	resumeURL string

	seq      atomic.Int64
	handlers sync.WaitGroup
}

// GatewayOption configures a Gateway
type GatewayOption func(*Gateway)

// WithGatewayURL sets the websocket URL to connect to.
func WithGatewayURL(url string) GatewayOption {
	return func(g *Gateway) {
		if url != "" {
			g.url = url
		}
	}
}

// WithIntents sets the identify intents. Interactions need none.
func WithIntents(intents int) GatewayOption {
	return func(g *Gateway) {
		g.intents = intents
	}
}

// WithReconnectDelay sets the pause between session attempts.
func WithReconnectDelay(d time.Duration) GatewayOption {
	return func(g *Gateway) {
		g.reconnectDelay = d
	}
}

// WithLogger sets the gateway logger.
func WithLogger(l *zap.Logger) GatewayOption {
	return func(g *Gateway) {
		if l != nil {
			g.logger = l
		}
	}
}

// NewGateway creates a gateway client for the bot token.
func NewGateway(token string, handler InteractionHandler, opts ...GatewayOption) *Gateway {
	g := &Gateway{
		token:          token,
		url:            defaultGatewayURL,
		reconnectDelay: defaultReconnectDelay,
		handler:        handler,
		logger:         zap.NewNop(),
		dialer: &websocket.Dialer{
			HandshakeTimeout: handshakeTimeout,
		},
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Run connects and serves interactions until ctx is cancelled, returning nil
// then. It returns early only on a CloseError. Handlers still running when
// the context ends are waited for.
func (g *Gateway) Run(ctx context.Context) error {
	defer g.handlers.Wait()

	for {
		err := g.session(ctx)
		if ctx.Err() != nil {
			return nil
		}

		var closeErr *CloseError
		if errors.As(err, &closeErr) {
			return err
		}

		g.logger.Warn("gateway session ended", zap.Error(err))

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(g.reconnectDelay):
		}
	}
}

// gatewayConn serializes writes; gorilla allows one concurrent writer.
type gatewayConn struct {
	ws *websocket.Conn
	mu sync.Mutex
}

func (c *gatewayConn) send(op int, d any) error {
	data, err := json.Marshal(outgoingPayload{Op: op, D: d})
	if err != nil {
		return fmt.Errorf("marshal op %d: %w", op, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	return c.ws.WriteMessage(websocket.TextMessage, data)
}

func (c *gatewayConn) read() (gatewayPayload, error) {
	var p gatewayPayload

	_, data, err := c.ws.ReadMessage()
	if err != nil {
		return p, err
	}

	if err := json.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("decode gateway payload: %w", err)
	}

	return p, nil
}

// session runs one websocket connection from Hello until it drops.
func (g *Gateway) session(ctx context.Context) error {
	url := g.url

	resuming := g.sessionID != "" && g.resumeURL != ""
	if resuming {
		url = g.resumeURL
	}

	ws, _, err := g.dialer.DialContext(ctx, url+gatewayQuery, nil)
	if err != nil {
		return fmt.Errorf("dial gateway: %w", err)
	}

	conn := &gatewayConn{ws: ws}

	sessCtx, cancel := context.WithCancel(ctx)

	var wg sync.WaitGroup

	defer func() {
		cancel()
		wg.Wait()
		ws.Close()
	}()

	// Closing the socket is the only way to unblock a pending read.
	wg.Add(1)

	go func() {
		defer wg.Done()

		<-sessCtx.Done()

		if ctx.Err() != nil {
			msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
			_ = ws.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second))
		}

		ws.Close()
	}()

	hello, err := conn.read()
	if err != nil {
		return closeError(err)
	}

	if hello.Op != opHello {
		return fmt.Errorf("expected hello, got op %d", hello.Op)
	}

	var h helloData
	if err := json.Unmarshal(hello.D, &h); err != nil {
		return fmt.Errorf("decode hello: %w", err)
	}

	if h.HeartbeatInterval <= 0 {
		return fmt.Errorf("invalid heartbeat interval %d", h.HeartbeatInterval)
	}

	var acked atomic.Bool
	acked.Store(true)

	wg.Add(1)

	go func() {
		defer wg.Done()

		if err := g.heartbeat(sessCtx, conn, time.Duration(h.HeartbeatInterval)*time.Millisecond, &acked); err != nil {
			g.logger.Warn("heartbeat stopped", zap.Error(err))
			cancel()
		}
	}()

	if resuming {
		err = conn.send(opResume, resumeData{Token: g.token, SessionID: g.sessionID, Seq: g.seq.Load()})
	} else {
		err = conn.send(opIdentify, identifyData{
			Token:   g.token,
			Intents: g.intents,
			Properties: identifyProperties{
				OS:      runtime.GOOS,
				Browser: "teamfinder",
				Device:  "teamfinder",
			},
		})
	}

	if err != nil {
		return fmt.Errorf("send handshake: %w", err)
	}

	for {
		p, err := conn.read()
		if err != nil {
			return closeError(err)
		}

		if p.S != nil {
			g.seq.Store(*p.S)
		}

		switch p.Op {
		case opDispatch:
			g.dispatch(ctx, p)

		case opHeartbeat:
			if err := conn.send(opHeartbeat, g.lastSeq()); err != nil {
				return fmt.Errorf("send heartbeat: %w", err)
			}

		case opHeartbeatACK:
			acked.Store(true)

		case opReconnect:
			return errReconnect

		case opInvalidSession:
			var resumable bool
			_ = json.Unmarshal(p.D, &resumable)

			if !resumable {
				g.resetSession()
			}

			return errInvalidSession
		}
	}
}

// heartbeat sends heartbeats every interval, the first one after a random
// fraction of it. A missing ack between beats means the connection is dead.
func (g *Gateway) heartbeat(ctx context.Context, conn *gatewayConn, interval time.Duration, acked *atomic.Bool) error {
	timer := time.NewTimer(time.Duration(rand.Float64() * float64(interval)))
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-timer.C:
		}

		if !acked.Swap(false) {
			return errZombie
		}

		if err := conn.send(opHeartbeat, g.lastSeq()); err != nil {
			return err
		}

		timer.Reset(interval)
	}
}

func (g *Gateway) dispatch(ctx context.Context, p gatewayPayload) {
	switch p.T {
	case "READY":
		var r readyData
		if err := json.Unmarshal(p.D, &r); err != nil {
			g.logger.Warn("bad READY payload", zap.Error(err))
			return
		}

		g.sessionID = r.SessionID
		g.resumeURL = r.ResumeGatewayURL

		fields := []zap.Field{zap.String("session", r.SessionID)}
		if r.User != nil {
			fields = append(fields, zap.String("user", r.User.Username))
		}

		g.logger.Info("gateway ready", fields...)

	case "RESUMED":
		g.logger.Info("gateway session resumed", zap.String("session", g.sessionID))

	case "INTERACTION_CREATE":
		in := new(Interaction)
		if err := json.Unmarshal(p.D, in); err != nil {
			g.logger.Warn("bad INTERACTION_CREATE payload", zap.Error(err))
			return
		}

		g.handlers.Add(1)

		go func() {
			defer g.handlers.Done()
			g.handler(ctx, in)
		}()
	}
}

// lastSeq returns the last sequence number, or nil before any dispatch.
func (g *Gateway) lastSeq() *int64 {
	s := g.seq.Load()
	if s == 0 {
		return nil
	}

	return &s
}

func (g *Gateway) resetSession() {
	g.sessionID = ""
	g.resumeURL = ""
	g.seq.Store(0)
}

// closeError turns a fatal websocket close into a CloseError.
func closeError(err error) error {
	var ce *websocket.CloseError
	if errors.As(err, &ce) && fatalCloseCodes[ce.Code] {
		return &CloseError{Code: ce.Code, Text: ce.Text}
	}

	return err
}
