package gateway

import (
	"encoding/json"
	"strconv"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/wb-go/wbf/logger"
	"github.com/wb-go/wbf/retry"
)

const (
	heartbeatInterval = 25 * time.Second
	writeTimeout      = 10 * time.Second

	// Reconnect attempts back off exponentially but never wait longer than
	// this, so a long outage does not push the next dial hours away.
	maxReconnectDelay = 30 * time.Second
)

// realtimeClient keeps one websocket to the backend's change feed and fans
// payloadless "table changed" signals out to subscribers. The connection is
// dialed lazily on the first subscription and re-dialed with backoff after
// any failure, rejoining all live topics.
type realtimeClient struct {
	url      string
	strategy retry.Strategy
	log      logger.Logger

	mu      sync.Mutex
	conn    *websocket.Conn
	subs    map[string]map[int]func()
	nextSub int
	nextRef int
	started bool
	closed  chan struct{}
}

type realtimeMessage struct {
	Topic   string          `json:"topic"`
	Event   string          `json:"event"`
	Payload json.RawMessage `json:"payload"`
	Ref     string          `json:"ref"`
}

func newRealtimeClient(url string, strategy retry.Strategy, log logger.Logger) *realtimeClient {
	return &realtimeClient{
		url:      url,
		strategy: strategy,
		log:      log,
		subs:     make(map[string]map[int]func()),
		closed:   make(chan struct{}),
	}
}

func topicFor(table, filter string) string {
	topic := "realtime:public:" + table
	if filter != "" {
		topic += ":" + filter
	}
	return topic
}

func (c *realtimeClient) subscribe(table, filter string, onChange func()) func() {
	topic := topicFor(table, filter)

	c.mu.Lock()
	c.nextSub++
	id := c.nextSub

	handlers, ok := c.subs[topic]
	if !ok {
		handlers = make(map[int]func())
		c.subs[topic] = handlers
	}
	handlers[id] = onChange

	firstForTopic := !ok
	if !c.started {
		c.started = true
		go c.run()
	} else if firstForTopic && c.conn != nil {
		c.joinLocked(c.conn, topic)
	}
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()

		handlers, ok := c.subs[topic]
		if !ok {
			return
		}
		delete(handlers, id)
		if len(handlers) == 0 {
			delete(c.subs, topic)
			if c.conn != nil {
				c.sendLocked(c.conn, realtimeMessage{Topic: topic, Event: "phx_leave"})
			}
		}
	}
}

func (c *realtimeClient) close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	select {
	case <-c.closed:
		return
	default:
	}
	close(c.closed)

	if c.conn != nil {
		c.conn.Close()
		c.conn = nil
	}
}

func (c *realtimeClient) run() {
	delay := c.strategy.Delay

	for {
		select {
		case <-c.closed:
			return
		default:
		}

		conn, _, err := websocket.DefaultDialer.Dial(c.url, nil)
		if err != nil {
			c.log.Warn("realtime dial failed",
				logger.String("error", err.Error()),
				logger.Duration("retry_in", delay),
			)
			select {
			case <-c.closed:
				return
			case <-time.After(delay):
			}
			delay = c.nextDelay(delay)
			continue
		}
		delay = c.strategy.Delay

		c.mu.Lock()
		c.conn = conn
		for topic := range c.subs {
			c.joinLocked(conn, topic)
		}
		c.mu.Unlock()

		c.log.Info("realtime channel connected")

		stop := make(chan struct{})
		go c.heartbeat(conn, stop)
		c.readLoop(conn)
		close(stop)

		c.mu.Lock()
		if c.conn == conn {
			c.conn = nil
		}
		c.mu.Unlock()
		conn.Close()
	}
}

func (c *realtimeClient) nextDelay(d time.Duration) time.Duration {
	d = time.Duration(float64(d) * float64(c.strategy.Backoff))
	if d > maxReconnectDelay {
		d = maxReconnectDelay
	}
	return d
}

func (c *realtimeClient) readLoop(conn *websocket.Conn) {
	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			select {
			case <-c.closed:
			default:
				c.log.Warn("realtime read failed", logger.String("error", err.Error()))
			}
			return
		}

		var msg realtimeMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			continue
		}

		switch msg.Event {
		case "INSERT", "UPDATE", "DELETE", "postgres_changes":
			c.dispatch(msg.Topic)
		}
	}
}

func (c *realtimeClient) dispatch(topic string) {
	c.mu.Lock()
	handlers := make([]func(), 0, len(c.subs[topic]))
	for _, fn := range c.subs[topic] {
		handlers = append(handlers, fn)
	}
	c.mu.Unlock()

	for _, fn := range handlers {
		fn()
	}
}

func (c *realtimeClient) heartbeat(conn *websocket.Conn, stop chan struct{}) {
	ticker := time.NewTicker(heartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-c.closed:
			return
		case <-ticker.C:
			c.mu.Lock()
			c.sendLocked(conn, realtimeMessage{Topic: "phoenix", Event: "heartbeat", Payload: json.RawMessage("{}")})
			c.mu.Unlock()
		}
	}
}

func (c *realtimeClient) joinLocked(conn *websocket.Conn, topic string) {
	c.sendLocked(conn, realtimeMessage{Topic: topic, Event: "phx_join", Payload: json.RawMessage("{}")})
}

func (c *realtimeClient) sendLocked(conn *websocket.Conn, msg realtimeMessage) {
	c.nextRef++
	msg.Ref = strconv.Itoa(c.nextRef)

	conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	if err := conn.WriteJSON(msg); err != nil {
		c.log.Warn("realtime write failed",
			logger.String("topic", msg.Topic),
			logger.String("event", msg.Event),
			logger.String("error", err.Error()),
		)
	}
}
