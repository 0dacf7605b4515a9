package stream

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"FinFlow/internal/domain/models"
	drepo "FinFlow/internal/domain/repository"
	applogger "FinFlow/pkg/logger"

	"github.com/gorilla/websocket"
)

// Client implements a QuoteStream over a WebSocket quote feed.
type Client struct {
	websocketURL   string
	symbols        []string
	reconnectDelay time.Duration
	pingInterval   time.Duration
	log            *applogger.Logger

	conn      *websocket.Conn
	connected bool
}

// New creates a new WebSocket QuoteStream.
func New(websocketURL string, symbols []string, reconnectDelay, pingInterval time.Duration, log *applogger.Logger) drepo.QuoteStream {
	return &Client{
		websocketURL:   websocketURL,
		symbols:        symbols,
		reconnectDelay: reconnectDelay,
		pingInterval:   pingInterval,
		log:            log,
	}
}

// Connect establishes the WebSocket connection.
func (c *Client) Connect(ctx context.Context) error {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, c.websocketURL, nil)
	if err != nil {
		return fmt.Errorf("stream connect: %w", err)
	}
	c.conn = conn
	c.connected = true
	c.log.Info("quote stream connected", applogger.String("url", c.websocketURL))
	return nil
}

// Subscribe subscribes to configured symbols.
func (c *Client) Subscribe(ctx context.Context) error {
	if c.conn == nil || !c.connected {
		return fmt.Errorf("stream not connected")
	}
	for _, s := range c.symbols {
		msg := map[string]string{"type": "subscribe", "symbol": s}
		if err := c.conn.WriteJSON(msg); err != nil {
			return fmt.Errorf("subscribe %s: %w", s, err)
		}
	}
	c.log.Info("quote stream subscribed", applogger.Int("symbols", len(c.symbols)))
	return nil
}

type wireQuote struct {
	S string  `json:"s"`
	P float64 `json:"p"`
	V float64 `json:"v"`
	T int64   `json:"t"` // ms
}

type wireMessage struct {
	Type string      `json:"type"`
	Data []wireQuote `json:"data"`
}

// Read streams Quote events and errors.
func (c *Client) Read(ctx context.Context) (<-chan *models.Quote, <-chan error) {
	quotes := make(chan *models.Quote, 1024)
	errs := make(chan error, 1)

	// ping loop
	go func() {
		ticker := time.NewTicker(c.pingInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if c.conn != nil {
					_ = c.conn.WriteMessage(websocket.PingMessage, nil)
				}
			}
		}
	}()

	// read loop
	go func() {
		defer close(quotes)
		defer close(errs)
		for {
			select {
			case <-ctx.Done():
				return
			default:
				if c.conn == nil {
					errs <- fmt.Errorf("stream conn nil")
					return
				}
				_, b, err := c.conn.ReadMessage()
				if err != nil {
					errs <- fmt.Errorf("stream read: %w", err)
					return
				}
				var m wireMessage
				if err := json.Unmarshal(b, &m); err != nil {
					// ignore non-quote frames
					continue
				}
				if m.Type != "trade" {
					continue
				}
				for _, d := range m.Data {
					q := &models.Quote{
						Symbol:    d.S,
						Price:     d.P,
						Volume:    d.V,
						Timestamp: time.UnixMilli(d.T),
					}
					select {
					case quotes <- q:
					default:
						// drop on backpressure
					}
				}
			}
		}
	}()

	return quotes, errs
}

// Reconnect closes and reconnects.
func (c *Client) Reconnect(ctx context.Context) error {
	_ = c.Close()
	time.Sleep(c.reconnectDelay)
	if err := c.Connect(ctx); err != nil {
		return err
	}
	return c.Subscribe(ctx)
}

// Close closes the WS connection.
func (c *Client) Close() error {
	c.connected = false
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// IsConnected indicates status.
func (c *Client) IsConnected() bool { return c.connected }
