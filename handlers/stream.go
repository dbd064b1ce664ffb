package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"floodwatch/config"
	"floodwatch/models"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

// AlertHub fans newly created alerts out to every connected websocket
// client. All client-set mutation happens on the Run goroutine.
type AlertHub struct {
	clients    map[*streamClient]bool
	register   chan *streamClient
	unregister chan *streamClient
	broadcast  chan models.Alert
}

func NewAlertHub() *AlertHub {
	return &AlertHub{
		clients:    make(map[*streamClient]bool),
		register:   make(chan *streamClient),
		unregister: make(chan *streamClient),
		broadcast:  make(chan models.Alert, 16),
	}
}

// Run owns the client set. Start once at boot.
func (h *AlertHub) Run() {
	for {
		select {
		case c := <-h.register:
			h.clients[c] = true
		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
			}
		case alert := <-h.broadcast:
			for c := range h.clients {
				select {
				case c.send <- alert:
				default:
					// Slow consumer: drop the connection, not the feed.
					delete(h.clients, c)
					close(c.send)
				}
			}
		}
	}
}

// Publish queues an alert for delivery to all connected clients.
func (h *AlertHub) Publish(alert models.Alert) {
	select {
	case h.broadcast <- alert:
	default:
		log.Printf("alert hub: broadcast queue full, dropping alert %s", alert.ID)
	}
}

type streamClient struct {
	hub  *AlertHub
	conn *websocket.Conn
	send chan models.Alert
}

func (c *streamClient) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case alert, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(alert); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump discards inbound frames; the stream is one-way. It exists to
// service pongs and to notice closed connections.
func (c *streamClient) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()
	c.conn.SetReadLimit(512)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// StreamAlerts upgrades the request to a websocket subscribed to the
// alert feed.
func (h *AlertHub) StreamAlerts(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("alert stream: upgrade failed: %v", err)
		return
	}
	client := &streamClient{hub: h, conn: conn, send: make(chan models.Alert, 8)}
	h.register <- client
	go client.writePump()
	go client.readPump()
}

type createAlertReq struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Severity    string  `json:"severity"`
	Type        string  `json:"type"`
	Actions     string  `json:"actions"`
	Location    string  `json:"location"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

func validSeverity(s string) bool {
	switch s {
	case models.SeverityMinor, models.SeverityModerate, models.SeveritySevere, models.SeverityCritical:
		return true
	}
	return false
}

// CreateAlert stores a new alert and pushes it to stream subscribers.
func (h *AlertHub) CreateAlert(w http.ResponseWriter, r *http.Request) {
	var req createAlertReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if req.Title == "" {
		writeMessage(w, http.StatusBadRequest, "title required")
		return
	}
	if !validSeverity(req.Severity) {
		writeMessage(w, http.StatusBadRequest, "invalid severity")
		return
	}

	alert := models.Alert{
		UserID:      "system",
		Title:       req.Title,
		Description: req.Description,
		Severity:    req.Severity,
		Type:        req.Type,
		Actions:     req.Actions,
		Location:    req.Location,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		IsActive:    true,
		Timestamp:   models.JSONTime(time.Now()),
	}
	if err := config.DB.Create(&alert).Error; err != nil {
		writeMessage(w, http.StatusInternalServerError, "db error: "+err.Error())
		return
	}

	h.Publish(alert)
	writeJSON(w, http.StatusCreated, alert)
}
