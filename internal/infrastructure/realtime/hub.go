// Package realtime implementa el canal de notificaciones push del dashboard:
// un hub websocket que difunde cada mutación confirmada a todos los clientes
// conectados, con entrega best-effort.
package realtime

import (
	"context"
	"encoding/json"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"

	"github.com/jhoicas/hrdash-api/internal/application/usecase"
	"github.com/jhoicas/hrdash-api/pkg/logger"
)

var _ usecase.Broadcaster = (*Hub)(nil)

// Event sobre de los mensajes del canal realtime.
type Event struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// EventConnected evento de saludo que recibe cada cliente al conectar.
const EventConnected = "connected"

const (
	// clientBuffer mensajes pendientes por cliente. Un cliente que no drena
	// su buffer pierde mensajes; no hay reintento ni confirmación.
	clientBuffer = 16
	// hubBuffer cola de difusión del hub. Si se llena, el evento se descarta
	// y se deja registro: publicar nunca bloquea la petición que lo origina.
	hubBuffer = 64
)

type client struct {
	id   string
	send chan []byte
}

// Hub mantiene el conjunto de clientes conectados y difunde eventos. Todo el
// estado lo posee la goroutine de Run; registro, baja y difusión llegan por
// canales.
type Hub struct {
	log        *logger.Logger
	register   chan *client
	unregister chan *client
	broadcast  chan []byte
	clients    map[*client]struct{}
}

// NewHub construye el hub. Hay que arrancar Run en una goroutine propia.
func NewHub(log *logger.Logger) *Hub {
	return &Hub{
		log:        log,
		register:   make(chan *client),
		unregister: make(chan *client),
		broadcast:  make(chan []byte, hubBuffer),
		clients:    make(map[*client]struct{}),
	}
}

// Run bucle del hub; termina al cancelar ctx cerrando todos los clientes.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			for c := range h.clients {
				delete(h.clients, c)
				close(c.send)
			}
			return
		case c := <-h.register:
			h.clients[c] = struct{}{}
			h.log.Info().Str("client", c.id).Int("clients", len(h.clients)).Msg("cliente realtime conectado")
		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
				h.log.Info().Str("client", c.id).Int("clients", len(h.clients)).Msg("cliente realtime desconectado")
			}
		case msg := <-h.broadcast:
			for c := range h.clients {
				select {
				case c.send <- msg:
				default:
					// cliente lento: se descarta su copia del mensaje
					h.log.Warn().Str("client", c.id).Msg("buffer de cliente lleno, mensaje descartado")
				}
			}
		}
	}
}

// Broadcast publica un evento a todos los clientes conectados. Fire-and-
// forget: los fallos se registran y se tragan, nunca llegan a la petición
// HTTP que originó la mutación.
func (h *Hub) Broadcast(event string, payload any) {
	msg, err := json.Marshal(Event{Event: event, Data: payload})
	if err != nil {
		h.log.Error().Err(err).Str("event", event).Msg("serializar evento realtime")
		return
	}
	select {
	case h.broadcast <- msg:
	default:
		h.log.Warn().Str("event", event).Msg("cola de difusión llena, evento descartado")
	}
}

// Handle atiende una conexión websocket hasta que el cliente se desconecta.
// Al conectar, el cliente recibe primero el evento de saludo; después, los
// eventos difundidos en el orden en que el hub los procesa.
func (h *Hub) Handle(conn *websocket.Conn) {
	c := &client{id: uuid.NewString(), send: make(chan []byte, clientBuffer)}

	greeting, err := json.Marshal(Event{
		Event: EventConnected,
		Data:  map[string]string{"message": "conexión establecida con el backend"},
	})
	if err == nil {
		c.send <- greeting
	}

	h.register <- c
	defer func() { h.unregister <- c }()

	go func() {
		for msg := range c.send {
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		}
	}()

	// Canal de solo salida: se lee únicamente para detectar el cierre.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
