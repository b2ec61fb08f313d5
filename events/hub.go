package events

import (
	"sync"

	"github.com/gorilla/websocket"

	"github.com/rakhadenta/restaurant-booking/utils"
)

// Event types pushed to connected dashboard clients.
const (
	EventTableCreate       = "table_create"
	EventTableUpdate       = "table_update"
	EventReservationCreate = "reservation_create"
	EventReservationUpdate = "reservation_update"
	EventOrderUpdate       = "order_update"
	EventReportGenerated   = "report_generated"
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// hub holds every connected front-end client. Broadcasts are best-effort:
// a failed write drops the client.
type hub struct {
	clients map[*websocket.Conn]bool
	mutex   sync.Mutex
}

var eventHub = hub{
	clients: make(map[*websocket.Conn]bool),
}

func RegisterClient(conn *websocket.Conn) {
	eventHub.mutex.Lock()
	defer eventHub.mutex.Unlock()
	eventHub.clients[conn] = true
}

func UnregisterClient(conn *websocket.Conn) {
	eventHub.mutex.Lock()
	defer eventHub.mutex.Unlock()
	delete(eventHub.clients, conn)
	conn.Close()
}

func Broadcast(msg Message) {
	eventHub.mutex.Lock()
	defer eventHub.mutex.Unlock()
	for conn := range eventHub.clients {
		if err := conn.WriteJSON(msg); err != nil {
			if utils.ErrorLogger != nil {
				utils.ErrorLogger.Printf("websocket write failed, dropping client: %v", err)
			}
			delete(eventHub.clients, conn)
			conn.Close()
		}
	}
}
