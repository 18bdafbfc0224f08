package ws

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // TODO: ograničiti na domen frontenda u produkciji
	},
}

// HandleLeaderboardWebSocket drži otvorenu konekciju za stranice koje
// prikazuju rang listu uživo. Rang lista je javna, pa ni konekcija ne
// traži prijavu.
func HandleLeaderboardWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Println("WebSocket upgrade neuspješan:", err)
		return
	}

	H.Register(conn)
	defer H.Unregister(conn)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
