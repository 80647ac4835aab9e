package mux

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"nolimitholdem-server/internal/token"
	"nolimitholdem-server/pkg/deck"
	"nolimitholdem-server/pkg/poker/holdem"
)

const writeWait = time.Second * 10
const pongWait = time.Second * 60
const pingPeriod = pongWait * 9 / 10

// payloadIn is a message from the seated client
type payloadIn struct {
	// Deal asks for the next hand
	Deal bool `json:"deal,omitempty"`
	// Action plays the seat's turn
	Action *holdem.Action `json:"action,omitempty"`
}

// gameView is what the seated client sees after every change
type gameView struct {
	Table string          `json:"table"`
	Seat  int             `json:"seat"`
	State *holdem.State   `json:"state"`
	Hole  deck.Hand       `json:"hole,omitempty"`
	Legal []holdem.Action `json:"legal,omitempty"`
	Error string          `json:"error,omitempty"`
}

func (m *Mux) getTableUUIDWS() http.HandlerFunc {
	upgrader := &websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}

	return func(w http.ResponseWriter, r *http.Request) {
		tbl := tableFromContext(r.Context())

		tableID, seat, err := token.ValidSeat(r.FormValue("token"))
		if err != nil || tableID != tbl.id {
			writeJSONError(w, http.StatusUnauthorized, nil)
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logrus.WithError(err).Error("could not upgrade connection")
			return
		}

		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			_ = conn.SetReadDeadline(time.Now().Add(pongWait))
			return nil
		})

		client := &wsClient{
			conn: conn,
			send: make(chan *gameView, 8),
			log:  tbl.log.WithField("seat", seat),
		}

		defer func() {
			close(client.send)
			_ = conn.Close()
		}()

		go client.writeLoop()

		client.send <- tbl.view(seat, "")
		m.webSocketReadLoop(client, tbl, seat)
	}
}

type wsClient struct {
	conn *websocket.Conn
	send chan *gameView
	log  logrus.FieldLogger
}

func (c *wsClient) writeLoop() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case view, ok := <-c.send:
			if !ok {
				return
			}

			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteJSON(view); err != nil {
				c.log.WithError(err).Error("could not write message")
				return
			}
		}
	}
}

func (m *Mux) webSocketReadLoop(client *wsClient, tbl *liveTable, seat int) {
	for {
		var msg payloadIn
		if err := client.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				client.log.WithError(err).Error("could not read message")
			}

			return
		}

		client.send <- tbl.handle(seat, msg)
	}
}

// handle applies one client message and returns the refreshed view
func (t *liveTable) handle(seat int, msg payloadIn) *gameView {
	t.mu.Lock()
	defer t.mu.Unlock()

	var err error
	switch {
	case msg.Deal:
		err = t.deal()
	case msg.Action != nil:
		err = t.act(seat, *msg.Action)
	}

	errMsg := ""
	if err != nil {
		errMsg = err.Error()
	}

	return t.viewLocked(seat, errMsg)
}

// view snapshots the table for the seat
func (t *liveTable) view(seat int, errMsg string) *gameView {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.viewLocked(seat, errMsg)
}

func (t *liveTable) viewLocked(seat int, errMsg string) *gameView {
	return &gameView{
		Table: t.id,
		Seat:  seat,
		State: t.game.State(),
		Hole:  t.game.HoleCards(seat),
		Legal: t.game.LegalActions(seat),
		Error: errMsg,
	}
}
