package server

import (
	"net/http"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"wp/engine"
	"wp/gas"
	"wp/model"
	"wp/perfmap"
	"wp/solver"
)

type Server struct {
	addr     string
	upgrader websocket.Upgrader
}

func NewServer(addr string, upgrader websocket.Upgrader) *Server {
	return &Server{
		addr:     addr,
		upgrader: upgrader,
	}
}

// serveWs handles websocket requests from the peer.
func (s *Server) serveWs(w http.ResponseWriter, r *http.Request) {
	cfg := engine.DefaultConfig()
	eng := engine.New(gas.NewIdealGas(), cfg)
	sol := solver.New(eng, perfmap.NewPlaceholder(), cfg)
	hub := NewHub(eng, sol)

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn(err)
		return
	}
	hub.conn = conn
	defer conn.Close()
	defer close(hub.done)

	var msg model.Msg
	go hub.handleRequest()
	go hub.handleResponse()
	for {
		err = conn.ReadJSON(&msg)
		if err != nil {
			log.Warn("err: ", err)
			return
		}
		hub.msg <- msg
	}
}

func (s *Server) Serve() {
	http.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		s.serveWs(w, r)
	})
	err := http.ListenAndServe(s.addr, nil)
	if err != nil {
		log.Fatal("ListenAndServe: ", err)
	}
}
