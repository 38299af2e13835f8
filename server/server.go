package server

import (
	"net/http"

	"dslit/model"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

type Server struct {
	addr     string
	upgrader websocket.Upgrader
	hub      *Hub
}

func NewServer(addr string, hub *Hub) *Server {
	return &Server{
		addr: addr,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		hub: hub,
	}
}

// serveWs handles websocket requests from the peer.
func (s *Server) serveWs(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithError(err).Error("连接升级失败")
		return
	}
	c := s.hub.register(conn)
	defer func() {
		s.hub.unregister(c)
		conn.Close()
	}()

	var msg model.Msg
	for {
		if err := conn.ReadJSON(&msg); err != nil {
			log.WithError(err).WithField("client", c.id).Warn("读取消息失败")
			return
		}
		s.hub.msg <- msg
	}
}

func (s *Server) Serve() error {
	go s.hub.Run()
	http.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		s.serveWs(w, r)
	})
	log.WithField("addr", s.addr).Info("推送服务启动")
	return http.ListenAndServe(s.addr, nil)
}
