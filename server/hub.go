package server

import (
	"encoding/json"
	"sync"

	"dslit/model"
	"dslit/simulation"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

// Hub 维护已连接的客户端，广播计算循环推送的场快照，
// 并处理 start/stop 控制消息
type Hub struct {
	sim *simulation.Simulator

	mu      sync.Mutex
	clients map[uuid.UUID]*client

	msg     chan model.Msg
	running bool
}

type client struct {
	id   uuid.UUID
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *client) writeJSON(v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(v)
}

func NewHub(sim *simulation.Simulator) *Hub {
	return &Hub{
		sim:     sim,
		clients: make(map[uuid.UUID]*client),
		msg:     make(chan model.Msg, 10),
	}
}

func (h *Hub) register(conn *websocket.Conn) *client {
	c := &client{id: uuid.New(), conn: conn}
	h.mu.Lock()
	h.clients[c.id] = c
	h.mu.Unlock()
	log.WithField("client", c.id).Info("客户端接入")
	return c
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	delete(h.clients, c.id)
	h.mu.Unlock()
	log.WithField("client", c.id).Info("客户端断开")
}

// Run 处理控制消息并把快照广播给所有客户端
func (h *Hub) Run() {
	go h.broadcast()
	for msg := range h.msg {
		switch msg.Type {
		case "start":
			if h.running {
				h.reply(model.Msg{Type: "started", Content: "already running"})
				continue
			}
			h.running = true
			go func() {
				h.sim.Run()
				h.msg <- model.Msg{Type: "done"}
			}()
			h.reply(model.Msg{Type: "started"})
		case "stop":
			if h.running {
				h.sim.GetCalcHub().StopSignal()
				h.running = false
			}
			h.reply(model.Msg{Type: "stopped"})
		case "done":
			// 计算循环自然结束
			h.running = false
		default:
			log.WithField("type", msg.Type).Warn("未知的消息类型")
		}
	}
}

func (h *Hub) broadcast() {
	for frame := range h.sim.GetCalcHub().Frames {
		data, err := json.Marshal(&frame)
		if err != nil {
			log.WithError(err).Error("快照序列化失败")
			continue
		}
		reply := model.Msg{Type: "frame", Content: string(data)}
		h.mu.Lock()
		targets := make([]*client, 0, len(h.clients))
		for _, c := range h.clients {
			targets = append(targets, c)
		}
		h.mu.Unlock()
		for _, c := range targets {
			if err := c.writeJSON(&reply); err != nil {
				log.WithError(err).WithField("client", c.id).Warn("快照推送失败")
			}
		}
	}
}

func (h *Hub) reply(msg model.Msg) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, c := range h.clients {
		if err := c.writeJSON(&msg); err != nil {
			log.WithError(err).WithField("client", c.id).Warn("应答发送失败")
		}
	}
}
