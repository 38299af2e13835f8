package exchange

import (
	"fmt"
	"net/http"
	"time"

	"dslit/model"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

// websocket 链路：每条链路一个连接，JSON 帧。
// 同一条连接上交换过程中至多一个并发读 + 一个并发写，
// 满足 gorilla 的并发约束，不需要额外加锁。
type wsLink struct {
	conn *websocket.Conn
}

func (l *wsLink) Send(f model.HaloFrame) error {
	return l.conn.WriteJSON(&f)
}

func (l *wsLink) Recv() (model.HaloFrame, error) {
	var f model.HaloFrame
	err := l.conn.ReadJSON(&f)
	return f, err
}

func (l *wsLink) Close() error {
	return l.conn.Close()
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Ring 建立环形链路：每个 rank 在自己的地址上监听 /halo，
// 等待上一个邻居拨入，同时向下一个邻居拨出。
// addrs 按 rank 顺序给出所有分区的监听地址。
func Ring(rank int, addrs []string) (prev, next Link, err error) {
	accepted := make(chan *websocket.Conn, 1)

	mux := http.NewServeMux()
	mux.HandleFunc("/halo", func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.WithError(err).Error("halo 连接升级失败")
			return
		}
		accepted <- conn
	})
	go func() {
		if err := http.ListenAndServe(addrs[rank], mux); err != nil {
			log.WithError(err).Fatal("halo 监听失败")
		}
	}()

	nextRank := (rank + 1) % len(addrs)
	dialed, err := dial(fmt.Sprintf("ws://%s/halo", addrs[nextRank]))
	if err != nil {
		return nil, nil, err
	}

	select {
	case conn := <-accepted:
		log.WithField("rank", rank).Info("环形链路建立完成")
		return &wsLink{conn: conn}, &wsLink{conn: dialed}, nil
	case <-time.After(30 * time.Second):
		dialed.Close()
		return nil, nil, fmt.Errorf("rank %d 等待上一个邻居拨入超时", rank)
	}
}

// 邻居可能还没起来，带重试拨号
func dial(url string) (*websocket.Conn, error) {
	var lastErr error
	for i := 0; i < 30; i++ {
		conn, _, err := websocket.DefaultDialer.Dial(url, nil)
		if err == nil {
			return conn, nil
		}
		lastErr = err
		time.Sleep(time.Second)
	}
	return nil, fmt.Errorf("拨号 %s 失败: %w", url, lastErr)
}
