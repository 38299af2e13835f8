package model

// 前后端以及分区之间通信的消息结构

type Msg struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

// halo 行填充的目标位置
// SideLead: 接收方的前导 halo 行（来自上一个分区的最后一行）
// SideTrail: 接收方的末尾 halo 行（来自下一个分区的第一行）
const (
	SideLead  = 0
	SideTrail = 1
)

// 分区之间每个时间步交换的边界行
type HaloFrame struct {
	Step int       `json:"step"`
	Rank int       `json:"rank"`
	Side int       `json:"side"`
	Row  []float64 `json:"row"`
}

// 推送给前端的场快照，按 Stride 下采样
type Frame struct {
	Step   int         `json:"step"`
	T      float64     `json:"t"`
	N      int         `json:"n"`
	Stride int         `json:"stride"`
	Rows   [][]float64 `json:"rows"`
}
