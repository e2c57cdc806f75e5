package snowflake

import "github.com/bwmarrin/snowflake"

var node *snowflake.Node

func init() {
	// 缩短时间戳位，生成的 ID 控制在 2^53 以内，前端 JSON 解析不丢精度
	snowflake.NodeBits = 4
	snowflake.StepBits = 8
	snowflake.Epoch = 1735660800000 // 2025-01-01
	node, _ = snowflake.NewNode(1)
}

func GenID() uint64 {
	return uint64(node.Generate().Int64())
}
