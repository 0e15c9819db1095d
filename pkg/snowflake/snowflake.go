package snowflake

import "github.com/bwmarrin/snowflake"

var node *snowflake.Node

func init() {
	node, _ = snowflake.NewNode(1)
}

// GenPromptID 生成提示词ID
func GenPromptID() int64 {
	return node.Generate().Int64()
}
