// fairrec 是可解释、类别多样的商品推荐命令行工具。
//
//	fairrec recommend                     # 交互式推荐
//	fairrec recommend --interests electronics --count 6 --yes
//	fairrec serve --addr :8080            # HTTP API
//	fairrec sentiment "great product"     # 评论情感判断
//	fairrec intake --dir ./students       # 学生信息收集 + 加密副本
//	fairrec catalog push --redis-addr localhost:6379
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
