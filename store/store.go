// Package store 提供 core.Store 的实现。
//
// 注意：此包只包含实现，接口定义在 core 包。
//
//	var s core.Store = store.NewMemoryStore()
//	var r core.Store, _ = store.NewRedisStore("localhost:6379", 0)
package store
