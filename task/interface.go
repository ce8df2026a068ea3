package task

import (
	"context"
	"github.com/injoyai/tdx"
)

// Tasker 一个同步步骤,例如拉取/转换/压缩
type Tasker interface {
	Name() string
	Run(ctx context.Context, m *tdx.Manage) error
}

// Handler 处理单个股票,由Range调度
type Handler[T any] interface {
	Name() string
	Handler(ctx context.Context, m *tdx.Manage, code T) error
}
