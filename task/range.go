package task

import (
	"context"
	"sync/atomic"

	"github.com/injoyai/bar"
	"github.com/injoyai/goutil/g"
	"github.com/injoyai/logs"
	"github.com/injoyai/tdx"
)

// Range 并发处理一批股票,单只失败不影响其他
type Range[T any] struct {
	Codes   []T        //股票代码
	Limit   int        //并发数量
	Retry   int        //重试次数
	Handler Handler[T] //处理函数
	succ    int64      //成功数量
}

// Succ 成功处理的数量
func (this *Range[T]) Succ() int64 {
	return atomic.LoadInt64(&this.succ)
}

func (this *Range[T]) Run(ctx context.Context, m *tdx.Manage) error {

	if this.Limit <= 0 {
		this.Limit = 1
	}
	if this.Retry <= 0 {
		this.Retry = 1
	}

	taskName := this.Handler.Name()
	total := len(this.Codes)

	b := bar.NewCoroutine(total, this.Limit,
		bar.WithPrefix("["+taskName+"]"),
		bar.WithFlush(),
	)
	defer b.Close()

	for _, code := range this.Codes {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		b.Go(func() {
			err := g.Retry(func() error { return this.Handler.Handler(ctx, m, code) }, this.Retry)
			if err != nil {
				b.Logf("[错误] [%v] %v\n", code, err)
				b.Flush()
				return
			}
			atomic.AddInt64(&this.succ, 1)
		})
	}

	b.Wait()

	logs.Infof("[%s] 处理完成, 成功: %d/%d\n", taskName, this.Succ(), total)
	return nil
}
