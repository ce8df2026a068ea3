package task

import (
	"context"
	"github.com/injoyai/notice/pkg/push"
	"github.com/injoyai/notice/pkg/push/serverchan"
	"github.com/injoyai/tdx"
)

func NewNoticeServerChan(sendKey, message string) *NoticeServerChan {
	return &NoticeServerChan{
		SendKey: sendKey,
		Message: message,
	}
}

// NoticeServerChan 同步完成后推送到Server酱,没配置sendKey则跳过
type NoticeServerChan struct {
	SendKey string
	Message string
}

func (this *NoticeServerChan) Name() string {
	return "通知到Server酱"
}

func (this *NoticeServerChan) Run(ctx context.Context, m *tdx.Manage) error {
	if len(this.SendKey) == 0 {
		return nil
	}
	return serverchan.New(this.SendKey).Push(&push.Message{
		Title:   "conv-to-qlib",
		Content: this.Message,
	})
}
