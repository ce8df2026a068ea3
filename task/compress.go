package task

import (
	"context"
	"github.com/injoyai/goutil/oss/compress/zip"
	"github.com/injoyai/tdx"
	"os"
	"path/filepath"
)

func NewCompress(source, target string) *Compress {
	return &Compress{
		Source: source,
		Target: target,
	}
}

type Compress struct {
	Source string //待压缩的目录
	Target string //压缩包文件名
}

func (this *Compress) Name() string {
	return "压缩qlib数据"
}

func (this *Compress) Run(ctx context.Context, m *tdx.Manage) error {
	os.MkdirAll(filepath.Dir(this.Target), 0777)
	return zip.Encode(this.Source, this.Target)
}
