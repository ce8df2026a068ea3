package task

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/injoyai/goutil/oss"
	"github.com/injoyai/logs"
	"github.com/injoyai/tdx"
)

// InstrumentsFilename qlib要求的标的列表文件名
const InstrumentsFilename = "instruments.txt"

func NewInstruments(dir string) *Instruments {
	return &Instruments{Dir: dir}
}

type Instruments struct {
	Dir string //qlib数据目录
}

func (this *Instruments) Name() string {
	return "生成标的列表"
}

// Run 列出目录下的全部csv,每行一个文件名(去后缀),例如SH600001
func (this *Instruments) Run(ctx context.Context, m *tdx.Manage) error {
	es, err := os.ReadDir(this.Dir)
	if err != nil {
		return err
	}
	buf := bytes.NewBuffer(nil)
	total := 0
	for _, v := range es {
		if v.IsDir() || !strings.HasSuffix(v.Name(), ".csv") {
			continue
		}
		buf.WriteString(strings.Split(v.Name(), ".")[0] + "\n")
		total++
	}
	if err := oss.New(filepath.Join(this.Dir, InstrumentsFilename), buf); err != nil {
		return err
	}
	logs.Infof("[%s] 共%d只\n", this.Name(), total)
	return nil
}
