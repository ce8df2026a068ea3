package task

import (
	"context"
	"path/filepath"
	"time"

	"github.com/injoyai/goutil/oss"
	"github.com/injoyai/goutil/other/csv"
	"github.com/injoyai/tdx"
	"github.com/injoyai/tdx/extend"
	"github.com/injoyai/tdx/protocol"
)

func NewPullDaily(codes []string, dailyDir, hfqDir, qfqDir string, retry int) *PullDaily {
	return &PullDaily{
		DailyDir: dailyDir,
		HfqDir:   hfqDir,
		QfqDir:   qfqDir,
		Codes:    codes,
		Retry:    retry,
	}
}

type PullDaily struct {
	DailyDir string   //不复权目录
	HfqDir   string   //后复权目录
	QfqDir   string   //前复权目录
	Codes    []string //指定的代码
	Retry    int      //重试次数
}

func (this *PullDaily) Name() string {
	return "拉取日线"
}

func (this *PullDaily) Run(ctx context.Context, m *tdx.Manage) error {
	t := &Range[string]{
		Codes:   GetCodes(m, this.Codes),
		Limit:   1, //同花顺接口有频率限制,单协程拉取
		Retry:   this.Retry,
		Handler: this,
	}
	return t.Run(ctx, m)
}

func (this *PullDaily) Handler(ctx context.Context, m *tdx.Manage, code string) error {
	return m.Do(func(c *tdx.Client) error {
		return this.pull(c, code)
	})
}

const (
	qfqIndex = iota //前复权因子下标
	hfqIndex        //后复权因子下标
)

func (this *PullDaily) pull(c *tdx.Client, code string) error {

	//1. 拉取全部日线
	resp, err := c.GetKlineDayAll(code)
	if err != nil {
		return err
	}

	//2. 拉取前后复权因子
	_, fs, err := extend.GetTHSDayKlineFactorFull(code, c)
	if err != nil {
		return err
	}
	mf := make(map[string][2]float64, len(fs))
	for _, v := range fs {
		date := time.Unix(v.Date, 0).Format(time.DateOnly)
		mf[date] = [2]float64{v.QFactor, v.HFactor}
	}

	//3. 保存不复权/后复权/前复权三份数据
	if err := this.save(filepath.Join(this.DailyDir, code+"_daily.csv"), code, resp.List, nil, 0); err != nil {
		return err
	}
	if err := this.save(filepath.Join(this.HfqDir, code+"_daily_hfq.csv"), code, resp.List, mf, hfqIndex); err != nil {
		return err
	}
	return this.save(filepath.Join(this.QfqDir, code+"_daily_qfq.csv"), code, resp.List, mf, qfqIndex)
}

// save 复权价格=不复权价格*复权因子,停牌日没有因子,沿用上一个
func (this *PullDaily) save(filename, code string, ls []*protocol.Kline, mf map[string][2]float64, i int) error {
	data := [][]any{SourceTitle}
	factor := 1.0
	for _, v := range ls {
		date := v.Time.Format(time.DateOnly)
		if x, ok := mf[date]; ok {
			factor = x[i]
		}
		data = append(data, []any{
			date,
			code,
			round2(v.Open.Float64() * factor),
			round2(v.Close.Float64() * factor),
			round2(v.High.Float64() * factor),
			round2(v.Low.Float64() * factor),
			v.Volume,
			v.Amount.Float64(),
		})
	}
	buf, err := csv.Export(data)
	if err != nil {
		return err
	}
	return oss.New(filename, buf)
}
