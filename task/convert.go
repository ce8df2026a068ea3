package task

import (
	"bytes"
	"context"
	"conv-to-qlib/model"
	"errors"
	"fmt"
	"github.com/injoyai/goutil/oss"
	"github.com/injoyai/goutil/other/csv"
	"github.com/injoyai/tdx"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

func NewConvert(noAdjDir, hfqDir, qfqDir, outputDir string, limit int) *Convert {
	return &Convert{
		NoAdjDir:  noAdjDir,
		HfqDir:    hfqDir,
		QfqDir:    qfqDir,
		OutputDir: outputDir,
		Limit:     limit,
	}
}

type Convert struct {
	NoAdjDir  string //不复权数据目录
	HfqDir    string //后复权数据目录
	QfqDir    string //前复权数据目录
	OutputDir string //qlib数据输出目录
	Limit     int    //并发数量
}

func (this *Convert) Name() string {
	return "转换qlib"
}

func (this *Convert) Run(ctx context.Context, m *tdx.Manage) error {
	codes, err := this.scan()
	if err != nil {
		return err
	}
	t := &Range[string]{
		Codes:   codes,
		Limit:   this.Limit,
		Retry:   1, //转换不重试,失败跳过该股票
		Handler: this,
	}
	return t.Run(ctx, m)
}

// scan 扫描不复权目录,文件名例如600001_daily.csv
func (this *Convert) scan() ([]string, error) {
	es, err := os.ReadDir(this.NoAdjDir)
	if err != nil {
		return nil, err
	}
	codes := []string(nil)
	for _, v := range es {
		if v.IsDir() || !strings.HasSuffix(v.Name(), "_daily.csv") {
			continue
		}
		codes = append(codes, strings.Split(v.Name(), "_")[0])
	}
	return codes, nil
}

func (this *Convert) Handler(ctx context.Context, m *tdx.Manage, code string) error {

	//1. 读取三份数据,前复权只校验,保证数据齐全
	noAdj, err := readDaily(filepath.Join(this.NoAdjDir, code+"_daily.csv"))
	if err != nil {
		return fmt.Errorf("不复权: %v", err)
	}
	hfq, err := readPrices(filepath.Join(this.HfqDir, code+"_daily_hfq.csv"))
	if err != nil {
		return fmt.Errorf("后复权: %v", err)
	}
	if _, err := readPrices(filepath.Join(this.QfqDir, code+"_daily_qfq.csv")); err != nil {
		return fmt.Errorf("前复权: %v", err)
	}

	//2. 按日期合并,以不复权为准,对不上的留空
	data := [][]any{QlibTitle}
	for _, v := range noAdj {
		volume := v.Volume * 100 //手转股
		row := []any{v.Date, "", "", "", "", int64(volume), v.Amount, "", ""}
		if p, ok := hfq[v.Date]; ok {
			row[1] = p.Open
			row[2] = p.High
			row[3] = p.Low
			row[4] = p.Close
			if f, ok := model.Factor(p.Close, v.Close); ok {
				row[8] = f
			}
		}
		if w, ok := model.Vwap(v.Amount, volume); ok {
			row[7] = w
		}
		data = append(data, row)
	}

	//3. 文件名带交易所前缀,例如SH600001.csv
	buf, err := csv.Export(data)
	if err != nil {
		return err
	}
	//去掉Export自带的BOM头,输出表头从date开始
	if bytes.HasPrefix(buf.Bytes(), []byte(bom)) {
		buf.Next(len(bom))
	}
	filename := filepath.Join(this.OutputDir, model.Exchange(code)+code+".csv")
	return oss.New(filename, buf)
}

const (
	colDate   = "日期"
	colCode   = "股票代码"
	colOpen   = "开盘"
	colClose  = "收盘"
	colHigh   = "最高"
	colLow    = "最低"
	colVolume = "成交量"
	colAmount = "成交额"
)

const bom = "\uFEFF" //utf8的BOM头

// index 解析表头,兼容BOM和多余的空格
func index(line []string) map[string]int {
	m := make(map[string]int, len(line))
	for i, v := range line {
		if i == 0 {
			v = strings.TrimPrefix(v, bom)
		}
		m[strings.TrimSpace(v)] = i
	}
	return m
}

func checkCols(cols map[string]int, names ...string) error {
	for _, name := range names {
		if _, ok := cols[name]; !ok {
			return fmt.Errorf("缺少列[%s]", name)
		}
	}
	return nil
}

func field(cols map[string]int, line []string, name string) (string, error) {
	i, ok := cols[name]
	if !ok || i >= len(line) {
		return "", fmt.Errorf("缺少列[%s]", name)
	}
	return strings.TrimSpace(line[i]), nil
}

func parseFloat(cols map[string]int, line []string, name string) (float64, error) {
	s, err := field(cols, line, name)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("解析列[%s]: %v", name, err)
	}
	return f, nil
}

// readDaily 读取不复权日线,保留文件里的顺序
func readDaily(filename string) ([]*model.Daily, error) {
	ls := []*model.Daily(nil)
	cols := map[string]int(nil)
	var cause error
	err := csv.ImportRange(filename, func(i int, line []string) bool {
		if i == 0 {
			cols = index(line)
			cause = checkCols(cols, colDate, colCode, colClose, colVolume, colAmount)
			return cause == nil
		}
		if len(line) == 0 {
			return true
		}
		v, err := parseDaily(cols, line)
		if err != nil {
			cause = err
			return false
		}
		ls = append(ls, v)
		return true
	})
	if cause != nil {
		return nil, cause
	}
	if err != nil {
		return nil, err
	}
	if cols == nil {
		return nil, errors.New("文件为空")
	}
	return ls, nil
}

func parseDaily(cols map[string]int, line []string) (*model.Daily, error) {
	date, err := field(cols, line, colDate)
	if err != nil {
		return nil, err
	}
	v := &model.Daily{}
	if v.Date, err = model.NormDate(date); err != nil {
		return nil, err
	}
	if v.Code, err = field(cols, line, colCode); err != nil {
		return nil, err
	}
	if v.Close, err = parseFloat(cols, line, colClose); err != nil {
		return nil, err
	}
	if v.Volume, err = parseFloat(cols, line, colVolume); err != nil {
		return nil, err
	}
	if v.Amount, err = parseFloat(cols, line, colAmount); err != nil {
		return nil, err
	}
	return v, nil
}

// readPrices 读取复权日线的价格,按日期索引
func readPrices(filename string) (map[string]model.OHLC, error) {
	m := map[string]model.OHLC{}
	cols := map[string]int(nil)
	var cause error
	err := csv.ImportRange(filename, func(i int, line []string) bool {
		if i == 0 {
			cols = index(line)
			cause = checkCols(cols, colDate, colOpen, colClose, colHigh, colLow)
			return cause == nil
		}
		if len(line) == 0 {
			return true
		}
		date, p, err := parsePrices(cols, line)
		if err != nil {
			cause = err
			return false
		}
		m[date] = p
		return true
	})
	if cause != nil {
		return nil, cause
	}
	if err != nil {
		return nil, err
	}
	if cols == nil {
		return nil, errors.New("文件为空")
	}
	return m, nil
}

func parsePrices(cols map[string]int, line []string) (string, model.OHLC, error) {
	p := model.OHLC{}
	date, err := field(cols, line, colDate)
	if err != nil {
		return "", p, err
	}
	if date, err = model.NormDate(date); err != nil {
		return "", p, err
	}
	if p.Open, err = parseFloat(cols, line, colOpen); err != nil {
		return "", p, err
	}
	if p.Close, err = parseFloat(cols, line, colClose); err != nil {
		return "", p, err
	}
	if p.High, err = parseFloat(cols, line, colHigh); err != nil {
		return "", p, err
	}
	if p.Low, err = parseFloat(cols, line, colLow); err != nil {
		return "", p, err
	}
	return date, p, nil
}
