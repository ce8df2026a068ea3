package task

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/injoyai/tdx/protocol"
)

func TestPullDailySave(t *testing.T) {
	dir := t.TempDir()
	p := NewPullDaily(nil,
		filepath.Join(dir, "daily"),
		filepath.Join(dir, "daily_hfq"),
		filepath.Join(dir, "daily_qfq"),
		1,
	)

	ls := []*protocol.Kline{
		{
			Time:   time.Date(2024, 1, 2, 15, 0, 0, 0, time.Local),
			Open:   10100,
			Close:  10500,
			High:   10600,
			Low:    10000,
			Volume: 100,
			Amount: 105000000,
		},
		{
			Time:   time.Date(2024, 1, 3, 15, 0, 0, 0, time.Local),
			Open:   10500,
			Close:  10400,
			High:   10600,
			Low:    10300,
			Volume: 200,
			Amount: 210000000,
		},
	}
	//2024-01-03没有因子,沿用前一天的
	mf := map[string][2]float64{
		"2024-01-02": {0.5, 2},
	}

	//后复权,价格*2
	filename := filepath.Join(p.HfqDir, "600001_daily_hfq.csv")
	if err := p.save(filename, "600001", ls, mf, hfqIndex); err != nil {
		t.Fatal(err)
	}
	lines := readCsv(t, filename)
	if len(lines) != 3 {
		t.Fatalf("行数 = %d, 期望 3", len(lines))
	}
	for i, want := range []string{"日期", "股票代码", "开盘", "收盘", "最高", "最低", "成交量", "成交额"} {
		if lines[0][i] != want {
			t.Fatalf("表头[%d] = %s, 期望 %s", i, lines[0][i], want)
		}
	}
	if lines[1][0] != "2024-01-02" || lines[1][1] != "600001" {
		t.Errorf("第一行 = %v", lines[1])
	}
	for i, want := range map[int]float64{2: 20.2, 3: 21, 4: 21.2, 5: 20, 6: 100, 7: 105000} {
		if got := cell(t, lines[1], i); !feq(got, want) {
			t.Errorf("第一行[%d] = %v, 期望 %v", i, got, want)
		}
	}
	if got := cell(t, lines[2], 3); !feq(got, 20.8) {
		t.Errorf("沿用因子的收盘 = %v, 期望 20.8", got)
	}

	//前复权,价格*0.5
	filename = filepath.Join(p.QfqDir, "600001_daily_qfq.csv")
	if err := p.save(filename, "600001", ls, mf, qfqIndex); err != nil {
		t.Fatal(err)
	}
	lines = readCsv(t, filename)
	if got := cell(t, lines[1], 3); !feq(got, 5.25) {
		t.Errorf("前复权收盘 = %v, 期望 5.25", got)
	}

	//不复权,原始价格
	filename = filepath.Join(p.DailyDir, "600001_daily.csv")
	if err := p.save(filename, "600001", ls, nil, 0); err != nil {
		t.Fatal(err)
	}
	lines = readCsv(t, filename)
	if got := cell(t, lines[1], 3); !feq(got, 10.5) {
		t.Errorf("不复权收盘 = %v, 期望 10.5", got)
	}
}
