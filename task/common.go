package task

import (
	"math"

	"github.com/injoyai/tdx"
)

var (
	//SourceTitle akshare格式的日线表头
	SourceTitle = []any{"日期", "股票代码", "开盘", "收盘", "最高", "最低", "成交量", "成交额"}

	//QlibTitle qlib格式的日线表头
	QlibTitle = []any{"date", "open", "high", "low", "close", "volume", "amount", "vwap", "factor"}
)

// GetCodes 获取待处理的股票代码,未配置则取全部股票
func GetCodes(m *tdx.Manage, codes []string) []string {
	if len(codes) > 0 {
		return codes
	}
	return m.Codes.GetStockCodes()
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
