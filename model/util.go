package model

import (
	"fmt"
	"strings"
	"time"
)

const (
	ExchangeSH = "SH" //上海证券交易所
	ExchangeSZ = "SZ" //深圳证券交易所
)

// Exchange 根据代码首位判断交易所,6开头是上海,其他是深圳
func Exchange(code string) string {
	if strings.HasPrefix(code, "6") {
		return ExchangeSH
	}
	return ExchangeSZ
}

// 数据源的日期格式不统一,例如20240102,2024/1/2
var dateLayouts = []string{
	time.DateOnly,
	"20060102",
	"2006-1-2",
	"2006/1/2",
	time.DateTime,
}

// NormDate 统一日期成yyyy-MM-dd,qlib要求,合并也按这个格式对齐
func NormDate(s string) (string, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(time.DateOnly), nil
		}
	}
	return "", fmt.Errorf("无法解析日期: %s", s)
}

// Vwap 成交均价=成交额/成交量(股)
// 停牌日成交量是0,返回false表示无效,不能算出无穷
func Vwap(amount, volume float64) (float64, bool) {
	if volume > 0 {
		return amount / volume, true
	}
	return 0, false
}

// Factor 复权因子=后复权收盘价/不复权收盘价
func Factor(hfqClose, closeNoAdj float64) (float64, bool) {
	if closeNoAdj == 0 {
		return 0, false
	}
	return hfqClose / closeNoAdj, true
}
