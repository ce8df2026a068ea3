package model

// Daily 不复权日线的一行,只保留转换需要的列
type Daily struct {
	Date   string  //日期,yyyy-MM-dd
	Code   string  //股票代码
	Close  float64 //收盘价,不复权
	Volume float64 //成交量,单位手
	Amount float64 //成交额,单位元
}

// OHLC 复权日线的价格部分
type OHLC struct {
	Open  float64 //开盘价
	Close float64 //收盘价
	High  float64 //最高价
	Low   float64 //最低价
}
