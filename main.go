package main

import (
	"context"
	"conv-to-qlib/task"
	"fmt"
	"github.com/injoyai/conv/cfg"
	"github.com/injoyai/logs"
	"github.com/injoyai/tdx"
	"github.com/robfig/cron/v3"
	"log"
	"path/filepath"
	"runtime"
	"time"
)

const (
	Version = "v0.1"
	Details = "拉取日线并转成qlib格式"
)

var (
	dirBase    = cfg.GetString("dir.base", "./data")
	dirDaily   = filepath.Join(dirBase, cfg.GetString("dir.daily", "daily"))
	dirHfq     = filepath.Join(dirBase, cfg.GetString("dir.hfq", "daily_hfq"))
	dirQfq     = filepath.Join(dirBase, cfg.GetString("dir.qfq", "daily_qfq"))
	dirQlib    = filepath.Join(dirBase, cfg.GetString("dir.qlib", "qlib"))
	dirUpload  = filepath.Join(dirBase, cfg.GetString("dir.upload", "upload"))
	clients    = cfg.GetInt("clients", 4)
	coroutines = cfg.GetInt("coroutines", 10)
	retry      = cfg.GetInt("retry", tdx.DefaultRetry)
	codes      = cfg.GetStrings("codes")
	pull       = cfg.GetBool("pull", true)
	spec       = cfg.GetString("spec", "0 10 15 * * *")
	startup    = cfg.GetBool("startup")
	sendKey    = cfg.GetString("notice.serverChan.sendKey")
)

func init() {
	logs.DefaultFormatter.SetFlag(log.Ltime | log.Lshortfile)
	logs.SetFormatter(logs.TimeFormatter)
	logs.SetShowColor(runtime.GOOS != "windows")

	logs.Info("版本:", Version)
	logs.Info("日期:", time.Now().Format(time.DateOnly))
	logs.Info("说明:", Details)
	logs.Debug("任务规则:", spec)
	logs.Debug("启动立马执行:", startup)
	logs.Debug("连接客户端数量:", clients)
	logs.Debug("转换协程数量:", coroutines)
	logs.Debug("配置的股票代码:", codes)
	fmt.Println("================================================================")
}

func main() {

	//1. 连接服务器
	m, err := tdx.NewManage(tdx.WithClients(clients))
	logs.PanicErr(err)

	//2. 任务内容,可配置跳过拉取,只做转换
	ls := []task.Tasker(nil)
	if pull {
		ls = append(ls, task.NewPullDaily(codes, dirDaily, dirHfq, dirQfq, retry))
	}
	ls = append(ls,
		task.NewConvert(dirDaily, dirHfq, dirQfq, dirQlib, coroutines),
		task.NewInstruments(dirQlib),
		task.NewCompress(dirQlib, filepath.Join(dirUpload, "qlib.zip")),
		task.NewNoticeServerChan(sendKey, "qlib数据同步完成"),
	)
	tasks := []task.Tasker{task.Group("qlib数据", ls...)}

	f := func() {
		if !m.Workday.TodayIs() && !startup {
			logs.Err("今天不是工作日")
			return
		}
		fmt.Println("================================================================")
		logs.Info("开始执行...")
		err := task.Run(context.Background(), m, tasks...)
		logs.PrintErr(err)
		logs.Info("执行完成")
	}

	//3. 设置定时
	cr := cron.New(cron.WithSeconds())
	cr.AddFunc(spec, f)

	//4. 启动便执行
	if startup {
		f()
	}

	cr.Run()
}
