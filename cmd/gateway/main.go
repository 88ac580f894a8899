package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bujia-iot/iot-wits/internal/infrastructure/config"
	"github.com/bujia-iot/iot-wits/internal/infrastructure/logger"
	"github.com/bujia-iot/iot-wits/internal/infrastructure/redis"
	"github.com/bujia-iot/iot-wits/internal/ports"
	"github.com/bujia-iot/iot-wits/internal/storage"
)

var configFile = flag.String("config", "configs/gateway.yaml", "配置文件路径")

func main() {
	// 解析命令行参数
	flag.Parse()

	// 加载配置文件
	if err := config.Load(*configFile); err != nil {
		fmt.Printf("加载配置文件失败: %v\n", err)
		os.Exit(1)
	}

	// 初始化日志
	loggerConfig := config.GetConfig().Logger
	if err := logger.Init(&loggerConfig); err != nil {
		fmt.Printf("初始化日志系统失败: %v\n", err)
		os.Exit(1)
	}

	logger.Info("WITS录井数据网关启动中...")

	// 初始化Redis连接
	var store *storage.FrameStore
	if err := redis.InitClient(); err != nil {
		// Redis不可用时网关仍可解码转发，仅查询API受限
		logger.Errorf("初始化Redis连接失败: %v", err)
	} else {
		storageCfg := config.GetConfig().Storage
		store = storage.NewFrameStore(redis.GetClient(), storageCfg.HistoryLimit, storageCfg.LatestTTLSeconds)
	}

	// 启动HTTP API服务器(Gin)
	go func() {
		logger.Info("正在启动HTTP API服务器...")
		if err := ports.StartHTTPServer(store); err != nil {
			logger.Errorf("启动HTTP API服务器失败: %v", err)
		}
	}()

	// 启动Zinx TCP服务器
	go func() {
		logger.Info("正在启动TCP服务器...")
		if err := ports.StartTCPServer(store); err != nil {
			logger.Errorf("启动TCP服务器失败: %v", err)
			os.Exit(1)
		}
	}()

	logger.Info("WITS网关启动完成，等待数据源连接...")

	// 等待中断信号
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	<-c

	// 关闭Redis连接
	if err := redis.Close(); err != nil {
		logger.Errorf("关闭Redis连接失败: %v", err)
	}

	logger.Info("WITS网关已安全关闭")
}
