package ports

import (
	"github.com/gin-gonic/gin"

	"github.com/bujia-iot/iot-wits/internal/adapter/http"
	"github.com/bujia-iot/iot-wits/internal/infrastructure/config"
	"github.com/bujia-iot/iot-wits/internal/infrastructure/logger"
	"github.com/bujia-iot/iot-wits/internal/storage"
)

// StartHTTPServer 启动HTTP API服务器
func StartHTTPServer(store *storage.FrameStore) error {
	// 设置Gin模式
	gin.SetMode(gin.ReleaseMode)

	// 创建Gin引擎
	r := gin.Default()

	// 注册API路由
	http.RegisterHandlers(r, store)

	// 启动HTTP服务器
	addr := config.FormatHTTPAddress()
	logger.Infof("HTTP API服务器启动在 %s", addr)
	return r.Run(addr)
}
