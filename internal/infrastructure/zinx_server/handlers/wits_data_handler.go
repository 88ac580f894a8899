package handlers

import (
	"context"

	"github.com/aceld/zinx/ziface"
	"github.com/aceld/zinx/znet"
	"github.com/sirupsen/logrus"

	"github.com/bujia-iot/iot-wits/internal/infrastructure/logger"
	"github.com/bujia-iot/iot-wits/internal/infrastructure/zinx_server"
)

// WITSDataHandler WITS数据流处理器
// 把原始数据块送入连接级流会话，完成帧装配、解码与落库
type WITSDataHandler struct {
	znet.BaseRouter
}

// NewWITSDataHandler 创建WITS数据流处理器
func NewWITSDataHandler() ziface.IRouter {
	return &WITSDataHandler{}
}

// Handle 主处理逻辑 - 处理连接上的所有原始数据块
func (h *WITSDataHandler) Handle(request ziface.IRequest) {
	conn := request.GetConnection()
	data := request.GetData()
	if len(data) == 0 {
		return
	}

	session, ok := zinx_server.SessionFromConnection(conn)
	if !ok {
		logger.WithFields(logrus.Fields{
			"connID":     conn.GetConnID(),
			"remoteAddr": conn.RemoteAddr().String(),
		}).Error("连接缺少流会话，丢弃数据块")
		return
	}

	frames := session.HandleChunk(context.Background(), string(data))
	for _, frame := range frames {
		logger.WithFields(logrus.Fields{
			"connID":  conn.GetConnID(),
			"frameId": frame.FrameID,
			"points":  len(frame.DataPoints),
		}).Debug("解码完成一帧")
	}
}

// RegisterRouters 注册路由
func RegisterRouters(server ziface.IServer) {
	server.AddRouter(zinx_server.MsgIDWITSData, NewWITSDataHandler())
}
