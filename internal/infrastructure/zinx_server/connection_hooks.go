package zinx_server

import (
	"fmt"

	"github.com/aceld/zinx/ziface"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/bujia-iot/iot-wits/internal/infrastructure/logger"
	"github.com/bujia-iot/iot-wits/pkg/protocol"
)

const (
	// 连接属性键
	PropKeyStreamID   = "StreamID"
	PropKeyRemoteAddr = "RemoteAddr"
	PropKeySession    = "StreamSession"
)

// 会话装配参数，由Setup在服务器启动前注入
var (
	sessionOpts protocol.Options
	sessionSink FrameSink
)

// Setup 注入解码参数与落库出口，必须在服务器启动前调用
func Setup(opts protocol.Options, sink FrameSink) {
	sessionOpts = opts
	sessionSink = sink
}

// OnConnectionStart 当连接建立时的钩子函数
// 为连接分配流ID并创建连接级解码会话
func OnConnectionStart(conn ziface.IConnection) {
	remoteAddr := conn.RemoteAddr().String()
	streamID := uuid.NewString()
	source := fmt.Sprintf("tcp://%s", remoteAddr)

	conn.SetProperty(PropKeyStreamID, streamID)
	conn.SetProperty(PropKeyRemoteAddr, remoteAddr)
	conn.SetProperty(PropKeySession, NewStreamSession(source, sessionOpts, sessionSink))

	logger.WithFields(logrus.Fields{
		"remoteAddr": remoteAddr,
		"connID":     conn.GetConnID(),
		"streamID":   streamID,
	}).Info("新WITS连接已建立")
}

// OnConnectionStop 当连接断开时的钩子函数
func OnConnectionStop(conn ziface.IConnection) {
	remoteAddr := conn.RemoteAddr().String()

	fields := logrus.Fields{
		"remoteAddr": remoteAddr,
		"connID":     conn.GetConnID(),
	}
	if val, err := conn.GetProperty(PropKeySession); err == nil && val != nil {
		if session, ok := val.(*StreamSession); ok {
			fields["frames"] = session.FrameCount
			fields["errors"] = session.ErrorCount
		}
	}

	logger.WithFields(fields).Info("WITS连接已断开")
}

// SessionFromConnection 取出连接上的流会话
func SessionFromConnection(conn ziface.IConnection) (*StreamSession, bool) {
	val, err := conn.GetProperty(PropKeySession)
	if err != nil || val == nil {
		return nil, false
	}
	session, ok := val.(*StreamSession)
	return session, ok
}
