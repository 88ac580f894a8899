package ports

import (
	"fmt"

	"github.com/aceld/zinx/zconf"
	"github.com/aceld/zinx/ziface"
	"github.com/aceld/zinx/znet"

	"github.com/bujia-iot/iot-wits/internal/infrastructure/config"
	"github.com/bujia-iot/iot-wits/internal/infrastructure/logger"
	"github.com/bujia-iot/iot-wits/internal/infrastructure/zinx_server"
	"github.com/bujia-iot/iot-wits/internal/infrastructure/zinx_server/handlers"
	"github.com/bujia-iot/iot-wits/internal/storage"
	"github.com/bujia-iot/iot-wits/pkg/protocol"
)

// TCPServer 封装WITS接入TCP服务器
type TCPServer struct {
	server ziface.IServer
	cfg    *config.Config
	store  *storage.FrameStore
}

// NewTCPServer 创建新的TCP服务器实例
func NewTCPServer(store *storage.FrameStore) *TCPServer {
	return &TCPServer{
		cfg:   config.GetConfig(),
		store: store,
	}
}

// StartTCPServer 配置并启动Zinx TCP服务器
func StartTCPServer(store *storage.FrameStore) error {
	server := NewTCPServer(store)
	return server.Start()
}

// Start 启动TCP服务器
func (s *TCPServer) Start() error {
	if err := s.initialize(); err != nil {
		return err
	}

	handlers.RegisterRouters(s.server)

	s.server.SetOnConnStart(zinx_server.OnConnectionStart)
	s.server.SetOnConnStop(zinx_server.OnConnectionStop)

	logger.Infof("TCP服务器启动在 %s:%d", s.cfg.TCPServer.Host, s.cfg.TCPServer.Zinx.TCPPort)
	s.server.Serve()
	return nil
}

// initialize 初始化服务器配置
func (s *TCPServer) initialize() error {
	zinxCfg := s.cfg.TCPServer.Zinx

	// 设置Zinx服务器配置
	zconf.GlobalObject.Name = zinxCfg.Name
	zconf.GlobalObject.Host = s.cfg.TCPServer.Host
	zconf.GlobalObject.TCPPort = zinxCfg.TCPPort
	zconf.GlobalObject.Version = zinxCfg.Version
	zconf.GlobalObject.MaxConn = zinxCfg.MaxConn
	zconf.GlobalObject.MaxPacketSize = zinxCfg.MaxPacketSize
	zconf.GlobalObject.WorkerPoolSize = uint32(zinxCfg.WorkerPoolSize)
	zconf.GlobalObject.MaxWorkerTaskLen = uint32(zinxCfg.MaxWorkerTaskLen)

	s.server = znet.NewUserConfServer(zconf.GlobalObject)
	if s.server == nil {
		return fmt.Errorf("创建Zinx服务器实例失败")
	}

	// WITS流无长度字段，用透传解码器交给连接级装配器处理
	s.server.SetDecoder(zinx_server.NewWITSStreamDecoder())

	// 注入解码选项与落库出口
	zinx_server.Setup(decoderOptions(s.cfg), s.store)

	return nil
}

// decoderOptions 从配置构造解码选项
func decoderOptions(cfg *config.Config) protocol.Options {
	unitSystem, ok := protocol.ParseUnitSystem(cfg.Decoder.UnitSystem)
	if !ok && cfg.Decoder.UnitSystem != "" {
		logger.Warnf("无法识别的单位制 %q，使用FPS", cfg.Decoder.UnitSystem)
		unitSystem = protocol.UnitSystemFPS
	}
	return protocol.Options{
		StrictMode:    cfg.Decoder.StrictMode,
		UnitSystem:    unitSystem,
		MaxFrameBytes: cfg.Decoder.MaxFrameBytes,
	}
}

// Stop 停止TCP服务器
func (s *TCPServer) Stop() {
	if s.server != nil {
		s.server.Stop()
	}
}
