package transport

import (
	"context"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/bujia-iot/iot-wits/internal/infrastructure/logger"
)

// 默认握手报文：WITS Level 0空帧变体，部分录井服务端要求客户端
// 周期性发送以维持/触发数据推送
var defaultHandshakePacket = []byte("&&\r\n0111-9999\r\n!!\r\n")

// TCPConfig TCP读取器配置
type TCPConfig struct {
	Host        string
	Port        int
	DialTimeout time.Duration // 默认10秒

	// 握手：周期性向服务端发送握手报文(默认30秒)
	// 服务端可能把报文原样回显，回显块会被从数据流中滤除
	SendHandshake     bool
	HandshakePacket   []byte        // 为空时取defaultHandshakePacket
	HandshakeInterval time.Duration // 默认30秒

	// 请求模式：连接建立后先发送一次请求报文再等待数据
	// (请求/应答式WITS服务端需要)
	SendRequest bool
	RequestData []byte // 为空时取 "&&\r\n"
}

// TCPReader 从TCP服务端拉取WITS数据流
type TCPReader struct {
	cfg       TCPConfig
	conn      net.Conn
	mu        sync.Mutex
	closeOnce sync.Once
}

// NewTCPReader 创建TCP读取器
func NewTCPReader(cfg TCPConfig) *TCPReader {
	if cfg.DialTimeout <= 0 {
		cfg.DialTimeout = 10 * time.Second
	}
	if len(cfg.HandshakePacket) == 0 {
		cfg.HandshakePacket = defaultHandshakePacket
	}
	if cfg.HandshakeInterval <= 0 {
		cfg.HandshakeInterval = 30 * time.Second
	}
	if len(cfg.RequestData) == 0 {
		cfg.RequestData = []byte("&&\r\n")
	}
	return &TCPReader{cfg: cfg}
}

// Stream 建立连接并开始发出文本块
func (r *TCPReader) Stream(ctx context.Context) (<-chan string, error) {
	addr := net.JoinHostPort(r.cfg.Host, fmt.Sprintf("%d", r.cfg.Port))
	conn, err := net.DialTimeout("tcp", addr, r.cfg.DialTimeout)
	if err != nil {
		return nil, fmt.Errorf("TCP连接失败 %s: %w", addr, err)
	}

	r.mu.Lock()
	r.conn = conn
	r.mu.Unlock()

	if r.cfg.SendRequest {
		if _, err := conn.Write(r.cfg.RequestData); err != nil {
			conn.Close()
			return nil, fmt.Errorf("发送请求报文失败: %w", err)
		}
	}

	out := make(chan string)

	// ctx取消时关闭连接，使阻塞中的Read立即返回
	go func() {
		<-ctx.Done()
		r.Close()
	}()

	if r.cfg.SendHandshake {
		go r.handshakeLoop(ctx, conn)
	}

	go func() {
		defer close(out)
		buf := make([]byte, defaultChunkSize)
		for {
			n, err := conn.Read(buf)
			if n > 0 {
				chunk := string(buf[:n])
				// 服务端回显的握手报文不属于数据流
				if r.cfg.SendHandshake && chunk == string(r.cfg.HandshakePacket) {
					continue
				}
				select {
				case out <- chunk:
				case <-ctx.Done():
					return
				}
			}
			if err != nil {
				if ctx.Err() == nil {
					logger.WithFields(logrus.Fields{
						"addr": addr,
						"err":  err.Error(),
					}).Debug("TCP读取结束")
				}
				return
			}
		}
	}()

	return out, nil
}

// handshakeLoop 周期性发送握手报文直到连接结束
func (r *TCPReader) handshakeLoop(ctx context.Context, conn net.Conn) {
	ticker := time.NewTicker(r.cfg.HandshakeInterval)
	defer ticker.Stop()

	// 连接建立后立即发送首个握手
	if _, err := conn.Write(r.cfg.HandshakePacket); err != nil {
		return
	}
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := conn.Write(r.cfg.HandshakePacket); err != nil {
				return
			}
		}
	}
}

// Close 关闭连接，阻塞中的读取随之返回
func (r *TCPReader) Close() error {
	var err error
	r.closeOnce.Do(func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		if r.conn != nil {
			err = r.conn.Close()
		}
	})
	return err
}
