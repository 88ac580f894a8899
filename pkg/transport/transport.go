package transport

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Reader 字节源传输层
// Stream返回的通道按到达顺序发出任意长度的文本块，块边界与帧边界无关，
// 帧装配由解码流水线负责；源结束时通道关闭
type Reader interface {
	Stream(ctx context.Context) (<-chan string, error)
	Close() error
}

// defaultChunkSize 单次读取的块大小
const defaultChunkSize = 1024

// Open 按来源URL创建传输读取器
//
//	tcp://host:port
//	serial:///dev/ttyUSB0?baud=9600
//	file:///path/to/data.wits
func Open(source string) (Reader, error) {
	u, err := url.Parse(source)
	if err != nil {
		return nil, fmt.Errorf("来源URL非法: %w", err)
	}

	switch u.Scheme {
	case "tcp":
		host := u.Hostname()
		portStr := u.Port()
		if host == "" || portStr == "" {
			return nil, fmt.Errorf("tcp来源必须包含host:port: %s", source)
		}
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("tcp端口非法: %s", portStr)
		}
		return NewTCPReader(TCPConfig{Host: host, Port: port}), nil

	case "serial":
		device := u.Path
		if device == "" {
			device = u.Opaque
		}
		if device == "" {
			return nil, fmt.Errorf("serial来源缺少设备路径: %s", source)
		}
		baud := 9600
		if s := u.Query().Get("baud"); s != "" {
			baud, err = strconv.Atoi(s)
			if err != nil {
				return nil, fmt.Errorf("波特率非法: %s", s)
			}
		}
		return NewSerialReader(SerialConfig{Device: device, BaudRate: baud}), nil

	case "file":
		path := u.Path
		if path == "" {
			path = u.Opaque
		}
		if u.Host != "" {
			// file://relative/path 形式，host段其实是路径首段
			path = u.Host + path
		}
		if path == "" {
			return nil, fmt.Errorf("file来源缺少文件路径: %s", source)
		}
		return NewFileReader(path), nil
	}

	return nil, fmt.Errorf("不支持的来源类型: %s (支持 tcp:// serial:// file://)", u.Scheme)
}

// SchemeOf 返回来源URL的传输类型，非URL形式返回空串
func SchemeOf(source string) string {
	if i := strings.Index(source, "://"); i > 0 {
		return source[:i]
	}
	return ""
}
