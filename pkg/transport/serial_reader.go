package transport

import (
	"context"
	"fmt"
	"os"
	"sync"
	"syscall"

	"golang.org/x/sys/unix"
)

// SerialConfig 串口读取器配置
type SerialConfig struct {
	Device   string // 设备路径，如 /dev/ttyUSB0
	BaudRate int    // 默认9600
}

// SerialReader Linux串口WITS数据源
// 端口配置为raw模式(8N1、无回显、无软流控)，按块读取
type SerialReader struct {
	cfg       SerialConfig
	file      *os.File
	mu        sync.Mutex
	closeOnce sync.Once
}

// NewSerialReader 创建串口读取器
func NewSerialReader(cfg SerialConfig) *SerialReader {
	if cfg.BaudRate <= 0 {
		cfg.BaudRate = 9600
	}
	return &SerialReader{cfg: cfg}
}

// Stream 打开并配置串口，开始发出文本块
func (r *SerialReader) Stream(ctx context.Context) (<-chan string, error) {
	fd, err := syscall.Open(r.cfg.Device, syscall.O_RDWR|syscall.O_NOCTTY|syscall.O_NONBLOCK, 0o666)
	if err != nil {
		return nil, fmt.Errorf("打开串口失败 %s: %w", r.cfg.Device, err)
	}

	if err := configureRaw(fd, r.cfg.BaudRate); err != nil {
		syscall.Close(fd)
		return nil, fmt.Errorf("配置串口失败 %s: %w", r.cfg.Device, err)
	}

	// 配置完成后恢复阻塞读取
	if err := syscall.SetNonblock(fd, false); err != nil {
		syscall.Close(fd)
		return nil, fmt.Errorf("串口设为阻塞模式失败: %w", err)
	}

	file := os.NewFile(uintptr(fd), r.cfg.Device)
	r.mu.Lock()
	r.file = file
	r.mu.Unlock()

	// ctx取消时关闭fd，使阻塞中的Read返回
	go func() {
		<-ctx.Done()
		r.Close()
	}()

	out := make(chan string)
	go func() {
		defer close(out)
		buf := make([]byte, defaultChunkSize)
		for {
			n, err := file.Read(buf)
			if n > 0 {
				select {
				case out <- string(buf[:n]):
				case <-ctx.Done():
					return
				}
			}
			if err != nil {
				return
			}
		}
	}()
	return out, nil
}

// Close 关闭串口
func (r *SerialReader) Close() error {
	var err error
	r.closeOnce.Do(func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		if r.file != nil {
			err = r.file.Close()
		}
	})
	return err
}

// configureRaw 将端口设为raw模式并设置波特率
func configureRaw(fd, baudRate int) error {
	termios, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	if err != nil {
		return fmt.Errorf("读取termios失败: %w", err)
	}

	// raw模式：关闭回显、规范行处理、软流控与输出加工
	termios.Iflag &^= unix.IGNBRK | unix.BRKINT | unix.PARMRK | unix.ISTRIP |
		unix.INLCR | unix.IGNCR | unix.ICRNL | unix.IXON
	termios.Oflag &^= unix.OPOST
	termios.Lflag &^= unix.ECHO | unix.ECHONL | unix.ICANON | unix.ISIG | unix.IEXTEN
	termios.Cflag &^= unix.CSIZE | unix.PARENB
	termios.Cflag |= unix.CS8

	baud, err := baudToUnix(baudRate)
	if err != nil {
		return err
	}
	termios.Cflag &^= unix.CBAUD
	termios.Cflag |= baud

	// VMIN=1/VTIME=0：有一个字节即返回，装配交给流水线
	termios.Cc[unix.VMIN] = 1
	termios.Cc[unix.VTIME] = 0

	if err := unix.IoctlSetTermios(fd, unix.TCSETS, termios); err != nil {
		return fmt.Errorf("写入termios失败: %w", err)
	}
	return nil
}

// baudToUnix 波特率到termios常量的映射
func baudToUnix(baud int) (uint32, error) {
	switch baud {
	case 1200:
		return unix.B1200, nil
	case 2400:
		return unix.B2400, nil
	case 4800:
		return unix.B4800, nil
	case 9600:
		return unix.B9600, nil
	case 19200:
		return unix.B19200, nil
	case 38400:
		return unix.B38400, nil
	case 57600:
		return unix.B57600, nil
	case 115200:
		return unix.B115200, nil
	case 230400:
		return unix.B230400, nil
	}
	return 0, fmt.Errorf("不支持的波特率: %d", baud)
}
