package transport

import (
	"context"
	"fmt"
	"os"
	"sync"
)

// FileReader 从记录文件回放WITS数据流，用于测试与离线处理
type FileReader struct {
	path      string
	chunkSize int
	file      *os.File
	mu        sync.Mutex
	closeOnce sync.Once
}

// NewFileReader 创建文件读取器
func NewFileReader(path string) *FileReader {
	return &FileReader{path: path, chunkSize: defaultChunkSize}
}

// Stream 按块读取文件内容，EOF后关闭通道
func (r *FileReader) Stream(ctx context.Context) (<-chan string, error) {
	file, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("打开文件失败 %s: %w", r.path, err)
	}

	r.mu.Lock()
	r.file = file
	r.mu.Unlock()

	out := make(chan string)
	go func() {
		defer close(out)
		defer r.Close()

		buf := make([]byte, r.chunkSize)
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
				// io.EOF为正常结束，其余读错误同样终止流
				return
			}
		}
	}()
	return out, nil
}

// Close 关闭文件
func (r *FileReader) Close() error {
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
