package zinx_server

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/bujia-iot/iot-wits/internal/infrastructure/logger"
	"github.com/bujia-iot/iot-wits/pkg/protocol"
)

// FrameSink 解码后帧的落库出口
type FrameSink interface {
	SaveFrame(ctx context.Context, frame *protocol.Frame) error
}

// StreamSession 单个TCP连接的WITS流会话
// 持有连接级装配器状态，跨数据块维护帧边界
type StreamSession struct {
	source   string
	pipeline *protocol.Pipeline
	sink     FrameSink

	// 会话统计
	FrameCount int
	ErrorCount int
}

// NewStreamSession 创建流会话
func NewStreamSession(source string, opts protocol.Options, sink FrameSink) *StreamSession {
	return &StreamSession{
		source:   source,
		pipeline: protocol.NewPipeline(source, opts),
		sink:     sink,
	}
}

// HandleChunk 处理一个原始数据块，返回本块完成的帧
func (s *StreamSession) HandleChunk(ctx context.Context, chunk string) []*protocol.Frame {
	var frames []*protocol.Frame
	for _, res := range s.pipeline.Feed(chunk) {
		if res.Err != nil {
			s.ErrorCount++
			logger.WithFields(logrus.Fields{
				"source": s.source,
				"err":    res.Err.Error(),
			}).Warn("WITS流解码错误")
			continue
		}

		s.FrameCount++
		frames = append(frames, res.Frame)

		if len(res.Frame.Errors) > 0 {
			logger.WithFields(logrus.Fields{
				"source":  s.source,
				"frameId": res.Frame.FrameID,
				"errors":  len(res.Frame.Errors),
			}).Warn("帧内存在无法解码的数据行")
		}

		if s.sink != nil {
			if err := s.sink.SaveFrame(ctx, res.Frame); err != nil {
				logger.WithFields(logrus.Fields{
					"source":  s.source,
					"frameId": res.Frame.FrameID,
					"err":     err.Error(),
				}).Error("帧落库失败")
			}
		}
	}
	return frames
}
