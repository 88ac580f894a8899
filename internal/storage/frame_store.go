package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/bujia-iot/iot-wits/pkg/protocol"
)

// Redis键命名
const (
	keySources      = "wits:sources"
	keyLatestFormat = "wits:source:%s:latest"
	keyFramesFormat = "wits:source:%s:frames"
)

// StoredPoint 落库的单个数据点
type StoredPoint struct {
	Code       string      `json:"code"`
	Name       string      `json:"name"`
	RecordType int         `json:"recordType"`
	Raw        string      `json:"raw"`
	Value      interface{} `json:"value"`
	Unit       string      `json:"unit"`
	Timestamp  time.Time   `json:"timestamp"`
}

// StoredFrame 落库的完整帧
type StoredFrame struct {
	FrameID   string        `json:"frameId"`
	Timestamp time.Time     `json:"timestamp"`
	Source    string        `json:"source"`
	Points    []StoredPoint `json:"points"`
	Errors    []string      `json:"errors,omitempty"`
}

// FrameStore 以Redis为后端的帧存储
// 每个数据源维护一个最新值哈希和一个定长历史帧列表
type FrameStore struct {
	rdb          *redis.Client
	historyLimit int64
	latestTTL    time.Duration
}

// NewFrameStore 创建帧存储
func NewFrameStore(rdb *redis.Client, historyLimit int, latestTTLSeconds int) *FrameStore {
	if historyLimit <= 0 {
		historyLimit = 1000
	}
	return &FrameStore{
		rdb:          rdb,
		historyLimit: int64(historyLimit),
		latestTTL:    time.Duration(latestTTLSeconds) * time.Second,
	}
}

// buildStoredFrame 帧转落库结构
func buildStoredFrame(frame *protocol.Frame) *StoredFrame {
	sf := &StoredFrame{
		FrameID:   frame.FrameID,
		Timestamp: frame.Timestamp,
		Source:    frame.Source,
		Points:    make([]StoredPoint, 0, len(frame.DataPoints)),
	}
	for _, dp := range frame.DataPoints {
		sf.Points = append(sf.Points, StoredPoint{
			Code:       dp.SymbolCode,
			Name:       dp.SymbolName,
			RecordType: dp.RecordType,
			Raw:        dp.RawValue,
			Value:      dp.Parsed.Interface(),
			Unit:       dp.Unit.String(),
			Timestamp:  frame.Timestamp,
		})
	}
	for _, e := range frame.Errors {
		sf.Errors = append(sf.Errors, e.Error())
	}
	return sf
}

// SaveFrame 保存一帧：更新最新值哈希并追加历史列表
func (s *FrameStore) SaveFrame(ctx context.Context, frame *protocol.Frame) error {
	sf := buildStoredFrame(frame)
	frameJSON, err := json.Marshal(sf)
	if err != nil {
		return fmt.Errorf("序列化帧失败: %w", err)
	}

	latestKey := fmt.Sprintf(keyLatestFormat, frame.Source)
	framesKey := fmt.Sprintf(keyFramesFormat, frame.Source)

	pipe := s.rdb.Pipeline()
	pipe.SAdd(ctx, keySources, frame.Source)

	if len(sf.Points) > 0 {
		fields := make(map[string]interface{}, len(sf.Points))
		for i := range sf.Points {
			pointJSON, err := json.Marshal(&sf.Points[i])
			if err != nil {
				return fmt.Errorf("序列化数据点失败: %w", err)
			}
			fields[sf.Points[i].Code] = string(pointJSON)
		}
		pipe.HSet(ctx, latestKey, fields)
		if s.latestTTL > 0 {
			pipe.Expire(ctx, latestKey, s.latestTTL)
		}
	}

	pipe.LPush(ctx, framesKey, string(frameJSON))
	pipe.LTrim(ctx, framesKey, 0, s.historyLimit-1)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("写入Redis失败: %w", err)
	}
	return nil
}

// Sources 列出所有已见数据源
func (s *FrameStore) Sources(ctx context.Context) ([]string, error) {
	sources, err := s.rdb.SMembers(ctx, keySources).Result()
	if err != nil {
		return nil, fmt.Errorf("读取数据源集合失败: %w", err)
	}
	return sources, nil
}

// Latest 读取某数据源各符号的最新值
func (s *FrameStore) Latest(ctx context.Context, source string) (map[string]StoredPoint, error) {
	raw, err := s.rdb.HGetAll(ctx, fmt.Sprintf(keyLatestFormat, source)).Result()
	if err != nil {
		return nil, fmt.Errorf("读取最新值失败: %w", err)
	}
	points := make(map[string]StoredPoint, len(raw))
	for code, pointJSON := range raw {
		var p StoredPoint
		if err := json.Unmarshal([]byte(pointJSON), &p); err != nil {
			return nil, fmt.Errorf("解析数据点失败 %s: %w", code, err)
		}
		points[code] = p
	}
	return points, nil
}

// History 读取某数据源最近count帧，最新在前
func (s *FrameStore) History(ctx context.Context, source string, count int) ([]StoredFrame, error) {
	if count <= 0 || int64(count) > s.historyLimit {
		count = int(s.historyLimit)
	}
	raw, err := s.rdb.LRange(ctx, fmt.Sprintf(keyFramesFormat, source), 0, int64(count-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("读取历史帧失败: %w", err)
	}
	frames := make([]StoredFrame, 0, len(raw))
	for _, frameJSON := range raw {
		var f StoredFrame
		if err := json.Unmarshal([]byte(frameJSON), &f); err != nil {
			return nil, fmt.Errorf("解析历史帧失败: %w", err)
		}
		frames = append(frames, f)
	}
	return frames, nil
}
