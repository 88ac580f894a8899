package storage

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/bujia-iot/iot-wits/pkg/protocol"
)

// TestBuildStoredFrame 帧到落库结构的转换
func TestBuildStoredFrame(t *testing.T) {
	frame, err := protocol.DecodeFrame("&&\n01083650.40\n0101WELL-A12\n!!", "tcp://10.0.0.5:8686", protocol.Options{
		UnitSystem: protocol.UnitSystemMetric,
	})
	require.NoError(t, err)

	sf := buildStoredFrame(frame)
	require.Equal(t, frame.FrameID, sf.FrameID)
	require.Equal(t, "tcp://10.0.0.5:8686", sf.Source)
	require.Len(t, sf.Points, 2)

	require.Equal(t, "0108", sf.Points[0].Code)
	require.Equal(t, "DBTM", sf.Points[0].Name)
	require.Equal(t, 1, sf.Points[0].RecordType)
	require.Equal(t, 3650.40, sf.Points[0].Value)
	require.Equal(t, "M", sf.Points[0].Unit)

	require.Equal(t, "0101", sf.Points[1].Code)
	require.Equal(t, "WELL-A12", sf.Points[1].Value)
}

// TestStoredFrameJSONRoundTrip 落库JSON可逆且字段名稳定
func TestStoredFrameJSONRoundTrip(t *testing.T) {
	sf := StoredFrame{
		FrameID:   "f-1",
		Timestamp: time.Date(2026, 8, 23, 10, 0, 0, 0, time.UTC),
		Source:    "file:///tmp/a.wits",
		Points: []StoredPoint{
			{Code: "0113", Name: "ROPA", RecordType: 1, Raw: "23.38", Value: 23.38, Unit: "MHR"},
		},
	}

	data, err := json.Marshal(&sf)
	require.NoError(t, err)
	require.Contains(t, string(data), `"frameId":"f-1"`)
	require.Contains(t, string(data), `"recordType":1`)
	require.NotContains(t, string(data), `"errors"`)

	var back StoredFrame
	require.NoError(t, json.Unmarshal(data, &back))
	require.Equal(t, sf.Source, back.Source)
	require.Equal(t, "0113", back.Points[0].Code)
	require.Equal(t, 23.38, back.Points[0].Value)
}

// TestBuildStoredFrameErrors 宽松模式下的解码错误随帧落库
func TestBuildStoredFrameErrors(t *testing.T) {
	frame, err := protocol.DecodeFrame("&&\n9999X\n01083650.40\n!!", "serial:///dev/ttyUSB0", protocol.Options{})
	require.NoError(t, err)
	require.Len(t, frame.Errors, 1)

	sf := buildStoredFrame(frame)
	require.Len(t, sf.Points, 1)
	require.Len(t, sf.Errors, 1)
	require.Contains(t, sf.Errors[0], "9999")
}
