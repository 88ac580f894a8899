package protocol

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

// TestPipelineBackToBackFrames 规范场景：无分隔连排双帧按序产出
func TestPipelineBackToBackFrames(t *testing.T) {
	p := NewPipeline("test", Options{UnitSystem: UnitSystemMetric})
	results := p.Feed("&&\n01083650.40\n!!&&\n01083651.20\n!!")
	if len(results) != 2 {
		t.Fatalf("期望2个结果, 实际 %d", len(results))
	}

	wantValues := []float64{3650.40, 3651.20}
	for i, res := range results {
		if res.Err != nil {
			t.Fatalf("第 %d 帧解码错误: %v", i, res.Err)
		}
		if len(res.Frame.DataPoints) != 1 {
			t.Fatalf("第 %d 帧数据点数错误", i)
		}
		if v, _ := res.Frame.DataPoints[0].Parsed.Float(); v != wantValues[i] {
			t.Errorf("第 %d 帧深度值 %v 期望 %v", i, v, wantValues[i])
		}
	}
}

// TestPipelineSplitAcrossChunks 规范场景：跨块切分的帧与整帧解码结果一致
func TestPipelineSplitAcrossChunks(t *testing.T) {
	whole, err := DecodeFrame("&&\n01083650.40\n!!", "test", Options{})
	if err != nil {
		t.Fatalf("整帧解码失败: %v", err)
	}

	p := NewPipeline("test", Options{})
	var results []Result
	results = append(results, p.Feed("&&\n0108")...)
	if len(results) != 0 {
		t.Fatalf("半帧不应产出结果: %+v", results)
	}
	results = append(results, p.Feed("3650.40\n!!")...)
	if len(results) != 1 || results[0].Err != nil {
		t.Fatalf("装配失败: %+v", results)
	}

	got := results[0].Frame
	if got.RawData != whole.RawData {
		t.Errorf("原始帧文本不一致: %q / %q", got.RawData, whole.RawData)
	}
	if len(got.DataPoints) != len(whole.DataPoints) {
		t.Fatalf("数据点数不一致")
	}
	gv, _ := got.DataPoints[0].Parsed.Float()
	wv, _ := whole.DataPoints[0].Parsed.Float()
	if gv != wv || got.DataPoints[0].Unit != whole.DataPoints[0].Unit {
		t.Errorf("数据点不一致: %v/%s 与 %v/%s",
			gv, got.DataPoints[0].Unit, wv, whole.DataPoints[0].Unit)
	}
}

// TestPipelineNeverDropsSpans 每个装配跨度恰好对应一个结果：错误与帧按原序交织
func TestPipelineNeverDropsSpans(t *testing.T) {
	p := NewPipeline("test", Options{})
	// 半帧(被新起始标记废弃) + 合法帧 + 严格意义上可解码但含坏行的帧
	results := p.Feed("&&\n01081\n&&\n01083650.40\n!!&&\nxx\n!!")
	if len(results) != 3 {
		t.Fatalf("期望3个结果, 实际 %d", len(results))
	}

	var formatErr *FrameFormatError
	if !errors.As(results[0].Err, &formatErr) {
		t.Errorf("结果0应为帧格式错误: %+v", results[0])
	}
	if results[1].Err != nil || len(results[1].Frame.DataPoints) != 1 {
		t.Errorf("结果1应为合法帧: %+v", results[1])
	}
	// 宽松模式：坏行记录在帧上而非整帧失败
	if results[2].Err != nil || len(results[2].Frame.Errors) != 1 {
		t.Errorf("结果2应为带记录错误的帧: %+v", results[2])
	}
}

// TestPipelineRun 通道驱动：N个帧任意切块后按序产出N个结果
func TestPipelineRun(t *testing.T) {
	const frameCount = 25
	var stream string
	for i := 0; i < frameCount; i++ {
		stream += fmt.Sprintf("&&\n0108%d.0\n!!", 3000+i)
	}

	chunks := make(chan string)
	go func() {
		defer close(chunks)
		// 以7字节为步长切块，制造跨帧/跨标记边界
		for i := 0; i < len(stream); i += 7 {
			end := i + 7
			if end > len(stream) {
				end = len(stream)
			}
			chunks <- stream[i:end]
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	p := NewPipeline("test", Options{})
	var got []float64
	for res := range p.Run(ctx, chunks) {
		if res.Err != nil {
			t.Fatalf("解码错误: %v", res.Err)
		}
		v, _ := res.Frame.DataPoints[0].Parsed.Float()
		got = append(got, v)
	}

	if len(got) != frameCount {
		t.Fatalf("期望 %d 帧, 实际 %d", frameCount, len(got))
	}
	for i, v := range got {
		if v != float64(3000+i) {
			t.Errorf("第 %d 帧值 %v 乱序", i, v)
		}
	}
}

// TestPipelineRunCancel ctx取消后输出通道关闭
func TestPipelineRunCancel(t *testing.T) {
	chunks := make(chan string)
	ctx, cancel := context.WithCancel(context.Background())

	p := NewPipeline("test", Options{})
	out := p.Run(ctx, chunks)
	cancel()

	select {
	case _, open := <-out:
		if open {
			t.Error("取消后不应再有结果")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("取消后输出通道未关闭")
	}
}

// TestDecodeStream 静态多帧文本一次解码
func TestDecodeStream(t *testing.T) {
	results := DecodeStream("&&\n01083650.40\n!!&&\n011323.38\n!!", "file.wits", Options{})
	if len(results) != 2 {
		t.Fatalf("期望2个结果, 实际 %d", len(results))
	}
	for i, res := range results {
		if res.Err != nil {
			t.Fatalf("第 %d 帧错误: %v", i, res.Err)
		}
		if res.Frame.Source != "file.wits" {
			t.Errorf("来源标识错误: %s", res.Frame.Source)
		}
	}
}

// TestSplitFrames 仅切帧不解码
func TestSplitFrames(t *testing.T) {
	frames := SplitFrames("garbage&&\n01081.0\n!!&&\n0108")
	if len(frames) != 1 || frames[0] != "&&\n01081.0\n!!" {
		t.Errorf("切帧结果错误: %+v", frames)
	}
}
