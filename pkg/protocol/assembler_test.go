package protocol

import (
	"errors"
	"strings"
	"testing"
)

const sampleFrame = "&&\n01083650.40\n011323.38\n!!"

// feedAll 逐块送入并汇总全部结果
func feedAll(a *Assembler, chunks ...string) []Raw {
	var out []Raw
	for _, c := range chunks {
		out = append(out, a.Feed(c)...)
	}
	return out
}

// TestFeedSingleFrame 单块完整帧
func TestFeedSingleFrame(t *testing.T) {
	a := NewAssembler(0)
	out := a.Feed(sampleFrame)
	if len(out) != 1 {
		t.Fatalf("期望1个结果, 实际 %d", len(out))
	}
	if out[0].Err != nil {
		t.Fatalf("意外错误: %v", out[0].Err)
	}
	if out[0].Text != sampleFrame {
		t.Errorf("帧文本不一致: %q", out[0].Text)
	}
	if a.Pending() != 0 {
		t.Errorf("缓冲未清空: %d 字节", a.Pending())
	}
}

// TestChunkBoundaryInvariance 任意字节偏移切分后装配结果必须与整帧一致
func TestChunkBoundaryInvariance(t *testing.T) {
	for i := 0; i <= len(sampleFrame); i++ {
		a := NewAssembler(0)
		out := feedAll(a, sampleFrame[:i], sampleFrame[i:])
		if len(out) != 1 || out[0].Err != nil {
			t.Fatalf("切分点 %d: 结果异常 %+v", i, out)
		}
		if out[0].Text != sampleFrame {
			t.Fatalf("切分点 %d: 帧文本不一致 %q", i, out[0].Text)
		}
	}

	// 逐字节送入
	a := NewAssembler(0)
	var out []Raw
	for _, b := range []byte(sampleFrame) {
		out = append(out, a.Feed(string(b))...)
	}
	if len(out) != 1 || out[0].Err != nil || out[0].Text != sampleFrame {
		t.Fatalf("逐字节装配失败: %+v", out)
	}
}

// TestMultiFramePerChunk 一块多帧是常态行为：N个无分隔连排帧产出N个结果，顺序不变
func TestMultiFramePerChunk(t *testing.T) {
	frames := []string{
		"&&\n01083650.40\n!!",
		"&&\n01083651.20\n!!",
		"&&\n011323.38\n!!",
	}
	a := NewAssembler(0)
	out := a.Feed(strings.Join(frames, ""))
	if len(out) != len(frames) {
		t.Fatalf("期望 %d 个结果, 实际 %d", len(frames), len(out))
	}
	for i, raw := range out {
		if raw.Err != nil {
			t.Fatalf("第 %d 帧装配错误: %v", i, raw.Err)
		}
		if raw.Text != frames[i] {
			t.Errorf("第 %d 帧文本不一致: %q", i, raw.Text)
		}
	}
}

// TestStartBeforeEnd 结束标记前出现新起始标记：半帧按FrameFormatError废弃
func TestStartBeforeEnd(t *testing.T) {
	a := NewAssembler(0)
	out := a.Feed("&&\n01081111.11\n&&\n01083650.40\n!!")
	if len(out) != 2 {
		t.Fatalf("期望2个结果, 实际 %d: %+v", len(out), out)
	}

	var formatErr *FrameFormatError
	if !errors.As(out[0].Err, &formatErr) {
		t.Fatalf("第1个结果应为*FrameFormatError, 实际 %v", out[0].Err)
	}
	if !strings.HasPrefix(formatErr.Discarded, StartMarker) {
		t.Errorf("废弃文本应从起始标记开始: %q", formatErr.Discarded)
	}
	if !strings.Contains(formatErr.Discarded, "1111.11") {
		t.Errorf("废弃文本缺少半帧内容: %q", formatErr.Discarded)
	}

	if out[1].Err != nil || out[1].Text != "&&\n01083650.40\n!!" {
		t.Errorf("第2个结果应为完整帧: %+v", out[1])
	}
}

// TestOversizedFrame 超限产生OversizedFrameError且装配器干净恢复
func TestOversizedFrame(t *testing.T) {
	const limit = 64
	a := NewAssembler(limit)

	// 永不结束的帧，分多块送入直到超限
	junk := StartMarker + "\n" + strings.Repeat("0108", 40)
	out := a.Feed(junk)
	if len(out) != 1 {
		t.Fatalf("期望1个超限错误, 实际 %d 个结果", len(out))
	}
	var oversized *OversizedFrameError
	if !errors.As(out[0].Err, &oversized) {
		t.Fatalf("结果应为*OversizedFrameError, 实际 %v", out[0].Err)
	}
	if oversized.Limit != limit {
		t.Errorf("Limit=%d 期望 %d", oversized.Limit, limit)
	}
	if a.Pending() != 0 {
		t.Errorf("超限后缓冲未清空: %d", a.Pending())
	}

	// 后续合法帧必须正常装配
	out = a.Feed(sampleFrame)
	if len(out) != 1 || out[0].Err != nil || out[0].Text != sampleFrame {
		t.Fatalf("超限后未恢复: %+v", out)
	}
}

// TestGarbageBetweenFrames 帧间垃圾静默丢弃，不影响帧识别
func TestGarbageBetweenFrames(t *testing.T) {
	a := NewAssembler(0)
	out := a.Feed("xx!!yy" + sampleFrame + "zz\n" + sampleFrame)
	if len(out) != 2 {
		t.Fatalf("期望2帧, 实际 %d: %+v", len(out), out)
	}
	for i, raw := range out {
		if raw.Err != nil || raw.Text != sampleFrame {
			t.Errorf("第 %d 帧异常: %+v", i, raw)
		}
	}
}

// TestSplitMarkerAcrossChunks 起止标记本身被切开也必须正确装配
func TestSplitMarkerAcrossChunks(t *testing.T) {
	a := NewAssembler(0)
	out := feedAll(a, "&", "&\n01083650.40\n!", "!")
	if len(out) != 1 || out[0].Err != nil {
		t.Fatalf("装配失败: %+v", out)
	}
	if out[0].Text != "&&\n01083650.40\n!!" {
		t.Errorf("帧文本不一致: %q", out[0].Text)
	}
}

// TestReset 重置后旧缓冲不影响新流
func TestReset(t *testing.T) {
	a := NewAssembler(0)
	a.Feed("&&\n0108")
	a.Reset()
	if a.Pending() != 0 {
		t.Fatalf("重置后缓冲非空: %d", a.Pending())
	}
	out := a.Feed(sampleFrame)
	if len(out) != 1 || out[0].Err != nil || out[0].Text != sampleFrame {
		t.Fatalf("重置后装配失败: %+v", out)
	}
}
