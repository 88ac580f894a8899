package protocol

import "strings"

// Raw 装配器的单个输出：完整帧文本或装配错误
// Text与Err恰有一个非空
type Raw struct {
	Text string // 含起止标记的完整帧文本
	Err  error  // *FrameFormatError 或 *OversizedFrameError
}

// Assembler 帧装配器
// 将任意切分的文本块流还原为完整的 &&…!! 帧序列，到达顺序不变
// 每个逻辑连接/流持有独立实例，内部只有一个累积缓冲，无全局状态
type Assembler struct {
	buf string
	max int
}

// NewAssembler 创建帧装配器
// maxFrameBytes <= 0 时取DefaultMaxFrameBytes
func NewAssembler(maxFrameBytes int) *Assembler {
	if maxFrameBytes <= 0 {
		maxFrameBytes = DefaultMaxFrameBytes
	}
	return &Assembler{max: maxFrameBytes}
}

// Feed 送入一个文本块，返回零个或多个装配结果
// 同一块内的多个帧全部在本次返回(多帧合包是常态而非边界情况)
func (a *Assembler) Feed(chunk string) []Raw {
	a.buf += chunk

	var out []Raw
	for {
		start := strings.Index(a.buf, StartMarker)
		if start < 0 {
			// 没有起始标记：帧间垃圾静默丢弃
			// 结尾的单个'&'可能是被切开的起始标记，保留待下一块
			if strings.HasSuffix(a.buf, "&") {
				a.buf = "&"
			} else {
				a.buf = ""
			}
			return out
		}
		if start > 0 {
			a.buf = a.buf[start:]
		}

		body := a.buf[len(StartMarker):]
		end := strings.Index(body, EndMarker)
		nextStart := strings.Index(body, StartMarker)

		// 结束标记之前又出现起始标记：上一个半帧按帧格式错误废弃
		// (规范明确的定界符乱序裁决，不静默丢弃)
		if nextStart >= 0 && (end < 0 || nextStart < end) {
			discarded := a.buf[:len(StartMarker)+nextStart]
			a.buf = a.buf[len(StartMarker)+nextStart:]
			out = append(out, Raw{Err: &FrameFormatError{
				Reason:    "结束标记缺失，新帧起始标记已到达",
				Discarded: discarded,
			}})
			continue
		}

		if end >= 0 {
			frameLen := len(StartMarker) + end + len(EndMarker)
			out = append(out, Raw{Text: a.buf[:frameLen]})
			a.buf = a.buf[frameLen:]
			continue
		}

		// 帧未完整：超限则丢弃缓冲，否则等待下一块
		if len(a.buf) > a.max {
			out = append(out, Raw{Err: &OversizedFrameError{
				Limit:   a.max,
				Dropped: len(a.buf),
			}})
			a.buf = ""
		}
		return out
	}
}

// Pending 当前缓冲字节数
func (a *Assembler) Pending() int {
	return len(a.buf)
}

// Reset 清空缓冲，连接重建时使用
func (a *Assembler) Reset() {
	a.buf = ""
}
