package protocol

import (
	"fmt"

	"github.com/bujia-iot/iot-wits/pkg/symbols"
)

// 解码错误分类
// 每种错误只影响一个帧或一行，对流水线本身永远不是致命的：
// 坏帧不会中断后续帧的处理

// FrameFormatError 帧定界符缺失或乱序
// 典型场景：上一帧的结束标记还没出现，新的起始标记就到了，
// 此时废弃的半帧文本记录在Discarded中
type FrameFormatError struct {
	Reason    string
	Discarded string
}

func (e *FrameFormatError) Error() string {
	return fmt.Sprintf("帧格式错误: %s (废弃 %d 字节)", e.Reason, len(e.Discarded))
}

// OversizedFrameError 缓冲区超过maxFrameBytes仍未出现结束标记
// 缓冲内容已被丢弃，防止永不发送结束标记的传输拖垮内存
type OversizedFrameError struct {
	Limit   int
	Dropped int
}

func (e *OversizedFrameError) Error() string {
	return fmt.Sprintf("帧超限: 缓冲 %d 字节超过上限 %d, 已丢弃", e.Dropped, e.Limit)
}

// LineTooShortError 帧体数据行不足4字符，无法提取符号代码
type LineTooShortError struct {
	Line string
}

func (e *LineTooShortError) Error() string {
	return fmt.Sprintf("数据行过短: %q (不足4字符)", e.Line)
}

// UnknownSymbolError 符号代码未在注册表中定义
type UnknownSymbolError struct {
	Code string
}

func (e *UnknownSymbolError) Error() string {
	return fmt.Sprintf("未知符号代码: %s", e.Code)
}

// ValueParseError 值文本与符号声明的数据类型不兼容
type ValueParseError struct {
	Code     string
	RawValue string
	DataType symbols.DataType
}

func (e *ValueParseError) Error() string {
	return fmt.Sprintf("值解析失败: 符号 %s 类型 %s 值 %q", e.Code, e.DataType, e.RawValue)
}
