package protocol

import (
	"fmt"
	"time"

	"github.com/bujia-iot/iot-wits/pkg/symbols"
	"github.com/bujia-iot/iot-wits/pkg/units"
)

// WITS Level 0 帧定界符
const (
	StartMarker = "&&"
	EndMarker   = "!!"

	// DefaultMaxFrameBytes 装配缓冲区默认上限
	DefaultMaxFrameBytes = 64 * 1024
)

// UnitSystem 单位制偏好，符号携带的单位按此选择
type UnitSystem int

const (
	UnitSystemFPS    UnitSystem = iota // 英制(默认)
	UnitSystemMetric                   // 公制
)

// String 返回单位制名称
func (s UnitSystem) String() string {
	if s == UnitSystemMetric {
		return "metric"
	}
	return "fps"
}

// ParseUnitSystem 解析单位制名称
func ParseUnitSystem(name string) (UnitSystem, bool) {
	switch name {
	case "metric", "Metric", "METRIC":
		return UnitSystemMetric, true
	case "fps", "FPS", "Fps":
		return UnitSystemFPS, true
	}
	return UnitSystemFPS, false
}

// Options 解码配置，未设置的字段取默认值
type Options struct {
	StrictMode    bool                // 严格模式：帧内首个错误即中止整帧
	UnitSystem    UnitSystem          // 单位制偏好，默认FPS
	MaxFrameBytes int                 // 装配缓冲上限，<=0时取DefaultMaxFrameBytes
	Registry      *symbols.Registry   // 符号注册表，nil时取内置注册表
}

func (o Options) registry() *symbols.Registry {
	if o.Registry != nil {
		return o.Registry
	}
	return symbols.Default()
}

func (o Options) maxFrameBytes() int {
	if o.MaxFrameBytes > 0 {
		return o.MaxFrameBytes
	}
	return DefaultMaxFrameBytes
}

// valueKind 解析值的变体标签
type valueKind int

const (
	valueNumeric valueKind = iota
	valueText
)

// Value 解析后的值，数值或文本的显式变体
// 变体由符号声明的数据类型决定，绝不按值的形状推断
type Value struct {
	kind valueKind
	num  float64
	text string
}

// NumericValue 构造数值变体
func NumericValue(f float64) Value {
	return Value{kind: valueNumeric, num: f}
}

// TextValue 构造文本变体
func TextValue(s string) Value {
	return Value{kind: valueText, text: s}
}

// IsNumeric 是否为数值变体
func (v Value) IsNumeric() bool {
	return v.kind == valueNumeric
}

// Float 取数值，文本变体返回false
func (v Value) Float() (float64, bool) {
	if v.kind != valueNumeric {
		return 0, false
	}
	return v.num, true
}

// Text 取文本，数值变体返回false
func (v Value) Text() (string, bool) {
	if v.kind != valueText {
		return "", false
	}
	return v.text, true
}

// Interface JSON序列化等场景使用的动态表示
func (v Value) Interface() interface{} {
	if v.kind == valueNumeric {
		return v.num
	}
	return v.text
}

// String 值的展示形式
func (v Value) String() string {
	if v.kind == valueNumeric {
		return fmt.Sprintf("%g", v.num)
	}
	return v.text
}

// DataPoint 帧内一行解码后的数据点
// 字段从符号定义复制而来，不持有注册表引用
type DataPoint struct {
	SymbolCode        string
	SymbolName        string
	SymbolDescription string
	RecordType        int
	DataType          symbols.DataType
	RawValue          string
	Parsed            Value
	Unit              units.Unit
}

// ConvertTo 将数值数据点换算到目标单位
// 文本数据点与无量纲数据点原样保留，跨族换算返回错误
func (d *DataPoint) ConvertTo(target units.Unit) error {
	if d.Unit == target {
		return nil
	}
	num, ok := d.Parsed.Float()
	if !ok {
		return fmt.Errorf("符号 %s 非数值数据点，无法换算", d.SymbolCode)
	}
	converted, err := units.Convert(num, d.Unit, target)
	if err != nil {
		return err
	}
	d.Parsed = NumericValue(converted)
	d.Unit = target
	return nil
}

// Frame 一个完整的WITS帧解码结果
// 时间戳在解码时赋值，线路协议本身不携带时间
type Frame struct {
	FrameID    string      // 解码时分配的uuid
	Timestamp  time.Time   // 解码时刻
	Source     string      // 调用方提供的来源标识
	RawData    string      // 原始帧文本
	DataPoints []DataPoint // 与帧体行序一致，重复代码保留不合并
	Errors     []error     // 宽松模式下跳过行对应的错误
}

// ConvertTo 将帧内全部数值数据点换算到目标单位制下符号声明的单位
// 返回成功换算的数量与逐点失败原因
func (f *Frame) ConvertTo(system UnitSystem, registry *symbols.Registry) (int, []error) {
	if registry == nil {
		registry = symbols.Default()
	}
	converted := 0
	var errs []error
	for i := range f.DataPoints {
		dp := &f.DataPoints[i]
		def, ok := registry.Lookup(dp.SymbolCode)
		if !ok {
			continue
		}
		target := def.Unit(system == UnitSystemMetric)
		if target == dp.Unit || !dp.Parsed.IsNumeric() {
			continue
		}
		if err := dp.ConvertTo(target); err != nil {
			errs = append(errs, fmt.Errorf("符号 %s 换算失败: %w", dp.SymbolCode, err))
			continue
		}
		converted++
	}
	return converted, errs
}

// Result 流水线单帧结果：Frame与Err恰有一个非空
// 装配器识别出的每个帧跨度都恰好产生一个Result，绝不静默丢帧
type Result struct {
	Frame *Frame
	Err   error
}
