package protocol

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bujia-iot/iot-wits/pkg/symbols"
)

// Decoder WITS帧解码器
// 持有只读注册表引用，可被多个流水线并发共享
type Decoder struct {
	opts     Options
	registry *symbols.Registry
}

// NewDecoder 创建帧解码器
func NewDecoder(opts Options) *Decoder {
	return &Decoder{
		opts:     opts,
		registry: opts.registry(),
	}
}

// DecodeFrame 解码一个完整帧文本
// 严格模式下帧内首个错误即作为整帧结果返回(不产出部分帧)；
// 宽松模式(默认)跳过坏行并把错误记录在Frame.Errors中，保留最大可用数据
func (d *Decoder) DecodeFrame(frameText, source string) (*Frame, error) {
	body, err := frameBody(frameText)
	if err != nil {
		return nil, err
	}

	frame := &Frame{
		FrameID:   uuid.NewString(),
		Timestamp: time.Now(),
		Source:    source,
		RawData:   frameText,
	}

	for _, line := range body {
		dp, err := d.decodeLine(line)
		if err != nil {
			if d.opts.StrictMode {
				return nil, err
			}
			frame.Errors = append(frame.Errors, err)
			continue
		}
		frame.DataPoints = append(frame.DataPoints, dp)
	}
	return frame, nil
}

// decodeLine 解码一个数据行: 前4字符为符号代码，其余为值文本
func (d *Decoder) decodeLine(line string) (DataPoint, error) {
	if len(line) < 4 {
		return DataPoint{}, &LineTooShortError{Line: line}
	}

	code := line[:4]
	rawValue := strings.TrimSpace(line[4:])

	def, ok := d.registry.Lookup(code)
	if !ok {
		return DataPoint{}, &UnknownSymbolError{Code: code}
	}

	parsed, err := coerceValue(def, rawValue)
	if err != nil {
		return DataPoint{}, err
	}

	return DataPoint{
		SymbolCode:        def.Code,
		SymbolName:        def.Name,
		SymbolDescription: def.Description,
		RecordType:        def.RecordType,
		DataType:          def.DataType,
		RawValue:          rawValue,
		Parsed:            parsed,
		Unit:              def.Unit(d.opts.UnitSystem == UnitSystemMetric),
	}, nil
}

// coerceValue 按符号声明的数据类型强制转换值文本
// 整型拒绝小数文本，文本类型原样保留
func coerceValue(def *symbols.SymbolDefinition, rawValue string) (Value, error) {
	switch def.DataType {
	case symbols.TypeAscii:
		return TextValue(rawValue), nil

	case symbols.TypeFloat:
		f, err := strconv.ParseFloat(rawValue, 64)
		if err != nil {
			return Value{}, &ValueParseError{Code: def.Code, RawValue: rawValue, DataType: def.DataType}
		}
		return NumericValue(f), nil

	case symbols.TypeShort, symbols.TypeLong:
		n, err := strconv.ParseInt(rawValue, 10, 64)
		if err != nil {
			return Value{}, &ValueParseError{Code: def.Code, RawValue: rawValue, DataType: def.DataType}
		}
		return NumericValue(float64(n)), nil
	}

	return Value{}, &ValueParseError{Code: def.Code, RawValue: rawValue, DataType: def.DataType}
}

// frameBody 切出帧体数据行，丢弃起止标记行与空行
// 帧文本必须以起始标记开头、结束标记结尾
func frameBody(frameText string) ([]string, error) {
	text := strings.TrimSpace(frameText)
	if !strings.HasPrefix(text, StartMarker) {
		return nil, &FrameFormatError{Reason: "缺少起始标记", Discarded: frameText}
	}
	if !strings.HasSuffix(text, EndMarker) {
		return nil, &FrameFormatError{Reason: "缺少结束标记", Discarded: frameText}
	}

	inner := text[len(StartMarker) : len(text)-len(EndMarker)]
	rawLines := strings.Split(inner, "\n")

	var body []string
	for i, line := range rawLines {
		line = strings.TrimRight(line, "\r")
		// 起始标记同行的尾随内容(部分发送端附带井标识)不作为数据行
		if i == 0 {
			continue
		}
		// 结束标记独占末行，Split后最后一个元素为空串，空行一并跳过
		if strings.TrimSpace(line) == "" {
			continue
		}
		body = append(body, line)
	}
	return body, nil
}

// DecodeFrame 包级便捷入口：按给定配置解码单帧
func DecodeFrame(frameText, source string, opts Options) (*Frame, error) {
	return NewDecoder(opts).DecodeFrame(frameText, source)
}
