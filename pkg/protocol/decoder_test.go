package protocol

import (
	"errors"
	"math"
	"testing"

	"github.com/bujia-iot/iot-wits/pkg/symbols"
	"github.com/bujia-iot/iot-wits/pkg/units"
)

// TestDecodeFrameMetric 规范场景：公制单位制下解码两个数据点
func TestDecodeFrameMetric(t *testing.T) {
	frame, err := DecodeFrame("&&\n01083650.40\n011323.38\n!!", "test",
		Options{UnitSystem: UnitSystemMetric})
	if err != nil {
		t.Fatalf("解码失败: %v", err)
	}
	if len(frame.DataPoints) != 2 {
		t.Fatalf("期望2个数据点, 实际 %d", len(frame.DataPoints))
	}

	dp := frame.DataPoints[0]
	if dp.SymbolCode != "0108" || dp.SymbolName != "DBTM" {
		t.Errorf("数据点0符号错误: %s/%s", dp.SymbolCode, dp.SymbolName)
	}
	if v, ok := dp.Parsed.Float(); !ok || v != 3650.40 {
		t.Errorf("数据点0值错误: %v", dp.Parsed)
	}
	if dp.Unit != units.Meters {
		t.Errorf("数据点0单位错误: %s 期望 M", dp.Unit)
	}

	dp = frame.DataPoints[1]
	if dp.SymbolCode != "0113" {
		t.Errorf("数据点1符号错误: %s", dp.SymbolCode)
	}
	if v, ok := dp.Parsed.Float(); !ok || v != 23.38 {
		t.Errorf("数据点1值错误: %v", dp.Parsed)
	}
	if dp.Unit != units.MetersPerHour {
		t.Errorf("数据点1单位错误: %s 期望 MHR", dp.Unit)
	}

	if frame.Source != "test" {
		t.Errorf("来源标识错误: %s", frame.Source)
	}
	if frame.Timestamp.IsZero() {
		t.Error("解码时间戳未赋值")
	}
	if frame.FrameID == "" {
		t.Error("帧ID未分配")
	}
	if len(frame.Errors) != 0 {
		t.Errorf("意外错误: %v", frame.Errors)
	}
}

// TestDecodeFrameFPSDefault 默认单位制为FPS
func TestDecodeFrameFPSDefault(t *testing.T) {
	frame, err := DecodeFrame("&&\n01083650.40\n011323.38\n!!", "test", Options{})
	if err != nil {
		t.Fatalf("解码失败: %v", err)
	}
	if frame.DataPoints[0].Unit != units.Feet {
		t.Errorf("FPS下0108单位错误: %s 期望 F", frame.DataPoints[0].Unit)
	}
	if frame.DataPoints[1].Unit != units.FeetPerHour {
		t.Errorf("FPS下0113单位错误: %s 期望 FHR", frame.DataPoints[1].Unit)
	}
}

// TestUnknownSymbol 未知符号：严格模式整帧失败，宽松模式跳过并记录
func TestUnknownSymbol(t *testing.T) {
	const input = "&&\n99993650.40\n!!"

	// 严格模式
	frame, err := DecodeFrame(input, "test", Options{StrictMode: true})
	if frame != nil {
		t.Fatal("严格模式不应返回部分帧")
	}
	var unknown *UnknownSymbolError
	if !errors.As(err, &unknown) {
		t.Fatalf("错误类型不是*UnknownSymbolError: %v", err)
	}
	if unknown.Code != "9999" {
		t.Errorf("错误代码 %s 期望 9999", unknown.Code)
	}

	// 宽松模式
	frame, err = DecodeFrame(input, "test", Options{})
	if err != nil {
		t.Fatalf("宽松模式不应整帧失败: %v", err)
	}
	if len(frame.DataPoints) != 0 {
		t.Errorf("期望0个数据点, 实际 %d", len(frame.DataPoints))
	}
	if len(frame.Errors) != 1 {
		t.Fatalf("期望记录1个错误, 实际 %d", len(frame.Errors))
	}
	if !errors.As(frame.Errors[0], &unknown) || unknown.Code != "9999" {
		t.Errorf("记录的错误不符: %v", frame.Errors[0])
	}
}

// TestLineTooShort 不足4字符的数据行
func TestLineTooShort(t *testing.T) {
	const input = "&&\n010\n01083650.40\n!!"

	frame, err := DecodeFrame(input, "test", Options{StrictMode: true})
	var tooShort *LineTooShortError
	if frame != nil || !errors.As(err, &tooShort) {
		t.Fatalf("严格模式应返回*LineTooShortError: %v", err)
	}

	frame, err = DecodeFrame(input, "test", Options{})
	if err != nil {
		t.Fatalf("宽松模式解码失败: %v", err)
	}
	if len(frame.DataPoints) != 1 || frame.DataPoints[0].SymbolCode != "0108" {
		t.Errorf("宽松模式应保留合法行: %+v", frame.DataPoints)
	}
	if len(frame.Errors) != 1 {
		t.Errorf("期望记录1个错误, 实际 %d", len(frame.Errors))
	}
}

// TestValueCoercion 按声明类型强制转换：整型拒绝小数，浮点拒绝非数字
func TestValueCoercion(t *testing.T) {
	testCases := []struct {
		name    string
		line    string
		wantErr bool
		wantVal float64
	}{
		{"浮点合法", "01083650.40", false, 3650.40},
		{"浮点负值", "0108-123.5", false, -123.5},
		{"浮点非数字", "0108abc", true, 0},
		{"浮点空值", "0108", true, 0},
		{"短整型合法", "010512", false, 12},
		{"短整型带符号", "0105-3", false, -3},
		{"短整型拒绝小数", "010512.5", true, 0},
		{"长整型合法", "0136123456", false, 123456},
		{"长整型拒绝小数", "01361.0", true, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			frame, err := DecodeFrame("&&\n"+tc.line+"\n!!", "test",
				Options{StrictMode: true})
			if tc.wantErr {
				var parseErr *ValueParseError
				if err == nil || !errors.As(err, &parseErr) {
					t.Fatalf("期望*ValueParseError, 实际 %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("解码失败: %v", err)
			}
			if v, ok := frame.DataPoints[0].Parsed.Float(); !ok || v != tc.wantVal {
				t.Errorf("值错误: %v 期望 %v", frame.DataPoints[0].Parsed, tc.wantVal)
			}
		})
	}
}

// TestAsciiVerbatim 文本类型按声明保留，不做数值推断
func TestAsciiVerbatim(t *testing.T) {
	frame, err := DecodeFrame("&&\n0101NORTH SEA A-12\n!!", "test", Options{})
	if err != nil {
		t.Fatalf("解码失败: %v", err)
	}
	dp := frame.DataPoints[0]
	if dp.DataType != symbols.TypeAscii {
		t.Fatalf("数据类型错误: %s", dp.DataType)
	}
	text, ok := dp.Parsed.Text()
	if !ok || text != "NORTH SEA A-12" {
		t.Errorf("文本值错误: %q", text)
	}
	if dp.Parsed.IsNumeric() {
		t.Error("文本值不应是数值变体")
	}
}

// TestDuplicateCodesPreserved 帧内重复代码按行序保留，不合并
func TestDuplicateCodesPreserved(t *testing.T) {
	frame, err := DecodeFrame("&&\n01083650.40\n01083651.20\n!!", "test", Options{})
	if err != nil {
		t.Fatalf("解码失败: %v", err)
	}
	if len(frame.DataPoints) != 2 {
		t.Fatalf("期望2个数据点, 实际 %d", len(frame.DataPoints))
	}
	v0, _ := frame.DataPoints[0].Parsed.Float()
	v1, _ := frame.DataPoints[1].Parsed.Float()
	if v0 != 3650.40 || v1 != 3651.20 {
		t.Errorf("重复代码顺序/值错误: %v %v", v0, v1)
	}
}

// TestCRLFLineTerminators 串口常见的CRLF行终止符
func TestCRLFLineTerminators(t *testing.T) {
	frame, err := DecodeFrame("&&\r\n01083650.40\r\n011323.38\r\n!!", "test",
		Options{UnitSystem: UnitSystemMetric})
	if err != nil {
		t.Fatalf("解码失败: %v", err)
	}
	if len(frame.DataPoints) != 2 {
		t.Fatalf("期望2个数据点, 实际 %d", len(frame.DataPoints))
	}
	if v, _ := frame.DataPoints[0].Parsed.Float(); v != 3650.40 {
		t.Errorf("CRLF下值解析错误: %v", v)
	}
}

// TestFrameFormat 定界符缺失
func TestFrameFormat(t *testing.T) {
	var formatErr *FrameFormatError
	if _, err := DecodeFrame("01083650.40\n!!", "test", Options{}); !errors.As(err, &formatErr) {
		t.Errorf("缺少起始标记应返回*FrameFormatError: %v", err)
	}
	if _, err := DecodeFrame("&&\n01083650.40", "test", Options{}); !errors.As(err, &formatErr) {
		t.Errorf("缺少结束标记应返回*FrameFormatError: %v", err)
	}
	// 空帧体合法
	frame, err := DecodeFrame("&&\n!!", "test", Options{})
	if err != nil || len(frame.DataPoints) != 0 {
		t.Errorf("空帧体应解码为零数据点: %v %+v", err, frame)
	}
}

// TestFrameConvertTo 解码后显式整帧换算
func TestFrameConvertTo(t *testing.T) {
	frame, err := DecodeFrame("&&\n01083650.40\n011323.38\n0101WELL-A\n!!", "test",
		Options{UnitSystem: UnitSystemMetric})
	if err != nil {
		t.Fatalf("解码失败: %v", err)
	}

	converted, errs := frame.ConvertTo(UnitSystemFPS, nil)
	if len(errs) != 0 {
		t.Fatalf("换算错误: %v", errs)
	}
	// 文本点与无量纲点不参与换算
	if converted != 2 {
		t.Errorf("期望换算2个数据点, 实际 %d", converted)
	}

	dp := frame.DataPoints[0]
	if dp.Unit != units.Feet {
		t.Errorf("换算后单位错误: %s", dp.Unit)
	}
	v, _ := dp.Parsed.Float()
	if math.Abs(v-11976.377952755906) > 1e-6 {
		t.Errorf("换算后值错误: %v", v)
	}
}

// TestValidateFrame 语法校验不依赖符号表
func TestValidateFrame(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		valid bool
	}{
		{"合法帧", "&&\n01083650.40\n!!", true},
		{"空帧体", "&&\n!!", true},
		{"未知符号仍合法", "&&\n99991.0\n!!", true},
		{"缺起始标记", "01083650.40\n!!", false},
		{"缺结束标记", "&&\n01083650.40", false},
		{"数据行过短", "&&\n010\n!!", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateFrame(tc.input)
			if tc.valid && err != nil {
				t.Errorf("应合法, 实际 %v", err)
			}
			if !tc.valid && err == nil {
				t.Error("应非法, 实际通过")
			}
		})
	}
}
