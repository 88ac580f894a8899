package symbols

import (
	"fmt"

	"github.com/bujia-iot/iot-wits/pkg/units"
)

// DataType 表示WITS符号声明的数据类型
// 解码时按声明类型强制转换，绝不根据值的形状推断
type DataType int

const (
	TypeAscii DataType = iota // A: 文本，原样保留
	TypeFloat                 // F: 浮点数
	TypeShort                 // S: 短整型，拒绝小数文本
	TypeLong                  // L: 长整型，拒绝小数文本
)

// String 返回WITS规范中的类型助记符
func (t DataType) String() string {
	switch t {
	case TypeAscii:
		return "A"
	case TypeFloat:
		return "F"
	case TypeShort:
		return "S"
	case TypeLong:
		return "L"
	}
	return fmt.Sprintf("DataType(%d)", int(t))
}

// IsNumeric 浮点与整型均为数值类型
func (t DataType) IsNumeric() bool {
	return t == TypeFloat || t == TypeShort || t == TypeLong
}

// SymbolDefinition WITS符号定义
// 代码固定为4位ASCII数字：前两位是记录类型，后两位是记录内条目号
// 注册表构建完成后不可变，解码过程只读访问
type SymbolDefinition struct {
	Code        string     // 4位数字代码，如 "0108"
	Name        string     // 符号助记名，如 "DBTM"
	Description string     // 符号说明
	RecordType  int        // 所属记录类型(1-25)
	DataType    DataType   // 声明的数据类型
	MetricUnit  units.Unit // 公制单位
	FPSUnit     units.Unit // 英制单位
}

// Unit 按单位制偏好返回符号声明的单位
func (s *SymbolDefinition) Unit(metric bool) units.Unit {
	if metric {
		return s.MetricUnit
	}
	return s.FPSUnit
}
