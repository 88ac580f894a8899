package units

import "fmt"

// ConversionError 表示两个单位不属于同一单位族，无法换算
type ConversionError struct {
	From Unit
	To   Unit
}

// Error 实现error接口
func (e *ConversionError) Error() string {
	return fmt.Sprintf("单位换算不支持: %s -> %s (单位族 %s / %s)",
		e.From, e.To, e.From.Family(), e.To.Family())
}

// transform 单位到族基准单位的仿射变换: base = value*scale + offset
// 除温度族外offset恒为0
type transform struct {
	family Family
	scale  float64
	offset float64
}

// transforms 各单位相对族基准的换算系数
// 基准单位: 米、米/小时、千帕、升/分钟、千克/立方米、摄氏度、牛、牛·米、立方米
var transforms = map[Unit]transform{
	Unitless: {FamilyNone, 1, 0},

	Meters:      {FamilyLength, 1, 0},
	Feet:        {FamilyLength, 0.3048, 0},
	Millimeters: {FamilyLength, 0.001, 0},
	Inches:      {FamilyLength, 0.0254, 0},

	MetersPerHour: {FamilyDrillRate, 1, 0},
	FeetPerHour:   {FamilyDrillRate, 0.3048, 0},

	Kilopascals: {FamilyPressure, 1, 0},
	Psi:         {FamilyPressure, 6.894757293168361, 0},
	Bar:         {FamilyPressure, 100, 0},

	LitersPerMinute:      {FamilyFlowRate, 1, 0},
	GallonsPerMinute:     {FamilyFlowRate, 3.785411784, 0},
	CubicMetersPerMinute: {FamilyFlowRate, 1000, 0},
	BarrelsPerMinute:     {FamilyFlowRate, 158.987294928, 0},

	KilogramsPerCubicMeter: {FamilyDensity, 1, 0},
	PoundsPerGallon:        {FamilyDensity, 119.82642731689663, 0},

	DegreesC: {FamilyTemperature, 1, 0},
	DegreesF: {FamilyTemperature, 5.0 / 9.0, -160.0 / 9.0},

	KiloDecaNewtons: {FamilyForce, 10000, 0},
	KiloPounds:      {FamilyForce, 4448.2216152605, 0},
	Kilograms:       {FamilyForce, 9.80665, 0},
	PoundsForce:     {FamilyForce, 4.4482216152605, 0},

	KiloNewtonMeters: {FamilyTorque, 1000, 0},
	KiloFootPounds:   {FamilyTorque, 1355.8179483314004, 0},

	CubicMeters: {FamilyVolume, 1, 0},
	Barrels:     {FamilyVolume, 0.158987294928, 0},
}

// Convert 在同一单位族内换算数值
// from == to 时原值返回（位级一致），跨族换算返回*ConversionError
func Convert(value float64, from, to Unit) (float64, error) {
	if from == to {
		return value, nil
	}

	ft, ok := transforms[from]
	if !ok {
		return 0, &ConversionError{From: from, To: to}
	}
	tt, ok := transforms[to]
	if !ok {
		return 0, &ConversionError{From: from, To: to}
	}
	if ft.family != tt.family || ft.family == FamilyNone {
		return 0, &ConversionError{From: from, To: to}
	}

	base := value*ft.scale + ft.offset
	return (base - tt.offset) / tt.scale, nil
}

// IsConvertible 判断两个单位之间是否定义了换算
func IsConvertible(from, to Unit) bool {
	if from == to {
		return true
	}
	ft, ok1 := transforms[from]
	tt, ok2 := transforms[to]
	return ok1 && ok2 && ft.family == tt.family && ft.family != FamilyNone
}

// Factor 返回纯比例族的换算因子(to = from * factor)
// 温度族带偏移项，不存在单一因子，返回false
func Factor(from, to Unit) (float64, bool) {
	if from == to {
		return 1, true
	}
	if !IsConvertible(from, to) {
		return 0, false
	}
	ft := transforms[from]
	tt := transforms[to]
	if ft.offset != 0 || tt.offset != 0 {
		return 0, false
	}
	return ft.scale / tt.scale, true
}
