package units

import "fmt"

// Unit 表示WITS规范中使用的物理单位
// 每个符号同时声明公制(Metric)和英制(FPS)两套单位，单位之间的换算
// 只在同一单位族(Family)内有意义
type Unit int

// WITS单位定义
const (
	Unitless Unit = iota // 无量纲

	// 长度
	Meters      // 米
	Feet        // 英尺
	Millimeters // 毫米
	Inches      // 英寸

	// 钻进速率
	MetersPerHour // 米/小时
	FeetPerHour   // 英尺/小时

	// 压力
	Kilopascals // 千帕
	Psi         // 磅/平方英寸
	Bar         // 巴

	// 流量
	LitersPerMinute      // 升/分钟
	GallonsPerMinute     // 加仑/分钟
	CubicMetersPerMinute // 立方米/分钟
	BarrelsPerMinute     // 桶/分钟

	// 密度
	KilogramsPerCubicMeter // 千克/立方米
	PoundsPerGallon        // 磅/加仑

	// 温度
	DegreesC // 摄氏度
	DegreesF // 华氏度

	// 力/载荷
	KiloDecaNewtons // 万牛(10kN)
	KiloPounds      // 千磅力
	Kilograms       // 千克力
	PoundsForce     // 磅力

	// 扭矩
	KiloNewtonMeters // 千牛·米
	KiloFootPounds   // 千英尺·磅

	// 体积
	CubicMeters // 立方米
	Barrels     // 桶
)

// Family 表示单位族，换算仅在同族单位之间定义
type Family int

const (
	FamilyNone Family = iota
	FamilyLength
	FamilyDrillRate
	FamilyPressure
	FamilyFlowRate
	FamilyDensity
	FamilyTemperature
	FamilyForce
	FamilyTorque
	FamilyVolume
)

// unitCodes WITS单位助记码，CLI与HTTP接口以此为交互格式
var unitCodes = map[Unit]string{
	Unitless:               "UNITLESS",
	Meters:                 "M",
	Feet:                   "F",
	Millimeters:            "MM",
	Inches:                 "IN",
	MetersPerHour:          "MHR",
	FeetPerHour:            "FHR",
	Kilopascals:            "KPA",
	Psi:                    "PSI",
	Bar:                    "BAR",
	LitersPerMinute:        "LPM",
	GallonsPerMinute:       "GPM",
	CubicMetersPerMinute:   "M3PM",
	BarrelsPerMinute:       "BPM",
	KilogramsPerCubicMeter: "KGM3",
	PoundsPerGallon:        "PPG",
	DegreesC:               "DEGC",
	DegreesF:               "DEGF",
	KiloDecaNewtons:        "KDN",
	KiloPounds:             "KLB",
	Kilograms:              "KGM",
	PoundsForce:            "LBF",
	KiloNewtonMeters:       "KNM",
	KiloFootPounds:         "KFLB",
	CubicMeters:            "M3",
	Barrels:                "BBL",
}

// familyNames 单位族的展示名称
var familyNames = map[Family]string{
	FamilyNone:        "Unitless",
	FamilyLength:      "Lengths",
	FamilyDrillRate:   "Drilling Rates",
	FamilyPressure:    "Pressures",
	FamilyFlowRate:    "Flow Rates",
	FamilyDensity:     "Densities",
	FamilyTemperature: "Temperatures",
	FamilyForce:       "Weights/Forces",
	FamilyTorque:      "Torques",
	FamilyVolume:      "Volumes",
}

// codeToUnit 反向索引，在init中由unitCodes构建
var codeToUnit = make(map[string]Unit, len(unitCodes))

func init() {
	for u, code := range unitCodes {
		if _, dup := codeToUnit[code]; dup {
			panic(fmt.Sprintf("units: 单位助记码重复: %s", code))
		}
		codeToUnit[code] = u
	}
}

// String 返回单位的WITS助记码
func (u Unit) String() string {
	if code, ok := unitCodes[u]; ok {
		return code
	}
	return fmt.Sprintf("Unit(%d)", int(u))
}

// Family 返回单位所属的单位族
func (u Unit) Family() Family {
	if t, ok := transforms[u]; ok {
		return t.family
	}
	return FamilyNone
}

// String 返回单位族的展示名称
func (f Family) String() string {
	if name, ok := familyNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Family(%d)", int(f))
}

// ParseUnit 按WITS助记码解析单位，大小写不敏感
func ParseUnit(code string) (Unit, bool) {
	u, ok := codeToUnit[normalizeCode(code)]
	return u, ok
}

// All 返回全部单位，按单位族分组的固定顺序
func All() []Unit {
	return []Unit{
		Meters, Feet, Millimeters, Inches,
		MetersPerHour, FeetPerHour,
		Kilopascals, Psi, Bar,
		LitersPerMinute, GallonsPerMinute, CubicMetersPerMinute, BarrelsPerMinute,
		KilogramsPerCubicMeter, PoundsPerGallon,
		DegreesC, DegreesF,
		KiloDecaNewtons, KiloPounds, Kilograms, PoundsForce,
		KiloNewtonMeters, KiloFootPounds,
		CubicMeters, Barrels,
		Unitless,
	}
}

func normalizeCode(code string) string {
	b := []byte(code)
	for i := range b {
		if b[i] >= 'a' && b[i] <= 'z' {
			b[i] -= 'a' - 'A'
		}
	}
	return string(b)
}
