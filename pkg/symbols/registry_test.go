package symbols

import (
	"testing"

	"github.com/bujia-iot/iot-wits/pkg/units"
)

// TestLookup 按代码查找符号定义
func TestLookup(t *testing.T) {
	r := Default()

	testCases := []struct {
		code     string
		found    bool
		name     string
		metric   units.Unit
		fps      units.Unit
		dataType DataType
	}{
		{"0108", true, "DBTM", units.Meters, units.Feet, TypeFloat},
		{"0113", true, "ROPA", units.MetersPerHour, units.FeetPerHour, TypeFloat},
		{"0101", true, "WELLID", units.Unitless, units.Unitless, TypeAscii},
		{"0136", true, "STKC", units.Unitless, units.Unitless, TypeLong},
		{"9999", false, "", 0, 0, 0},
		{"0100", false, "", 0, 0, 0},
	}

	for _, tc := range testCases {
		def, ok := r.Lookup(tc.code)
		if ok != tc.found {
			t.Errorf("Lookup(%q) found=%v 期望 %v", tc.code, ok, tc.found)
			continue
		}
		if !ok {
			continue
		}
		if def.Name != tc.name {
			t.Errorf("Lookup(%q).Name=%s 期望 %s", tc.code, def.Name, tc.name)
		}
		if def.MetricUnit != tc.metric || def.FPSUnit != tc.fps {
			t.Errorf("Lookup(%q) 单位=%s/%s 期望 %s/%s",
				tc.code, def.MetricUnit, def.FPSUnit, tc.metric, tc.fps)
		}
		if def.DataType != tc.dataType {
			t.Errorf("Lookup(%q).DataType=%s 期望 %s", tc.code, def.DataType, tc.dataType)
		}
	}
}

// TestByRecordType 按记录类型查询须保持符号表内的插入顺序
func TestByRecordType(t *testing.T) {
	r := Default()

	rec1 := r.ByRecordType(1)
	if len(rec1) == 0 {
		t.Fatal("记录01不应为空")
	}
	// 插入顺序即代码升序(符号表按代码排列)
	for i := 1; i < len(rec1); i++ {
		if rec1[i-1].Code >= rec1[i].Code {
			t.Fatalf("记录01顺序错乱: %s 在 %s 之前", rec1[i-1].Code, rec1[i].Code)
		}
	}
	for _, def := range rec1 {
		if def.RecordType != 1 {
			t.Errorf("记录类型不符: %s 属于 %d", def.Code, def.RecordType)
		}
	}

	if got := r.ByRecordType(99); len(got) != 0 {
		t.Errorf("未知记录类型应返回空序列, 实际 %d 条", len(got))
	}
}

// TestSearch 名称与说明的子串检索
func TestSearch(t *testing.T) {
	r := Default()

	// 大小写不敏感检索"depth"应至少命中井深相关符号
	hits := r.Search("depth", true)
	if len(hits) == 0 {
		t.Fatal("检索depth无结果")
	}
	found := map[string]bool{}
	for _, def := range hits {
		found[def.Code] = true
	}
	for _, want := range []string{"0108", "0110", "0708"} {
		if !found[want] {
			t.Errorf("检索depth未命中 %s", want)
		}
	}

	// 大小写敏感检索不应命中小写形式
	if hits := r.Search("DEPTH", false); len(hits) != 0 {
		t.Errorf("大小写敏感检索DEPTH不应有结果, 实际 %d 条", len(hits))
	}

	// 按符号名检索
	hits = r.Search("ROPA", false)
	if len(hits) != 1 || hits[0].Code != "0113" {
		t.Errorf("检索ROPA结果错误: %+v", hits)
	}
}

// TestRecordTypes 已注册记录类型须升序且与符号表一致
func TestRecordTypes(t *testing.T) {
	r := Default()

	rts := r.RecordTypes()
	if len(rts) == 0 {
		t.Fatal("记录类型集不应为空")
	}
	for i := 1; i < len(rts); i++ {
		if rts[i-1] >= rts[i] {
			t.Fatalf("记录类型未升序: %v", rts)
		}
	}
	for _, rt := range rts {
		if len(r.ByRecordType(rt)) == 0 {
			t.Errorf("记录类型 %d 无符号", rt)
		}
		if RecordDescription(rt) == "Unknown" {
			t.Errorf("记录类型 %d 缺少说明", rt)
		}
	}
}

// TestCatalogInvariants 符号表整体不变式：4位数字代码、前两位等于记录类型
func TestCatalogInvariants(t *testing.T) {
	r := Default()
	if r.Count() != len(catalog) {
		t.Fatalf("注册表数量 %d 与符号表 %d 不一致", r.Count(), len(catalog))
	}
	for i := range catalog {
		def := &catalog[i]
		if err := validateDefinition(def); err != nil {
			t.Errorf("符号 %s 非法: %v", def.Code, err)
		}
	}
}

// TestNewRegistryPanics 符号表数据非法属于构建期错误，必须panic
func TestNewRegistryPanics(t *testing.T) {
	testCases := []struct {
		name string
		defs []SymbolDefinition
	}{
		{"代码过短", []SymbolDefinition{{Code: "108", Name: "X", RecordType: 1}}},
		{"代码非数字", []SymbolDefinition{{Code: "01A8", Name: "X", RecordType: 1}}},
		{"记录类型不符", []SymbolDefinition{{Code: "0108", Name: "X", RecordType: 2}}},
		{"代码重复", []SymbolDefinition{
			{Code: "0108", Name: "X", RecordType: 1},
			{Code: "0108", Name: "Y", RecordType: 1},
		}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("未发生panic")
				}
			}()
			newRegistry(tc.defs)
		})
	}
}
