package symbols

import (
	"fmt"
	"sort"
	"strings"
)

// Registry WITS符号注册表
// 进程启动时构建一次，之后为只读，可被任意数量的解码流水线无锁共享
type Registry struct {
	byCode       map[string]*SymbolDefinition
	byRecordType map[int][]*SymbolDefinition
	recordTypes  []int
	count        int
}

// defaultRegistry 由内置符号表构建的全局注册表
var defaultRegistry = newRegistry(catalog)

// Default 返回内置WITS符号注册表
func Default() *Registry {
	return defaultRegistry
}

// newRegistry 从符号定义表构建注册表
// 符号表是编译期资产，表内数据非法说明构建本身已坏，直接panic
func newRegistry(defs []SymbolDefinition) *Registry {
	r := &Registry{
		byCode:       make(map[string]*SymbolDefinition, len(defs)),
		byRecordType: make(map[int][]*SymbolDefinition),
	}

	for i := range defs {
		def := &defs[i]
		if err := validateDefinition(def); err != nil {
			panic(fmt.Sprintf("symbols: 符号表数据非法: %v", err))
		}
		if _, dup := r.byCode[def.Code]; dup {
			panic(fmt.Sprintf("symbols: 符号代码重复: %s", def.Code))
		}
		r.byCode[def.Code] = def
		r.byRecordType[def.RecordType] = append(r.byRecordType[def.RecordType], def)
	}

	for rt := range r.byRecordType {
		r.recordTypes = append(r.recordTypes, rt)
	}
	sort.Ints(r.recordTypes)
	r.count = len(defs)
	return r
}

// validateDefinition 校验单条符号定义的构建期不变式
func validateDefinition(def *SymbolDefinition) error {
	if len(def.Code) != 4 {
		return fmt.Errorf("代码 %q 长度不是4", def.Code)
	}
	for i := 0; i < 4; i++ {
		if def.Code[i] < '0' || def.Code[i] > '9' {
			return fmt.Errorf("代码 %q 含非数字字符", def.Code)
		}
	}
	rt := int(def.Code[0]-'0')*10 + int(def.Code[1]-'0')
	if rt != def.RecordType {
		return fmt.Errorf("代码 %s 与记录类型 %d 不一致", def.Code, def.RecordType)
	}
	if def.Name == "" {
		return fmt.Errorf("代码 %s 缺少符号名", def.Code)
	}
	return nil
}

// Lookup 按4位代码查找符号定义，未命中返回false而非错误
func (r *Registry) Lookup(code string) (*SymbolDefinition, bool) {
	def, ok := r.byCode[code]
	return def, ok
}

// ByRecordType 返回指定记录类型的全部符号，保持符号表内的插入顺序
func (r *Registry) ByRecordType(recordType int) []*SymbolDefinition {
	defs := r.byRecordType[recordType]
	out := make([]*SymbolDefinition, len(defs))
	copy(out, defs)
	return out
}

// Search 在符号名与说明中做子串匹配
func (r *Registry) Search(substr string, caseInsensitive bool) []*SymbolDefinition {
	if caseInsensitive {
		substr = strings.ToLower(substr)
	}

	var out []*SymbolDefinition
	for _, rt := range r.recordTypes {
		for _, def := range r.byRecordType[rt] {
			name, desc := def.Name, def.Description
			if caseInsensitive {
				name, desc = strings.ToLower(name), strings.ToLower(desc)
			}
			if strings.Contains(name, substr) || strings.Contains(desc, substr) {
				out = append(out, def)
			}
		}
	}
	return out
}

// RecordTypes 返回已注册的记录类型，升序
func (r *Registry) RecordTypes() []int {
	out := make([]int, len(r.recordTypes))
	copy(out, r.recordTypes)
	return out
}

// Count 返回符号总数
func (r *Registry) Count() int {
	return r.count
}
