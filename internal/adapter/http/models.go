package http

import "time"

// APIResponse API统一响应结构
type APIResponse struct {
	Code    int         `json:"code"`    // 响应码，0表示成功
	Message string      `json:"message"` // 响应消息
	Data    interface{} `json:"data,omitempty"`
}

// HealthResponse 健康检查响应
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
}

// SymbolInfo 符号信息
type SymbolInfo struct {
	Code        string `json:"code"`        // 4位符号代码
	Name        string `json:"name"`        // 助记名
	Description string `json:"description"` // 描述
	RecordType  int    `json:"recordType"`  // 所属记录类型
	DataType    string `json:"dataType"`    // A/F/S/L
	MetricUnit  string `json:"metricUnit"`  // 公制单位
	FPSUnit     string `json:"fpsUnit"`     // 英制单位
}

// SymbolListResponse 符号列表响应
type SymbolListResponse struct {
	Symbols []SymbolInfo `json:"symbols"`
	Total   int          `json:"total"`
}

// RecordInfo 记录类型信息
type RecordInfo struct {
	RecordType  int    `json:"recordType"`
	Description string `json:"description"`
	Category    string `json:"category"`
	SymbolCount int    `json:"symbolCount"`
}

// RecordListResponse 记录类型列表响应
type RecordListResponse struct {
	Records []RecordInfo `json:"records"`
	Total   int          `json:"total"`
}

// ConvertRequest 单位转换请求
type ConvertRequest struct {
	Value float64 `json:"value"`
	From  string  `json:"from" binding:"required"` // 源单位代码，如 M
	To    string  `json:"to" binding:"required"`   // 目标单位代码，如 F
}

// ConvertResponse 单位转换响应
type ConvertResponse struct {
	Value     float64 `json:"value"`
	From      string  `json:"from"`
	To        string  `json:"to"`
	Converted float64 `json:"converted"`
}

// DecodeRequest 帧解码请求
type DecodeRequest struct {
	Data       string `json:"data" binding:"required"` // 含&&/!!定界符的原始数据
	UnitSystem string `json:"unitSystem"`              // fps(默认) 或 metric
	Strict     bool   `json:"strict"`
}

// DecodedPoint 解码后的数据点
type DecodedPoint struct {
	Code        string      `json:"code"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	RecordType  int         `json:"recordType"`
	DataType    string      `json:"dataType"`
	Raw         string      `json:"raw"`
	Value       interface{} `json:"value"`
	Unit        string      `json:"unit"`
}

// DecodedFrame 解码后的帧
type DecodedFrame struct {
	FrameID   string         `json:"frameId"`
	Timestamp time.Time      `json:"timestamp"`
	Source    string         `json:"source"`
	Points    []DecodedPoint `json:"points"`
	Errors    []string       `json:"errors,omitempty"`
}

// DecodeResponse 帧解码响应
type DecodeResponse struct {
	Frames []DecodedFrame `json:"frames"`
	Errors []string       `json:"errors,omitempty"` // 流级错误（帧定界问题）
}

// ValidateRequest 帧校验请求
type ValidateRequest struct {
	Data string `json:"data" binding:"required"`
}

// ValidateResponse 帧校验响应
type ValidateResponse struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
}

// SourceListResponse 数据源列表响应
type SourceListResponse struct {
	Sources []string `json:"sources"`
	Total   int      `json:"total"`
}
