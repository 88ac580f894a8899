package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bujia-iot/iot-wits/internal/storage"
	"github.com/bujia-iot/iot-wits/pkg/protocol"
	"github.com/bujia-iot/iot-wits/pkg/symbols"
	"github.com/bujia-iot/iot-wits/pkg/units"
)

// Handlers HTTP API处理器集合
type Handlers struct {
	store    *storage.FrameStore
	registry *symbols.Registry
}

// RegisterHandlers 注册HTTP处理器
func RegisterHandlers(r *gin.Engine, store *storage.FrameStore) {
	h := &Handlers{
		store:    store,
		registry: symbols.Default(),
	}

	// 健康检查（根路径）
	r.GET("/health", h.HandleHealthCheck)

	// API路由组 v1版本
	api := r.Group("/api/v1")
	{
		// 符号字典API
		api.GET("/symbols", h.HandleSymbolList)
		api.GET("/symbols/:code", h.HandleSymbolGet)
		api.GET("/records", h.HandleRecordList)

		// 解码与转换API
		api.POST("/convert", h.HandleConvert)
		api.POST("/decode", h.HandleDecode)
		api.POST("/validate", h.HandleValidate)

		// 数据源查询API
		api.GET("/sources", h.HandleSourceList)
		api.GET("/latest", h.HandleLatest)
		api.GET("/history", h.HandleHistory)
	}
}

// HandleHealthCheck 健康检查
func (h *Handlers) HandleHealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, APIResponse{
		Code:    0,
		Message: "success",
		Data: HealthResponse{
			Status:    "ok",
			Timestamp: time.Now(),
			Version:   "1.0.0",
		},
	})
}

// symbolInfo 符号定义转API结构
func symbolInfo(def *symbols.SymbolDefinition) SymbolInfo {
	return SymbolInfo{
		Code:        def.Code,
		Name:        def.Name,
		Description: def.Description,
		RecordType:  def.RecordType,
		DataType:    def.DataType.String(),
		MetricUnit:  def.MetricUnit.String(),
		FPSUnit:     def.FPSUnit.String(),
	}
}

// HandleSymbolList 符号列表，支持按记录类型过滤与名称搜索
func (h *Handlers) HandleSymbolList(c *gin.Context) {
	var defs []*symbols.SymbolDefinition

	switch {
	case c.Query("q") != "":
		caseInsensitive := c.Query("caseSensitive") != "true"
		defs = h.registry.Search(c.Query("q"), caseInsensitive)
	case c.Query("record") != "":
		recordType, err := strconv.Atoi(c.Query("record"))
		if err != nil {
			c.JSON(http.StatusBadRequest, APIResponse{Code: 400, Message: "record参数必须为整数"})
			return
		}
		defs = h.registry.ByRecordType(recordType)
	default:
		for _, rt := range h.registry.RecordTypes() {
			defs = append(defs, h.registry.ByRecordType(rt)...)
		}
	}

	resp := SymbolListResponse{Symbols: make([]SymbolInfo, 0, len(defs)), Total: len(defs)}
	for _, def := range defs {
		resp.Symbols = append(resp.Symbols, symbolInfo(def))
	}
	c.JSON(http.StatusOK, APIResponse{Code: 0, Message: "success", Data: resp})
}

// HandleSymbolGet 按代码查询单个符号
func (h *Handlers) HandleSymbolGet(c *gin.Context) {
	code := c.Param("code")
	def, ok := h.registry.Lookup(code)
	if !ok {
		c.JSON(http.StatusNotFound, APIResponse{Code: 404, Message: "符号不存在: " + code})
		return
	}
	c.JSON(http.StatusOK, APIResponse{Code: 0, Message: "success", Data: symbolInfo(def)})
}

// HandleRecordList 记录类型列表
func (h *Handlers) HandleRecordList(c *gin.Context) {
	recordTypes := h.registry.RecordTypes()
	resp := RecordListResponse{Records: make([]RecordInfo, 0, len(recordTypes)), Total: len(recordTypes)}
	for _, rt := range recordTypes {
		resp.Records = append(resp.Records, RecordInfo{
			RecordType:  rt,
			Description: symbols.RecordDescription(rt),
			Category:    symbols.RecordCategory(rt),
			SymbolCount: len(h.registry.ByRecordType(rt)),
		})
	}
	c.JSON(http.StatusOK, APIResponse{Code: 0, Message: "success", Data: resp})
}

// HandleConvert 单位转换
func (h *Handlers) HandleConvert(c *gin.Context) {
	var req ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, APIResponse{Code: 400, Message: "参数错误: " + err.Error()})
		return
	}

	from, ok := units.ParseUnit(req.From)
	if !ok {
		c.JSON(http.StatusBadRequest, APIResponse{Code: 400, Message: "未知单位: " + req.From})
		return
	}
	to, ok := units.ParseUnit(req.To)
	if !ok {
		c.JSON(http.StatusBadRequest, APIResponse{Code: 400, Message: "未知单位: " + req.To})
		return
	}

	converted, err := units.Convert(req.Value, from, to)
	if err != nil {
		c.JSON(http.StatusBadRequest, APIResponse{Code: 400, Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, APIResponse{
		Code:    0,
		Message: "success",
		Data: ConvertResponse{
			Value:     req.Value,
			From:      from.String(),
			To:        to.String(),
			Converted: converted,
		},
	})
}

// decodedFrame 帧转API结构
func decodedFrame(frame *protocol.Frame) DecodedFrame {
	df := DecodedFrame{
		FrameID:   frame.FrameID,
		Timestamp: frame.Timestamp,
		Source:    frame.Source,
		Points:    make([]DecodedPoint, 0, len(frame.DataPoints)),
	}
	for _, dp := range frame.DataPoints {
		df.Points = append(df.Points, DecodedPoint{
			Code:        dp.SymbolCode,
			Name:        dp.SymbolName,
			Description: dp.SymbolDescription,
			RecordType:  dp.RecordType,
			DataType:    dp.DataType.String(),
			Raw:         dp.RawValue,
			Value:       dp.Parsed.Interface(),
			Unit:        dp.Unit.String(),
		})
	}
	for _, e := range frame.Errors {
		df.Errors = append(df.Errors, e.Error())
	}
	return df
}

// HandleDecode 解码一段含定界符的原始数据，可能含多帧
func (h *Handlers) HandleDecode(c *gin.Context) {
	var req DecodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, APIResponse{Code: 400, Message: "参数错误: " + err.Error()})
		return
	}

	unitSystem, ok := protocol.ParseUnitSystem(req.UnitSystem)
	if !ok && req.UnitSystem != "" {
		c.JSON(http.StatusBadRequest, APIResponse{Code: 400, Message: "未知单位制: " + req.UnitSystem})
		return
	}

	results := protocol.DecodeStream(req.Data, "http", protocol.Options{
		StrictMode: req.Strict,
		UnitSystem: unitSystem,
	})

	resp := DecodeResponse{}
	for _, res := range results {
		if res.Err != nil {
			resp.Errors = append(resp.Errors, res.Err.Error())
			continue
		}
		resp.Frames = append(resp.Frames, decodedFrame(res.Frame))
	}
	c.JSON(http.StatusOK, APIResponse{Code: 0, Message: "success", Data: resp})
}

// HandleValidate 校验单帧格式
func (h *Handlers) HandleValidate(c *gin.Context) {
	var req ValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, APIResponse{Code: 400, Message: "参数错误: " + err.Error()})
		return
	}

	resp := ValidateResponse{Valid: true}
	if err := protocol.ValidateFrame(req.Data); err != nil {
		resp.Valid = false
		resp.Reason = err.Error()
	}
	c.JSON(http.StatusOK, APIResponse{Code: 0, Message: "success", Data: resp})
}

// HandleSourceList 列出所有已见数据源
func (h *Handlers) HandleSourceList(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusServiceUnavailable, APIResponse{Code: 503, Message: "帧存储未初始化"})
		return
	}
	sources, err := h.store.Sources(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, APIResponse{Code: 500, Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, APIResponse{
		Code:    0,
		Message: "success",
		Data:    SourceListResponse{Sources: sources, Total: len(sources)},
	})
}

// HandleLatest 查询某数据源各符号的最新值
func (h *Handlers) HandleLatest(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusServiceUnavailable, APIResponse{Code: 503, Message: "帧存储未初始化"})
		return
	}
	source := c.Query("source")
	if source == "" {
		c.JSON(http.StatusBadRequest, APIResponse{Code: 400, Message: "缺少source参数"})
		return
	}
	latest, err := h.store.Latest(c.Request.Context(), source)
	if err != nil {
		c.JSON(http.StatusInternalServerError, APIResponse{Code: 500, Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, APIResponse{Code: 0, Message: "success", Data: latest})
}

// HandleHistory 查询某数据源最近的历史帧
func (h *Handlers) HandleHistory(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusServiceUnavailable, APIResponse{Code: 503, Message: "帧存储未初始化"})
		return
	}
	source := c.Query("source")
	if source == "" {
		c.JSON(http.StatusBadRequest, APIResponse{Code: 400, Message: "缺少source参数"})
		return
	}
	count := 0
	if raw := c.Query("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, APIResponse{Code: 400, Message: "count参数必须为整数"})
			return
		}
		count = n
	}
	frames, err := h.store.History(c.Request.Context(), source, count)
	if err != nil {
		c.JSON(http.StatusInternalServerError, APIResponse{Code: 500, Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, APIResponse{Code: 0, Message: "success", Data: frames})
}
