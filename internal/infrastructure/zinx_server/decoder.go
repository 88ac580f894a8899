package zinx_server

import (
	"github.com/aceld/zinx/ziface"
)

// MsgIDWITSData WITS原始数据流的统一消息ID
const MsgIDWITSData = 1

// WITSStreamDecoder WITS数据流解码器
// WITS Level 0是以&&/!!定界的ASCII流，没有长度字段，
// 这里不做拆包，原始数据块直接交给Router，由连接级装配器处理帧边界
type WITSStreamDecoder struct{}

// NewWITSStreamDecoder 创建WITS数据流解码器
func NewWITSStreamDecoder() *WITSStreamDecoder {
	return &WITSStreamDecoder{}
}

// GetLengthField 实现IDecoder接口 - WITS流没有长度字段，返回nil
func (d *WITSStreamDecoder) GetLengthField() *ziface.LengthField {
	return nil
}

// Intercept 实现IDecoder接口 - 给原始数据块打上统一消息ID
func (d *WITSStreamDecoder) Intercept(chain ziface.IChain) ziface.IcResp {
	iMessage := chain.GetIMessage()
	if iMessage == nil {
		return chain.ProceedWithIMessage(iMessage, nil)
	}

	data := iMessage.GetData()

	iMessage.SetMsgID(MsgIDWITSData)
	iMessage.SetDataLen(uint32(len(data)))
	iMessage.SetData(data)

	return chain.ProceedWithIMessage(iMessage, data)
}
