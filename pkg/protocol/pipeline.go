package protocol

import "context"

// Pipeline 解码流水线：装配器与解码器的组合，公共入口
// 每个流水线服务一个逻辑流(连接/文件/串口)，装配状态互相独立；
// 多个流水线只共享只读注册表与无状态换算器，读取无需加锁
type Pipeline struct {
	asm    *Assembler
	dec    *Decoder
	source string
}

// NewPipeline 创建流水线，source为调用方提供的来源标识
func NewPipeline(source string, opts Options) *Pipeline {
	return &Pipeline{
		asm:    NewAssembler(opts.maxFrameBytes()),
		dec:    NewDecoder(opts),
		source: source,
	}
}

// Feed 送入一个文本块，同步返回本块产生的全部结果
// 装配器识别出的每个跨度恰好对应一个结果：完整帧解码为Frame，
// 装配/解码错误原样作为该跨度的结果，绝不静默丢帧
func (p *Pipeline) Feed(chunk string) []Result {
	raws := p.asm.Feed(chunk)
	if len(raws) == 0 {
		return nil
	}

	results := make([]Result, 0, len(raws))
	for _, raw := range raws {
		if raw.Err != nil {
			results = append(results, Result{Err: raw.Err})
			continue
		}
		frame, err := p.dec.DecodeFrame(raw.Text, p.source)
		if err != nil {
			results = append(results, Result{Err: err})
			continue
		}
		results = append(results, Result{Frame: frame})
	}
	return results
}

// Run 以通道形式驱动流水线
// 逐块消费chunks并按序发出结果，chunks关闭或ctx取消后结束；
// 解码本身不阻塞，挂起点只在等待下一个输入块
func (p *Pipeline) Run(ctx context.Context, chunks <-chan string) <-chan Result {
	out := make(chan Result)
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case chunk, ok := <-chunks:
				if !ok {
					return
				}
				for _, res := range p.Feed(chunk) {
					select {
					case <-ctx.Done():
						return
					case out <- res:
					}
				}
			}
		}
	}()
	return out
}

// DecodeStream 解码一段可能含多帧的静态文本(文件内容、CLI输入)
func DecodeStream(data, source string, opts Options) []Result {
	return NewPipeline(source, opts).Feed(data)
}

// SplitFrames 仅做帧切分不解码，返回data中的全部完整帧文本
func SplitFrames(data string) []string {
	asm := NewAssembler(len(data) + 1)
	var frames []string
	for _, raw := range asm.Feed(data) {
		if raw.Err == nil {
			frames = append(frames, raw.Text)
		}
	}
	return frames
}
