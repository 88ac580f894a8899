package protocol

// ValidateFrame 只校验帧语法，不做符号解析与类型转换
// 合法条件：以起始标记开头、结束标记结尾，帧体每个非空行至少4字符
func ValidateFrame(frameText string) error {
	body, err := frameBody(frameText)
	if err != nil {
		return err
	}
	for _, line := range body {
		if len(line) < 4 {
			return &LineTooShortError{Line: line}
		}
	}
	return nil
}
