package util

import (
	"fmt"
	"strconv"
)

// ParseLimit 解析数量参数：空值取默认值，0 合法，负数或非数字返回错误
func ParseLimit(s string, def int) (int, error) {
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid limit %q", s)
	}
	return n, nil
}
