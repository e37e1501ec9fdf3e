package util

import (
	"strconv"
)

// ParseIntDefault 解析查询参数，为空、非法或不为正时返回 def
func ParseIntDefault(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
