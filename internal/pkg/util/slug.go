package util

import (
	"github.com/gosimple/slug"
)

// Slugify 从名称/标题推导小写连字符 slug，含 Unicode 规范化
func Slugify(name string) string {
	return slug.Make(name)
}
