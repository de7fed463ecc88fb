package comparator

import (
	"github.com/aldebaro/hd-organizer/pkg/hasher"
)

// HashComparator 通过 SHA-256 摘要判定相等
// 摘要经由缓存获取，一次运行内同一文件只读一次
// 任何一侧计算失败即为 Failed，失败的文件与自身重试也不相等
type HashComparator struct {
	cache *hasher.Cache
}

func NewHashComparator(cache *hasher.Cache) *HashComparator {
	return &HashComparator{cache: cache}
}

func (c *HashComparator) Compare(a, b string) Outcome {
	sumA, errA := c.cache.Sum(a)
	sumB, errB := c.cache.Sum(b)

	if errA != nil || errB != nil || sumA == "" || sumB == "" {
		return Failed
	}

	if sumA == sumB {
		return Equal
	}
	return NotEqual
}
