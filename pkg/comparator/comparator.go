package comparator

// Outcome 文件内容比较的三态结果
// 读取失败不抛给调用方，而是显式的 Failed 分支：
// 出错的文件永远不会被并入重复组
type Outcome int

const (
	Equal Outcome = iota
	NotEqual
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Equal:
		return "equal"
	case NotEqual:
		return "not-equal"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Comparator 内容相等性判定接口
type Comparator interface {
	Compare(a, b string) Outcome
}
