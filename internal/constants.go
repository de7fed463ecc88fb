package internal

const (
	// 数据库默认路径
	DefaultDatabasePath = "~/.hd-organizer/index.db"

	// 配置文件默认路径
	DefaultConfigPath = "~/.hd-organizer/config.yaml"

	// 文件比较的分块大小
	DefaultChunkSize = 8192

	// 递归扫描的最大深度，防止符号链接环导致的死循环
	DefaultMaxDepth = 128

	// 分析报告默认显示的组数
	DefaultTopGroups = 20

	// 结果文件默认前缀
	DefaultOutputPrefix = "duplicates_results"

	// 类型检测的工作线程数
	DefaultDetectWorkers = 4
)
