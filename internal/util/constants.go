package util

// 目录数据源类型
const (
	SourceFile  = "file"
	SourceHTTP  = "http"
	SourceMinio = "minio"
	SourceOSS   = "oss"
)

const (
	ExportFileName = "levels.json"
	MimeJSON       = "application/json"
)

// 删除操作的确认提示
const (
	ConfirmDeleteLevel = "Are you sure you want to delete this level? This action cannot be undone."
	ConfirmDeleteCopy  = "Are you sure you want to delete this copy?"
	ConfirmRemoveCopy  = "Remove this copy from the level?"
)

// 请求ID 的上下文键与响应头
const (
	RequestIDKey    = "request_id"
	RequestIDHeader = "X-Request-ID"
)
