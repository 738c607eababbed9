package util

const StorageLocal = "local"

const (
	SessionBackendFile     = "file"
	SessionBackendRedis    = "redis"
	SessionBackendDatabase = "database"
	SessionBackendObject   = "object"
)

const (
	DeviceIDHeader = "X-Device-ID"
	// DefaultSessionKey 客户端 localStorage 使用的键
	DefaultSessionKey = "aiLearnUser"
)

const (
	PlatformIOS     = "ios"
	PlatformAndroid = "android"
	PlatformWeb     = "web"
)
