package constants

type StorageDriver string

const (
	StorageSQLite StorageDriver = "sqlite"
	StorageFile   StorageDriver = "file"
	StorageRedis  StorageDriver = "redis"
)
