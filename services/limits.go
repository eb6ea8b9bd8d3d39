package services

import "time"

const (
	MaxFilesPerUser = 20
	// MaxFileSize is inclusive: a file of exactly this size is accepted.
	MaxFileSize uint64 = 2 << 30

	PartSize          uint64 = 10 << 20
	MinPartNumber     int32  = 1
	MaxPartNumber     int32  = 10000
	DownloadChunkSize        = 64 << 10

	SessionRetention = 7 * 24 * time.Hour
	filesCacheTTL    = 5 * time.Minute
)

// TotalParts is the number of PartSize parts needed for totalSize bytes.
func TotalParts(totalSize uint64) int32 {
	return int32((totalSize + PartSize - 1) / PartSize)
}
