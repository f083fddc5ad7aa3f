package bucket

import (
	"fmt"
	"path"
	"time"
)

func (b *Bucket) constructFullPath(runDate time.Time, fileName string) string {
	runDate = runDate.UTC()
	return path.Clean(path.Join(b.BaseFolder, runDate.Format("2006"), runDate.Format("01"), fileName))
}

func (b *Bucket) getCDNURL(filePath string) string {
	if b.SubdomainEndpoint != "" {
		return fmt.Sprintf("https://%s/%s", b.SubdomainEndpoint, filePath)
	}
	return fmt.Sprintf("https://%s.%s/%s", b.S3BucketName, b.S3Endpoint, filePath)
}
