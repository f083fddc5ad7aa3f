package bucket

import (
	"context"
	"fmt"
	"os"
	"time"

	"log/slog"

	"github.com/minio/minio-go/v7"

	"github.com/jekabolt/merchant-report/internal/entity"
)

// UploadArtifact uploads a local report file under <base>/<yyyy>/<mm>/ and
// returns its public URL.
func (b *Bucket) UploadArtifact(ctx context.Context, runDate time.Time, a entity.Artifact) (string, error) {
	f, err := os.Open(a.Path)
	if err != nil {
		return "", fmt.Errorf("can't open artifact %s: %w", a.Path, err)
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("can't stat artifact %s: %w", a.Path, err)
	}

	fp := b.constructFullPath(runDate, a.Name())
	ui, err := b.Client.PutObject(ctx, b.S3BucketName, fp, f, st.Size(),
		minio.PutObjectOptions{
			ContentType:  a.ContentType,
			UserMetadata: map[string]string{"x-amz-acl": "public-read"},
		})
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't upload artifact",
			slog.String("path", a.Path),
			slog.String("err", err.Error()))
		return "", err
	}
	url := b.getCDNURL(ui.Key)
	slog.Default().InfoContext(ctx, "artifact uploaded",
		slog.String("url", url),
		slog.Int64("size", ui.Size),
	)
	return url, nil
}
