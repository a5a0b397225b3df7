package s3

import (
	"mime"
	"mime/multipart"
	"path/filepath"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

// Uploader stores media objects in an S3 bucket.
type Uploader struct {
	bucket   string
	uploader *s3manager.Uploader
}

func New(region, bucket string) (*Uploader, error) {
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(region),
	})
	if err != nil {
		return nil, err
	}
	return &Uploader{
		bucket:   bucket,
		uploader: s3manager.NewUploader(sess),
	}, nil
}

// Upload stores the file under key and returns the object's URL.
func (u *Uploader) Upload(file multipart.File, key string) (string, error) {
	contentType := mime.TypeByExtension(filepath.Ext(key))

	result, err := u.uploader.Upload(&s3manager.UploadInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        file,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", err
	}
	return result.Location, nil
}
