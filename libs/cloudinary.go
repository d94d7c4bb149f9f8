package libs

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path"
	"path/filepath"
	"strings"
	"time"

	"lafamilia/utils"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const creativeFolder = "ad-creatives"

// CreativeUploader stores an ad creative image and returns its public URL.
type CreativeUploader interface {
	Upload(c *gin.Context, file *multipart.FileHeader) (string, error)
}

type CloudinaryConfig struct {
	URL       string
	CloudName string
	APIKey    string
	APISecret string
}

func (c CloudinaryConfig) Enabled() bool {
	return c.URL != "" || (c.CloudName != "" && c.APIKey != "" && c.APISecret != "")
}

type CloudinaryUploader struct {
	cld     *cloudinary.Cloudinary
	maxSize int64
	log     *zap.Logger
}

// NewCloudinaryUploader prefers the separate credentials and falls back to
// CLOUDINARY_URL.
func NewCloudinaryUploader(cfg CloudinaryConfig, maxSize int64, log *zap.Logger) (*CloudinaryUploader, error) {
	var (
		cld *cloudinary.Cloudinary
		err error
	)
	switch {
	case cfg.CloudName != "" && cfg.APIKey != "" && cfg.APISecret != "":
		cld, err = cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	case cfg.URL != "":
		cld, err = cloudinary.NewFromURL(cfg.URL)
	default:
		return nil, errors.New("cloudinary credentials not configured")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary: %w", err)
	}
	return &CloudinaryUploader{cld: cld, maxSize: maxSize, log: log}, nil
}

func (u *CloudinaryUploader) Upload(c *gin.Context, fileHeader *multipart.FileHeader) (string, error) {
	if err := utils.ValidateImage(fileHeader, u.maxSize); err != nil {
		return "", err
	}
	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	name := strings.TrimSuffix(strings.ReplaceAll(fileHeader.Filename, " ", "_"), filepath.Ext(fileHeader.Filename))
	publicID := fmt.Sprintf("%d_%s", time.Now().Unix(), name)

	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	resp, err := u.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		PublicID:       publicID,
		Folder:         creativeFolder,
		ResourceType:   "image",
		Transformation: "q_auto,f_auto",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to cloudinary: %w", err)
	}
	if resp == nil {
		return "", errors.New("cloudinary response is nil")
	}

	u.log.Info("creative uploaded", zap.String("public_id", resp.PublicID))
	if resp.SecureURL != "" {
		return resp.SecureURL, nil
	}
	if resp.URL != "" {
		return resp.URL, nil
	}
	return "", errors.New("both SecureURL and URL are empty")
}

// LocalUploader keeps creatives under the upload directory, served at
// /uploads.
type LocalUploader struct {
	dir     string
	maxSize int64
}

func NewLocalUploader(dir string, maxSize int64) *LocalUploader {
	return &LocalUploader{dir: dir, maxSize: maxSize}
}

func (u *LocalUploader) Upload(c *gin.Context, fileHeader *multipart.FileHeader) (string, error) {
	rel, err := utils.SaveUpload(c, fileHeader, u.dir, creativeFolder, u.maxSize)
	if err != nil {
		return "", err
	}
	return path.Join("/uploads", filepath.ToSlash(rel)), nil
}

// NewCreativeUploader picks Cloudinary when it is configured and usable,
// otherwise local storage.
func NewCreativeUploader(cfg CloudinaryConfig, uploadDir string, maxSize int64, log *zap.Logger) CreativeUploader {
	if cfg.Enabled() {
		up, err := NewCloudinaryUploader(cfg, maxSize, log)
		if err == nil {
			return up
		}
		log.Warn("cloudinary unavailable, storing creatives locally", zap.Error(err))
	}
	return NewLocalUploader(uploadDir, maxSize)
}
