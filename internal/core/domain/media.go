package domain

import (
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"
	"time"
)

// MediaKind represents the kind of an uploaded file
type MediaKind string

const (
	MediaKindImage   MediaKind = "image"
	MediaKindVideo   MediaKind = "video"
	MediaKindUnknown MediaKind = "unknown"
)

const (
	imagesDir = "images"
	videosDir = "videos"

	octetStream = "application/octet-stream"
)

// FileUpload is a file received from a client, not yet validated
type FileUpload struct {
	FileName    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// FileUploadOutcome describes a stored file
type FileUploadOutcome struct {
	StoredName   string    `json:"fileName"`
	RelativePath string    `json:"filePath"`
	PublicURL    string    `json:"fileUrl"`
	SizeBytes    int64     `json:"fileSizeBytes"`
	MimeType     string    `json:"mimeType"`
	MediaKind    MediaKind `json:"fileType"`
	UploadedAt   time.Time `json:"uploadedAt"`
}

// StoredFile is a file read back from storage, the caller closes Content
type StoredFile struct {
	Content     io.ReadCloser
	ContentType string
	FileName    string
	SizeBytes   int64
}

// UploadItemOutcome is the result of one file of a batch upload
type UploadItemOutcome struct {
	FileName string
	Result   Result[FileUploadOutcome]
}

// DeleteItemOutcome is the result of one file of a batch delete
type DeleteItemOutcome struct {
	Path   string
	Result Result[bool]
}

// PublicURL derives the public url of a relative storage path
func PublicURL(relativePath string) string {
	return "/" + strings.TrimPrefix(relativePath, "/")
}

// MediaPolicy holds the upload rules for every media kind
type MediaPolicy struct {
	UploadPath      string
	MaxImageSizeMB  int64
	MaxVideoSizeMB  int64
	ImageExtensions []string
	VideoExtensions []string
}

// NewMediaPolicy normalizes extensions to lowercase with a leading dot
func NewMediaPolicy(uploadPath string, maxImageMB, maxVideoMB int64, imageExts, videoExts []string) MediaPolicy {
	return MediaPolicy{
		UploadPath:      strings.Trim(path.Clean("/"+toSlash(uploadPath)), "/"),
		MaxImageSizeMB:  maxImageMB,
		MaxVideoSizeMB:  maxVideoMB,
		ImageExtensions: normalizeExtensions(imageExts),
		VideoExtensions: normalizeExtensions(videoExts),
	}
}

func normalizeExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		out = append(out, ext)
	}
	return out
}

// MaxBytes returns the size limit of a kind in bytes (binary megabytes)
func (p MediaPolicy) MaxBytes(kind MediaKind) int64 {
	switch kind {
	case MediaKindImage:
		return p.MaxImageSizeMB * 1024 * 1024
	case MediaKindVideo:
		return p.MaxVideoSizeMB * 1024 * 1024
	default:
		return 0
	}
}

func (p MediaPolicy) maxMB(kind MediaKind) int64 {
	if kind == MediaKindImage {
		return p.MaxImageSizeMB
	}
	return p.MaxVideoSizeMB
}

// Extensions returns the allow-list of a kind
func (p MediaPolicy) Extensions(kind MediaKind) []string {
	switch kind {
	case MediaKindImage:
		return p.ImageExtensions
	case MediaKindVideo:
		return p.VideoExtensions
	default:
		return nil
	}
}

// Dir returns the relative directory files of a kind are stored in
func (p MediaPolicy) Dir(kind MediaKind) string {
	sub := imagesDir
	if kind == MediaKindVideo {
		sub = videosDir
	}
	if p.UploadPath == "" {
		return sub
	}
	return p.UploadPath + "/" + sub
}

// Detect classifies a file name by its extension
func (p MediaPolicy) Detect(fileName string) MediaKind {
	ext := Extension(fileName)
	if ext == "" {
		return MediaKindUnknown
	}
	if contains(p.ImageExtensions, ext) {
		return MediaKindImage
	}
	if contains(p.VideoExtensions, ext) {
		return MediaKindVideo
	}
	return MediaKindUnknown
}

// Validate checks presence, size and extension of a file against the rules of kind
func (p MediaPolicy) Validate(file *FileUpload, kind MediaKind) BaseResult {
	if file == nil || file.Size == 0 {
		return Fail(BadRequest("File is empty"))
	}

	if kind != MediaKindImage && kind != MediaKindVideo {
		return Fail(UnsupportedMediaType(fmt.Sprintf("Unsupported file type: %s", Extension(file.FileName))))
	}

	if file.Size > p.MaxBytes(kind) {
		return Fail(BadRequest(fmt.Sprintf(
			"%s size (%.2f MB) exceeds maximum allowed size of %d MB",
			kindTitle(kind), float64(file.Size)/1024/1024, p.maxMB(kind),
		)))
	}

	ext := Extension(file.FileName)
	allowed := p.Extensions(kind)
	if !contains(allowed, ext) {
		return Fail(UnsupportedMediaType(fmt.Sprintf(
			"File type '%s' is not allowed for %s. Allowed: %s",
			ext, kind, strings.Join(allowed, ", "),
		)))
	}

	return Ok()
}

// Contains reports whether relativePath stays inside the upload root.
// It returns the cleaned path.
func (p MediaPolicy) Contains(relativePath string) (string, bool) {
	relativePath = strings.TrimSpace(toSlash(relativePath))
	relativePath = strings.TrimPrefix(relativePath, "/")
	if relativePath == "" {
		return "", false
	}
	for _, segment := range strings.Split(relativePath, "/") {
		if segment == ".." {
			return "", false
		}
	}
	cleaned := path.Clean(relativePath)
	if p.UploadPath != "" && !strings.HasPrefix(cleaned, p.UploadPath+"/") {
		return "", false
	}
	return cleaned, true
}

// Extension returns the lowercase extension of a file name, dot included
func Extension(fileName string) string {
	return strings.ToLower(filepath.Ext(strings.TrimSpace(fileName)))
}

// MimeType keeps the client content type unless it is missing or generic
func MimeType(fileName, contentType string) string {
	ct := strings.TrimSpace(contentType)
	if ct != "" && !strings.EqualFold(ct, octetStream) {
		return ct
	}
	return ContentTypeByExtension(fileName)
}

var contentTypes = map[string]string{
	// Images
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
	".heic": "image/heic",
	".heif": "image/heif",
	".bmp":  "image/bmp",
	".svg":  "image/svg+xml",

	// Videos
	".mp4":  "video/mp4",
	".mov":  "video/quicktime",
	".avi":  "video/x-msvideo",
	".webm": "video/webm",
	".mkv":  "video/x-matroska",
	".flv":  "video/x-flv",
	".wmv":  "video/x-ms-wmv",
}

// ContentTypeByExtension infers a mime type from the extension of a file name
func ContentTypeByExtension(fileName string) string {
	if ct, ok := contentTypes[Extension(fileName)]; ok {
		return ct
	}
	return octetStream
}

func toSlash(p string) string {
	return strings.ReplaceAll(p, "\\", "/")
}

func kindTitle(kind MediaKind) string {
	if kind == MediaKindImage {
		return "Image"
	}
	return "Video"
}

func contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}
