package dto

// Media Upload DTOs
type MediaUploadResponse struct {
	// Ref is stored in props and course image_url fields, e.g. "media:courses/0190....png".
	Ref      string `json:"ref"`
	URL      string `json:"url"`
	FileName string `json:"file_name"`
	FileType string `json:"file_type"`
	FileSize int64  `json:"file_size"`
}
