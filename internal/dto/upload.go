package dto

// UploadResponse carries the public URL of a stored file.
type UploadResponse struct {
	URL string `json:"url" example:"https://sky-take-out.oss-cn-hangzhou.aliyuncs.com/1f0e.png"`
}
