package upload_file

// UploadResponse ссылка на загруженный файл
type UploadResponse struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
}
