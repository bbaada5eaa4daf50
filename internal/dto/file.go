package dto

type UploadResponseDTO struct {
	Message string `json:"message"`
	FileURL string `json:"fileUrl" example:"/api/files/7"`
}
