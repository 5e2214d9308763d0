package dto

type MessageResponse struct {
	Message string `json:"message"`
}

type PageQuery struct {
	Limit int
	Skip  int
}
