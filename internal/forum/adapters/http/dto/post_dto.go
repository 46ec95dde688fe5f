package dto

// PostRequest содержит данные для создания или обновления поста.
type PostRequest struct {
	Title string `json:"title"`
}
