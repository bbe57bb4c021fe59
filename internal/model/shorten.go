package model

// ShortenRequest тело запроса к бэкенду shorty на создание короткого URL
type ShortenRequest struct {
	URL        string `json:"url" validate:"required"`
	ExpiryCode string `json:"expiryCode"`
}

// ShortenResponse тело успешного ответа бэкенда shorty.
// URL и Token бэкенд присылает дополнительно, обязательными они не являются.
type ShortenResponse struct {
	ShortURL string `json:"shortUrl"`
	Expiry   string `json:"expiry"`
	URL      string `json:"url,omitempty"`
	Token    string `json:"token,omitempty"`
}

// ErrorResponse тело ответа бэкенда с ошибкой
type ErrorResponse struct {
	Message string `json:"message"`
}
