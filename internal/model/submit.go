package model

// SubmitEvent описывает одну отправку формы сокращения URL.
// Значения полей берутся из формы в момент отправки.
type SubmitEvent struct {
	URL        string
	ExpiryCode string
	// Locale значение в формате Accept-Language, используется для вывода даты истечения
	Locale string
}

// RenderView набор инструкций для отрисовки страницы после отправки формы
type RenderView struct {
	URL        string `json:"url"`
	ExpiryCode string `json:"expiryCode"`

	ValidationMessage string `json:"validationMessage"`

	// ResponseVisible показывает блок ответа (результат или ошибка бэкенда)
	ResponseVisible bool `json:"responseVisible"`
	// ResultsVisible показывает блок с короткой ссылкой
	ResultsVisible bool `json:"resultsVisible"`

	ShortURLHref  string `json:"shortUrlHref,omitempty"`
	ShortURLLabel string `json:"shortUrlLabel,omitempty"`
	ExpiryMessage string `json:"expiryMessage,omitempty"`
	QRCode        string `json:"qrCode,omitempty"`

	ErrorMessage string `json:"errorMessage,omitempty"`
}
