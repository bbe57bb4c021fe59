package service

import (
	"github.com/avc-dev/shorty-web/internal/model"
	"go.uber.org/zap"
)

// Renderer превращает ответ бэкенда в инструкции для отрисовки страницы
type Renderer struct {
	formatter *ExpiryFormatter
	qrCodes   *QRCodeGenerator
	logger    *zap.Logger
}

// NewRenderer создает Renderer. qrCodes может быть nil, тогда QR код не рисуется.
func NewRenderer(formatter *ExpiryFormatter, qrCodes *QRCodeGenerator, logger *zap.Logger) *Renderer {
	return &Renderer{
		formatter: formatter,
		qrCodes:   qrCodes,
		logger:    logger,
	}
}

// Render заполняет блок результата: ссылку, подпись и дату истечения.
// Возвращает ErrInvalidExpiry, если дату не удалось разобрать.
func (r *Renderer) Render(resp model.ShortenResponse, locale string) (model.RenderView, error) {
	expiry, err := r.formatter.Format(resp.Expiry, locale)
	if err != nil {
		return model.RenderView{}, err
	}

	view := model.RenderView{
		ResponseVisible: true,
		ResultsVisible:  true,
		ShortURLHref:    resp.ShortURL,
		ShortURLLabel:   resp.ShortURL,
		ExpiryMessage:   ExpiryMessage(expiry),
	}

	if r.qrCodes != nil {
		qr, err := r.qrCodes.DataURI(resp.ShortURL)
		if err != nil {
			// без QR кода результат остается полезным
			r.logger.Warn("failed to render QR code",
				zap.String("short_url", resp.ShortURL),
				zap.Error(err),
			)
		} else {
			view.QRCode = qr
		}
	}

	return view, nil
}

// ExpiryMessage подпись с датой истечения рядом с короткой ссылкой
func ExpiryMessage(formattedExpiry string) string {
	return "(Expires: " + formattedExpiry + ")"
}
