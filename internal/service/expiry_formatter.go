package service

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
)

// localeLayout формат даты для языка в духе toLocaleString браузера
type localeLayout struct {
	tag    language.Tag
	layout string
}

// Первый элемент используется по умолчанию
var supportedLocales = []localeLayout{
	{tag: language.AmericanEnglish, layout: "1/2/2006, 3:04:05 PM"},
	{tag: language.BritishEnglish, layout: "02/01/2006, 15:04:05"},
	{tag: language.German, layout: "2.1.2006, 15:04:05"},
	{tag: language.French, layout: "02/01/2006 15:04:05"},
	{tag: language.Spanish, layout: "2/1/2006, 15:04:05"},
	{tag: language.Russian, layout: "02.01.2006, 15:04:05"},
	{tag: language.Japanese, layout: "2006/1/2 15:04:05"},
}

// Бэкенд shorty отдает дату без часового пояса (2024-01-01T10:15:30.123),
// поэтому кроме RFC 3339 принимаем локальные форматы.
var localExpiryLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
}

// ExpiryFormatter форматирует дату истечения короткой ссылки для показа пользователю
type ExpiryFormatter struct {
	location *time.Location
	matcher  language.Matcher
}

// NewExpiryFormatter создает форматтер. Даты без часового пояса считаются
// заданными в location, в нем же они и выводятся.
func NewExpiryFormatter(location *time.Location) *ExpiryFormatter {
	if location == nil {
		location = time.UTC
	}

	tags := make([]language.Tag, 0, len(supportedLocales))
	for _, l := range supportedLocales {
		tags = append(tags, l.tag)
	}

	return &ExpiryFormatter{
		location: location,
		matcher:  language.NewMatcher(tags),
	}
}

// Parse разбирает дату истечения из ответа бэкенда
func (f *ExpiryFormatter) Parse(expiry string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, expiry); err == nil {
		return t, nil
	}

	// дата без времени, как и в браузере, считается полуночью по UTC
	if t, err := time.Parse(time.DateOnly, expiry); err == nil {
		return t, nil
	}

	for _, layout := range localExpiryLayouts {
		if t, err := time.ParseInLocation(layout, expiry, f.location); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidExpiry, expiry)
}

// Format возвращает дату истечения в формате, подходящем для locale.
// locale принимается в формате заголовка Accept-Language.
func (f *ExpiryFormatter) Format(expiry string, locale string) (string, error) {
	t, err := f.Parse(expiry)
	if err != nil {
		return "", err
	}

	return t.In(f.location).Format(f.layoutFor(locale)), nil
}

func (f *ExpiryFormatter) layoutFor(locale string) string {
	tags, _, err := language.ParseAcceptLanguage(locale)
	if err != nil || len(tags) == 0 {
		return supportedLocales[0].layout
	}

	_, idx, confidence := f.matcher.Match(tags...)
	if confidence == language.No {
		return supportedLocales[0].layout
	}
	return supportedLocales[idx].layout
}
