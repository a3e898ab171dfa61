package kafka

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel/propagation"
)

var _ propagation.TextMapCarrier = HeaderCarrier{}

// HeaderCarrier — адаптер заголовков kafka-go к propagation.TextMapCarrier.
// Consumer только читает (Get/Keys); Set нужен стороне producer'а.
type HeaderCarrier struct {
	headers *[]kafka.Header
}

// NewHeaderCarrier оборачивает заголовки сообщения. Изменения через Set видны в исходном срезе.
func NewHeaderCarrier(headers *[]kafka.Header) HeaderCarrier {
	return HeaderCarrier{headers: headers}
}

// Lookup — значение первого заголовка с таким ключом.
// Пустое (nil) значение или не-UTF-8 считаются отсутствующими.
func (hc HeaderCarrier) Lookup(key string) (string, bool) {
	if hc.headers == nil {
		return "", false
	}
	for _, h := range *hc.headers {
		if h.Key != key {
			continue
		}
		if h.Value == nil || !utf8.Valid(h.Value) {
			return "", false
		}
		return string(h.Value), true
	}
	return "", false
}

func (hc HeaderCarrier) Get(key string) string {
	v, _ := hc.Lookup(key)
	return v
}

// Keys — все ключи в исходном порядке, дубликаты сохраняются.
func (hc HeaderCarrier) Keys() []string {
	if hc.headers == nil {
		return nil
	}
	keys := make([]string, 0, len(*hc.headers))
	for _, h := range *hc.headers {
		keys = append(keys, h.Key)
	}
	return keys
}

// Set заменяет первый заголовок с ключом key или добавляет новый.
func (hc HeaderCarrier) Set(key, value string) {
	if hc.headers == nil {
		return
	}
	for i := range *hc.headers {
		if (*hc.headers)[i].Key == key {
			(*hc.headers)[i].Value = []byte(value)
			return
		}
	}
	*hc.headers = append(*hc.headers, kafka.Header{Key: key, Value: []byte(value)})
}

// formatHeaders — дамп заголовков для логов: key="value", через запятую.
func formatHeaders(headers []kafka.Header) string {
	parts := make([]string, 0, len(headers))
	for _, h := range headers {
		switch {
		case h.Value == nil:
			parts = append(parts, h.Key+"=<nil>")
		case !utf8.Valid(h.Value):
			parts = append(parts, fmt.Sprintf("%s=<%d bytes>", h.Key, len(h.Value)))
		default:
			parts = append(parts, fmt.Sprintf("%s=%q", h.Key, h.Value))
		}
	}
	return strings.Join(parts, ", ")
}
