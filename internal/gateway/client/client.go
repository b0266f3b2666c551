package client

import (
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client проксирует запросы в server-модуль. Шлюз ничего не знает
// о предметной области ответов: тело и статус передаются как есть.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента server-модуля
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Forward пересылает запрос в server-модуль и копирует ответ клиенту.
// Метод, путь, query-параметры, заголовки и тело передаются без изменений.
func (c *Client) Forward(w http.ResponseWriter, r *http.Request) {
	url := c.baseURL + r.URL.RequestURI()

	req, err := http.NewRequestWithContext(r.Context(), r.Method, url, r.Body)
	if err != nil {
		c.log.Error("Forward: failed to create request %s %s: %v", r.Method, url, err)
		http.Error(w, "bad gateway", http.StatusBadGateway)
		return
	}
	req.Header = r.Header.Clone()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("Forward: upstream unavailable for %s %s: %v", r.Method, url, err)
		http.Error(w, "upstream unavailable", http.StatusBadGateway)
		return
	}
	defer resp.Body.Close()

	for key, values := range resp.Header {
		for _, v := range values {
			w.Header().Add(key, v)
		}
	}
	w.WriteHeader(resp.StatusCode)

	if _, err := io.Copy(w, resp.Body); err != nil {
		c.log.Error("Forward: failed to copy response body for %s %s: %v", r.Method, url, err)
	}
}
