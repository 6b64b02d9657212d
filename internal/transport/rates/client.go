// Package rates содержит HTTP клиент котировки USD/VES и фоновый процесс
// обновления курса.
package rates

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"io"
	"net/http"
)

// Response формат ответа API котировок.
type Response struct {
	Rate decimal.Decimal `json:"rate"`
}

// HTTPClient является реализацией интерфейса service.QuoteFetcher для HTTP запросов к API котировок.
type HTTPClient struct {
	quoteURL   string
	httpClient *http.Client
}

func NewHTTPClient(quoteURL string) HTTPClient {
	return HTTPClient{
		quoteURL:   quoteURL,
		httpClient: http.DefaultClient,
	}
}

// FetchRate запрашивает текущую котировку USD/VES. Один вызов - один запрос,
// без повторных попыток. В случае ошибки возвращает или StatusCodeError
// или не типизированную ошибку.
//
//nolint:nonamedreturns
func (c HTTPClient) FetchRate(ctx context.Context) (rate decimal.Decimal, err error) {
	// Создаем запрос.
	req, reqErr := http.NewRequestWithContext(ctx, http.MethodGet, c.quoteURL, nil)
	if reqErr != nil {
		return decimal.Zero, fmt.Errorf("%w: create request: %s", ErrQuoteUnavailable, reqErr.Error())
	}

	// Выполняем запрос.
	resp, doErr := c.httpClient.Do(req)
	if doErr != nil {
		return decimal.Zero, fmt.Errorf("%w: do request: %s", ErrQuoteUnavailable, doErr.Error())
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			err = errors.Join(err, closeErr)
		}
	}()

	// Статус отличный от http.StatusOK нас не интересует.
	if resp.StatusCode != http.StatusOK {
		err = NewStatusCodeError(resp.StatusCode)
		return decimal.Zero, err
	}

	// Парсим успешный ответ.
	body, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		err = fmt.Errorf("%w: read response: %s", ErrQuoteUnavailable, readErr.Error())
		return decimal.Zero, err
	}

	var response Response
	if jsonErr := json.Unmarshal(body, &response); jsonErr != nil {
		err = fmt.Errorf("%w: parse response: %s", ErrQuoteUnavailable, jsonErr.Error())
		return decimal.Zero, err
	}

	if !response.Rate.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: quote rate %s is not positive", ErrQuoteUnavailable, response.Rate)
	}

	return response.Rate, nil
}
