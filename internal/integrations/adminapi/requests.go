package adminapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"request-board/internal/dto"
	"request-board/internal/entities"
	apperrors "request-board/pkg/errors"
)

// ListRequests запрашивает список заявок с учётом фильтра.
func (p *Provider) ListRequests(ctx context.Context, filter entities.Filter) ([]entities.Request, error) {
	query := url.Values{}
	query.Set("search", filter.Search)
	query.Set("status_f", filter.Status)

	req, err := p.newRequest(ctx, http.MethodGet, listPath+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrFetchFailed, err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, apperrors.NewHttpError(resp.StatusCode, "админ-API вернул ошибку", apperrors.ErrFetchFailed)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: чтение тела: %v", apperrors.ErrFetchFailed, err)
	}

	requests, err := decodeRequestList(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrFetchFailed, err)
	}

	p.logger.Debug("Список заявок получен",
		zap.String("search", filter.Search),
		zap.String("status_f", filter.Status),
		zap.Int("count", len(requests)),
	)
	return requests, nil
}

// decodeRequestList принимает {"requests": [...]} и голый массив.
func decodeRequestList(body []byte) ([]entities.Request, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return []entities.Request{}, nil
	}

	if trimmed[0] == '[' {
		var list []entities.Request
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil, fmt.Errorf("ошибка парсинга JSON: %w", err)
		}
		if list == nil {
			list = []entities.Request{}
		}
		return list, nil
	}

	var payload dto.RequestListResponseDTO
	if err := json.Unmarshal(trimmed, &payload); err != nil {
		return nil, fmt.Errorf("ошибка парсинга JSON: %w", err)
	}
	if payload.Requests == nil {
		payload.Requests = []entities.Request{}
	}
	return payload.Requests, nil
}

// UpdateStatus отправляет новый статус заявки.
func (p *Provider) UpdateStatus(ctx context.Context, payload dto.StatusUpdateDTO) (dto.MutationResult, error) {
	form := url.Values{}
	form.Set("id", payload.ID.String())
	form.Set("status", payload.Status)
	return p.postForm(ctx, statusPath, form)
}

// SendReply отправляет ответ пользователю-владельцу заявки.
func (p *Provider) SendReply(ctx context.Context, payload dto.ReplyDTO) (dto.MutationResult, error) {
	form := url.Values{}
	form.Set("user_id", payload.UserID.String())
	form.Set("message", payload.Message)
	return p.postForm(ctx, replyPath, form)
}

// Logout завершает сессию оператора. Успех - только перенаправление.
func (p *Provider) Logout(ctx context.Context) (dto.LogoutResultDTO, error) {
	req, err := p.newRequest(ctx, http.MethodPost, logoutPath, nil)
	if err != nil {
		return dto.LogoutResultDTO{}, fmt.Errorf("%w: %v", apperrors.ErrLogoutFailed, err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return dto.LogoutResultDTO{}, fmt.Errorf("%w: %v", apperrors.ErrLogoutFailed, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 300 || resp.StatusCode > 399 {
		return dto.LogoutResultDTO{}, apperrors.NewHttpError(resp.StatusCode, "неожиданный ответ на выход", apperrors.ErrLogoutFailed)
	}

	return dto.LogoutResultDTO{RedirectTo: resp.Header.Get("Location")}, nil
}

func (p *Provider) postForm(ctx context.Context, path string, form url.Values) (dto.MutationResult, error) {
	req, err := p.newRequest(ctx, http.MethodPost, path, strings.NewReader(form.Encode()))
	if err != nil {
		return dto.MutationResult{}, fmt.Errorf("ошибка создания POST-запроса: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return dto.MutationResult{}, fmt.Errorf("%w: POST '%s': %v", apperrors.ErrMutationFailed, path, err)
	}
	defer resp.Body.Close()

	// Форма в браузере тоже считала 3xx завершением запроса.
	result := dto.MutationResult{
		OK:         resp.StatusCode >= 200 && resp.StatusCode <= 399,
		StatusCode: resp.StatusCode,
	}
	if !result.OK {
		bodyBytes, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		result.Reason = strings.TrimSpace(string(bodyBytes))
		if result.Reason == "" {
			result.Reason = resp.Status
		}
		p.logger.Warn("Админ-API отклонил изменение",
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.String("reason", result.Reason),
		)
	}
	return result, nil
}

func (p *Provider) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, p.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	if p.token != "" {
		req.Header.Set("Authorization", "Bearer "+p.token)
	}
	req.Header.Set("X-Request-ID", uuid.NewString())
	return req, nil
}
