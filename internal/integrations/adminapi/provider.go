package adminapi

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"request-board/internal/entities"
	"request-board/internal/integrations"
)

const (
	listPath     = "/admin/api/requests"
	statusPath   = "/admin/status"
	replyPath    = "/admin/reply"
	logoutPath   = "/admin/logout"
	downloadPath = "/admin/download/"
)

// Provider - клиент админ-API LegalBot.
type Provider struct {
	httpClient *http.Client
	baseURL    string
	token      string
	logger     *zap.Logger
}

// New создаёт клиента. Редиректы не выполняются: ответ 3xx на выход
// сам по себе и есть признак успеха.
func New(baseURL, token string, timeout time.Duration, logger *zap.Logger) *Provider {
	return &Provider{
		httpClient: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		logger:  logger.Named("admin_api"),
	}
}

var _ integrations.AdminAPI = (*Provider)(nil)

// DownloadURL - ссылка на скачивание документа по его идентификатору.
func (p *Provider) DownloadURL(fileID entities.ID) string {
	return p.baseURL + downloadPath + url.PathEscape(fileID.String())
}
