package tui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"request-board/internal/dto"
	"request-board/internal/entities"
	"request-board/internal/repositories"
	"request-board/internal/services"
	"request-board/pkg/constants"
	apperrors "request-board/pkg/errors"
)

const toastTickInterval = 500 * time.Millisecond

type focusRegion int

const (
	focusTable focusRegion = iota
	focusSearch
	focusPicker
	focusReply
	focusAlert
)

// boardChangedMsg приходит из шины событий после каждого цикла опроса.
type boardChangedMsg struct {
	event string
}

type toastTickMsg time.Time

type statusResultMsg struct {
	result dto.MutationResult
	err    error
}

type replyResultMsg struct {
	result dto.MutationResult
	err    error
}

type logoutResultMsg struct {
	err error
}

type filterResultMsg struct {
	err error
}

type themeSavedMsg struct {
	err error
}

// statusPicker - выбор нового статуса для одной заявки.
type statusPicker struct {
	requestID entities.ID
	index     int
}

func (p statusPicker) value() string {
	return constants.RequestStatuses[p.index]
}

type Dependencies struct {
	Board         services.BoardServiceInterface
	Notifications services.NotificationServiceInterface
	Prefs         repositories.PreferenceRepositoryInterface
	Logger        *zap.Logger
}

type Model struct {
	ctx           context.Context
	board         services.BoardServiceInterface
	notifications services.NotificationServiceInterface
	prefs         repositories.PreferenceRepositoryInterface
	logger        *zap.Logger

	keys     keyMap
	chrome   Chrome
	snapshot services.BoardSnapshot

	cursor     int
	offset     int
	selectedID entities.ID
	focus      focusRegion

	search textinput.Model
	picker statusPicker
	reply  ReplyModal
	alert  string
	toasts []services.Toast

	width  int
	height int
}

func NewModel(ctx context.Context, deps Dependencies, theme entities.Theme) Model {
	search := textinput.New()
	search.Prompt = ""
	search.Placeholder = "имя, телефон, текст"
	search.CharLimit = 200
	search.Cursor.SetMode(cursor.CursorStatic)

	model := Model{
		ctx:           ctx,
		board:         deps.Board,
		notifications: deps.Notifications,
		prefs:         deps.Prefs,
		logger:        deps.Logger.Named("tui"),
		keys:          defaultKeyMap(),
		chrome:        Chrome{Theme: theme},
		search:        search,
		reply:         NewReplyModal(),
		width:         120,
		height:        30,
	}
	model.syncSnapshot()
	return model
}

func (model Model) Init() tea.Cmd {
	return scheduleToastTick()
}

func scheduleToastTick() tea.Cmd {
	return tea.Tick(toastTickInterval, func(t time.Time) tea.Msg {
		return toastTickMsg(t)
	})
}

func (model Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := message.(type) {
	case tea.WindowSizeMsg:
		model.width = msg.Width
		model.height = msg.Height
		model.reply.SetWidth(msg.Width)
		model.ensureCursorVisible()
		return model, nil

	case boardChangedMsg:
		model.syncSnapshot()
		return model, nil

	case toastTickMsg:
		model.toasts = model.notifications.Active(time.Time(msg))
		return model, scheduleToastTick()

	case filterResultMsg:
		model.reportLocal(msg.err)
		model.syncSnapshot()
		return model, nil

	case statusResultMsg:
		model.reportLocal(msg.err)
		model.syncSnapshot()
		return model, nil

	case replyResultMsg:
		if msg.err == nil && msg.result.OK {
			model.reply.Close()
			if model.focus == focusReply {
				model.focus = focusTable
			}
			return model, nil
		}
		model.reportLocal(msg.err)
		return model, nil

	case logoutResultMsg:
		if msg.err == nil {
			return model, tea.Quit
		}
		model.alert = constants.MsgLogoutFailed
		model.focus = focusAlert
		return model, nil

	case themeSavedMsg:
		if msg.err != nil {
			model.logger.Warn("Не удалось сохранить тему", zap.Error(msg.err))
		}
		return model, nil

	case tea.MouseMsg:
		return model.handleMouse(msg)

	case tea.KeyMsg:
		switch model.focus {
		case focusAlert:
			return model.handleAlertKeys(msg)
		case focusSearch:
			return model.handleSearchKeys(msg)
		case focusPicker:
			return model.handlePickerKeys(msg)
		case focusReply:
			return model.handleReplyKeys(msg)
		default:
			return model.handleTableKeys(msg)
		}
	}
	return model, nil
}

func (model Model) handleTableKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, model.keys.Quit):
		return model, tea.Quit

	case key.Matches(msg, model.keys.Cancel):
		model.chrome.DismissMenu()

	case key.Matches(msg, model.keys.Up):
		model.moveCursor(-1)

	case key.Matches(msg, model.keys.Down):
		model.moveCursor(1)

	case key.Matches(msg, model.keys.Search):
		model.focus = focusSearch
		return model, model.search.Focus()

	case key.Matches(msg, model.keys.Filter):
		return model, model.setStatusFilter(nextStatusFilter(model.snapshot.Filter.Status))

	case key.Matches(msg, model.keys.Status):
		row, ok := model.selectedRow()
		if !ok {
			return model, nil
		}
		model.picker = statusPicker{requestID: row.ID, index: statusIndex(row.Status)}
		model.focus = focusPicker

	case key.Matches(msg, model.keys.Reply):
		row, ok := model.selectedRow()
		if !ok {
			return model, nil
		}
		model.focus = focusReply
		return model, model.reply.Open(row.ReplyUserID)

	case key.Matches(msg, model.keys.Theme):
		theme := model.chrome.ToggleTheme()
		return model, model.saveTheme(theme)

	case key.Matches(msg, model.keys.Menu):
		model.chrome.ToggleMenu()

	case key.Matches(msg, model.keys.Logout):
		return model, model.logout()
	}
	return model, nil
}

// handleSearchKeys отправляет новый запрос на каждое изменение строки
// поиска. Порядок ответов не важен: доска применяет последний отправленный.
func (model Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return model, tea.Quit
	case tea.KeyEsc, tea.KeyEnter:
		model.search.Blur()
		model.focus = focusTable
		return model, nil
	}

	before := model.search.Value()
	var cmd tea.Cmd
	model.search, cmd = model.search.Update(msg)
	if model.search.Value() == before {
		return model, cmd
	}
	return model, tea.Batch(cmd, model.setSearch(model.search.Value()))
}

func (model Model) handlePickerKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	total := len(constants.RequestStatuses)
	switch {
	case msg.Type == tea.KeyCtrlC:
		return model, tea.Quit
	case key.Matches(msg, model.keys.Cancel):
		model.focus = focusTable
	case key.Matches(msg, model.keys.Prev):
		model.picker.index = (model.picker.index + total - 1) % total
	case key.Matches(msg, model.keys.Next):
		model.picker.index = (model.picker.index + 1) % total
	case key.Matches(msg, model.keys.Submit):
		model.focus = focusTable
		return model, model.updateStatus(model.picker.requestID, model.picker.value())
	}
	return model, nil
}

func (model Model) handleReplyKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return model, tea.Quit
	case key.Matches(msg, model.keys.Cancel):
		model.reply.Close()
		model.focus = focusTable
		return model, nil
	case key.Matches(msg, model.keys.Send):
		return model, model.sendReply(model.reply.UserID(), model.reply.Message())
	}
	return model, model.reply.Update(msg)
}

// handleAlertKeys держит фокус, пока оператор не подтвердит сообщение.
func (model Model) handleAlertKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return model, tea.Quit
	case key.Matches(msg, model.keys.Submit):
		model.alert = ""
		model.focus = focusTable
	}
	return model, nil
}

func (model Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return model, nil
	}
	if msg.Y == 0 && msg.X >= model.width-2 {
		model.chrome.ToggleMenu()
		return model, nil
	}
	if model.chrome.MenuOpen && !model.menuContains(msg.X, msg.Y) {
		model.chrome.DismissMenu()
	}
	return model, nil
}

// menuContains - попадает ли точка в панель меню справа под заголовком.
func (model Model) menuContains(x, y int) bool {
	return y >= 1 && x >= model.width-menuPanelWidth
}

func (model *Model) syncSnapshot() {
	model.snapshot = model.board.View()
	if model.focus != focusSearch {
		model.search.SetValue(model.snapshot.Filter.Search)
	}
	model.restoreSelection()
}

// restoreSelection держит курсор на той же заявке после обновления.
func (model *Model) restoreSelection() {
	rows := model.snapshot.Rows
	if len(rows) == 0 {
		model.cursor = 0
		model.selectedID = ""
		return
	}
	for i, row := range rows {
		if row.ID == model.selectedID {
			model.cursor = i
			model.ensureCursorVisible()
			return
		}
	}
	if model.cursor >= len(rows) {
		model.cursor = len(rows) - 1
	}
	model.selectedID = rows[model.cursor].ID
	model.ensureCursorVisible()
}

func (model *Model) moveCursor(delta int) {
	rows := model.snapshot.Rows
	if len(rows) == 0 {
		return
	}
	model.cursor += delta
	if model.cursor < 0 {
		model.cursor = 0
	}
	if model.cursor >= len(rows) {
		model.cursor = len(rows) - 1
	}
	model.selectedID = rows[model.cursor].ID
	model.ensureCursorVisible()
}

func (model *Model) ensureCursorVisible() {
	visible := model.tableHeight()
	if model.cursor < model.offset {
		model.offset = model.cursor
	}
	if model.cursor >= model.offset+visible {
		model.offset = model.cursor - visible + 1
	}
	if model.offset < 0 {
		model.offset = 0
	}
}

func (model Model) selectedRow() (services.RowView, bool) {
	rows := model.snapshot.Rows
	if model.cursor < 0 || model.cursor >= len(rows) {
		return services.RowView{}, false
	}
	return rows[model.cursor], true
}

// reportLocal показывает ошибки, которые не проходят через шину событий:
// отказ валидации до отправки запроса.
func (model *Model) reportLocal(err error) {
	if err == nil || !errors.Is(err, apperrors.ErrValidation) {
		return
	}
	model.notifications.Notify(services.ToastError, err.Error())
	model.toasts = model.notifications.Active(time.Now())
}

func (model Model) setSearch(text string) tea.Cmd {
	board, ctx := model.board, model.ctx
	return func() tea.Msg {
		return filterResultMsg{err: board.SetSearch(ctx, text)}
	}
}

func (model Model) setStatusFilter(status string) tea.Cmd {
	board, ctx := model.board, model.ctx
	return func() tea.Msg {
		return filterResultMsg{err: board.SetStatusFilter(ctx, status)}
	}
}

func (model Model) updateStatus(id entities.ID, status string) tea.Cmd {
	board, ctx := model.board, model.ctx
	return func() tea.Msg {
		result, err := board.UpdateStatus(ctx, id, status)
		return statusResultMsg{result: result, err: err}
	}
}

func (model Model) sendReply(userID entities.ID, message string) tea.Cmd {
	board, ctx := model.board, model.ctx
	return func() tea.Msg {
		result, err := board.Reply(ctx, userID, message)
		return replyResultMsg{result: result, err: err}
	}
}

func (model Model) logout() tea.Cmd {
	board, ctx := model.board, model.ctx
	return func() tea.Msg {
		_, err := board.Logout(ctx)
		return logoutResultMsg{err: err}
	}
}

func (model Model) saveTheme(theme entities.Theme) tea.Cmd {
	prefs, ctx := model.prefs, model.ctx
	return func() tea.Msg {
		return themeSavedMsg{err: prefs.SaveTheme(ctx, theme)}
	}
}

func nextStatusFilter(current string) string {
	filters := constants.StatusFilters
	for i, f := range filters {
		if f == current {
			return filters[(i+1)%len(filters)]
		}
	}
	return filters[0]
}

func statusIndex(status string) int {
	for i, s := range constants.RequestStatuses {
		if s == status {
			return i
		}
	}
	return 0
}
