package constants

import "time"

// --- СТАТУСЫ ЗАЯВОК (совпадают со значениями в админ-API) ---
const (
	StatusNew    = "new"
	StatusInWork = "inwork"
	StatusDone   = "done"
)

// Значение фильтра «все статусы». На проводе уходит пустой status_f.
const (
	StatusFilterAll     = "all"
	StatusFilterAllWire = ""
)

// RequestStatuses в порядке отображения в селекторе.
var RequestStatuses = []string{
	StatusNew,
	StatusInWork,
	StatusDone,
}

// StatusFilters в порядке циклического переключения фильтра.
var StatusFilters = []string{
	StatusFilterAllWire,
	StatusNew,
	StatusInWork,
	StatusDone,
}

func IsRequestStatus(code string) bool {
	for _, s := range RequestStatuses {
		if s == code {
			return true
		}
	}
	return false
}

// NormalizeStatusFilter сводит "all" к пустому значению.
func NormalizeStatusFilter(code string) string {
	if code == StatusFilterAll {
		return StatusFilterAllWire
	}
	return code
}

// --- ТАЙМИНГИ ---
const (
	DefaultPollInterval = 5 * time.Second
	ToastTTL            = 3 * time.Second
)

// Тексты уведомлений оператору
const (
	MsgStatusUpdated = "Статус обновлён!"
	MsgReplySent     = "Ответ отправлен!"
	MsgLogoutFailed  = "Ошибка выхода из системы"
)
