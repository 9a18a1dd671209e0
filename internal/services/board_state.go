package services

import (
	"sync"

	"request-board/internal/entities"
)

type LoadPhase string

const (
	PhaseLoading LoadPhase = "loading"
	PhaseReady   LoadPhase = "ready"
	PhaseError   LoadPhase = "error"
)

// Indicator - индикатор загрузки над таблицей. Stale=true значит, что
// показанная коллекция не подтверждена последним циклом опроса.
type Indicator struct {
	Phase   LoadPhase
	Message string
	Stale   bool
}

// BoardState - единственное место, где живут фильтр и коллекция.
// Меняется только методами ниже.
type BoardState struct {
	mu         sync.Mutex
	filter     entities.Filter
	requests   []entities.Request
	dispatched uint64
	applied    uint64
	indicator  Indicator
}

func NewBoardState() *BoardState {
	return &BoardState{
		requests:  []entities.Request{},
		indicator: Indicator{Phase: PhaseLoading},
	}
}

func (s *BoardState) Filter() entities.Filter {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter
}

func (s *BoardState) setSearch(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter.Search = text
}

func (s *BoardState) setStatus(status string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter.Status = status
}

// dispatch выдаёт номер нового цикла вместе со снимком фильтра.
func (s *BoardState) dispatch() (uint64, entities.Filter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dispatched++
	return s.dispatched, s.filter
}

// apply заменяет коллекцию целиком, если gen - последний отправленный цикл.
func (s *BoardState) apply(gen uint64, requests []entities.Request) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.dispatched {
		return false
	}
	if requests == nil {
		requests = []entities.Request{}
	}
	s.requests = requests
	s.applied = gen
	s.indicator = Indicator{Phase: PhaseReady}
	return true
}

// fail помечает данные устаревшими. Ответ старого цикла не перетирает
// состояние более нового.
func (s *BoardState) fail(gen uint64, message string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.dispatched {
		return false
	}
	s.indicator = Indicator{Phase: PhaseError, Message: message, Stale: true}
	return true
}

// Snapshot возвращает применённую коллекцию и индикатор.
func (s *BoardState) Snapshot() ([]entities.Request, Indicator, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requests, s.indicator, s.applied
}
