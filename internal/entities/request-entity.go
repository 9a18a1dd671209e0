package entities

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ID - непрозрачный идентификатор из админ-API. Сервер отдаёт его то числом,
// то строкой; внутри всегда строка.
type ID string

func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("идентификатор должен быть числом или строкой: %w", err)
	}
	*id = ID(n.String())
	return nil
}

func (id ID) String() string { return string(id) }

// Request - заявка на консультацию.
type Request struct {
	ID        ID         `json:"id"`
	CreatedAt string     `json:"created_at"`
	Name      string     `json:"name"`
	Phone     string     `json:"phone"`
	Message   string     `json:"message"`
	Status    string     `json:"status"`
	UserID    ID         `json:"user_id"`
	Documents []Document `json:"documents"`
}

// Document - вложение к заявке.
type Document struct {
	FileID   ID     `json:"file_id"`
	FileName string `json:"file_name"`
}

// Filter - параметры запроса списка. Status пустой означает «все».
type Filter struct {
	Search string
	Status string
}
