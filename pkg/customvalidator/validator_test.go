package customvalidator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type statusHolder struct {
	Status string `validate:"request_status"`
	Filter string `validate:"status_filter"`
}

func TestCustomValidations(t *testing.T) {
	v, err := New()
	require.NoError(t, err)

	cases := []struct {
		name  string
		in    statusHolder
		valid bool
	}{
		{"все корректно", statusHolder{Status: "new", Filter: ""}, true},
		{"фильтр all", statusHolder{Status: "done", Filter: "all"}, true},
		{"фильтр inwork", statusHolder{Status: "inwork", Filter: "inwork"}, true},
		{"неизвестный статус", statusHolder{Status: "closed", Filter: ""}, false},
		{"пустой статус", statusHolder{Status: "", Filter: ""}, false},
		{"неизвестный фильтр", statusHolder{Status: "new", Filter: "archived"}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Struct(tc.in)
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
