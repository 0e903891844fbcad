package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirstIncomplete(t *testing.T) {
	tests := []struct {
		name      string
		rules     []FieldRule
		wantMsg   string
		wantFound bool
	}{
		{
			name:      "no rules",
			rules:     nil,
			wantFound: false,
		},
		{
			name: "all complete",
			rules: []FieldRule{
				{Required: true, Value: "a", ErrorMessage: "first"},
				{Required: true, Value: "b", ErrorMessage: "second"},
			},
			wantFound: false,
		},
		{
			name: "first violation in input order wins",
			rules: []FieldRule{
				{Required: true, Value: "a", ErrorMessage: "first"},
				{Required: true, Value: "", ErrorMessage: "second"},
				{Required: true, Value: "", ErrorMessage: "third"},
			},
			wantMsg:   "second",
			wantFound: true,
		},
		{
			name: "hidden fields are skipped",
			rules: []FieldRule{
				{Hidden: true, Required: true, Value: "", ErrorMessage: "hidden"},
				{Required: true, Value: "", ErrorMessage: "visible"},
			},
			wantMsg:   "visible",
			wantFound: true,
		},
		{
			name: "optional empty fields are not violations",
			rules: []FieldRule{
				{Required: false, Value: "", ErrorMessage: "optional"},
			},
			wantFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, found := FirstIncomplete(tt.rules)
			assert.Equal(t, tt.wantFound, found)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}
