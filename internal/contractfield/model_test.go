package contractfield

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnakeCase(t *testing.T) {
	cases := []struct {
		label string
		want  string
	}{
		{"Contract Status", "contract_status"},
		{"Renewal Date", "renewal_date"},
		{"CamelCaseLabel", "camel_case_label"},
		{"with-hyphens", "with_hyphens"},
		{"ABBRLabel", "abbr_label"},
		{"already_snake", "already_snake"},
		{"  Padded  Label ", "padded_label"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, SnakeCase(tc.label), "label %q", tc.label)
	}
}

func TestSnakeCaseIdempotent(t *testing.T) {
	labels := []string{"Contract Status", "CamelCaseLabel", "with-hyphens"}
	for _, label := range labels {
		once := SnakeCase(label)
		assert.Equal(t, once, SnakeCase(once))
	}
}

func TestBlockedFieldsCoverFixedAttributes(t *testing.T) {
	// deriving a code equal to a core attribute name must be detectable
	assert.True(t, BlockedFields[SnakeCase("Contract Status")])
	assert.True(t, BlockedFields[SnakeCase("Effective Date")])
	assert.True(t, BlockedFields[SnakeCase("Value")])
	assert.False(t, BlockedFields[SnakeCase("Renewal Date")])
}
