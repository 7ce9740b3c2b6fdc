package listview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValue_String(t *testing.T) {
	tests := []struct {
		name  string
		value Value
		want  string
		kind  Kind
	}{
		{name: "string", value: StringValue("RHEL9"), want: "RHEL9", kind: KindString},
		{name: "integer", value: IntValue(12043), want: "12043", kind: KindNumber},
		{name: "fraction", value: NumberValue(2.5), want: "2.5", kind: KindNumber},
		{name: "list", value: ListValue("production", "web"), want: "production, web", kind: KindList},
		{name: "empty list", value: ListValue(), want: "", kind: KindList},
		{name: "zero value", value: Value{}, want: "", kind: KindString},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.value.String())
			assert.Equal(t, tt.kind, tt.value.Kind())
		})
	}
}

func TestValue_ItemsAreCopies(t *testing.T) {
	tags := []string{"a", "b"}
	v := ListValue(tags...)
	tags[0] = "changed"
	assert.Equal(t, []string{"a", "b"}, v.Items())

	items := v.Items()
	items[1] = "changed"
	assert.Equal(t, []string{"a", "b"}, v.Items())

	assert.Equal(t, []string{"42"}, IntValue(42).Items())
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "string", KindString.String())
	assert.Equal(t, "number", KindNumber.String())
	assert.Equal(t, "list", KindList.String())
	assert.Equal(t, "unknown", Kind(99).String())
}
