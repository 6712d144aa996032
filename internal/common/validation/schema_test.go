// internal/common/validation/schema_test.go
package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRules() []FieldRule {
	return []FieldRule{
		{Name: "name", Kind: KindText, Required: true, MinLen: 2, MaxLen: 10},
		{Name: "email", Kind: KindEmail, Required: true},
		{Name: "phone", Kind: KindPhone, Required: true},
		{Name: "site", Kind: KindURL},
		{Name: "birthday", Kind: KindDate},
		{Name: "level", Kind: KindEnum, Required: true, Enum: []string{"Entry Level", "Mid Level"}},
		{Name: "tags", Kind: KindMultiChoice, Enum: []string{"a", "b", "c"}},
		{Name: "notes", Kind: KindText, MaxLen: 20},
	}
}

func validPayload() map[string]interface{} {
	return map[string]interface{}{
		"name":  "Jane",
		"email": "jane@example.com",
		"phone": "+14155551234",
		"level": "Mid Level",
	}
}

func TestValidate_Valid(t *testing.T) {
	rec, violations := Validate(validPayload(), testRules())

	require.Empty(t, violations)
	require.NotNil(t, rec)
	assert.Equal(t, "Jane", rec.Get("name"))
	assert.Equal(t, "+14155551234", rec.Get("phone"))
	assert.False(t, rec.Has("site"))
	assert.Equal(t, "", rec.Get("site"))
}

func TestValidate_CollectsAllViolations(t *testing.T) {
	payload := map[string]interface{}{
		"name":  "J",
		"phone": "not a phone",
		"level": "Intern",
	}

	rec, violations := Validate(payload, testRules())

	assert.Nil(t, rec)
	require.Len(t, violations, 4)

	byField := map[string]Violation{}
	for _, v := range violations {
		byField[v.Field] = v
	}
	assert.Equal(t, ViolationLength, byField["name"].Kind)
	assert.Equal(t, ViolationMissing, byField["email"].Kind)
	assert.Equal(t, ViolationFormat, byField["phone"].Kind)
	assert.Equal(t, ViolationEnum, byField["level"].Kind)
}

func TestValidate_CheckOrderPerField(t *testing.T) {
	// A value failing several checks reports only the first in
	// presence, length, format, enum order.
	payload := validPayload()
	payload["email"] = "x" // would fail format too, but not length-bounded

	_, violations := Validate(payload, testRules())
	require.Len(t, violations, 1)
	assert.Equal(t, "email", violations[0].Field)
	assert.Equal(t, ViolationFormat, violations[0].Kind)
}

func TestValidate_WhitespaceOnlyIsMissing(t *testing.T) {
	payload := validPayload()
	payload["name"] = "   "

	_, violations := Validate(payload, testRules())
	require.Len(t, violations, 1)
	assert.Equal(t, ViolationMissing, violations[0].Kind)
}

func TestValidate_NonStringScalarIsFormat(t *testing.T) {
	payload := validPayload()
	payload["name"] = 42.0

	_, violations := Validate(payload, testRules())
	require.Len(t, violations, 1)
	assert.Equal(t, "name", violations[0].Field)
	assert.Equal(t, ViolationFormat, violations[0].Kind)
}

func TestValidate_NilValueTreatedAsAbsent(t *testing.T) {
	payload := validPayload()
	payload["site"] = nil

	rec, violations := Validate(payload, testRules())
	assert.Empty(t, violations)
	assert.False(t, rec.Has("site"))
}

func TestValidate_UnknownKeysIgnored(t *testing.T) {
	payload := validPayload()
	payload["unexpected"] = "whatever"

	rec, violations := Validate(payload, testRules())
	assert.Empty(t, violations)
	assert.NotNil(t, rec)
}

func TestValidate_Idempotent(t *testing.T) {
	payload := validPayload()
	payload["tags"] = []interface{}{"b", "a"}

	rec1, v1 := Validate(payload, testRules())
	rec2, v2 := Validate(payload, testRules())

	assert.Equal(t, v1, v2)
	require.NotNil(t, rec1)
	require.NotNil(t, rec2)
	assert.Equal(t, rec1.Get("name"), rec2.Get("name"))
	assert.Equal(t, rec1.List("tags"), rec2.List("tags"))
}

func TestValidate_DateFormat(t *testing.T) {
	tests := []struct {
		value string
		valid bool
	}{
		{"2003-07-21", true},
		{"2003-02-30", false}, // not a real calendar date
		{"21/07/2003", false},
		{"2003-7-1", false},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			payload := validPayload()
			payload["birthday"] = tt.value

			_, violations := Validate(payload, testRules())
			if tt.valid {
				assert.Empty(t, violations)
			} else {
				require.Len(t, violations, 1)
				assert.Equal(t, ViolationFormat, violations[0].Kind)
			}
		})
	}
}

func TestValidate_MultiChoice(t *testing.T) {
	t.Run("preserves submission order", func(t *testing.T) {
		payload := validPayload()
		payload["tags"] = []interface{}{"c", "a"}

		rec, violations := Validate(payload, testRules())
		require.Empty(t, violations)
		assert.Equal(t, []string{"c", "a"}, rec.List("tags"))
	})

	t.Run("reports each unknown member", func(t *testing.T) {
		payload := validPayload()
		payload["tags"] = []interface{}{"a", "x", "y"}

		_, violations := Validate(payload, testRules())
		require.Len(t, violations, 2)
		assert.Equal(t, ViolationEnum, violations[0].Kind)
		assert.Equal(t, ViolationEnum, violations[1].Kind)
	})

	t.Run("non-array value is format", func(t *testing.T) {
		payload := validPayload()
		payload["tags"] = "a"

		_, violations := Validate(payload, testRules())
		require.Len(t, violations, 1)
		assert.Equal(t, ViolationFormat, violations[0].Kind)
	})

	t.Run("blank elements dropped", func(t *testing.T) {
		payload := validPayload()
		payload["tags"] = []interface{}{" a ", "", "b"}

		rec, violations := Validate(payload, testRules())
		require.Empty(t, violations)
		assert.Equal(t, []string{"a", "b"}, rec.List("tags"))
	})
}

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		phone string
		valid bool
	}{
		{"+14155551234", true},
		{"+61 412 345 678", true},
		{"(02) 9385-1000 ext", false}, // cleaned leading zero
		{"123", false},
		{"abc-defg", false},
		{"0123456789", false},  // leading zero
		{"+12345678", true},    // 8 digits, lower bound
		{"12345678901234567", false}, // 17 digits, over upper bound
	}
	for _, tt := range tests {
		t.Run(tt.phone, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidatePhone(tt.phone))
		})
	}
}

func TestCleanPhone(t *testing.T) {
	assert.Equal(t, "+61412345678", CleanPhone("+61 412-345 678"))
	assert.Equal(t, "", CleanPhone("abc-defg"))
}

func TestValidateURL(t *testing.T) {
	assert.True(t, ValidateURL("https://example.com"))
	assert.True(t, ValidateURL("http://example.com"))
	assert.False(t, ValidateURL("ftp://example.com"))
	assert.False(t, ValidateURL("example.com"))
}
