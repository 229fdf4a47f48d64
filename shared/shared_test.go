package shared_test

import (
	"reflect"
	"testing"
	"time"

	"riverstay/shared"
	"riverstay/shared/constant"
	"riverstay/shared/dto"
)

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *bool
	}{
		{
			name:     "empty string returns nil",
			input:    "",
			expected: nil,
		},
		{
			name:     "valid true string",
			input:    "true",
			expected: boolPtr(true),
		},
		{
			name:     "valid false string",
			input:    "false",
			expected: boolPtr(false),
		},
		{
			name:     "valid 1 string",
			input:    "1",
			expected: boolPtr(true),
		},
		{
			name:     "invalid string returns nil",
			input:    "invalid",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.ConvertStringToBool(tt.input)

			if tt.expected == nil {
				if result != nil {
					t.Errorf("expected nil, got %v", *result)
				}
			} else {
				if result == nil {
					t.Errorf("expected %v, got nil", *tt.expected)
				} else if *result != *tt.expected {
					t.Errorf("expected %v, got %v", *tt.expected, *result)
				}
			}
		})
	}
}

func TestConvertStringToFloat(t *testing.T) {
	result, err := shared.ConvertStringToFloat("149.99")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result != 149.99 {
		t.Errorf("expected 149.99, got %v", result)
	}

	if _, err := shared.ConvertStringToFloat("not-a-number"); err == nil {
		t.Error("expected error for invalid input")
	}
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{
			name:     "zero total returns 1",
			total:    0,
			limit:    10,
			expected: 1,
		},
		{
			name:     "zero limit returns 1",
			total:    100,
			limit:    0,
			expected: 1,
		},
		{
			name:     "exact division",
			total:    100,
			limit:    10,
			expected: 10,
		},
		{
			name:     "rounds up",
			total:    101,
			limit:    10,
			expected: 11,
		},
		{
			name:     "single page",
			total:    5,
			limit:    10,
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.CalculateTotalPage(tt.total, tt.limit)
			if result != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestTransformFields(t *testing.T) {
	type updateRequest struct {
		LastLogin time.Time `db:"last_login"`
		Name      string    `db:"name"`
	}

	now := time.Now()
	req := updateRequest{LastLogin: now}

	fields := shared.TransformFields(req, "test@example.com")

	if !reflect.DeepEqual(fields["last_login"], now) {
		t.Errorf("expected last_login %v, got %v", now, fields["last_login"])
	}

	// Zero-valued fields are skipped.
	if _, ok := fields["name"]; ok {
		t.Error("expected zero-valued field to be skipped")
	}

	if fields[constant.FieldModifiedBy] != "test@example.com" {
		t.Errorf("expected modified_by to be set, got %v", fields[constant.FieldModifiedBy])
	}

	if _, ok := fields[constant.FieldModifiedAt]; !ok {
		t.Error("expected modified_at to be set")
	}
}

func TestFilterByID(t *testing.T) {
	filter := shared.FilterByID("some-id", "id", "users")

	if len(filter.Filters) != 1 {
		t.Fatalf("expected 1 filter, got %d", len(filter.Filters))
	}

	f, ok := filter.Filters[0].(dto.Filter)
	if !ok {
		t.Fatal("expected filter to be a dto.Filter")
	}

	if f.Field != "id" || f.Value != "some-id" || f.Table != "users" || f.Operator != dto.FilterOperatorEq {
		t.Errorf("unexpected filter: %+v", f)
	}
}

func TestBuildCacheKey(t *testing.T) {
	key := shared.BuildCacheKey("room", "gets", "abc")
	if key != "room:gets:abc" {
		t.Errorf("expected room:gets:abc, got %s", key)
	}
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 1, Limit: 10, SortBy: "name", SortDir: "ASC"}
	filter := shared.FilterByID("some-id", "id", "rooms")

	first := shared.BuildCacheKeyWithQuery("room:gets", params, filter)
	second := shared.BuildCacheKeyWithQuery("room:gets", params, filter)

	// Same inputs must produce the same key.
	if first != second {
		t.Errorf("expected stable cache key, got %s and %s", first, second)
	}

	other := shared.BuildCacheKeyWithQuery("room:gets", dto.QueryParams{Page: 2, Limit: 10}, filter)
	if first == other {
		t.Error("expected different cache keys for different query params")
	}
}

// Helper function to create bool pointer
func boolPtr(b bool) *bool {
	return &b
}
