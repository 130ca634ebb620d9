package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "studio/internal/domain/errors"
	"studio/internal/errors"
	"studio/internal/usecase"
)

func intPtr(v int) *int { return &v }

func TestValidate_ContactReportsEveryFailingField(t *testing.T) {
	v := New()

	err := v.Validate(&usecase.SubmitContactInput{Name: "Jo", Email: "not-an-email", Message: "   "})
	require.Error(t, err)

	var vErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.ElementsMatch(t, []string{"email", "message"}, vErr.Fields())

	for _, issue := range vErr.Issues {
		assert.NotEmpty(t, issue.Code)
		assert.NotEmpty(t, issue.Message)
	}
}

func TestValidate_NormalizesBeforeChecking(t *testing.T) {
	v := New()
	in := &usecase.SubmitContactInput{Name: "  Jane Doe ", Email: " jane@example.com ", Message: " Hello "}

	require.NoError(t, v.Validate(in))
	assert.Equal(t, "Jane Doe", in.Name)
	assert.Equal(t, "jane@example.com", in.Email)
	assert.Equal(t, "Hello", in.Message)
}

func TestValidate_Rules(t *testing.T) {
	v := New()

	tests := []struct {
		name      string
		input     any
		wantField string
		wantCode  string
	}{
		{
			name:      "short contact name",
			input:     &usecase.SubmitContactInput{Name: "J", Email: "j@example.com", Message: "hi"},
			wantField: "name",
			wantCode:  "min",
		},
		{
			name:      "rating above five",
			input:     &usecase.SubmitTestimonialInput{Name: "Ann", Quote: "Great", Rating: intPtr(6)},
			wantField: "rating",
			wantCode:  "max",
		},
		{
			name:      "missing rating",
			input:     &usecase.SubmitTestimonialInput{Name: "Ann", Quote: "Great"},
			wantField: "rating",
			wantCode:  "required",
		},
		{
			name: "booking date format",
			input: &usecase.CreateBookingInput{
				Name: "Ann", Email: "ann@example.com", Phone: "0771234567",
				Date: "14/10/2026", Time: "10:00", Location: "Colombo", Service: "Wedding",
			},
			wantField: "date",
			wantCode:  "datetime",
		},
		{
			name:      "gallery upload without file",
			input:     &usecase.UploadGalleryImageInput{Category: "wedding"},
			wantField: "file",
			wantCode:  "required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.input)

			var vErr *domainerrors.ValidationError
			require.True(t, errors.As(err, &vErr))
			require.Len(t, vErr.Issues, 1)
			assert.Equal(t, tt.wantField, vErr.Issues[0].Field)
			assert.Equal(t, tt.wantCode, vErr.Issues[0].Code)
		})
	}
}

func TestValidate_OrderFieldsAreOptional(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&usecase.CreateOrderInput{}))
}
