package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCarUpdate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		fields  map[string][]string
		wantErr error
		check   func(t *testing.T, u CarUpdate)
	}{
		{
			name:   "allowed fields",
			fields: map[string][]string{"title": {"Civic"}, "description": {"x"}, "tags": {" sedan ", "", "red"}},
			check: func(t *testing.T, u CarUpdate) {
				require.NotNil(t, u.Title)
				assert.Equal(t, "Civic", *u.Title)
				require.NotNil(t, u.Description)
				assert.Equal(t, "x", *u.Description)
				assert.True(t, u.SetTags)
				assert.Equal(t, []string{"sedan", "red"}, u.Tags)
			},
		},
		{
			name:    "unknown key rejects whole update",
			fields:  map[string][]string{"title": {"Civic"}, "owner": {"someone"}},
			wantErr: ErrInvalidUpdate,
		},
		{
			name:   "images value is accepted and ignored",
			fields: map[string][]string{"images": {"old.png"}},
			check: func(t *testing.T, u CarUpdate) {
				assert.True(t, u.IsEmpty())
			},
		},
		{
			name:    "empty title",
			fields:  map[string][]string{"title": {""}},
			wantErr: ErrValidation,
		},
		{
			name:    "blank title",
			fields:  map[string][]string{"title": {"   "}},
			wantErr: ErrValidation,
		},
		{
			name:    "blank description",
			fields:  map[string][]string{"title": {"Civic"}, "description": {"\t \n"}},
			wantErr: ErrValidation,
		},
		{
			name:   "title and description are trimmed",
			fields: map[string][]string{"title": {"  Civic  "}, "description": {" clean "}},
			check: func(t *testing.T, u CarUpdate) {
				require.NotNil(t, u.Title)
				assert.Equal(t, "Civic", *u.Title)
				require.NotNil(t, u.Description)
				assert.Equal(t, "clean", *u.Description)
			},
		},
		{
			name:   "no fields",
			fields: map[string][]string{},
			check: func(t *testing.T, u CarUpdate) {
				assert.True(t, u.IsEmpty())
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			u, err := NewCarUpdate(tt.fields, nil)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.check(t, u)
		})
	}
}

func TestCarUpdate_Apply(t *testing.T) {
	title := "New"
	car := Car{Title: "Old", Description: "d", Tags: []string{"a"}, Images: []string{"1.png"}}

	CarUpdate{Title: &title, Tags: []string{}, SetTags: true}.Apply(&car)

	assert.Equal(t, "New", car.Title)
	assert.Equal(t, "d", car.Description)
	assert.Empty(t, car.Tags)
	assert.Equal(t, []string{"1.png"}, car.Images)
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "a@x.com", NormalizeEmail("  A@X.com "))
}
