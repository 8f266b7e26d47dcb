// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package core

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type shade string

const (
	shadeLight shade = "LIGHT"
	shadeDark  shade = "DARK"
)

func (shade) Values() []shade { return []shade{shadeLight, shadeDark} }

type swatch struct {
	Shade shade  `json:"shade" required:"true"`
	Data  []byte `json:"data,omitempty" max:"4"`
}

type paletteInput struct {
	Name     *string           `json:"name" required:"true" min:"3"`
	Size     *int32            `json:"size,omitempty" min:"1" max:"10"`
	Swatches []swatch          `json:"swatches,omitempty" max:"2"`
	Labels   map[string]string `json:"labels,omitempty"`
	Shades   map[string]shade  `json:"shades,omitempty"`
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want []InvalidParam
	}{
		{"nil untyped", nil, nil},
		{"nil typed", (*paletteInput)(nil), []InvalidParam{{Field: "Name", Reason: "required"}}},
		{"ok", &paletteInput{Name: aws.String("abc"), Size: aws.Int32(2)}, nil},
		{"short", &paletteInput{Name: aws.String("ab")}, []InvalidParam{{Field: "Name", Reason: "minimum 3"}}},
		{"range", &paletteInput{Name: aws.String("abc"), Size: aws.Int32(11)}, []InvalidParam{{Field: "Size", Reason: "maximum 10"}}},
		{
			"nested enum",
			&paletteInput{Name: aws.String("abc"), Swatches: []swatch{{Shade: shadeDark}, {Shade: "PURPLE"}}},
			[]InvalidParam{{Field: "Swatches[1].Shade", Reason: `unknown value "PURPLE"`}},
		},
		{
			"nested required",
			&paletteInput{Name: aws.String("abc"), Swatches: []swatch{{}}},
			[]InvalidParam{{Field: "Swatches[0].Shade", Reason: "required"}},
		},
		{
			"blob length",
			&paletteInput{Name: aws.String("abc"), Swatches: []swatch{{Shade: shadeLight, Data: []byte("12345")}}},
			[]InvalidParam{{Field: "Swatches[0].Data", Reason: "maximum 4"}},
		},
		{
			"map enum",
			&paletteInput{Name: aws.String("abc"), Shades: map[string]shade{"x": "GREY"}},
			[]InvalidParam{{Field: "Shades[x]", Reason: `unknown value "GREY"`}},
		},
		{"plain strings pass", &paletteInput{Name: aws.String("abc"), Labels: map[string]string{"k": "anything"}}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate("PutPalette", tt.in)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.want, ve.Params)
		})
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Op: "PutPalette", Params: []InvalidParam{{"Name", "required"}, {"Size", "maximum 10"}}}
	assert.Equal(t, "PutPalette: invalid input: Name: required; Size: maximum 10", err.Error())
}

func TestParseEnum(t *testing.T) {
	got, err := ParseEnum("Shade", "DARK", shade("").Values())
	require.NoError(t, err)
	assert.Equal(t, shadeDark, got)

	_, err = ParseEnum("Shade", "dark", shade("").Values())
	var ee *EnumError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, "Shade", ee.Enum)
	assert.Equal(t, `"dark" is not a valid Shade`, ee.Error())

	assert.True(t, KnownEnum(shadeLight, shade("").Values()))
	assert.False(t, KnownEnum(shade("x"), shade("").Values()))
}

func TestTimestamp(t *testing.T) {
	ts := NewTimestamp(time.UnixMilli(1700000000250).UTC())
	b, err := json.Marshal(ts)
	require.NoError(t, err)
	assert.Equal(t, "1700000000.25", string(b))

	tests := []struct {
		in   string
		want int64
	}{
		{`1700000000`, 1700000000000},
		{`1700000000.25`, 1700000000250},
		{`"1700000000.5"`, 1700000000500},
		{`"2023-11-14T22:13:20Z"`, 1700000000000},
	}
	for _, tt := range tests {
		var got Timestamp
		require.NoError(t, json.Unmarshal([]byte(tt.in), &got), tt.in)
		assert.Equal(t, tt.want, got.UnixMilli(), tt.in)
	}

	var null struct {
		At *Timestamp `json:"at"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"at":null}`), &null))
	assert.Nil(t, null.At)

	var bad Timestamp
	assert.Error(t, json.Unmarshal([]byte(`"yesterday"`), &bad))
}
