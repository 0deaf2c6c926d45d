package services

import (
	"errors"
	"testing"

	"auction-normalizer/models"
)

func txt(s string) *models.Text {
	t := models.Text(s)
	return &t
}

func TestIsJSONFile(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"items-0.json", true},
		{"a.json", true},
		{"ebay.JSON", false},
		{"items.dat", false},
		{".json", false},
		{"json", false},
		{"", false},
	}

	for _, tt := range tests {
		got := IsJSONFile(tt.name)
		if got != tt.want {
			t.Errorf("IsJSONFile(%q) = %v; want %v", tt.name, got, tt.want)
		}
	}
}

func TestNormalizeMonth(t *testing.T) {
	tests := []struct {
		mon  string
		want string
	}{
		{"Jan", "01"},
		{"Sep", "09"},
		{"Dec", "12"},
		{"Foo", "Foo"},
		{"", ""},
	}

	for _, tt := range tests {
		got := NormalizeMonth(tt.mon)
		if got != tt.want {
			t.Errorf("NormalizeMonth(%q) = %q; want %q", tt.mon, got, tt.want)
		}
	}
}

func TestNormalizeTimestamp(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"Dec-21-01 10:30:00", "2001-12-21 10:30:00"},
		{"Jan-05-13 08:01:59", "2013-01-05 08:01:59"},
		{"  Mar-12-99 23:59:59  ", "2099-03-12 23:59:59"},
	}

	for _, tt := range tests {
		got, err := NormalizeTimestamp(tt.raw)
		if err != nil {
			t.Errorf("NormalizeTimestamp(%q) unexpected error: %v", tt.raw, err)
			continue
		}
		if got != tt.want {
			t.Errorf("NormalizeTimestamp(%q) = %q; want %q", tt.raw, got, tt.want)
		}
	}
}

func TestNormalizeTimestampMalformed(t *testing.T) {
	for _, raw := range []string{"Dec-21-01", "Dec-21-01 10:30:00 UTC", "Dec/21/01 10:30:00", ""} {
		_, err := NormalizeTimestamp(raw)
		if err == nil {
			t.Errorf("NormalizeTimestamp(%q): expected error, got nil", raw)
			continue
		}
		var ferr *FormatError
		if !errors.As(err, &ferr) {
			t.Errorf("NormalizeTimestamp(%q): error %v is not a FormatError", raw, err)
		}
	}
}

func TestNormalizeCurrency(t *testing.T) {
	tests := []struct {
		raw  *models.Text
		want string
	}{
		{txt("$3,453.23"), "3453.23"},
		{txt("$1,500"), "1500"},
		{txt("0.99"), "0.99"},
		{txt("USD 99"), "99"},
		{txt(""), ""},
		{nil, ""},
	}

	for _, tt := range tests {
		got := NormalizeCurrency(tt.raw)
		if got != tt.want {
			t.Errorf("NormalizeCurrency(%v) = %q; want %q", tt.raw, got, tt.want)
		}
	}
}

func TestQuoteEscape(t *testing.T) {
	tests := []struct {
		raw  *models.Text
		want string
	}{
		{nil, `"NULL"`},
		{txt(""), `""`},
		{txt(`a"b`), `"a""b"`},
		{txt("plain"), `"plain"`},
		{txt("pipe|and\nnewline"), "\"pipe|and\nnewline\""},
		{txt("NULL"), `"NULL"`},
	}

	for _, tt := range tests {
		got := QuoteEscape(tt.raw)
		if got != tt.want {
			t.Errorf("QuoteEscape(%v) = %q; want %q", tt.raw, got, tt.want)
		}
	}
}
