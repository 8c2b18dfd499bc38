package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
)

// DefaultCurrency is used when no currency is configured.
const DefaultCurrency = "USD"

// ErrUnknownFormat is returned when a format name is not one of the
// three download encodings.
var ErrUnknownFormat = errors.New("unknown format")

// Song is a catalog entry. Songs are reference data; only the liked
// flag is changed at runtime, and that lives in the store.
type Song struct {
	ID         string
	Title      string
	Artist     string
	Album      string
	Duration   string // "M:SS"
	ArtworkURL string
	Liked      bool
}

// Format is a download encoding offered in the cart.
type Format string

const (
	FormatMP3  Format = "MP3"
	FormatFLAC Format = "FLAC"
	FormatWAV  Format = "WAV"
)

// Formats lists the encodings in price order.
var Formats = []Format{FormatMP3, FormatFLAC, FormatWAV}

// priceCents maps each format to its fixed tier in minor units.
var priceCents = map[Format]int64{
	FormatMP3:  99,
	FormatFLAC: 199,
	FormatWAV:  299,
}

// ParseFormat resolves a case-insensitive format name.
func ParseFormat(value string) (Format, error) {
	candidate := Format(strings.ToUpper(strings.TrimSpace(value)))
	if _, ok := priceCents[candidate]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, value)
	}
	return candidate, nil
}

// Valid reports whether f is one of the known formats.
func (f Format) Valid() bool {
	_, ok := priceCents[f]
	return ok
}

// Next returns the following format in the cycle MP3 -> FLAC -> WAV -> MP3.
func (f Format) Next() Format {
	for i, candidate := range Formats {
		if candidate == f {
			return Formats[(i+1)%len(Formats)]
		}
	}
	return FormatMP3
}

// Price returns the tier price of f in the given currency. Unknown
// formats price at zero.
func (f Format) Price(currency string) *money.Money {
	if strings.TrimSpace(currency) == "" {
		currency = DefaultCurrency
	}
	return money.New(priceCents[f], currency)
}

// SupportedCurrency reports whether go-money knows the currency code.
func SupportedCurrency(code string) bool {
	return money.GetCurrency(strings.ToUpper(strings.TrimSpace(code))) != nil
}
